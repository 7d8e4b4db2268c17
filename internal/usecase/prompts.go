package usecase

import (
	"fmt"
	"strings"

	"github.com/veltrixai/go-backend/internal/domain"
)

// Промпты обращаются к модели на английском, а отвечать просят на языке
// пользователя: так инструкции следуются надёжнее.

// buildAdvisorPrompt собирает системный промпт AI-советника
// из каталога и последних заказов бизнеса.
func buildAdvisorPrompt(products []domain.Product, orders []domain.Order) string {
	var sb strings.Builder

	sb.WriteString("You are a business advisor for a small business owner in Indonesia. ")
	sb.WriteString("Answer in the language the user writes in (default to Bahasa Indonesia). ")
	sb.WriteString("Be concise and practical. Amounts are in Indonesian Rupiah (Rp).\n\n")

	sb.WriteString("Current catalog:\n")
	if len(products) == 0 {
		sb.WriteString("(empty)\n")
	}
	for _, p := range products {
		fmt.Fprintf(&sb, "- %s (%s): price Rp %d, stock %d\n", p.Name, p.Category, p.Price, p.Stock)
	}

	sb.WriteString("\nRecent sales:\n")
	if len(orders) == 0 {
		sb.WriteString("(no sales yet)\n")
	}
	for _, o := range orders {
		fmt.Fprintf(&sb, "- %s: %s, total Rp %d, %d items\n",
			o.Date.Format("2006-01-02"), o.CustomerName, o.Total, len(o.Lines))
	}

	return sb.String()
}

// buildInsightsPrompt просит модель сформулировать до трёх инсайтов
// по недельной сводке в строгом JSON.
func buildInsightsPrompt(summary *AnalyticsSummary) string {
	var sb strings.Builder

	sb.WriteString("You are a business analyst. Based on the weekly sales summary below, ")
	sb.WriteString("produce up to 3 short actionable insights in Bahasa Indonesia.\n")
	sb.WriteString("Respond with ONLY a JSON array, no markdown, in this exact shape:\n")
	sb.WriteString(`[{"type":"success|warning|info","title":"...","message":"..."}]` + "\n\n")

	fmt.Fprintf(&sb, "Revenue last 7 days: Rp %d (%+.1f%% vs previous week)\n", summary.Revenue, summary.RevenueChange)
	fmt.Fprintf(&sb, "Orders: %d (%+.1f%%)\n", summary.Orders, summary.OrdersChange)
	fmt.Fprintf(&sb, "Average order value: Rp %d (%+.1f%%)\n", summary.AvgOrderValue, summary.AvgChange)

	sb.WriteString("Top products:\n")
	if len(summary.TopProducts) == 0 {
		sb.WriteString("(no sales)\n")
	}
	for _, p := range summary.TopProducts {
		fmt.Fprintf(&sb, "- %s: %d sold, Rp %d\n", p.Name, p.Count, p.Revenue)
	}

	return sb.String()
}

// buildDocumentPrompt собирает промпт генерации документа выбранного типа.
func buildDocumentPrompt(docType string, business *domain.Business, orders []domain.Order) string {
	var sb strings.Builder

	switch docType {
	case DocumentInvoice:
		sb.WriteString("Generate a professional invoice in Bahasa Indonesia as Markdown for the latest sale below. ")
		sb.WriteString("Include business name, date, line items with quantities and prices, and the total.\n\n")
	case DocumentSalesReport:
		sb.WriteString("Generate a sales report in Bahasa Indonesia as Markdown for the sales below. ")
		sb.WriteString("Include a summary table, totals, and notable products.\n\n")
	case DocumentSummary:
		sb.WriteString("Generate a short business status summary in Bahasa Indonesia as Markdown based on the sales below. ")
		sb.WriteString("Highlight trends and give one recommendation.\n\n")
	}

	fmt.Fprintf(&sb, "Business: %s", business.Name)
	if business.Address != "" {
		fmt.Fprintf(&sb, ", %s", business.Address)
	}
	sb.WriteString("\nAmounts are in Indonesian Rupiah (Rp).\n\nSales:\n")

	if len(orders) == 0 {
		sb.WriteString("(no sales yet)\n")
	}
	for _, o := range orders {
		fmt.Fprintf(&sb, "- %s | %s | %s | total Rp %d\n",
			o.Date.Format("2006-01-02"), o.CustomerName, o.PaymentMethod, o.Total)
		for _, line := range o.Lines {
			fmt.Fprintf(&sb, "  - %s x%d @ Rp %d = Rp %d\n", line.ProductName, line.Quantity, line.Price, line.Subtotal)
		}
	}

	return sb.String()
}
