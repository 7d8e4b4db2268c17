package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

const (
	summaryPeriodDays  = 7
	defaultDetailDays  = 30
	maxDetailDays      = 365
	topProductsLimit   = 5
	maxInsights        = 3
	uncategorizedLabel = "Lainnya"
)

// AnalyticsUseCase считает сводки продаж по заказам и генерирует AI-инсайты.
// Агрегаты считаются в приложении: объёмы малого бизнеса этого не замечают,
// а логика периодов остаётся в одном месте.
type AnalyticsUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	cacheRepo   CacheRepository
	aiService   AIService
	logger      logger.Logger
}

func NewAnalyticsUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	aiService AIService,
	logger logger.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		aiService:   aiService,
		logger:      logger,
	}
}

// GetSummary возвращает сводку за последние 7 дней против предыдущих 7.
func (a *AnalyticsUseCase) GetSummary(ctx context.Context, businessID string) (*AnalyticsSummary, error) {
	const op = "AnalyticsUseCase.GetSummary"

	cached, err := a.cacheRepo.GetAnalytics(ctx, businessID)
	if err == nil && cached != nil {
		return cached, nil
	}

	now := time.Now().UTC()
	currentFrom := now.AddDate(0, 0, -summaryPeriodDays)
	previousFrom := now.AddDate(0, 0, -2*summaryPeriodDays)

	current, err := a.orderRepo.ListSince(ctx, businessID, currentFrom, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	previous, err := a.orderRepo.ListSince(ctx, businessID, previousFrom, &currentFrom)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	curRevenue, curOrders := totals(current)
	prevRevenue, prevOrders := totals(previous)

	summary := &AnalyticsSummary{
		Revenue:       curRevenue,
		RevenueChange: percentChange(curRevenue, prevRevenue),
		Orders:        curOrders,
		OrdersChange:  percentChange(curOrders, prevOrders),
		AvgOrderValue: avgOrderValue(curRevenue, curOrders),
		AvgChange:     percentChange(avgOrderValue(curRevenue, curOrders), avgOrderValue(prevRevenue, prevOrders)),
		TopProducts:   topProducts(current, topProductsLimit),
	}

	if err := a.cacheRepo.SetAnalytics(ctx, businessID, summary); err != nil {
		a.logger.Warnf("Failed to cache analytics summary: %v", e.Wrap(op, err))
	}

	return summary, nil
}

// GetDetail возвращает развёрнутую аналитику за произвольный период:
// дневной тренд выручки, топ продуктов и разбивку по категориям каталога.
func (a *AnalyticsUseCase) GetDetail(ctx context.Context, req *AnalyticsDetailReq) (*AnalyticsDetail, error) {
	const op = "AnalyticsUseCase.GetDetail"

	days := req.PeriodDays
	if days < 1 {
		days = defaultDetailDays
	}
	if days > maxDetailDays {
		days = maxDetailDays
	}

	// Окно выровнено по дням и заканчивается сегодняшним днём включительно:
	// последняя точка тренда — текущая выручка за сегодня.
	from := startOfDay(time.Now().UTC()).AddDate(0, 0, -(days - 1))
	orders, err := a.orderRepo.ListSince(ctx, req.BusinessID, from, nil)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := a.productRepo.ListByBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	revenue, count := totals(orders)

	return &AnalyticsDetail{
		SalesTrend:        salesTrend(orders, from, days),
		TopProducts:       topProducts(orders, topProductsLimit),
		CategoryBreakdown: categoryBreakdown(orders, products),
		TotalRevenue:      revenue,
		TotalOrders:       count,
		AvgOrderValue:     avgOrderValue(revenue, count),
	}, nil
}

// GetInsights просит модель сформулировать до трёх коротких инсайтов по сводке.
// Если модель недоступна либо ответ не парсится, возвращается детерминированный fallback.
func (a *AnalyticsUseCase) GetInsights(ctx context.Context, businessID string) ([]Insight, error) {
	const op = "AnalyticsUseCase.GetInsights"

	summary, err := a.GetSummary(ctx, businessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	answer, err := a.aiService.GenerateText(ctx, buildInsightsPrompt(summary))
	if err != nil {
		a.logger.Warnf("Insights generation failed, using fallback: %v", e.Wrap(op, err))
		return fallbackInsights(summary), nil
	}

	insights, err := parseInsights(answer)
	if err != nil {
		a.logger.Warnf("Unparsable insights answer, using fallback: %v", e.Wrap(op, err))
		return fallbackInsights(summary), nil
	}

	return insights, nil
}

// parseInsights извлекает массив инсайтов из ответа модели, срезая markdown-ограждения.
func parseInsights(answer string) ([]Insight, error) {
	var insights []Insight
	if err := json.Unmarshal([]byte(extractJSONArray(answer)), &insights); err != nil {
		return nil, err
	}

	for i := range insights {
		switch insights[i].Type {
		case "success", "warning", "info":
		default:
			insights[i].Type = "info"
		}
	}
	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return insights, nil
}

// extractJSONArray находит в тексте первую сбалансированную JSON-последовательность [...].
func extractJSONArray(text string) string {
	text = stripFences(text)

	start := strings.IndexByte(text, '[')
	if start < 0 {
		return text
	}

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return text[start:]
}

// stripFences срезает markdown-ограждения ```json ... ``` вокруг ответа модели.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

// fallbackInsights строит инсайты из сводки без участия модели.
func fallbackInsights(summary *AnalyticsSummary) []Insight {
	insights := make([]Insight, 0, maxInsights)

	switch {
	case summary.RevenueChange > 0:
		insights = append(insights, Insight{
			Type:    "success",
			Title:   "Pendapatan naik",
			Message: "Pendapatan minggu ini lebih tinggi dari minggu lalu. Pertahankan momentum penjualan.",
		})
	case summary.RevenueChange < 0:
		insights = append(insights, Insight{
			Type:    "warning",
			Title:   "Pendapatan turun",
			Message: "Pendapatan minggu ini lebih rendah dari minggu lalu. Periksa stok dan promosi produk terlaris.",
		})
	default:
		insights = append(insights, Insight{
			Type:    "info",
			Title:   "Pendapatan stabil",
			Message: "Pendapatan minggu ini setara dengan minggu lalu.",
		})
	}

	if len(summary.TopProducts) > 0 {
		insights = append(insights, Insight{
			Type:    "info",
			Title:   "Produk terlaris",
			Message: "Produk terlaris minggu ini: " + summary.TopProducts[0].Name + ". Pastikan stoknya mencukupi.",
		})
	}

	return insights
}

// totals считает выручку и число заказов набора.
func totals(orders []domain.Order) (revenue int64, count int64) {
	for _, order := range orders {
		revenue += order.Total
	}
	return revenue, int64(len(orders))
}

func avgOrderValue(revenue, count int64) int64 {
	if count == 0 {
		return 0
	}
	return revenue / count
}

// percentChange считает изменение в процентах к предыдущему периоду.
// При нулевой базе рост обозначается как 100%, отсутствие движения — 0%.
func percentChange(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// topProducts агрегирует строки заказов по названию продукта и возвращает топ по выручке.
func topProducts(orders []domain.Order, limit int) []ProductSales {
	byName := make(map[string]*ProductSales)
	for _, order := range orders {
		for _, line := range order.Lines {
			agg, ok := byName[line.ProductName]
			if !ok {
				agg = &ProductSales{Name: line.ProductName}
				byName[line.ProductName] = agg
			}
			agg.Count += line.Quantity
			agg.Revenue += line.Subtotal
		}
	}

	sales := make([]ProductSales, 0, len(byName))
	for _, agg := range byName {
		sales = append(sales, *agg)
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Revenue != sales[j].Revenue {
			return sales[i].Revenue > sales[j].Revenue
		}
		return sales[i].Name < sales[j].Name
	})

	if len(sales) > limit {
		sales = sales[:limit]
	}
	return sales
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// salesTrend раскладывает выручку по дням периода, включая дни без продаж.
func salesTrend(orders []domain.Order, from time.Time, days int) []DailyRevenue {
	byDay := make(map[string]int64, days)
	for _, order := range orders {
		byDay[order.Date.UTC().Format("2006-01-02")] += order.Total
	}

	trend := make([]DailyRevenue, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, DailyRevenue{Date: day, Revenue: byDay[day]})
	}

	return trend
}

// categoryBreakdown раскладывает выручку по категориям каталога.
// Строки без каталожной привязки попадают в общую категорию.
func categoryBreakdown(orders []domain.Order, products []domain.Product) []CategoryRevenue {
	categoryByProduct := make(map[string]string, len(products))
	for _, product := range products {
		categoryByProduct[product.ID] = product.Category
	}

	byCategory := make(map[string]int64)
	for _, order := range orders {
		for _, line := range order.Lines {
			category := uncategorizedLabel
			if line.ProductID != nil {
				if c, ok := categoryByProduct[*line.ProductID]; ok && c != "" {
					category = c
				}
			}
			byCategory[category] += line.Subtotal
		}
	}

	breakdown := make([]CategoryRevenue, 0, len(byCategory))
	for name, value := range byCategory {
		breakdown = append(breakdown, CategoryRevenue{Name: name, Value: value})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Value != breakdown[j].Value {
			return breakdown[i].Value > breakdown[j].Value
		}
		return breakdown[i].Name < breakdown[j].Name
	})

	return breakdown
}
