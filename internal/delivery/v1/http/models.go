package http

import (
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/usecase"
)

// Ответы API. Доменные сущности наружу не отдаются:
// формат ответа не обязан меняться вместе с доменом.

type ProductResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Price     int64      `json:"price"`
	Stock     int64      `json:"stock"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type OrderLineResponse struct {
	ID          string  `json:"id"`
	ProductID   *string `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	Price       int64   `json:"price"`
	Subtotal    int64   `json:"subtotal"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Date          time.Time           `json:"date"`
	CustomerName  string              `json:"customerName"`
	PaymentMethod string              `json:"paymentMethod"`
	Total         int64               `json:"total"`
	Items         []OrderLineResponse `json:"items"`
}

type PageMetaResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type OrdersPageResponse struct {
	Orders []OrderResponse  `json:"orders"`
	Meta   PageMetaResponse `json:"meta"`
}

type ReceiptResponse struct {
	ID        string               `json:"id"`
	StoreName string               `json:"storeName"`
	Date      string               `json:"date"`
	Total     int64                `json:"total"`
	Items     []domain.ReceiptItem `json:"items"`
	ImageKey  string               `json:"imageKey,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatSessionResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	MessageCount int64                 `json:"messageCount"`
	Messages     []ChatMessageResponse `json:"messages,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    *time.Time            `json:"updatedAt,omitempty"`
}

type SendMessageResponse struct {
	SessionID string              `json:"sessionId"`
	Reply     ChatMessageResponse `json:"reply"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BusinessResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type AuthResponse struct {
	User     UserResponse     `json:"user"`
	Business BusinessResponse `json:"business"`
}

type ProductSalesResponse struct {
	Name    string `json:"name"`
	Count   int64  `json:"count"`
	Revenue int64  `json:"revenue"`
}

type AnalyticsSummaryResponse struct {
	Revenue       int64                  `json:"revenue"`
	RevenueChange float64                `json:"revenueChange"`
	Orders        int64                  `json:"orders"`
	OrdersChange  float64                `json:"ordersChange"`
	AvgOrderValue int64                  `json:"avgOrderValue"`
	AvgChange     float64                `json:"avgChange"`
	TopProducts   []ProductSalesResponse `json:"topProducts"`
}

type DailyRevenueResponse struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

type CategoryRevenueResponse struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type AnalyticsDetailResponse struct {
	SalesTrend        []DailyRevenueResponse    `json:"salesTrend"`
	TopProducts       []ProductSalesResponse    `json:"topProducts"`
	CategoryBreakdown []CategoryRevenueResponse `json:"categoryBreakdown"`
	TotalRevenue      int64                     `json:"totalRevenue"`
	TotalOrders       int64                     `json:"totalOrders"`
	AvgOrderValue     int64                     `json:"avgOrderValue"`
}

type DocumentResponse struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

func toProductResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}
	return result
}

func toOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, OrderLineResponse{
			ID:          line.ID,
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Subtotal:    line.Subtotal,
		})
	}

	return OrderResponse{
		ID:            order.ID,
		Date:          order.Date,
		CustomerName:  order.CustomerName,
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total,
		Items:         items,
	}
}

func toOrdersPageResponse(res *usecase.ListOrdersRes) OrdersPageResponse {
	orders := make([]OrderResponse, 0, len(res.Orders))
	for i := range res.Orders {
		orders = append(orders, toOrderResponse(&res.Orders[i]))
	}

	return OrdersPageResponse{
		Orders: orders,
		Meta: PageMetaResponse{
			Total:      res.Meta.Total,
			Page:       res.Meta.Page,
			Limit:      res.Meta.Limit,
			TotalPages: res.Meta.TotalPages,
		},
	}
}

func toReceiptResponse(receipt *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:        receipt.ID,
		StoreName: receipt.StoreName,
		Date:      receipt.Date.Format("2006-01-02"),
		Total:     receipt.Total,
		Items:     receipt.Items,
		ImageKey:  receipt.ImageKey,
		CreatedAt: receipt.CreatedAt,
	}
}

func toReceiptsResponse(receipts []domain.Receipt) []ReceiptResponse {
	result := make([]ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		result = append(result, toReceiptResponse(&receipts[i]))
	}
	return result
}

func toMessageResponse(message *domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:        message.ID,
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}

func toSessionResponse(session *domain.ChatSession) ChatSessionResponse {
	messages := make([]ChatMessageResponse, 0, len(session.Messages))
	for i := range session.Messages {
		messages = append(messages, toMessageResponse(&session.Messages[i]))
	}

	return ChatSessionResponse{
		ID:           session.ID,
		Title:        session.Title,
		MessageCount: session.MessageCount,
		Messages:     messages,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func toSessionsResponse(sessions []domain.ChatSession) []ChatSessionResponse {
	result := make([]ChatSessionResponse, 0, len(sessions))
	for i := range sessions {
		session := toSessionResponse(&sessions[i])
		session.Messages = nil
		result = append(result, session)
	}
	return result
}

func toBusinessResponse(business *domain.Business) BusinessResponse {
	return BusinessResponse{
		ID:      business.ID,
		Name:    business.Name,
		Address: business.Address,
	}
}

func toAuthResponse(res *usecase.AuthRes) AuthResponse {
	return AuthResponse{
		User: UserResponse{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
		},
		Business: toBusinessResponse(res.Business),
	}
}

func toSummaryResponse(summary *usecase.AnalyticsSummary) AnalyticsSummaryResponse {
	return AnalyticsSummaryResponse{
		Revenue:       summary.Revenue,
		RevenueChange: summary.RevenueChange,
		Orders:        summary.Orders,
		OrdersChange:  summary.OrdersChange,
		AvgOrderValue: summary.AvgOrderValue,
		AvgChange:     summary.AvgChange,
		TopProducts:   toProductSalesResponse(summary.TopProducts),
	}
}

func toDetailResponse(detail *usecase.AnalyticsDetail) AnalyticsDetailResponse {
	trend := make([]DailyRevenueResponse, 0, len(detail.SalesTrend))
	for _, day := range detail.SalesTrend {
		trend = append(trend, DailyRevenueResponse{Date: day.Date, Revenue: day.Revenue})
	}

	breakdown := make([]CategoryRevenueResponse, 0, len(detail.CategoryBreakdown))
	for _, category := range detail.CategoryBreakdown {
		breakdown = append(breakdown, CategoryRevenueResponse{Name: category.Name, Value: category.Value})
	}

	return AnalyticsDetailResponse{
		SalesTrend:        trend,
		TopProducts:       toProductSalesResponse(detail.TopProducts),
		CategoryBreakdown: breakdown,
		TotalRevenue:      detail.TotalRevenue,
		TotalOrders:       detail.TotalOrders,
		AvgOrderValue:     detail.AvgOrderValue,
	}
}

func toProductSalesResponse(sales []usecase.ProductSales) []ProductSalesResponse {
	result := make([]ProductSalesResponse, 0, len(sales))
	for _, item := range sales {
		result = append(result, ProductSalesResponse(item))
	}
	return result
}
