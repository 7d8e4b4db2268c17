package usecase

import (
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
)

// ORDER USECASE

// OrderLineReq — одна строка запроса на проведение заказа.
type OrderLineReq struct {
	ProductID   *string // nil для произвольной позиции вне каталога
	ProductName string
	Quantity    int64
	Price       int64 // цена за единицу, целые рупии
}

// ProcessOrderReq — запрос на проведение заказа.
type ProcessOrderReq struct {
	BusinessID     string
	CustomerName   string
	PaymentMethod  string
	IdempotencyKey string // пустая строка — без дедупликации
	Items          []OrderLineReq
}

// ListOrdersReq — запрос списка заказов с пагинацией, поиском и сортировкой.
type ListOrdersReq struct {
	BusinessID string
	Page       int
	Limit      int
	Search     string
	SortBy     string // date | total
	SortOrder  string // asc | desc
}

// PageMeta — метаданные пагинации.
type PageMeta struct {
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type ListOrdersRes struct {
	Orders []domain.Order
	Meta   PageMeta
}

// CATALOG USECASE

// SaveProductReq — запрос на создание либо обновление продукта.
type SaveProductReq struct {
	ProductID  string // пусто при создании
	BusinessID string
	Name       string
	Category   string
	Price      int64
	Stock      int64
}

type SearchProductsReq struct {
	BusinessID string
	Query      string
	Limit      uint64
}

// ANALYTICS USECASE

// ProductSales — агрегат продаж одного продукта за период.
type ProductSales struct {
	Name    string
	Count   int64
	Revenue int64
}

// DailyRevenue — выручка за один день.
type DailyRevenue struct {
	Date    string // YYYY-MM-DD
	Revenue int64
}

// CategoryRevenue — выручка по категории каталога.
type CategoryRevenue struct {
	Name  string
	Value int64
}

// AnalyticsSummary — сводка за последние 7 дней против предыдущих 7.
type AnalyticsSummary struct {
	Revenue       int64
	RevenueChange float64 // процент к предыдущему периоду
	Orders        int64
	OrdersChange  float64
	AvgOrderValue int64
	AvgChange     float64
	TopProducts   []ProductSales
}

type AnalyticsDetailReq struct {
	BusinessID string
	PeriodDays int
}

// AnalyticsDetail — развёрнутая аналитика за произвольный период.
type AnalyticsDetail struct {
	SalesTrend        []DailyRevenue
	TopProducts       []ProductSales
	CategoryBreakdown []CategoryRevenue
	TotalRevenue      int64
	TotalOrders       int64
	AvgOrderValue     int64
}

// Insight — один AI-инсайт для дашборда.
type Insight struct {
	Type    string `json:"type"` // success | warning | info
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CHAT USECASE

type SendMessageReq struct {
	BusinessID string
	SessionID  string // пусто — создать новую сессию
	Content    string
}

type SendMessageRes struct {
	SessionID string
	Reply     *domain.ChatMessage
}

// ChatCompletionReq — запрос к генеративной модели с системным промптом и историей.
type ChatCompletionReq struct {
	System   string
	Messages []domain.ChatMessage
}

// SCANNER USECASE

type ScanReceiptReq struct {
	BusinessID string
	ImageData  []byte
	MimeType   string
}

// ReceiptScan — результат vision-распознавания чека.
type ReceiptScan struct {
	StoreName string               `json:"storeName"`
	Date      string               `json:"date"` // YYYY-MM-DD, пусто если не распознано
	Items     []domain.ReceiptItem `json:"items"`
	Total     int64                `json:"total"`
	Raw       string               `json:"-"` // сырой ответ модели для диагностики
}

type SaveReceiptReq struct {
	BusinessID string
	StoreName  string
	Date       *time.Time
	Total      int64
	Items      []domain.ReceiptItem
	Image      *ReceiptImage // nil — сохранить без изображения
}

// ReceiptImage — изображение чека, загруженное через multipart/form-data либо base64.
type ReceiptImage struct {
	Data     []byte
	MimeType string
	Size     int64
	Name     string
}

type UploadReceiptImageReq struct {
	BusinessID string
	Image      *ReceiptImage
}

// DOCUMENT USECASE

// Типы генерируемых документов
const (
	DocumentInvoice     = "invoice"
	DocumentSalesReport = "sales_report"
	DocumentSummary     = "summary"
)

type GenerateDocumentReq struct {
	BusinessID string
	Type       string
}

// BUSINESS USECASE

// UpdateBusinessReq — запрос на обновление реквизитов бизнеса.
// nil-поля не меняются.
type UpdateBusinessReq struct {
	BusinessID string
	Name       *string
	Address    *string
}

// AUTH USECASE

type RegisterReq struct {
	Name         string
	Email        string
	Password     string
	BusinessName string
}

type LoginReq struct {
	Email    string
	Password string
}

type AuthRes struct {
	User     *domain.User
	Business *domain.Business
	Token    string // пусто для Me
}

// INFRASTRUCTURE

// EmbedTextRes — вектор текста и версия модели, которой он посчитан.
type EmbedTextRes struct {
	Vector       []float32
	ModelVersion string
}

type WriteRawMessageReq struct {
	BusinessID string
	Payload    []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const EventSaleCompleted OutboxEventType = "sale.completed"

type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	BusinessID  string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewProcessOrderReq(businessID, customerName, paymentMethod, idempotencyKey string, items []OrderLineReq) *ProcessOrderReq {
	return &ProcessOrderReq{
		BusinessID:     businessID,
		CustomerName:   customerName,
		PaymentMethod:  paymentMethod,
		IdempotencyKey: idempotencyKey,
		Items:          items,
	}
}

func NewListOrdersRes(orders []domain.Order, meta PageMeta) *ListOrdersRes {
	return &ListOrdersRes{
		Orders: orders,
		Meta:   meta,
	}
}

func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, businessID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:    eventID,
		EventType:  eventType,
		BusinessID: businessID,
		Payload:    payload,
		Status:     Pending,
	}
}

func NewWriteRawMessageReq(businessID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		BusinessID: businessID,
		Payload:    payload,
	}
}

func NewUploadReceiptImageReq(businessID string, image *ReceiptImage) *UploadReceiptImageReq {
	return &UploadReceiptImageReq{
		BusinessID: businessID,
		Image:      image,
	}
}

func NewEmbedTextRes(vector []float32, modelVersion string) *EmbedTextRes {
	return &EmbedTextRes{
		Vector:       vector,
		ModelVersion: modelVersion,
	}
}
