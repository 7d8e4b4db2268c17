package usecase

import (
	"context"

	"github.com/veltrixai/go-backend/internal/domain"
)

type OrderUC interface {
	ProcessOrder(ctx context.Context, req *ProcessOrderReq) (*domain.Order, error)
	ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error)
}

type CatalogUC interface {
	ListProducts(ctx context.Context, businessID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, businessID string, productID string) error
	SearchProducts(ctx context.Context, req *SearchProductsReq) ([]domain.Product, error)
}

type AnalyticsUC interface {
	GetSummary(ctx context.Context, businessID string) (*AnalyticsSummary, error)
	GetDetail(ctx context.Context, req *AnalyticsDetailReq) (*AnalyticsDetail, error)
	GetInsights(ctx context.Context, businessID string) ([]Insight, error)
}

type ChatUC interface {
	SendMessage(ctx context.Context, req *SendMessageReq) (*SendMessageRes, error)
	ListSessions(ctx context.Context, businessID string) ([]domain.ChatSession, error)
	CreateSession(ctx context.Context, businessID string) (*domain.ChatSession, error)
	GetSession(ctx context.Context, businessID string, sessionID string) (*domain.ChatSession, error)
	DeleteSession(ctx context.Context, businessID string, sessionID string) error
}

type ScannerUC interface {
	ScanReceipt(ctx context.Context, req *ScanReceiptReq) (*ReceiptScan, error)
	SaveReceipt(ctx context.Context, req *SaveReceiptReq) (*domain.Receipt, error)
	History(ctx context.Context, businessID string) ([]domain.Receipt, error)
}

type DocumentUC interface {
	GenerateDocument(ctx context.Context, req *GenerateDocumentReq) (string, error)
}

type BusinessUC interface {
	GetBusiness(ctx context.Context, businessID string) (*domain.Business, error)
	UpdateBusiness(ctx context.Context, req *UpdateBusinessReq) (*domain.Business, error)
}

type AuthUC interface {
	Register(ctx context.Context, req *RegisterReq) (*AuthRes, error)
	Login(ctx context.Context, req *LoginReq) (*AuthRes, error)
	Me(ctx context.Context, userID string) (*AuthRes, error)
}
