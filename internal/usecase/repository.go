package usecase

import (
	"context"
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, businessID string, productID string) error
	GetByID(ctx context.Context, businessID string, productID string) (*domain.Product, error)
	GetByIDs(ctx context.Context, businessID string, productIDs []string) ([]domain.Product, error)
	ListByBusiness(ctx context.Context, businessID string) ([]domain.Product, error)
	// DecrementStock атомарно уменьшает остаток, отклоняя уход в минус.
	DecrementStock(ctx context.Context, businessID string, productID string, quantity int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByIdempotencyKey(ctx context.Context, businessID string, key string) (*domain.Order, error)
	List(ctx context.Context, req *ListOrdersReq) ([]domain.Order, int64, error)
	// ListSince возвращает заказы со строками за период [from, to); to == nil означает «до сих пор».
	ListSince(ctx context.Context, businessID string, from time.Time, to *time.Time) ([]domain.Order, error)
	Recent(ctx context.Context, businessID string, limit int) ([]domain.Order, error)
}

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error)
	ListRecent(ctx context.Context, businessID string, limit int) ([]domain.Receipt, error)
}

type ChatRepository interface {
	CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error)
	ListSessions(ctx context.Context, businessID string) ([]domain.ChatSession, error)
	GetSession(ctx context.Context, businessID string, sessionID string) (*domain.ChatSession, error)
	DeleteSession(ctx context.Context, businessID string, sessionID string) error
	CreateMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)
	CountMessages(ctx context.Context, sessionID string) (int64, error)
	UpdateSessionTitle(ctx context.Context, sessionID string, title string) error
}

type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, businessID string) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) (*domain.Business, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

type EmbeddingRepository interface {
	Upsert(ctx context.Context, vectors []domain.Embedding) error
	// Search возвращает ID продуктов, ближайших к запросу, в пределах одного бизнеса.
	Search(ctx context.Context, businessID string, vector []float32, limit uint64) ([]string, error)
	Delete(ctx context.Context, ids []string) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, businessID string) ([]domain.Product, error)
	SetProducts(ctx context.Context, businessID string, products []domain.Product) error
	GetAnalytics(ctx context.Context, businessID string) (*AnalyticsSummary, error)
	SetAnalytics(ctx context.Context, businessID string, summary *AnalyticsSummary) error
	Invalidate(ctx context.Context, businessID string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}
