package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID         string     `db:"id"`
	BusinessID string     `db:"business_id"`
	Name       string     `db:"name"`
	Category   string     `db:"category"`
	Price      int64      `db:"price"`
	Stock      int64      `db:"stock"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"`
}

// OrderModel представляет запись таблицы transactions в PostgreSQL.
type OrderModel struct {
	ID             string    `db:"id"`
	BusinessID     string    `db:"business_id"`
	Date           time.Time `db:"date"`
	CustomerName   string    `db:"customer_name"`
	PaymentMethod  string    `db:"payment_method"`
	Total          int64     `db:"total"`
	IdempotencyKey string    `db:"idempotency_key"`
	Lines          []OrderLineModel
	CreatedAt      time.Time `db:"created_at"`
}

// OrderLineModel представляет запись таблицы transaction_items в PostgreSQL.
type OrderLineModel struct {
	ID          string  `db:"id"`
	OrderID     string  `db:"transaction_id"`
	ProductID   *string `db:"product_id"`
	ProductName string  `db:"product_name"`
	Quantity    int64   `db:"quantity"`
	Price       int64   `db:"price"`
	Subtotal    int64   `db:"subtotal"`
}

// ReceiptModel представляет запись таблицы scanned_receipts в PostgreSQL.
// Позиции чека хранятся одним jsonb-полем.
type ReceiptModel struct {
	ID         string    `db:"id"`
	BusinessID string    `db:"business_id"`
	StoreName  string    `db:"store_name"`
	Date       time.Time `db:"date"`
	Total      int64     `db:"total"`
	Items      []byte    `db:"items"`
	ImageKey   string    `db:"image_key"`
	CreatedAt  time.Time `db:"created_at"`
}

// ChatSessionModel представляет запись таблицы chat_sessions в PostgreSQL.
type ChatSessionModel struct {
	ID           string `db:"id"`
	BusinessID   string `db:"business_id"`
	Title        string `db:"title"`
	MessageCount int64  `db:"message_count"`
	Messages     []ChatMessageModel
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// ChatMessageModel представляет запись таблицы chat_messages в PostgreSQL.
type ChatMessageModel struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	BusinessID string    `db:"business_id"`
	Role       string    `db:"role"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

// BusinessModel представляет запись таблицы businesses в PostgreSQL.
type BusinessModel struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Address   string     `db:"address"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           string    `db:"id"`
	BusinessID   string    `db:"business_id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	BusinessID  string     `db:"business_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
