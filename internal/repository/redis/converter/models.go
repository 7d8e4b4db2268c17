package converter

import "time"

// ProductRedisModel представляет продукт в JSON-кэше Redis.
type ProductRedisModel struct {
	ID         string     `json:"id"`
	BusinessID string     `json:"business_id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Price      int64      `json:"price"`
	Stock      int64      `json:"stock"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
