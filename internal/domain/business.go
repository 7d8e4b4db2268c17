package domain

import "time"

// Business описывает бизнес (арендатора), которому принадлежат все остальные сущности
type Business struct {
	ID        string // uuid
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewBusiness(name string, address string) *Business {
	return &Business{
		Name:    name,
		Address: address,
	}
}
