package domain

import "time"

// Product описывает продукт каталога
type Product struct {
	ID         string // uuid
	BusinessID string
	Name       string
	Category   string
	Price      int64 // Цена хранится в целых рупиях
	Stock      int64 // Остаток, неотрицательный
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func NewProduct(businessID string, name string, category string, price int64, stock int64) *Product {
	return &Product{
		BusinessID: businessID,
		Name:       name,
		Category:   category,
		Price:      price,
		Stock:      stock,
	}
}
