package domain

import "time"

// Order описывает завершённую продажу. После создания заказ неизменяем.
type Order struct {
	ID             string // uuid
	BusinessID     string
	Date           time.Time
	CustomerName   string
	PaymentMethod  string
	Total          int64 // Инвариант: Total == сумма Subtotal всех строк
	IdempotencyKey string
	Lines          []OrderLine
	CreatedAt      time.Time
}

// OrderLine описывает одну строку заказа. Название и цена продукта
// снимаются снапшотом и не зависят от дальнейших изменений каталога.
type OrderLine struct {
	ID          string // uuid
	OrderID     string
	ProductID   *string // nil для произвольной (ad-hoc) строки
	ProductName string
	Quantity    int64
	Price       int64 // цена за единицу на момент продажи
	Subtotal    int64 // Quantity * Price
}

func NewOrder(businessID string, customerName string, paymentMethod string, idempotencyKey string) *Order {
	return &Order{
		BusinessID:     businessID,
		CustomerName:   customerName,
		PaymentMethod:  paymentMethod,
		IdempotencyKey: idempotencyKey,
	}
}

func NewOrderLine(productID *string, productName string, quantity int64, price int64) *OrderLine {
	return &OrderLine{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		Subtotal:    quantity * price,
	}
}
