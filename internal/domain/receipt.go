package domain

import "time"

// Receipt описывает отсканированный чек расходов (результат vision-распознавания)
type Receipt struct {
	ID         string // uuid
	BusinessID string
	StoreName  string
	Date       time.Time
	Total      int64
	Items      []ReceiptItem
	ImageKey   string // ключ объекта в MinIO, пустой если изображение не сохранялось
	CreatedAt  time.Time
}

// ReceiptItem — одна позиция распознанного чека
type ReceiptItem struct {
	Name  string `json:"name"`
	Qty   int64  `json:"qty"`
	Price int64  `json:"price"`
}

func NewReceipt(businessID string, storeName string, date time.Time, total int64, items []ReceiptItem, imageKey string) *Receipt {
	return &Receipt{
		BusinessID: businessID,
		StoreName:  storeName,
		Date:       date,
		Total:      total,
		Items:      items,
		ImageKey:   imageKey,
	}
}
