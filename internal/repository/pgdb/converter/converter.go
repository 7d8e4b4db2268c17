//go:generate goverter gen github.com/veltrixai/go-backend/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertPointerString
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
	ToArrEntity(models []OrderModel) []domain.Order
}

// ReceiptConverter преобразует сущности Receipt между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertItemsToJSON
// goverter:extend ConvertJSONToItems
type ReceiptConverter interface {
	ToModel(entity *domain.Receipt) *ReceiptModel
	ToEntity(model *ReceiptModel) *domain.Receipt
	ToArrEntity(models []ReceiptModel) []domain.Receipt
}

// ChatConverter преобразует сущности чата между domain и моделями PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ChatConverter interface {
	SessionToEntity(model *ChatSessionModel) *domain.ChatSession
	SessionsToEntity(models []ChatSessionModel) []domain.ChatSession
	MessageToEntity(model *ChatMessageModel) *domain.ChatMessage
}

// BusinessConverter преобразует сущности Business между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type BusinessConverter interface {
	ToModel(entity *domain.Business) *BusinessModel
	ToEntity(model *BusinessModel) *domain.Business
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertStringToOutBoxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertStringToOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerString(s *string) *string {
	return s
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertStringToOutBoxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertStringToOutboxEventType(t string) usecase.OutboxEventType {
	return usecase.OutboxEventType(t)
}

// ConvertItemsToJSON сериализует позиции чека в jsonb-поле.
func ConvertItemsToJSON(items []domain.ReceiptItem) []byte {
	data, err := json.Marshal(items)
	if err != nil {
		return []byte("[]")
	}
	return data
}

// ConvertJSONToItems разбирает jsonb-поле позиций чека.
func ConvertJSONToItems(data []byte) []domain.ReceiptItem {
	var items []domain.ReceiptItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}
