//go:generate goverter gen github.com/veltrixai/go-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/veltrixai/go-backend/internal/domain"
)

// ProductCacheConverter преобразует продукты между domain и JSON-моделью кэша.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductCacheConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
	ToArrEntity(models []ProductRedisModel) []domain.Product
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
