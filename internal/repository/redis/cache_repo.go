package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jimlawless/whereami"
	"github.com/veltrixai/go-backend/internal/cfg"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/repository/redis/converter"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/clients"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// CacheRepo кэширует список продуктов и сводную аналитику каждого бизнеса.
// Кэш необязателен для корректности: промах означает поход в бд.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.ProductCacheConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.ProductCacheConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetProducts возвращает закэшированный список продуктов бизнеса.
// Промах кэша не считается ошибкой: возвращается nil, nil.
func (r *CacheRepo) GetProducts(ctx context.Context, businessID string) ([]domain.Product, error) {
	data, err := r.client.Client.Get(ctx, r.productsKey(businessID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var models []converter.ProductRedisModel
	if err := json.Unmarshal(data, &models); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.drop(ctx, r.productsKey(businessID))
		return nil, nil
	}

	return r.conv.ToArrEntity(models), nil
}

// SetProducts кэширует список продуктов бизнеса с TTL из конфигурации.
func (r *CacheRepo) SetProducts(ctx context.Context, businessID string, products []domain.Product) error {
	data, err := json.Marshal(r.conv.ToArrRedisModel(products))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.productsKey(businessID), data, r.cfg.ProductTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// GetAnalytics возвращает закэшированную сводку. Промах не считается ошибкой.
func (r *CacheRepo) GetAnalytics(ctx context.Context, businessID string) (*usecase.AnalyticsSummary, error) {
	data, err := r.client.Client.Get(ctx, r.analyticsKey(businessID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var summary usecase.AnalyticsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.drop(ctx, r.analyticsKey(businessID))
		return nil, nil
	}

	return &summary, nil
}

// SetAnalytics кэширует сводку с коротким TTL из конфигурации.
func (r *CacheRepo) SetAnalytics(ctx context.Context, businessID string, summary *usecase.AnalyticsSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.analyticsKey(businessID), data, r.cfg.AnalyticsTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Invalidate сбрасывает весь кэш бизнеса после записи в каталог либо проведения заказа.
func (r *CacheRepo) Invalidate(ctx context.Context, businessID string) error {
	if err := r.client.Client.Del(ctx, r.productsKey(businessID), r.analyticsKey(businessID)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// drop удаляет битый ключ, логируя неудачу.
func (r *CacheRepo) drop(ctx context.Context, key string) {
	if err := r.client.Client.Del(ctx, key).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func (r *CacheRepo) productsKey(businessID string) string {
	return fmt.Sprintf("products:%s", businessID)
}

func (r *CacheRepo) analyticsKey(businessID string) string {
	return fmt.Sprintf("analytics:%s", businessID)
}
