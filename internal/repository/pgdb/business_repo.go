package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/repository/pgdb/converter"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/tr"
)

// BusinessRepo реализует репозиторий бизнесов поверх PostgreSQL.
type BusinessRepo struct {
	pool *pgxpool.Pool
	conv converter.BusinessConverter
}

func NewBusinessRepo(pool *pgxpool.Pool, conv converter.BusinessConverter) *BusinessRepo {
	return &BusinessRepo{
		pool: pool,
		conv: conv,
	}
}

// Create создаёт бизнес в рамках текущей транзакции.
func (b *BusinessRepo) Create(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO businesses (name, address)
		VALUES ($1, $2)
		RETURNING id, name, address, created_at, updated_at;
	`

	var model converter.BusinessModel
	if err := tx.QueryRow(ctx, query, business.Name, business.Address).Scan(
		&model.ID, &model.Name, &model.Address, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

// Update сохраняет реквизиты бизнеса.
func (b *BusinessRepo) Update(ctx context.Context, business *domain.Business) (*domain.Business, error) {
	query := `
		UPDATE businesses
		SET name = $1, address = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, address, created_at, updated_at;
	`

	var model converter.BusinessModel
	if err := b.pool.QueryRow(ctx, query, business.Name, business.Address, business.ID).Scan(
		&model.ID, &model.Name, &model.Address, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrBusinessNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BusinessRepo) GetByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `SELECT id, name, address, created_at, updated_at FROM businesses WHERE id = $1;`

	var model converter.BusinessModel
	if err := b.pool.QueryRow(ctx, query, businessID).Scan(
		&model.ID, &model.Name, &model.Address, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrBusinessNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}
