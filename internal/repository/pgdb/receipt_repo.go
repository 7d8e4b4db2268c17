package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/repository/pgdb/converter"
	"github.com/veltrixai/go-backend/pkg/e"
)

// ReceiptRepo реализует репозиторий отсканированных чеков поверх PostgreSQL.
type ReceiptRepo struct {
	pool *pgxpool.Pool
	conv converter.ReceiptConverter
}

func NewReceiptRepo(pool *pgxpool.Pool, conv converter.ReceiptConverter) *ReceiptRepo {
	return &ReceiptRepo{
		pool: pool,
		conv: conv,
	}
}

const receiptColumns = "id, business_id, store_name, date, total, items, COALESCE(image_key, ''), created_at"

func (r *ReceiptRepo) Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	model := r.conv.ToModel(receipt)

	query := `
		INSERT INTO scanned_receipts (business_id, store_name, date, total, items, image_key)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at;
	`

	if err := r.pool.QueryRow(ctx, query,
		model.BusinessID, model.StoreName, model.Date, model.Total, model.Items, model.ImageKey,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(model), nil
}

func (r *ReceiptRepo) ListRecent(ctx context.Context, businessID string, limit int) ([]domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM scanned_receipts WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2;`

	rows, err := r.pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ReceiptModel, 0)
	for rows.Next() {
		var model converter.ReceiptModel
		if err := rows.Scan(
			&model.ID, &model.BusinessID, &model.StoreName, &model.Date,
			&model.Total, &model.Items, &model.ImageKey, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToArrEntity(models), nil
}
