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

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = "id, business_id, name, category, price, stock, created_at, updated_at"

// Create создаёт продукт в рамках текущей транзакции.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (business_id, name, category, price, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query,
		product.BusinessID, product.Name, product.Category, product.Price, product.Stock,
	).Scan(
		&model.ID, &model.BusinessID, &model.Name, &model.Category,
		&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update обновляет продукт в рамках текущей транзакции.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET name = $1, category = $2, price = $3, stock = $4, updated_at = NOW()
		WHERE id = $5 AND business_id = $6
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query,
		product.Name, product.Category, product.Price, product.Stock,
		product.ID, product.BusinessID,
	).Scan(
		&model.ID, &model.BusinessID, &model.Name, &model.Category,
		&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет продукт в рамках текущей транзакции.
func (p *ProductRepo) Delete(ctx context.Context, businessID string, productID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx,
		`DELETE FROM products WHERE id = $1 AND business_id = $2;`,
		productID, businessID,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// GetByID возвращает продукт бизнеса по идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, businessID string, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND business_id = $2;`

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query, productID, businessID).Scan(
		&model.ID, &model.BusinessID, &model.Name, &model.Category,
		&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByIDs возвращает продукты бизнеса по набору идентификаторов.
// Порядок входного набора сохраняется; отсутствующие ID пропускаются.
func (p *ProductRepo) GetByIDs(ctx context.Context, businessID string, productIDs []string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 AND id = ANY($2);`

	rows, err := p.pool.Query(ctx, query, businessID, productIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	byID := make(map[string]converter.ProductModel, len(productIDs))
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.BusinessID, &model.Name, &model.Category,
			&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		byID[model.ID] = model
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models := make([]converter.ProductModel, 0, len(byID))
	for _, id := range productIDs {
		if model, ok := byID[id]; ok {
			models = append(models, model)
		}
	}

	return p.conv.ToArrEntity(models), nil
}

// ListByBusiness возвращает все продукты бизнеса, новые первыми.
func (p *ProductRepo) ListByBusiness(ctx context.Context, businessID string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 ORDER BY created_at DESC;`

	rows, err := p.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.BusinessID, &model.Name, &model.Category,
			&model.Price, &model.Stock, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// DecrementStock атомарно списывает остаток в рамках текущей транзакции.
// Условие stock >= quantity отличает нехватку остатка от отсутствия продукта:
// ноль затронутых строк при существующем продукте означает нехватку.
func (p *ProductRepo) DecrementStock(ctx context.Context, businessID string, productID string, quantity int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND business_id = $3 AND stock >= $1;
	`

	result, err := tx.Exec(ctx, query, quantity, productID, businessID)
	if err != nil {
		// CHECK (stock >= 0) — вторая линия защиты на уровне схемы
		if postgresCheckViolation(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1 AND business_id = $2);`,
			productID, businessID,
		).Scan(&exists); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		if !exists {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
	}

	return nil
}
