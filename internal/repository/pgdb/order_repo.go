package pgdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/internal/repository/pgdb/converter"
	"github.com/veltrixai/go-backend/internal/usecase"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Заказы хранятся в таблицах transactions и transaction_items.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = "id, business_id, date, customer_name, payment_method, total, COALESCE(idempotency_key, ''), created_at"

// Create вставляет заказ вместе со строками в рамках текущей транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)

	query := `
		INSERT INTO transactions (business_id, date, customer_name, payment_method, total, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.BusinessID, model.Date, model.CustomerName,
		model.PaymentMethod, model.Total, model.IdempotencyKey,
	).Scan(&model.ID, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, fmt.Errorf("%s: idempotency key %s: %w",
				whereami.WhereAmI(), order.IdempotencyKey, e.ErrOrderExists)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO transaction_items (transaction_id, product_id, product_name, quantity, price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`

	for i := range model.Lines {
		line := &model.Lines[i]
		line.OrderID = model.ID
		if err := tx.QueryRow(ctx, lineQuery,
			model.ID, line.ProductID, line.ProductName,
			line.Quantity, line.Price, line.Subtotal,
		).Scan(&line.ID); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return o.conv.ToEntity(model), nil
}

// GetByIdempotencyKey возвращает ранее проведённый заказ по ключу идемпотентности.
// Отсутствие заказа не считается ошибкой: возвращается nil, nil.
func (o *OrderRepo) GetByIdempotencyKey(ctx context.Context, businessID string, key string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM transactions WHERE business_id = $1 AND idempotency_key = $2;`

	var model converter.OrderModel
	if err := o.pool.QueryRow(ctx, query, businessID, key).Scan(
		&model.ID, &model.BusinessID, &model.Date, &model.CustomerName,
		&model.PaymentMethod, &model.Total, &model.IdempotencyKey, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err := o.attachLines(ctx, []converter.OrderModel{model})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&models[0]), nil
}

// List возвращает страницу заказов бизнеса с поиском и сортировкой.
// Поиск сопоставляет имя покупателя, названия позиций и точную сумму.
func (o *OrderRepo) List(ctx context.Context, req *usecase.ListOrdersReq) ([]domain.Order, int64, error) {
	where := `
		business_id = $1 AND (
			$2 = '' OR
			customer_name ILIKE '%' || $2 || '%' OR
			total::text = $2 OR
			EXISTS (
				SELECT 1 FROM transaction_items ti
				WHERE ti.transaction_id = transactions.id
				  AND ti.product_name ILIKE '%' || $2 || '%'
			)
		)
	`

	var total int64
	if err := o.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM transactions WHERE `+where, req.BusinessID, req.Search,
	).Scan(&total); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	// SortBy и SortOrder приходят из usecase нормализованными,
	// строить ORDER BY интерполяцией здесь безопасно.
	query := fmt.Sprintf(
		`SELECT `+orderColumns+` FROM transactions WHERE `+where+` ORDER BY %s %s, id LIMIT $3 OFFSET $4;`,
		req.SortBy, req.SortOrder,
	)

	rows, err := o.pool.Query(ctx, query, req.BusinessID, req.Search, req.Limit, (req.Page-1)*req.Limit)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanOrders(rows)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err = o.attachLines(ctx, models)
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), total, nil
}

// ListSince возвращает заказы со строками за период [from, to); nil to означает «до сих пор».
func (o *OrderRepo) ListSince(ctx context.Context, businessID string, from time.Time, to *time.Time) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM transactions
		WHERE business_id = $1 AND date >= $2 AND ($3::timestamptz IS NULL OR date < $3)
		ORDER BY date;
	`

	rows, err := o.pool.Query(ctx, query, businessID, from, to)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanOrders(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err = o.attachLines(ctx, models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

// Recent возвращает последние заказы бизнеса со строками, новые первыми.
func (o *OrderRepo) Recent(ctx context.Context, businessID string, limit int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM transactions WHERE business_id = $1 ORDER BY date DESC, id LIMIT $2;`

	rows, err := o.pool.Query(ctx, query, businessID, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := scanOrders(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	models, err = o.attachLines(ctx, models)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

// attachLines подгружает строки заказов одним запросом и раскладывает их по заказам.
func (o *OrderRepo) attachLines(ctx context.Context, models []converter.OrderModel) ([]converter.OrderModel, error) {
	if len(models) == 0 {
		return models, nil
	}

	ids := make([]string, len(models))
	index := make(map[string]int, len(models))
	for i, model := range models {
		ids[i] = model.ID
		index[model.ID] = i
	}

	query := `
		SELECT id, transaction_id, product_id, product_name, quantity, price, subtotal
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line converter.OrderLineModel
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.ProductID,
			&line.ProductName, &line.Quantity, &line.Price, &line.Subtotal,
		); err != nil {
			return nil, err
		}
		i := index[line.OrderID]
		models[i].Lines = append(models[i].Lines, line)
	}

	return models, rows.Err()
}

func scanOrders(rows pgx.Rows) ([]converter.OrderModel, error) {
	models := make([]converter.OrderModel, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.BusinessID, &model.Date, &model.CustomerName,
			&model.PaymentMethod, &model.Total, &model.IdempotencyKey, &model.CreatedAt,
		); err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	return models, rows.Err()
}
