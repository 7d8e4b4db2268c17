package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

// Подпись покупателя по умолчанию для продаж без имени
const defaultCustomerName = "Umum"

// OrderUseCase реализует проведение заказов: вставка заказа со строками,
// списание остатков и событие о продаже — всё в одной транзакции.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// ProcessOrder проводит заказ атомарно: вставка заказа и строк, списание остатков
// каталожных позиций и outbox-событие фиксируются одной транзакцией, либо не фиксируется ничего.
// Повторная отправка с тем же ключом идемпотентности возвращает ранее проведённый заказ.
func (o *OrderUseCase) ProcessOrder(ctx context.Context, req *ProcessOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.ProcessOrder"

	// Валидация данных до какой-либо записи
	var err error
	if err = o.validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Дедупликация по ключу идемпотентности
	if req.IdempotencyKey != "" {
		existing, err := o.orderRepo.GetByIdempotencyKey(ctx, req.BusinessID, req.IdempotencyKey)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if existing != nil {
			o.logger.Infof("duplicate order submission, returning committed order %s", existing.ID)
			return existing, nil
		}
	}

	order := o.buildOrder(req)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции: ни заказ, ни строки,
	// ни списания остатков не сохраняются частично
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Вставка заказа вместе со строками
	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		if existing, ok := o.recoverDuplicate(ctx, req, err); ok {
			return existing, nil
		}
		return nil, e.Wrap(op, err)
	}

	// Списание остатков по каталожным строкам
	for _, line := range created.Lines {
		if line.ProductID == nil {
			continue
		}
		if err = o.productRepo.DecrementStock(ctx, req.BusinessID, *line.ProductID, line.Quantity); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Событие о продаже через транзакционный outbox
	if err = o.createSaleEvent(ctx, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Инвалидация кэша продуктов и аналитики
	if err := o.cacheRepo.Invalidate(ctx, req.BusinessID); err != nil {
		o.logger.Warnf("Failed to invalidate cache: %v", e.Wrap(op, err))
	}

	return created, nil
}

// ListOrders возвращает страницу заказов с поиском и сортировкой.
func (o *OrderUseCase) ListOrders(ctx context.Context, req *ListOrdersReq) (*ListOrdersRes, error) {
	const (
		op           = "OrderUseCase.ListOrders"
		defaultLimit = 10
		maxLimit     = 100
	)

	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = defaultLimit
	}
	if req.Limit > maxLimit {
		req.Limit = maxLimit
	}
	req.SortBy, req.SortOrder = normalizeSort(req.SortBy, req.SortOrder)

	orders, total, err := o.orderRepo.List(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewListOrdersRes(orders, NewPageMeta(total, req.Page, req.Limit)), nil
}

// buildOrder собирает доменный заказ: подытоги строк и общая сумма вычисляются здесь
// и больше нигде не пересчитываются.
func (o *OrderUseCase) buildOrder(req *ProcessOrderReq) *domain.Order {
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = defaultCustomerName
	}

	order := domain.NewOrder(req.BusinessID, customer, req.PaymentMethod, req.IdempotencyKey)
	order.Date = time.Now().UTC()

	var total int64
	for _, item := range req.Items {
		line := domain.NewOrderLine(item.ProductID, item.ProductName, item.Quantity, item.Price)
		total += line.Subtotal
		order.Lines = append(order.Lines, *line)
	}
	order.Total = total

	return order
}

// recoverDuplicate обрабатывает гонку двух отправок с одним ключом идемпотентности:
// обе прошли предварительную проверку, но вставку выиграла одна. Проигравшая
// получает нарушение уникальности и возвращает заказ, зафиксированный победителем.
func (o *OrderUseCase) recoverDuplicate(ctx context.Context, req *ProcessOrderReq, insertErr error) (*domain.Order, bool) {
	if req.IdempotencyKey == "" || !errors.Is(insertErr, e.ErrOrderExists) {
		return nil, false
	}

	existing, err := o.orderRepo.GetByIdempotencyKey(ctx, req.BusinessID, req.IdempotencyKey)
	if err != nil || existing == nil {
		return nil, false
	}

	o.logger.Infof("concurrent duplicate submission, returning committed order %s", existing.ID)
	return existing, true
}

// createSaleEvent кладёт событие о продаже в outbox в рамках текущей транзакции.
func (o *OrderUseCase) createSaleEvent(ctx context.Context, order *domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), EventSaleCompleted, order.BusinessID, payload))
	return err
}

// validateOrder проверяет корректность входных данных запроса на проведение заказа.
func (o *OrderUseCase) validateOrder(req *ProcessOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrNoItems
	}

	for _, item := range req.Items {
		if strings.TrimSpace(item.ProductName) == "" {
			return e.ErrItemNameRequired
		}
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
		if item.Price < 0 {
			return e.ErrInvalidPrice
		}
	}

	return nil
}

// normalizeSort сводит параметры сортировки к разрешённому набору.
func normalizeSort(sortBy, sortOrder string) (string, string) {
	switch sortBy {
	case "date", "total":
	default:
		sortBy = "date"
	}

	switch sortOrder {
	case "asc", "desc":
	default:
		sortOrder = "desc"
	}

	return sortBy, sortOrder
}
