package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
)

type testLogger struct{}

func (testLogger) Debugf(format string, args ...any)            {}
func (testLogger) Infof(format string, args ...any)             {}
func (testLogger) Warnf(format string, args ...any)             {}
func (testLogger) Errorf(err error, format string, args ...any) {}

type stubOrderRepo struct {
	OrderRepository
	byKey map[string]*domain.Order
}

func (s *stubOrderRepo) GetByIdempotencyKey(_ context.Context, _ string, key string) (*domain.Order, error) {
	return s.byKey[key], nil
}

func TestValidateOrder(t *testing.T) {
	uc := &OrderUseCase{}

	tests := []struct {
		name    string
		req     *ProcessOrderReq
		wantErr error
	}{
		{
			name:    "no items",
			req:     &ProcessOrderReq{Items: nil},
			wantErr: e.ErrNoItems,
		},
		{
			name: "blank product name",
			req: &ProcessOrderReq{Items: []OrderLineReq{
				{ProductName: "   ", Quantity: 1, Price: 1000},
			}},
			wantErr: e.ErrItemNameRequired,
		},
		{
			name: "zero quantity",
			req: &ProcessOrderReq{Items: []OrderLineReq{
				{ProductName: "Kopi", Quantity: 0, Price: 1000},
			}},
			wantErr: e.ErrInvalidQuantity,
		},
		{
			name: "negative price",
			req: &ProcessOrderReq{Items: []OrderLineReq{
				{ProductName: "Kopi", Quantity: 1, Price: -1},
			}},
			wantErr: e.ErrInvalidPrice,
		},
		{
			name: "free item is allowed",
			req: &ProcessOrderReq{Items: []OrderLineReq{
				{ProductName: "Bonus", Quantity: 1, Price: 0},
			}},
		},
		{
			name: "valid order",
			req: &ProcessOrderReq{Items: []OrderLineReq{
				{ProductName: "Kopi", Quantity: 2, Price: 15000},
				{ProductName: "Teh", Quantity: 1, Price: 8000},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateOrder(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBuildOrder(t *testing.T) {
	uc := &OrderUseCase{}
	productID := "11111111-1111-1111-1111-111111111111"

	order := uc.buildOrder(&ProcessOrderReq{
		BusinessID:    "biz-1",
		CustomerName:  "  Budi  ",
		PaymentMethod: "cash",
		Items: []OrderLineReq{
			{ProductID: &productID, ProductName: "Kopi", Quantity: 2, Price: 15000},
			{ProductName: "Gorengan", Quantity: 3, Price: 2000},
		},
	})

	assert.Equal(t, "Budi", order.CustomerName)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, int64(30000), order.Lines[0].Subtotal)
	assert.Equal(t, int64(6000), order.Lines[1].Subtotal)
	assert.Equal(t, int64(36000), order.Total)
	assert.Nil(t, order.Lines[1].ProductID)
	assert.WithinDuration(t, time.Now().UTC(), order.Date, time.Minute)
}

func TestBuildOrderDefaultCustomer(t *testing.T) {
	uc := &OrderUseCase{}

	order := uc.buildOrder(&ProcessOrderReq{
		Items: []OrderLineReq{{ProductName: "Kopi", Quantity: 1, Price: 1000}},
	})

	assert.Equal(t, defaultCustomerName, order.CustomerName)
}

func TestProcessOrderIdempotentReplay(t *testing.T) {
	existing := &domain.Order{ID: "order-1", Total: 36000}
	uc := NewOrderUC(
		&stubOrderRepo{byKey: map[string]*domain.Order{"key-1": existing}},
		nil, nil, nil, nil,
		testLogger{},
	)

	got, err := uc.ProcessOrder(context.Background(), &ProcessOrderReq{
		BusinessID:     "biz-1",
		IdempotencyKey: "key-1",
		Items:          []OrderLineReq{{ProductName: "Kopi", Quantity: 2, Price: 18000}},
	})

	require.NoError(t, err)
	assert.Same(t, existing, got)
}

func TestRecoverDuplicateReturnsCommittedOrder(t *testing.T) {
	existing := &domain.Order{ID: "order-1", BusinessID: "biz-1"}
	uc := NewOrderUC(
		&stubOrderRepo{byKey: map[string]*domain.Order{"key-1": existing}},
		nil, nil, nil, nil,
		testLogger{},
	)

	// Обе отправки прошли предварительную проверку, вставку выиграла первая:
	// проигравшая получает нарушение уникальности ключа
	insertErr := e.Wrap("OrderRepo.Create", e.ErrOrderExists)

	got, ok := uc.recoverDuplicate(context.Background(), &ProcessOrderReq{
		BusinessID:     "biz-1",
		IdempotencyKey: "key-1",
	}, insertErr)

	require.True(t, ok)
	assert.Same(t, existing, got)
}

func TestRecoverDuplicateIgnoresOtherErrors(t *testing.T) {
	uc := NewOrderUC(
		&stubOrderRepo{byKey: map[string]*domain.Order{"key-1": {ID: "order-1"}}},
		nil, nil, nil, nil,
		testLogger{},
	)

	_, ok := uc.recoverDuplicate(context.Background(), &ProcessOrderReq{
		BusinessID:     "biz-1",
		IdempotencyKey: "key-1",
	}, e.ErrInsufficientStock)
	assert.False(t, ok)

	// Без ключа идемпотентности повторной выдачи нет
	_, ok = uc.recoverDuplicate(context.Background(), &ProcessOrderReq{
		BusinessID: "biz-1",
	}, e.Wrap("OrderRepo.Create", e.ErrOrderExists))
	assert.False(t, ok)
}

func TestProcessOrderRejectsEmptyOrder(t *testing.T) {
	uc := NewOrderUC(nil, nil, nil, nil, nil, testLogger{})

	_, err := uc.ProcessOrder(context.Background(), &ProcessOrderReq{BusinessID: "biz-1"})

	assert.ErrorIs(t, err, e.ErrNoItems)
}

func TestNormalizeSort(t *testing.T) {
	tests := []struct {
		sortBy, sortOrder         string
		wantSortBy, wantSortOrder string
	}{
		{"date", "asc", "date", "asc"},
		{"total", "desc", "total", "desc"},
		{"", "", "date", "desc"},
		{"customer_name", "up", "date", "desc"},
		{"total; DROP TABLE transactions", "asc", "date", "asc"},
	}

	for _, tt := range tests {
		gotBy, gotOrder := normalizeSort(tt.sortBy, tt.sortOrder)
		assert.Equal(t, tt.wantSortBy, gotBy)
		assert.Equal(t, tt.wantSortOrder, gotOrder)
	}
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		total          int64
		page, limit    int
		wantTotalPages int
	}{
		{0, 1, 10, 0},
		{10, 1, 10, 1},
		{11, 2, 10, 2},
		{25, 1, 10, 3},
	}

	for _, tt := range tests {
		meta := NewPageMeta(tt.total, tt.page, tt.limit)
		assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
		assert.Equal(t, tt.total, meta.Total)
		assert.Equal(t, tt.page, meta.Page)
	}
}
