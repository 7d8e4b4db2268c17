package pgdb

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/veltrixai/go-backend/pkg/e"
)

func TestPostgresDuplicate(t *testing.T) {
	dup := &pgconn.PgError{Code: pgUniqueViolation}

	assert.True(t, postgresDuplicate(dup))
	assert.True(t, postgresDuplicate(fmt.Errorf("insert: %w", dup)))
	assert.False(t, postgresDuplicate(&pgconn.PgError{Code: pgCheckViolation}))
	assert.False(t, postgresDuplicate(fmt.Errorf("plain error")))
}

func TestPostgresCheckViolation(t *testing.T) {
	check := &pgconn.PgError{Code: pgCheckViolation}

	assert.True(t, postgresCheckViolation(check))
	assert.True(t, postgresCheckViolation(fmt.Errorf("update: %w", check)))
	assert.False(t, postgresCheckViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}

// execErrTx подменяет транзакцию в контексте, возвращая заданную ошибку на Exec.
type execErrTx struct {
	pgx.Tx
	err error
}

func (t execErrTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, t.err
}

func TestDecrementStockMapsCheckViolation(t *testing.T) {
	repo := NewProductRepo(nil, nil)
	tx := pgx.Tx(execErrTx{err: &pgconn.PgError{Code: pgCheckViolation}})
	ctx := context.WithValue(context.Background(), "tx", tx)

	err := repo.DecrementStock(ctx, "biz-1", "prod-1", 2)

	assert.ErrorIs(t, err, e.ErrInsufficientStock)
}
