package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// postgresDuplicate сообщает, нарушена ли уникальность.
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// postgresCheckViolation сообщает, нарушен ли CHECK-констрейнт.
func postgresCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
