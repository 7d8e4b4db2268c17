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

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

const userColumns = "id, business_id, name, email, password_hash, created_at"

// Create создаёт пользователя в рамках текущей транзакции.
// Дубликат email даёт ErrEmailTaken.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO users (business_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns + `;
	`

	var model converter.UserModel
	if err := tx.QueryRow(ctx, query,
		user.BusinessID, user.Name, user.Email, user.PasswordHash,
	).Scan(
		&model.ID, &model.BusinessID, &model.Name,
		&model.Email, &model.PasswordHash, &model.CreatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailTaken)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	var model converter.UserModel
	if err := u.pool.QueryRow(ctx, query, email).Scan(
		&model.ID, &model.BusinessID, &model.Name,
		&model.Email, &model.PasswordHash, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	var model converter.UserModel
	if err := u.pool.QueryRow(ctx, query, userID).Scan(
		&model.ID, &model.BusinessID, &model.Name,
		&model.Email, &model.PasswordHash, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}
