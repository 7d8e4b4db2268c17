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
)

// ChatRepo реализует репозиторий сессий и сообщений чата поверх PostgreSQL.
type ChatRepo struct {
	pool *pgxpool.Pool
	conv converter.ChatConverter
}

func NewChatRepo(pool *pgxpool.Pool, conv converter.ChatConverter) *ChatRepo {
	return &ChatRepo{
		pool: pool,
		conv: conv,
	}
}

func (c *ChatRepo) CreateSession(ctx context.Context, session *domain.ChatSession) (*domain.ChatSession, error) {
	query := `
		INSERT INTO chat_sessions (business_id, title)
		VALUES ($1, $2)
		RETURNING id, business_id, title, created_at, updated_at;
	`

	var model converter.ChatSessionModel
	if err := c.pool.QueryRow(ctx, query, session.BusinessID, session.Title).Scan(
		&model.ID, &model.BusinessID, &model.Title, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.SessionToEntity(&model), nil
}

// ListSessions возвращает сессии бизнеса с числом сообщений, свежие первыми.
func (c *ChatRepo) ListSessions(ctx context.Context, businessID string) ([]domain.ChatSession, error) {
	query := `
		SELECT s.id, s.business_id, s.title, s.created_at, s.updated_at,
		       COUNT(m.id) AS message_count
		FROM chat_sessions s
		LEFT JOIN chat_messages m ON m.session_id = s.id
		WHERE s.business_id = $1
		GROUP BY s.id
		ORDER BY COALESCE(s.updated_at, s.created_at) DESC;
	`

	rows, err := c.pool.Query(ctx, query, businessID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ChatSessionModel, 0)
	for rows.Next() {
		var model converter.ChatSessionModel
		if err := rows.Scan(
			&model.ID, &model.BusinessID, &model.Title,
			&model.CreatedAt, &model.UpdatedAt, &model.MessageCount,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.SessionsToEntity(models), nil
}

// GetSession возвращает сессию вместе с сообщениями в хронологическом порядке.
func (c *ChatRepo) GetSession(ctx context.Context, businessID string, sessionID string) (*domain.ChatSession, error) {
	query := `SELECT id, business_id, title, created_at, updated_at FROM chat_sessions WHERE id = $1 AND business_id = $2;`

	var model converter.ChatSessionModel
	if err := c.pool.QueryRow(ctx, query, sessionID, businessID).Scan(
		&model.ID, &model.BusinessID, &model.Title, &model.CreatedAt, &model.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	messagesQuery := `
		SELECT id, session_id, business_id, role, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at, id;
	`

	rows, err := c.pool.Query(ctx, messagesQuery, sessionID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var message converter.ChatMessageModel
		if err := rows.Scan(
			&message.ID, &message.SessionID, &message.BusinessID,
			&message.Role, &message.Content, &message.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		model.Messages = append(model.Messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	model.MessageCount = int64(len(model.Messages))

	return c.conv.SessionToEntity(&model), nil
}

// DeleteSession удаляет сессию; сообщения уходят каскадом.
func (c *ChatRepo) DeleteSession(ctx context.Context, businessID string, sessionID string) error {
	result, err := c.pool.Exec(ctx,
		`DELETE FROM chat_sessions WHERE id = $1 AND business_id = $2;`,
		sessionID, businessID,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
	}

	return nil
}

// CreateMessage сохраняет сообщение и помечает сессию обновлённой.
func (c *ChatRepo) CreateMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	query := `
		INSERT INTO chat_messages (session_id, business_id, role, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, session_id, business_id, role, content, created_at;
	`

	var model converter.ChatMessageModel
	if err := c.pool.QueryRow(ctx, query,
		message.SessionID, message.BusinessID, message.Role, message.Content,
	).Scan(
		&model.ID, &model.SessionID, &model.BusinessID,
		&model.Role, &model.Content, &model.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if _, err := c.pool.Exec(ctx,
		`UPDATE chat_sessions SET updated_at = NOW() WHERE id = $1;`, message.SessionID,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.MessageToEntity(&model), nil
}

func (c *ChatRepo) CountMessages(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	if err := c.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM chat_messages WHERE session_id = $1;`, sessionID,
	).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func (c *ChatRepo) UpdateSessionTitle(ctx context.Context, sessionID string, title string) error {
	if _, err := c.pool.Exec(ctx,
		`UPDATE chat_sessions SET title = $1, updated_at = NOW() WHERE id = $2;`,
		title, sessionID,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
