package usecase

import (
	"context"
	"strings"

	"github.com/veltrixai/go-backend/internal/domain"
	"github.com/veltrixai/go-backend/pkg/e"
	"github.com/veltrixai/go-backend/pkg/logger"
)

const (
	defaultSessionTitle = "Percakapan baru"
	sessionTitleMaxLen  = 60
	chatHistoryLimit    = 20
	recentOrdersInChat  = 10
)

// ChatUseCase реализует диалог с AI-советником: сессии, история сообщений
// и системный промпт, собираемый из живых данных бизнеса.
type ChatUseCase struct {
	chatRepo    ChatRepository
	productRepo ProductRepository
	orderRepo   OrderRepository
	aiService   AIService
	logger      logger.Logger
}

func NewChatUC(
	chatRepo ChatRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	aiService AIService,
	logger logger.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		aiService:   aiService,
		logger:      logger,
	}
}

// SendMessage принимает сообщение пользователя, получает ответ модели
// и сохраняет оба в сессии. Пустой SessionID создаёт новую сессию,
// заголовком которой становится начало первого сообщения.
func (c *ChatUseCase) SendMessage(ctx context.Context, req *SendMessageReq) (*SendMessageRes, error) {
	const op = "ChatUseCase.SendMessage"

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, e.Wrap(op, e.ErrEmptyMessage)
	}

	session, err := c.resolveSession(ctx, req.BusinessID, req.SessionID, content)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = c.chatRepo.CreateMessage(ctx, domain.NewChatMessage(session.ID, req.BusinessID, domain.RoleUser, content)); err != nil {
		return nil, e.Wrap(op, err)
	}

	system, err := c.buildSystemPrompt(ctx, req.BusinessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	history := c.historyFor(session, content)

	answer, err := c.aiService.ChatCompletion(ctx, &ChatCompletionReq{
		System:   system,
		Messages: history,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	reply, err := c.chatRepo.CreateMessage(ctx, domain.NewChatMessage(session.ID, req.BusinessID, domain.RoleAssistant, answer))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сессия, созданная явно и ещё пустая, получает заголовок из первого сообщения
	if session.Title == defaultSessionTitle && len(session.Messages) == 0 {
		if err := c.chatRepo.UpdateSessionTitle(ctx, session.ID, sessionTitle(content)); err != nil {
			c.logger.Warnf("Failed to set session title: %v", e.Wrap(op, err))
		}
	}

	return &SendMessageRes{SessionID: session.ID, Reply: reply}, nil
}

// ListSessions возвращает сессии бизнеса с числом сообщений, новые первыми.
func (c *ChatUseCase) ListSessions(ctx context.Context, businessID string) ([]domain.ChatSession, error) {
	const op = "ChatUseCase.ListSessions"

	sessions, err := c.chatRepo.ListSessions(ctx, businessID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return sessions, nil
}

// CreateSession явно создаёт пустую сессию.
func (c *ChatUseCase) CreateSession(ctx context.Context, businessID string) (*domain.ChatSession, error) {
	const op = "ChatUseCase.CreateSession"

	session, err := c.chatRepo.CreateSession(ctx, domain.NewChatSession(businessID, defaultSessionTitle))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// GetSession возвращает сессию вместе с сообщениями в хронологическом порядке.
func (c *ChatUseCase) GetSession(ctx context.Context, businessID string, sessionID string) (*domain.ChatSession, error) {
	const op = "ChatUseCase.GetSession"

	session, err := c.chatRepo.GetSession(ctx, businessID, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return session, nil
}

// DeleteSession удаляет сессию вместе с её сообщениями.
func (c *ChatUseCase) DeleteSession(ctx context.Context, businessID string, sessionID string) error {
	const op = "ChatUseCase.DeleteSession"

	if err := c.chatRepo.DeleteSession(ctx, businessID, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// resolveSession находит существующую сессию либо создаёт новую.
// Новая сессия сразу получает заголовок из первого сообщения,
// отдельного обновления заголовка ей не требуется.
func (c *ChatUseCase) resolveSession(ctx context.Context, businessID, sessionID, content string) (*domain.ChatSession, error) {
	if sessionID != "" {
		return c.chatRepo.GetSession(ctx, businessID, sessionID)
	}

	return c.chatRepo.CreateSession(ctx, domain.NewChatSession(businessID, sessionTitle(content)))
}

// buildSystemPrompt собирает контекст советника из каталога и свежих заказов.
func (c *ChatUseCase) buildSystemPrompt(ctx context.Context, businessID string) (string, error) {
	products, err := c.productRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		return "", err
	}

	orders, err := c.orderRepo.Recent(ctx, businessID, recentOrdersInChat)
	if err != nil {
		return "", err
	}

	return buildAdvisorPrompt(products, orders), nil
}

// historyFor возвращает последние сообщения сессии плюс текущее сообщение пользователя.
// Текущее сообщение уже записано в бд, но сессия была загружена до записи.
func (c *ChatUseCase) historyFor(session *domain.ChatSession, content string) []domain.ChatMessage {
	history := session.Messages
	if len(history) > chatHistoryLimit {
		history = history[len(history)-chatHistoryLimit:]
	}

	return append(history, domain.ChatMessage{Role: domain.RoleUser, Content: content})
}

// sessionTitle обрезает первое сообщение до заголовка сессии.
func sessionTitle(content string) string {
	title := strings.TrimSpace(content)
	runes := []rune(title)
	if len(runes) > sessionTitleMaxLen {
		title = string(runes[:sessionTitleMaxLen]) + "…"
	}
	return title
}
