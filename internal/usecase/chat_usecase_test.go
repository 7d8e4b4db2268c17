package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veltrixai/go-backend/internal/domain"
)

type stubChatRepo struct {
	ChatRepository
	session      *domain.ChatSession
	createdTitle string
	titleUpdates []string
}

func (s *stubChatRepo) CreateSession(_ context.Context, session *domain.ChatSession) (*domain.ChatSession, error) {
	s.createdTitle = session.Title
	session.ID = "sess-1"
	return session, nil
}

func (s *stubChatRepo) GetSession(_ context.Context, _ string, _ string) (*domain.ChatSession, error) {
	return s.session, nil
}

func (s *stubChatRepo) CreateMessage(_ context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error) {
	return message, nil
}

func (s *stubChatRepo) UpdateSessionTitle(_ context.Context, _ string, title string) error {
	s.titleUpdates = append(s.titleUpdates, title)
	return nil
}

type stubAIService struct {
	AIService
	reply string
}

func (s *stubAIService) ChatCompletion(_ context.Context, _ *ChatCompletionReq) (string, error) {
	return s.reply, nil
}

func newTestChatUC(chatRepo *stubChatRepo) *ChatUseCase {
	return NewChatUC(
		chatRepo,
		&stubProductListRepo{},
		&stubSalesOrderRepo{},
		&stubAIService{reply: "Stok kopi cukup untuk minggu ini."},
		testLogger{},
	)
}

func TestSendMessageCreatesTitledSession(t *testing.T) {
	chatRepo := &stubChatRepo{}
	uc := newTestChatUC(chatRepo)

	res, err := uc.SendMessage(context.Background(), &SendMessageReq{
		BusinessID: "biz-1",
		Content:    "Berapa stok kopi saat ini?",
	})

	require.NoError(t, err)
	assert.Equal(t, "sess-1", res.SessionID)
	assert.Equal(t, "Stok kopi cukup untuk minggu ini.", res.Reply.Content)
	// Заголовок задаётся один раз при создании, повторного обновления нет
	assert.Equal(t, "Berapa stok kopi saat ini?", chatRepo.createdTitle)
	assert.Empty(t, chatRepo.titleUpdates)
}

func TestSendMessageTitlesEmptyDefaultSession(t *testing.T) {
	chatRepo := &stubChatRepo{
		session: &domain.ChatSession{ID: "sess-2", BusinessID: "biz-1", Title: defaultSessionTitle},
	}
	uc := newTestChatUC(chatRepo)

	_, err := uc.SendMessage(context.Background(), &SendMessageReq{
		BusinessID: "biz-1",
		SessionID:  "sess-2",
		Content:    "Produk apa yang paling laku?",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Produk apa yang paling laku?"}, chatRepo.titleUpdates)
}

func TestSendMessageKeepsExistingTitle(t *testing.T) {
	chatRepo := &stubChatRepo{
		session: &domain.ChatSession{
			ID:         "sess-3",
			BusinessID: "biz-1",
			Title:      "Stok kopi",
			Messages:   []domain.ChatMessage{{Role: domain.RoleUser, Content: "halo"}},
		},
	}
	uc := newTestChatUC(chatRepo)

	_, err := uc.SendMessage(context.Background(), &SendMessageReq{
		BusinessID: "biz-1",
		SessionID:  "sess-3",
		Content:    "Lanjutkan analisisnya",
	})

	require.NoError(t, err)
	assert.Empty(t, chatRepo.titleUpdates)
}

func TestSessionTitle(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"short", "Berapa omzet minggu ini?", "Berapa omzet minggu ini?"},
		{"trimmed", "  halo  ", "halo"},
		{
			"truncated",
			strings.Repeat("a", 80),
			strings.Repeat("a", sessionTitleMaxLen) + "…",
		},
		{
			// Усечение по рунам, не по байтам
			"multibyte",
			strings.Repeat("ж", 80),
			strings.Repeat("ж", sessionTitleMaxLen) + "…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sessionTitle(tt.content))
		})
	}
}
