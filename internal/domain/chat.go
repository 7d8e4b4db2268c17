package domain

import "time"

// Роли сообщений в диалоге с AI-советником
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatSession описывает сессию диалога с AI-советником
type ChatSession struct {
	ID           string // uuid
	BusinessID   string
	Title        string
	MessageCount int64
	Messages     []ChatMessage
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// ChatMessage — одно сообщение диалога
type ChatMessage struct {
	ID         string // uuid
	SessionID  string
	BusinessID string
	Role       string // RoleUser либо RoleAssistant
	Content    string
	CreatedAt  time.Time
}

func NewChatSession(businessID string, title string) *ChatSession {
	return &ChatSession{
		BusinessID: businessID,
		Title:      title,
	}
}

func NewChatMessage(sessionID string, businessID string, role string, content string) *ChatMessage {
	return &ChatMessage{
		SessionID:  sessionID,
		BusinessID: businessID,
		Role:       role,
		Content:    content,
	}
}
