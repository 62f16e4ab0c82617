package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole - автор сообщения
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// CannedApology - ответ ассистента, если генерация ответа не удалась
const CannedApology = "Sorry, I'm having trouble answering right now. Please try again in a moment, or browse our routes and listings in the meantime."

// Conversation - диалог с чат-ботом в рамках сессии
type Conversation struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ChatMessage - сообщение диалога
type ChatMessage struct {
	ID             int64     `json:"id" db:"id"`
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	Role           ChatRole  `json:"role" db:"role"`
	Content        string    `json:"content" db:"content"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
