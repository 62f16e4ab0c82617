package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/tourism-portal/internal/domain"
)

// ChatRepository хранит диалоги чат-бота
type ChatRepository interface {
	CreateConversation(ctx context.Context, conv *domain.Conversation) error
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)

	// AddMessage сохраняет сообщение и заполняет ID и CreatedAt
	AddMessage(ctx context.Context, msg *domain.ChatMessage) error

	// RecentMessages возвращает последние limit сообщений в хронологическом порядке
	RecentMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error)
}

// ContactRepository хранит сообщения формы обратной связи
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
}
