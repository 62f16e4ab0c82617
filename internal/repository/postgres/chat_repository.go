package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
)

type chatRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewChatRepository создает новый экземпляр chat repository
func NewChatRepository(db *DB, logger *zap.Logger) repository.ChatRepository {
	return &chatRepository{
		db:     db,
		logger: logger,
	}
}

func (r *chatRepository) CreateConversation(ctx context.Context, conv *domain.Conversation) error {
	if conv.ID == uuid.Nil {
		conv.ID = uuid.New()
	}

	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO conversations (id, session_id) VALUES ($1, $2) RETURNING created_at`,
		conv.ID, conv.SessionID,
	).Scan(&conv.CreatedAt)
	if err != nil {
		r.logger.Error("failed to create conversation", zap.String("session_id", conv.SessionID), zap.Error(err))
		return fmt.Errorf("create conversation: %w", err)
	}

	return nil
}

func (r *chatRepository) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.db.GetContext(ctx, &conv, `SELECT id, session_id, created_at FROM conversations WHERE id = $1`, id)
	if err != nil {
		if isNoRows(err) {
			return nil, errors.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation %s: %w", id, err)
	}

	return &conv, nil
}

func (r *chatRepository) AddMessage(ctx context.Context, msg *domain.ChatMessage) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO chat_messages (conversation_id, role, content) VALUES ($1, $2, $3) RETURNING id, created_at`,
		msg.ConversationID, string(msg.Role), msg.Content,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		r.logger.Error("failed to add chat message",
			zap.String("conversation_id", msg.ConversationID.String()),
			zap.Error(err))
		return fmt.Errorf("add chat message: %w", err)
	}

	return nil
}

func (r *chatRepository) RecentMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.ChatMessage, error) {
	query := `
		SELECT id, conversation_id, role, content, created_at FROM (
			SELECT id, conversation_id, role, content, created_at
			FROM chat_messages
			WHERE conversation_id = $1
			ORDER BY id DESC
			LIMIT $2
		) recent
		ORDER BY id
	`

	messages := make([]domain.ChatMessage, 0)
	if err := r.db.SelectContext(ctx, &messages, query, conversationID, limit); err != nil {
		return nil, fmt.Errorf("recent messages for %s: %w", conversationID, err)
	}

	return messages, nil
}
