package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/pkg/errors"
	"github.com/tourism-portal/internal/pkg/ratelimit"
	"github.com/tourism-portal/internal/usecase/dto"
)

// ChatbotUseCase - диалог с ассистентом по туризму
type ChatbotUseCase struct {
	chatRepo     repository.ChatRepository
	responder    repository.ChatResponder
	limiter      *ratelimit.KeyedLimiter
	logger       *zap.Logger
	historyLimit int
	timeout      time.Duration
}

// NewChatbotUseCase создает новый экземпляр ChatbotUseCase
func NewChatbotUseCase(
	chatRepo repository.ChatRepository,
	responder repository.ChatResponder,
	limiter *ratelimit.KeyedLimiter,
	logger *zap.Logger,
	historyLimit int,
	timeout time.Duration,
) *ChatbotUseCase {
	if historyLimit <= 0 {
		historyLimit = 20
	}
	return &ChatbotUseCase{
		chatRepo:     chatRepo,
		responder:    responder,
		limiter:      limiter,
		logger:       logger,
		historyLimit: historyLimit,
		timeout:      timeout,
	}
}

// SendMessage сохраняет сообщение пользователя и ответ ассистента.
// Без conversation_id создается новый диалог. Сбой генерации ответа
// заменяется извинением и ошибкой не считается.
func (uc *ChatbotUseCase) SendMessage(ctx context.Context, req dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if uc.limiter != nil && !uc.limiter.Allow(req.SessionID) {
		return nil, errors.ErrRateLimited
	}

	conv, err := uc.conversation(ctx, req)
	if err != nil {
		return nil, err
	}

	userMsg := &domain.ChatMessage{
		ConversationID: conv.ID,
		Role:           domain.ChatRoleUser,
		Content:        strings.TrimSpace(req.Message),
	}
	if err := uc.chatRepo.AddMessage(ctx, userMsg); err != nil {
		return nil, err
	}

	history, err := uc.chatRepo.RecentMessages(ctx, conv.ID, uc.historyLimit)
	if err != nil || len(history) == 0 {
		if err != nil {
			uc.logger.Warn("Failed to load chat history", zap.String("conversation_id", conv.ID.String()), zap.Error(err))
		}
		history = []domain.ChatMessage{*userMsg}
	}

	reply := uc.reply(ctx, conv.ID, history)

	assistantMsg := &domain.ChatMessage{
		ConversationID: conv.ID,
		Role:           domain.ChatRoleAssistant,
		Content:        reply,
	}
	if err := uc.chatRepo.AddMessage(ctx, assistantMsg); err != nil {
		return nil, err
	}

	return &dto.ChatMessageResponse{
		Message:        reply,
		ConversationID: conv.ID.String(),
	}, nil
}

func (uc *ChatbotUseCase) conversation(ctx context.Context, req dto.ChatMessageRequest) (*domain.Conversation, error) {
	if req.ConversationID == "" {
		conv := &domain.Conversation{SessionID: req.SessionID}
		if err := uc.chatRepo.CreateConversation(ctx, conv); err != nil {
			return nil, err
		}
		uc.logger.Debug("Conversation started", zap.String("conversation_id", conv.ID.String()))
		return conv, nil
	}

	id, err := uuid.Parse(req.ConversationID)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"fields": map[string]interface{}{"conversation_id": "must be a valid UUID"},
		})
	}

	conv, err := uc.chatRepo.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	// Чужой диалог неотличим от несуществующего
	if conv.SessionID != req.SessionID {
		return nil, errors.ErrConversationNotFound
	}
	return conv, nil
}

func (uc *ChatbotUseCase) reply(ctx context.Context, convID uuid.UUID, history []domain.ChatMessage) string {
	if uc.responder == nil {
		return domain.CannedApology
	}

	replyCtx := ctx
	if uc.timeout > 0 {
		var cancel context.CancelFunc
		replyCtx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	reply, err := uc.responder.Reply(replyCtx, history)
	if err != nil {
		uc.logger.Warn("Chat responder failed", zap.String("conversation_id", convID.String()), zap.Error(err))
		return domain.CannedApology
	}
	if strings.TrimSpace(reply) == "" {
		uc.logger.Warn("Chat responder returned empty reply", zap.String("conversation_id", convID.String()))
		return domain.CannedApology
	}
	return reply
}
