package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/usecase/dto"
)

// ContactUseCase - форма обратной связи
type ContactUseCase struct {
	contactRepo repository.ContactRepository
	notifier    *NotificationUseCase
	logger      *zap.Logger
}

// NewContactUseCase создает новый экземпляр ContactUseCase
func NewContactUseCase(
	contactRepo repository.ContactRepository,
	notifier *NotificationUseCase,
	logger *zap.Logger,
) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Submit сохраняет сообщение и уведомляет администратора.
// Неудачная отправка уведомления не отменяет сохранённое сообщение.
func (uc *ContactUseCase) Submit(ctx context.Context, req dto.ContactRequest) (*dto.ContactResponse, error) {
	msg := &domain.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Message: strings.TrimSpace(req.Message),
	}

	if err := uc.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}

	notified := uc.notifier.SendContactNotification(ctx, msg)
	if !notified {
		uc.logger.Warn("Contact notification not dispatched", zap.Int64("contact_id", msg.ID))
	}

	return &dto.ContactResponse{ID: msg.ID, Notified: notified}, nil
}
