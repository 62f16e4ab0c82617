package usecase

import (
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
)

// NotificationUseCase рендерит письма и отправляет их.
// В режиме outbox письмо публикуется в Redis Stream и отправляется воркером,
// иначе уходит напрямую через Mailer.
type NotificationUseCase struct {
	streamRepo   repository.StreamRepository
	mailer       repository.Mailer
	logger       *zap.Logger
	useOutbox    bool
	publicURL    string
	adminAddress string
}

// NewNotificationUseCase создает новый экземпляр NotificationUseCase.
// streamRepo может быть nil при useOutbox=false, mailer - при useOutbox=true.
func NewNotificationUseCase(
	streamRepo repository.StreamRepository,
	mailer repository.Mailer,
	logger *zap.Logger,
	useOutbox bool,
	publicURL string,
	adminAddress string,
) *NotificationUseCase {
	return &NotificationUseCase{
		streamRepo:   streamRepo,
		mailer:       mailer,
		logger:       logger,
		useOutbox:    useOutbox,
		publicURL:    publicURL,
		adminAddress: adminAddress,
	}
}

// Dispatch отправляет письмо. Возвращает false, если письмо не принято к отправке.
func (uc *NotificationUseCase) Dispatch(ctx context.Context, msg domain.EmailMessage) bool {
	return uc.dispatch(ctx, domain.EmailKindRaw, msg)
}

// SendWelcome - приветственное письмо после регистрации
func (uc *NotificationUseCase) SendWelcome(ctx context.Context, user *domain.User) bool {
	msg, err := welcomeTemplate.render(user.Email, map[string]string{
		"Name": user.Name,
		"URL":  uc.publicURL,
	})
	if err != nil {
		uc.logger.Error("Failed to render welcome email", zap.Error(err))
		return false
	}
	return uc.dispatch(ctx, domain.EmailKindWelcome, msg)
}

// SendPasswordReset - письмо со ссылкой сброса пароля
func (uc *NotificationUseCase) SendPasswordReset(ctx context.Context, user *domain.User, token string, ttl time.Duration) bool {
	link := uc.publicURL + "/reset-password?token=" + url.QueryEscape(token)
	msg, err := passwordResetTemplate.render(user.Email, map[string]string{
		"Name":      user.Name,
		"URL":       link,
		"ExpiresIn": ttl.String(),
	})
	if err != nil {
		uc.logger.Error("Failed to render password reset email", zap.Error(err))
		return false
	}
	return uc.dispatch(ctx, domain.EmailKindPasswordReset, msg)
}

// SendContactNotification уведомляет администратора о сообщении из формы обратной связи
func (uc *NotificationUseCase) SendContactNotification(ctx context.Context, contact *domain.ContactMessage) bool {
	if uc.adminAddress == "" {
		return false
	}
	msg, err := contactTemplate.render(uc.adminAddress, contact)
	if err != nil {
		uc.logger.Error("Failed to render contact email", zap.Error(err))
		return false
	}
	return uc.dispatch(ctx, domain.EmailKindContact, msg)
}

func (uc *NotificationUseCase) dispatch(ctx context.Context, kind domain.EmailKind, msg domain.EmailMessage) bool {
	if msg.To == "" || !msg.HasBody() {
		uc.logger.Warn("Email dropped: missing recipient or body", zap.String("kind", string(kind)))
		return false
	}

	if uc.useOutbox {
		event := domain.EmailOutboxEvent{
			Kind:       kind,
			Message:    msg,
			EnqueuedAt: time.Now().UTC(),
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamEmailOutbox, event); err != nil {
			uc.logger.Error("Failed to enqueue email", zap.String("kind", string(kind)), zap.Error(err))
			return false
		}
		uc.logger.Debug("Email enqueued", zap.String("kind", string(kind)), zap.String("to", msg.To))
		return true
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.logger.Error("Failed to send email", zap.String("kind", string(kind)), zap.Error(err))
		return false
	}
	return true
}
