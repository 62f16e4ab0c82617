package repository

import (
	"context"

	"github.com/tourism-portal/internal/domain"
)

// ChatResponder генерирует ответ ассистента по истории диалога.
// Последнее сообщение истории - вопрос пользователя.
type ChatResponder interface {
	Reply(ctx context.Context, history []domain.ChatMessage) (string, error)
}

// Mailer отправляет письмо через почтовый транспорт
type Mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}
