package domain

import "time"

// Stream names
const (
	StreamEmailOutbox = "stream:email:outbox"
)

// EmailKind - шаблон письма
type EmailKind string

const (
	EmailKindWelcome       EmailKind = "welcome"
	EmailKindPasswordReset EmailKind = "password_reset"
	EmailKindContact       EmailKind = "contact_notification"
	EmailKindRaw           EmailKind = "raw"
)

// EmailMessage - письмо для отправки. Должно быть задано хотя бы одно из Text/HTML.
type EmailMessage struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// HasBody проверяет наличие текстовой или html части
func (m EmailMessage) HasBody() bool {
	return m.Text != "" || m.HTML != ""
}

// EmailOutboxEvent - событие в стриме исходящих писем
type EmailOutboxEvent struct {
	Kind       EmailKind    `json:"kind"`
	Message    EmailMessage `json:"message"`
	Attempt    int          `json:"attempt"`
	EnqueuedAt time.Time    `json:"enqueued_at"`
	LastError  string       `json:"last_error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
