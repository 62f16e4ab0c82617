package mailer

import (
	"context"
	"net/smtp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/config"
	"github.com/tourism-portal/internal/domain"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	body string
}

func newTestMailer(t *testing.T) (*SMTPMailer, *capturedMail) {
	t.Helper()

	m, err := NewSMTPMailer(config.MailConfig{
		Host: "mail.local",
		Port: 2525,
		From: "Visit Namibia <no-reply@visitnamibia.local>",
	}, zap.NewNop())
	require.NoError(t, err)

	got := &capturedMail{}
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		got.addr, got.from, got.to, got.body = addr, from, to, string(msg)
		return nil
	}
	m.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }
	return m, got
}

func TestSMTPMailer_SendMultipart(t *testing.T) {
	m, got := newTestMailer(t)

	err := m.Send(context.Background(), domain.EmailMessage{
		To:      "Ann <ann@example.com>",
		Subject: "Welcome to Namibia",
		Text:    "Hello Ann",
		HTML:    "<p>Hello Ann</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "mail.local:2525", got.addr)
	assert.Equal(t, "no-reply@visitnamibia.local", got.from)
	assert.Equal(t, []string{"ann@example.com"}, got.to)
	assert.Contains(t, got.body, "Subject: Welcome to Namibia\r\n")
	assert.Contains(t, got.body, "Content-Type: multipart/alternative; boundary=")
	assert.Contains(t, got.body, "text/plain; charset=UTF-8")
	assert.Contains(t, got.body, "text/html; charset=UTF-8")
	assert.Contains(t, got.body, "<p>Hello Ann</p>")
}

func TestSMTPMailer_SendSinglePart(t *testing.T) {
	m, got := newTestMailer(t)

	require.NoError(t, m.Send(context.Background(), domain.EmailMessage{
		To:      "ann@example.com",
		Subject: "Reset",
		HTML:    "<b>reset</b>",
	}))

	assert.Contains(t, got.body, "Content-Type: text/html; charset=UTF-8\r\n")
	assert.NotContains(t, got.body, "multipart")
}

func TestSMTPMailer_Rejects(t *testing.T) {
	m, got := newTestMailer(t)

	assert.Error(t, m.Send(context.Background(), domain.EmailMessage{To: "ann@example.com", Subject: "empty"}))
	assert.Error(t, m.Send(context.Background(), domain.EmailMessage{To: "not an address", Text: "x"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.Send(ctx, domain.EmailMessage{To: "ann@example.com", Text: "x"}), context.Canceled)

	assert.Empty(t, got.addr)
}
