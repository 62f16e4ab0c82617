package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"time"

	"go.uber.org/zap"

	"github.com/tourism-portal/internal/config"
	"github.com/tourism-portal/internal/domain"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer отправляет письма через SMTP-сервер. Письмо с текстовой и html
// частями уходит как multipart/alternative.
type SMTPMailer struct {
	addr   string
	auth   smtp.Auth
	from   *mail.Address
	logger *zap.Logger
	send   sendFunc
	now    func() time.Time
}

// NewSMTPMailer создает отправителя по настройкам MailConfig
func NewSMTPMailer(cfg config.MailConfig, logger *zap.Logger) (*SMTPMailer, error) {
	from, err := mail.ParseAddress(cfg.From)
	if err != nil {
		return nil, fmt.Errorf("parse MAIL_FROM: %w", err)
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &SMTPMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth:   auth,
		from:   from,
		logger: logger,
		send:   smtp.SendMail,
		now:    time.Now,
	}, nil
}

// Send отправляет письмо. smtp.SendMail не принимает контекст, поэтому
// отменённый контекст проверяется до начала отправки.
func (m *SMTPMailer) Send(ctx context.Context, msg domain.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" || !msg.HasBody() {
		return fmt.Errorf("email to %q has no recipient or body", msg.To)
	}

	to, err := mail.ParseAddress(msg.To)
	if err != nil {
		return fmt.Errorf("parse recipient: %w", err)
	}

	body, err := m.build(to, msg)
	if err != nil {
		return err
	}

	if err := m.send(m.addr, m.auth, m.from.Address, []string{to.Address}, body); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	m.logger.Debug("Email sent", zap.String("to", to.Address), zap.String("subject", msg.Subject))
	return nil
}

func (m *SMTPMailer) build(to *mail.Address, msg domain.EmailMessage) ([]byte, error) {
	var buf bytes.Buffer

	header := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	header("From", m.from.String())
	header("To", to.String())
	header("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	header("Date", m.now().Format(time.RFC1123Z))
	header("MIME-Version", "1.0")

	if msg.Text == "" || msg.HTML == "" {
		contentType, content := "text/plain; charset=UTF-8", msg.Text
		if msg.Text == "" {
			contentType, content = "text/html; charset=UTF-8", msg.HTML
		}
		header("Content-Type", contentType)
		header("Content-Transfer-Encoding", "quoted-printable")
		buf.WriteString("\r\n")
		if err := writeQuotedPrintable(&buf, content); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	mw := multipart.NewWriter(&buf)
	header("Content-Type", "multipart/alternative; boundary="+mw.Boundary())
	buf.WriteString("\r\n")

	for _, part := range []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", msg.Text},
		{"text/html; charset=UTF-8", msg.HTML},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.contentType},
			"Content-Transfer-Encoding": {"quoted-printable"},
		})
		if err != nil {
			return nil, err
		}
		if err := writeQuotedPrintable(w, part.content); err != nil {
			return nil, err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeQuotedPrintable(w io.Writer, content string) error {
	qp := quotedprintable.NewWriter(w)
	if _, err := qp.Write([]byte(content)); err != nil {
		return err
	}
	return qp.Close()
}
