// internal/adapters/mailer/smtp.go
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/servitech/parts-portal/internal/core/ports"
)

// Config holds SMTP configuration.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	// DryRun logs instead of sending; used in development.
	DryRun bool
}

// SMTPMailer sends plain-text mail over SMTP.
type SMTPMailer struct {
	config Config
	logger *slog.Logger
	// send is swappable for tests
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// New creates an SMTP mailer.
func New(config Config, logger *slog.Logger) *SMTPMailer {
	return &SMTPMailer{
		config: config,
		logger: logger.With(slog.String("component", "mailer")),
		send:   smtp.SendMail,
	}
}

// Send delivers one message. Recipients are the To plus CC lists; the CC
// header is set so engineers see their own copy threaded.
func (m *SMTPMailer) Send(ctx context.Context, email ports.Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	if m.config.DryRun {
		m.logger.InfoContext(ctx, "email would be sent",
			slog.String("to", strings.Join(email.To, ", ")),
			slog.String("cc", strings.Join(email.CC, ", ")),
			slog.String("subject", email.Subject),
			slog.String("body", email.Body))
		return nil
	}

	msg := buildMessage(m.config.From, email)
	recipients := append(append([]string{}, email.To...), email.CC...)
	addr := m.config.Host + ":" + m.config.Port

	var auth smtp.Auth
	if m.config.Username != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := m.send(addr, auth, m.config.From, recipients, msg); err != nil {
		m.logger.ErrorContext(ctx, "failed to send email",
			slog.String("to", strings.Join(email.To, ", ")),
			slog.String("subject", email.Subject),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.InfoContext(ctx, "email sent",
		slog.String("to", strings.Join(email.To, ", ")),
		slog.String("subject", email.Subject))

	return nil
}

func buildMessage(from string, email ports.Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(email.To, ", "))
	if len(email.CC) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(email.CC, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	return []byte(b.String())
}
