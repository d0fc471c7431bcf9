// internal/workers/email_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"

	"github.com/servitech/parts-portal/internal/core/ports"
)

// EmailProcessor delivers queued notification emails
type EmailProcessor struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewEmailProcessor creates a new email processor
func NewEmailProcessor(mailer ports.Mailer, logger *slog.Logger) *EmailProcessor {
	return &EmailProcessor{
		mailer: mailer,
		logger: logger.With(slog.String("processor", "email")),
	}
}

// SendEmail handles a queued email task. Malformed payloads are dropped
// rather than retried; delivery failures are returned so asynq retries them.
func (p *EmailProcessor) SendEmail(ctx context.Context, t *asynq.Task) error {
	var payload EmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal email payload: %v: %w", err, asynq.SkipRetry)
	}

	if len(payload.To) == 0 {
		return fmt.Errorf("email task has no recipients: %w", asynq.SkipRetry)
	}

	p.logger.InfoContext(ctx, "sending queued email",
		slog.String("to", strings.Join(payload.To, ", ")),
		slog.String("subject", payload.Subject))

	err := p.mailer.Send(ctx, ports.Email{
		To:      payload.To,
		CC:      payload.CC,
		Subject: payload.Subject,
		Body:    payload.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
