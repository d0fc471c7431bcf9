// internal/workers/tasks.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/servitech/parts-portal/internal/core/ports"
)

const (
	TypeEmailSend      = "email:send"
	TypeCleanupOldData = "cleanup:old_data"
)

// EmailPayload is the queued form of a notification email.
type EmailPayload struct {
	To      []string `json:"to"`
	CC      []string `json:"cc,omitempty"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// Enqueuer queues background tasks through asynq.
type Enqueuer struct {
	client *asynq.Client
	logger *slog.Logger
}

var _ ports.TaskEnqueuer = (*Enqueuer)(nil)

// NewEnqueuer creates a new task enqueuer
func NewEnqueuer(client *asynq.Client, logger *slog.Logger) *Enqueuer {
	return &Enqueuer{
		client: client,
		logger: logger.With(slog.String("component", "enqueuer")),
	}
}

// EnqueueEmail queues an outbound notification email on the default queue.
func (e *Enqueuer) EnqueueEmail(ctx context.Context, email ports.Email) error {
	b, err := json.Marshal(EmailPayload{
		To:      email.To,
		CC:      email.CC,
		Subject: email.Subject,
		Body:    email.Body,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	task := asynq.NewTask(TypeEmailSend, b)
	info, err := e.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(5),
		asynq.Timeout(1*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}

	e.logger.InfoContext(ctx, "email task queued",
		slog.String("task_id", info.ID),
		slog.String("subject", email.Subject))

	return nil
}
