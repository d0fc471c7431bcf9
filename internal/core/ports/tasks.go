// internal/core/ports/tasks.go
package ports

import "context"

// TaskEnqueuer queues background work. Stocktake notifications go through the
// queue so a slow mail server never holds a submit response.
type TaskEnqueuer interface {
	EnqueueEmail(ctx context.Context, email Email) error
}
