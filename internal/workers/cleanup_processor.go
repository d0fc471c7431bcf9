// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/servitech/parts-portal/internal/adapters/db"
)

// CleanupProcessor prunes stale order and stocktake data
type CleanupProcessor struct {
	db     *db.Database
	logger *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor
func NewCleanupProcessor(database *db.Database, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		db:     database,
		logger: logger.With(slog.String("processor", "cleanup")),
	}
}

// CleanupOldData removes abandoned draft stocktakes from closed runs and
// order history past the retention window. Dispatch notes age out on the
// same schedule as the orders they covered.
func (p *CleanupProcessor) CleanupOldData(ctx context.Context, t *asynq.Task) error {
	p.logger.InfoContext(ctx, "cleaning up old data")

	drafts, err := p.db.Exec(ctx,
		`DELETE FROM stocktakes
		 WHERE status = 'draft'
		   AND run_id IN (SELECT id FROM stocktake_runs WHERE NOT active)`)
	if err != nil {
		return fmt.Errorf("failed to cleanup abandoned drafts: %w", err)
	}

	orders, err := p.db.Exec(ctx,
		`DELETE FROM orders WHERE created_at < NOW() - INTERVAL '2 years'`)
	if err != nil {
		return fmt.Errorf("failed to cleanup old orders: %w", err)
	}

	notes, err := p.db.Exec(ctx,
		`DELETE FROM dispatch_notes WHERE created_at < NOW() - INTERVAL '2 years'`)
	if err != nil {
		return fmt.Errorf("failed to cleanup old dispatch notes: %w", err)
	}

	p.logger.InfoContext(ctx, "old data cleaned up",
		slog.Int64("drafts_deleted", drafts.RowsAffected()),
		slog.Int64("orders_deleted", orders.RowsAffected()),
		slog.Int64("dispatch_notes_deleted", notes.RowsAffected()))

	return nil
}
