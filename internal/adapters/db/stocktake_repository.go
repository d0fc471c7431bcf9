// internal/adapters/db/stocktake_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// stocktakeRepository implements ports.StocktakeRepository
type stocktakeRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewStocktakeRepository creates a new stocktake repository
func NewStocktakeRepository(db *Database, logger *slog.Logger) ports.StocktakeRepository {
	return &stocktakeRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "stocktakes")),
	}
}

// ActiveRun returns the single active run, or domain.ErrNoActiveRun.
func (r *stocktakeRepository) ActiveRun(ctx context.Context) (*domain.StocktakeRun, error) {
	var run domain.StocktakeRun
	err := r.db.QueryRow(ctx, `
		SELECT id, name, active, created_at, closed_at
		FROM stocktake_runs
		WHERE active`).
		Scan(&run.ID, &run.Name, &run.Active, &run.CreatedAt, &run.ClosedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNoActiveRun
		}
		return nil, fmt.Errorf("failed to query active run: %w", err)
	}
	return &run, nil
}

// EnsureActiveRun returns the active run, creating one with the given name if
// none exists. The partial unique index on active makes the create race-safe:
// a concurrent insert turns into a no-op and the winner is selected.
func (r *stocktakeRepository) EnsureActiveRun(ctx context.Context, name string) (*domain.StocktakeRun, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stocktake_runs (id, name, active)
		VALUES ($1, $2, TRUE)
		ON CONFLICT (active) WHERE active DO NOTHING`,
		uuid.New(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure active run: %w", err)
	}
	return r.ActiveRun(ctx)
}

// OpenStocktake returns the engineer's sheet for a run, creating a draft if
// none exists. Insert-or-fetch on unique(run_id, engineer_email).
func (r *stocktakeRepository) OpenStocktake(ctx context.Context, runID uuid.UUID, engineerEmail string) (*domain.Stocktake, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stocktakes (id, run_id, engineer_email, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (run_id, engineer_email) DO NOTHING`,
		uuid.New(), runID, engineerEmail, domain.StatusDraft)
	if err != nil {
		return nil, fmt.Errorf("failed to open stocktake: %w", err)
	}

	var st domain.Stocktake
	err = r.db.QueryRow(ctx, `
		SELECT id, run_id, engineer_email, status, submitted_at, created_at
		FROM stocktakes
		WHERE run_id = $1 AND engineer_email = $2`,
		runID, engineerEmail).
		Scan(&st.ID, &st.RunID, &st.EngineerEmail, &st.Status, &st.SubmittedAt, &st.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stocktake: %w", err)
	}

	items, err := r.findItems(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.Items = items

	return &st, nil
}

// FindStocktake loads one sheet with its items, or domain.ErrNotFound.
func (r *stocktakeRepository) FindStocktake(ctx context.Context, id uuid.UUID) (*domain.Stocktake, error) {
	var st domain.Stocktake
	err := r.db.QueryRow(ctx, `
		SELECT id, run_id, engineer_email, status, submitted_at, created_at
		FROM stocktakes
		WHERE id = $1`,
		id).
		Scan(&st.ID, &st.RunID, &st.EngineerEmail, &st.Status, &st.SubmittedAt, &st.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to query stocktake: %w", err)
	}

	items, err := r.findItems(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	st.Items = items

	return &st, nil
}

// ListByRun returns all sheets of a run with items, ordered by engineer.
func (r *stocktakeRepository) ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.Stocktake, error) {
	query, args, err := squirrel.Select("id", "run_id", "engineer_email", "status", "submitted_at", "created_at").
		From("stocktakes").
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("engineer_email").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocktakes: %w", err)
	}
	defer rows.Close()

	var sheets []domain.Stocktake
	for rows.Next() {
		var st domain.Stocktake
		if err := rows.Scan(&st.ID, &st.RunID, &st.EngineerEmail, &st.Status, &st.SubmittedAt, &st.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stocktake: %w", err)
		}
		sheets = append(sheets, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stocktakes: %w", err)
	}

	for i := range sheets {
		items, err := r.findItems(ctx, sheets[i].ID)
		if err != nil {
			return nil, err
		}
		sheets[i].Items = items
	}

	return sheets, nil
}

func (r *stocktakeRepository) findItems(ctx context.Context, stocktakeID uuid.UUID) ([]domain.StocktakeItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, stocktake_id, part_number, description, quantity, updated_at
		FROM stocktake_items
		WHERE stocktake_id = $1
		ORDER BY part_number`,
		stocktakeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stocktake items: %w", err)
	}
	defer rows.Close()

	var items []domain.StocktakeItem
	for rows.Next() {
		var it domain.StocktakeItem
		if err := rows.Scan(&it.ID, &it.StocktakeID, &it.PartNumber, &it.Description, &it.Quantity, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stocktake item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// UpsertItem inserts or replaces a counted line on unique(stocktake_id,
// part_number).
func (r *stocktakeRepository) UpsertItem(ctx context.Context, item *domain.StocktakeItem) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO stocktake_items (stocktake_id, part_number, description, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (stocktake_id, part_number)
		DO UPDATE SET quantity = EXCLUDED.quantity, description = EXCLUDED.description, updated_at = NOW()
		RETURNING id, updated_at`,
		item.StocktakeID, item.PartNumber, item.Description, item.Quantity,
	).Scan(&item.ID, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert stocktake item: %w", err)
	}
	return nil
}

// DeleteItem removes a counted line; missing lines are a no-op.
func (r *stocktakeRepository) DeleteItem(ctx context.Context, stocktakeID uuid.UUID, partNumber string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM stocktake_items
		WHERE stocktake_id = $1 AND part_number = $2`,
		stocktakeID, partNumber)
	if err != nil {
		return fmt.Errorf("failed to delete stocktake item: %w", err)
	}
	return nil
}

// SetStatus updates a sheet's status. Submitting stamps submitted_at,
// unlocking clears it.
func (r *stocktakeRepository) SetStatus(ctx context.Context, id uuid.UUID, status domain.StocktakeStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE stocktakes
		SET status = $2,
		    submitted_at = CASE WHEN $2 = 'submitted' THEN NOW() ELSE NULL END
		WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("failed to set stocktake status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	r.logger.DebugContext(ctx, "stocktake status changed",
		slog.String("stocktake_id", id.String()),
		slog.String("status", string(status)))

	return nil
}

// DeleteItems wipes every counted line of a sheet.
func (r *stocktakeRepository) DeleteItems(ctx context.Context, stocktakeID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM stocktake_items
		WHERE stocktake_id = $1`,
		stocktakeID)
	if err != nil {
		return fmt.Errorf("failed to delete stocktake items: %w", err)
	}
	return nil
}
