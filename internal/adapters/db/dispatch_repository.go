// internal/adapters/db/dispatch_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// dispatchRepository implements ports.DispatchRepository. Dispatch rows are
// written by the fulfillment system; this adapter mostly reads.
type dispatchRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(db *Database, logger *slog.Logger) ports.DispatchRepository {
	return &dispatchRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "dispatches")),
	}
}

// FindByEngineer returns an engineer's dispatch notes with items, newest
// first.
func (r *dispatchRepository) FindByEngineer(ctx context.Context, email string) ([]domain.DispatchNote, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, engineer_email, picker_name, created_at
		FROM dispatch_notes
		WHERE engineer_email = $1
		ORDER BY created_at DESC`,
		email)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.DispatchNote
	for rows.Next() {
		var n domain.DispatchNote
		if err := rows.Scan(&n.ID, &n.EngineerEmail, &n.PickerName, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dispatch notes: %w", err)
	}

	for i := range notes {
		items, err := r.findItems(ctx, notes[i].ID)
		if err != nil {
			return nil, err
		}
		notes[i].Items = items
	}

	return notes, nil
}

func (r *dispatchRepository) findItems(ctx context.Context, noteID uuid.UUID) ([]domain.DispatchItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, dispatch_note_id, part_number, description, quantity_sent
		FROM dispatch_items
		WHERE dispatch_note_id = $1
		ORDER BY id`,
		noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispatch items: %w", err)
	}
	defer rows.Close()

	var items []domain.DispatchItem
	for rows.Next() {
		var it domain.DispatchItem
		if err := rows.Scan(&it.ID, &it.NoteID, &it.PartNumber, &it.Description, &it.QuantitySent); err != nil {
			return nil, fmt.Errorf("failed to scan dispatch item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaveNote persists a dispatch note with items. Only the dev seeder calls
// this; production rows arrive through the fulfillment system.
func (r *dispatchRepository) SaveNote(ctx context.Context, note *domain.DispatchNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO dispatch_notes (id, engineer_email, picker_name, created_at)
			VALUES ($1, $2, $3, $4)`,
			note.ID, note.EngineerEmail, note.PickerName, note.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert dispatch note: %w", err)
		}

		for i := range note.Items {
			note.Items[i].NoteID = note.ID
			err := tx.QueryRow(ctx, `
				INSERT INTO dispatch_items (dispatch_note_id, part_number, description, quantity_sent)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				note.ID, note.Items[i].PartNumber, note.Items[i].Description,
				note.Items[i].QuantitySent,
			).Scan(&note.Items[i].ID)
			if err != nil {
				return fmt.Errorf("failed to insert dispatch item %d: %w", i, err)
			}
		}
		return nil
	})
}
