// internal/core/services/stocktake.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// StocktakeConfig holds stocktake notification settings.
type StocktakeConfig struct {
	// LeaderMailbox receives the submission summaries.
	LeaderMailbox string
}

// StocktakeService drives the draft/submit/lock workflow and the leader
// aggregation.
type StocktakeService struct {
	repo      ports.StocktakeRepository
	tasks     ports.TaskEnqueuer
	catalogue *domain.Catalogue
	config    StocktakeConfig
	logger    *slog.Logger
	now       func() time.Time
}

// Statically assert that *StocktakeService implements the port.
var _ ports.StocktakeService = (*StocktakeService)(nil)

// NewStocktakeService creates a new stocktake service
func NewStocktakeService(
	repo ports.StocktakeRepository,
	tasks ports.TaskEnqueuer,
	catalogue *domain.Catalogue,
	config StocktakeConfig,
	logger *slog.Logger,
) *StocktakeService {
	return &StocktakeService{
		repo:      repo,
		tasks:     tasks,
		catalogue: catalogue,
		config:    config,
		logger:    logger.With(slog.String("service", "stocktake")),
		now:       time.Now,
	}
}

// OpenDraft returns the engineer's sheet for the active run, creating the run
// (named after the current month) and the sheet as needed. Opening never
// duplicates: the unique(run, engineer) constraint makes it insert-or-fetch.
func (s *StocktakeService) OpenDraft(ctx context.Context, username string) (*domain.Stocktake, error) {
	email, err := engineerEmail(username)
	if err != nil {
		return nil, err
	}

	run, err := s.repo.ActiveRun(ctx)
	if err == domain.ErrNoActiveRun {
		run, err = s.repo.EnsureActiveRun(ctx, s.now().Format("January 2006"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active run: %w", err)
	}

	st, err := s.repo.OpenStocktake(ctx, run.ID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to open stocktake: %w", err)
	}

	return st, nil
}

// SetItem records a count on a draft sheet. Zero or negative removes the
// line; positive upserts it with the catalogue description snapshotted.
// Submitted sheets reject all edits.
func (s *StocktakeService) SetItem(ctx context.Context, stocktakeID uuid.UUID, partNumber string, quantity int) (*domain.Stocktake, error) {
	st, err := s.repo.FindStocktake(ctx, stocktakeID)
	if err != nil {
		return nil, err
	}
	if st.IsLocked() {
		return nil, domain.ErrLocked
	}

	if quantity <= 0 {
		if err := s.repo.DeleteItem(ctx, stocktakeID, partNumber); err != nil {
			return nil, err
		}
	} else {
		description := ""
		if part, ok := s.catalogue.Find(partNumber); ok {
			description = part.Description
		}
		item := &domain.StocktakeItem{
			StocktakeID: stocktakeID,
			PartNumber:  partNumber,
			Description: description,
			Quantity:    quantity,
		}
		if err := s.repo.UpsertItem(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.repo.FindStocktake(ctx, stocktakeID)
}

// Submit locks a sheet. It requires the acknowledgement flag, the typed
// confirmation phrase and at least one counted item. Notification emails are
// queued afterwards; an enqueue failure is logged and never undoes the lock.
func (s *StocktakeService) Submit(ctx context.Context, stocktakeID uuid.UUID, req domain.SubmitRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	st, err := s.repo.FindStocktake(ctx, stocktakeID)
	if err != nil {
		return err
	}
	if st.IsLocked() {
		return domain.ErrLocked
	}
	if len(st.Items) == 0 {
		return domain.ErrEmptyStocktake
	}

	if err := s.repo.SetStatus(ctx, stocktakeID, domain.StatusSubmitted); err != nil {
		return fmt.Errorf("failed to lock stocktake: %w", err)
	}

	s.logger.InfoContext(ctx, "stocktake submitted",
		slog.String("stocktake_id", stocktakeID.String()),
		slog.String("engineer", st.EngineerEmail),
		slog.Int("items", len(st.Items)))

	s.queueSubmitNotifications(ctx, st)

	return nil
}

func (s *StocktakeService) queueSubmitNotifications(ctx context.Context, st *domain.Stocktake) {
	body := formatStocktakeBody(st)

	emails := []ports.Email{
		{
			To:      []string{st.EngineerEmail},
			Subject: "Stocktake received",
			Body:    "Your stocktake has been submitted and locked.\n\n" + body,
		},
		{
			To:      []string{s.config.LeaderMailbox},
			CC:      []string{st.EngineerEmail},
			Subject: fmt.Sprintf("Stocktake submitted by %s", st.EngineerEmail),
			Body:    body,
		},
	}

	for _, email := range emails {
		if err := s.tasks.EnqueueEmail(ctx, email); err != nil {
			// the lock stands either way
			s.logger.ErrorContext(ctx, "failed to queue stocktake notification",
				slog.String("stocktake_id", st.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}

func formatStocktakeBody(st *domain.Stocktake) string {
	body := fmt.Sprintf("Stocktake for %s\n\n", st.EngineerEmail)
	for _, it := range st.Items {
		body += fmt.Sprintf("- %d x %s  %s\n", it.Quantity, it.PartNumber, it.Description)
	}
	return body
}

// Unlock reopens a submitted sheet, keeping its counted items.
func (s *StocktakeService) Unlock(ctx context.Context, stocktakeID uuid.UUID) error {
	if err := s.repo.SetStatus(ctx, stocktakeID, domain.StatusDraft); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "stocktake unlocked",
		slog.String("stocktake_id", stocktakeID.String()))

	return nil
}

// Reset reopens a sheet and wipes its items.
func (s *StocktakeService) Reset(ctx context.Context, stocktakeID uuid.UUID) error {
	if err := s.repo.SetStatus(ctx, stocktakeID, domain.StatusDraft); err != nil {
		return err
	}
	if err := s.repo.DeleteItems(ctx, stocktakeID); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "stocktake reset",
		slog.String("stocktake_id", stocktakeID.String()))

	return nil
}

// ListCurrent returns the active run and all of its sheets.
func (s *StocktakeService) ListCurrent(ctx context.Context) (*domain.StocktakeRun, []domain.Stocktake, error) {
	run, err := s.repo.ActiveRun(ctx)
	if err != nil {
		return nil, nil, err
	}

	sheets, err := s.repo.ListByRun(ctx, run.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stocktakes: %w", err)
	}

	return run, sheets, nil
}

// MasterTotals aggregates submitted sheets of the active run per part. The
// run is returned alongside so callers can label the export after it.
func (s *StocktakeService) MasterTotals(ctx context.Context) (*domain.StocktakeRun, []domain.MasterTotalLine, error) {
	run, sheets, err := s.ListCurrent(ctx)
	if err != nil {
		return nil, nil, err
	}
	return run, domain.MasterTotals(sheets, s.catalogue), nil
}

// EngineerSheet loads one sheet with items for export.
func (s *StocktakeService) EngineerSheet(ctx context.Context, stocktakeID uuid.UUID) (*domain.Stocktake, error) {
	return s.repo.FindStocktake(ctx, stocktakeID)
}
