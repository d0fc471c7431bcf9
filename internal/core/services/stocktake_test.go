package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
	"github.com/servitech/parts-portal/internal/core/services"
	"github.com/servitech/parts-portal/test/helpers"
	"github.com/servitech/parts-portal/test/mocks"
)

func newStocktakeService(t *testing.T) (*services.StocktakeService, *mocks.MockStocktakeRepository, *mocks.MockTaskEnqueuer) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mocks.NewMockStocktakeRepository(ctrl)
	tasks := mocks.NewMockTaskEnqueuer(ctrl)

	catalogue := domain.NewCatalogue([]domain.PartRecord{
		{PartNumber: "AB-100", Description: "Widget bracket", Category: "Brackets"},
	}, nil)

	svc := services.NewStocktakeService(
		repo, tasks, catalogue,
		services.StocktakeConfig{LeaderMailbox: "stockrequests@servitech.co.uk"},
		helpers.TestLogger(),
	)

	return svc, repo, tasks
}

func TestStocktakeService_OpenDraft(t *testing.T) {
	ctx := context.Background()
	runID := uuid.New()

	t.Run("reuses_the_active_run", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		repo.EXPECT().ActiveRun(ctx).Return(&domain.StocktakeRun{ID: runID, Active: true}, nil)
		repo.EXPECT().
			OpenStocktake(ctx, runID, "joe@servitech.co.uk").
			Return(&domain.Stocktake{RunID: runID, EngineerEmail: "joe@servitech.co.uk", Status: domain.StatusDraft}, nil)

		st, err := svc.OpenDraft(ctx, "Joe")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDraft, st.Status)
	})

	t.Run("creates_run_named_after_current_month", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		repo.EXPECT().ActiveRun(ctx).Return(nil, domain.ErrNoActiveRun)
		repo.EXPECT().
			EnsureActiveRun(ctx, time.Now().Format("January 2006")).
			Return(&domain.StocktakeRun{ID: runID, Active: true}, nil)
		repo.EXPECT().
			OpenStocktake(ctx, runID, "joe@servitech.co.uk").
			Return(&domain.Stocktake{RunID: runID, EngineerEmail: "joe@servitech.co.uk"}, nil)

		_, err := svc.OpenDraft(ctx, "joe")
		require.NoError(t, err)
	})

	t.Run("rejects_blank_username", func(t *testing.T) {
		svc, _, _ := newStocktakeService(t)
		_, err := svc.OpenDraft(ctx, " ")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestStocktakeService_SetItem(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("upserts_with_catalogue_description", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		draft := &domain.Stocktake{ID: id, Status: domain.StatusDraft}
		repo.EXPECT().FindStocktake(ctx, id).Return(draft, nil)
		repo.EXPECT().
			UpsertItem(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, item *domain.StocktakeItem) error {
				assert.Equal(t, "AB-100", item.PartNumber)
				assert.Equal(t, "Widget bracket", item.Description)
				assert.Equal(t, 4, item.Quantity)
				return nil
			})
		repo.EXPECT().FindStocktake(ctx, id).Return(draft, nil)

		_, err := svc.SetItem(ctx, id, "AB-100", 4)
		require.NoError(t, err)
	})

	t.Run("zero_quantity_deletes_the_line", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		draft := &domain.Stocktake{ID: id, Status: domain.StatusDraft}
		repo.EXPECT().FindStocktake(ctx, id).Return(draft, nil)
		repo.EXPECT().DeleteItem(ctx, id, "AB-100").Return(nil)
		repo.EXPECT().FindStocktake(ctx, id).Return(draft, nil)

		_, err := svc.SetItem(ctx, id, "AB-100", 0)
		require.NoError(t, err)
	})

	t.Run("submitted_sheet_rejects_edits", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		repo.EXPECT().
			FindStocktake(ctx, id).
			Return(&domain.Stocktake{ID: id, Status: domain.StatusSubmitted}, nil)

		_, err := svc.SetItem(ctx, id, "AB-100", 4)
		assert.ErrorIs(t, err, domain.ErrLocked)
	})
}

func TestStocktakeService_Submit(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	draft := func() *domain.Stocktake {
		return &domain.Stocktake{
			ID:            id,
			EngineerEmail: "joe@servitech.co.uk",
			Status:        domain.StatusDraft,
			Items:         []domain.StocktakeItem{{PartNumber: "AB-100", Quantity: 3}},
		}
	}
	confirmed := domain.SubmitRequest{Acknowledged: true, ConfirmPhrase: "confirm"}

	t.Run("locks_and_queues_both_notifications", func(t *testing.T) {
		svc, repo, tasks := newStocktakeService(t)

		repo.EXPECT().FindStocktake(ctx, id).Return(draft(), nil)
		repo.EXPECT().SetStatus(ctx, id, domain.StatusSubmitted).Return(nil)

		var recipients []string
		tasks.EXPECT().
			EnqueueEmail(ctx, gomock.Any()).
			Times(2).
			DoAndReturn(func(_ context.Context, email ports.Email) error {
				recipients = append(recipients, email.To...)
				return nil
			})

		require.NoError(t, svc.Submit(ctx, id, confirmed))
		assert.ElementsMatch(t, []string{"joe@servitech.co.uk", "stockrequests@servitech.co.uk"}, recipients)
	})

	t.Run("enqueue_failure_keeps_the_lock", func(t *testing.T) {
		svc, repo, tasks := newStocktakeService(t)

		repo.EXPECT().FindStocktake(ctx, id).Return(draft(), nil)
		repo.EXPECT().SetStatus(ctx, id, domain.StatusSubmitted).Return(nil)
		tasks.EXPECT().EnqueueEmail(ctx, gomock.Any()).Times(2).Return(errors.New("asynq down"))

		assert.NoError(t, svc.Submit(ctx, id, confirmed))
	})

	t.Run("requires_acknowledgement_and_phrase", func(t *testing.T) {
		svc, _, _ := newStocktakeService(t)

		err := svc.Submit(ctx, id, domain.SubmitRequest{Acknowledged: true, ConfirmPhrase: "yes"})
		assert.ErrorIs(t, err, domain.ErrConfirmRequired)

		err = svc.Submit(ctx, id, domain.SubmitRequest{Acknowledged: false, ConfirmPhrase: "CONFIRM"})
		assert.ErrorIs(t, err, domain.ErrConfirmRequired)
	})

	t.Run("empty_sheet_cannot_be_submitted", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		empty := draft()
		empty.Items = nil
		repo.EXPECT().FindStocktake(ctx, id).Return(empty, nil)

		assert.ErrorIs(t, svc.Submit(ctx, id, confirmed), domain.ErrEmptyStocktake)
	})

	t.Run("double_submit_is_rejected", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		locked := draft()
		locked.Status = domain.StatusSubmitted
		repo.EXPECT().FindStocktake(ctx, id).Return(locked, nil)

		assert.ErrorIs(t, svc.Submit(ctx, id, confirmed), domain.ErrLocked)
	})
}

func TestStocktakeService_UnlockAndReset(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("unlock_keeps_items", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		repo.EXPECT().SetStatus(ctx, id, domain.StatusDraft).Return(nil)
		// no DeleteItems expectation: unlock preserves counts

		require.NoError(t, svc.Unlock(ctx, id))
	})

	t.Run("reset_wipes_items", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		gomock.InOrder(
			repo.EXPECT().SetStatus(ctx, id, domain.StatusDraft).Return(nil),
			repo.EXPECT().DeleteItems(ctx, id).Return(nil),
		)

		require.NoError(t, svc.Reset(ctx, id))
	})

	t.Run("unknown_sheet_is_not_found", func(t *testing.T) {
		svc, repo, _ := newStocktakeService(t)

		repo.EXPECT().SetStatus(ctx, id, domain.StatusDraft).Return(domain.ErrNotFound)

		assert.ErrorIs(t, svc.Unlock(ctx, id), domain.ErrNotFound)
	})
}

func TestStocktakeService_MasterTotals(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newStocktakeService(t)

	runID := uuid.New()
	repo.EXPECT().ActiveRun(ctx).Return(&domain.StocktakeRun{ID: runID, Name: "August 2026", Active: true}, nil)
	repo.EXPECT().ListByRun(ctx, runID).Return([]domain.Stocktake{
		{
			EngineerEmail: "joe@servitech.co.uk",
			Status:        domain.StatusSubmitted,
			Items:         []domain.StocktakeItem{{PartNumber: "AB-100", Quantity: 3}},
		},
		{
			EngineerEmail: "amy@servitech.co.uk",
			Status:        domain.StatusDraft,
			Items:         []domain.StocktakeItem{{PartNumber: "AB-100", Quantity: 100}},
		},
	}, nil)

	run, totals, err := svc.MasterTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, "August 2026", run.Name)

	// drafts stay out of the master totals
	require.Len(t, totals, 1)
	assert.Equal(t, 3, totals[0].Total)
	assert.Equal(t, "Widget bracket", totals[0].Description)
}
