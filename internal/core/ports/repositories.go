// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/servitech/parts-portal/internal/core/domain"
)

// OrderRepository is the persistence port for submitted orders.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindRecentByEngineer(ctx context.Context, email string, kind domain.OrderKind, limit int) ([]domain.Order, error)
	FindOutstandingItems(ctx context.Context, email string) ([]domain.OrderItem, error)
}

// DispatchRepository reads the dispatch notes written by the fulfillment
// system. SaveNote exists only for the dev seeder.
type DispatchRepository interface {
	FindByEngineer(ctx context.Context, email string) ([]domain.DispatchNote, error)
	SaveNote(ctx context.Context, note *domain.DispatchNote) error
}

// StocktakeRepository is the persistence port for stocktake runs, sheets and
// counted items.
type StocktakeRepository interface {
	ActiveRun(ctx context.Context) (*domain.StocktakeRun, error)
	EnsureActiveRun(ctx context.Context, name string) (*domain.StocktakeRun, error)
	OpenStocktake(ctx context.Context, runID uuid.UUID, engineerEmail string) (*domain.Stocktake, error)
	FindStocktake(ctx context.Context, id uuid.UUID) (*domain.Stocktake, error)
	ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.Stocktake, error)
	UpsertItem(ctx context.Context, item *domain.StocktakeItem) error
	DeleteItem(ctx context.Context, stocktakeID uuid.UUID, partNumber string) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.StocktakeStatus) error
	DeleteItems(ctx context.Context, stocktakeID uuid.UUID) error
}
