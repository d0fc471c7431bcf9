// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/servitech/parts-portal/internal/core/domain"
)

// MyOrdersView is everything the my-orders page needs in one call.
type MyOrdersView struct {
	Active           []domain.OrderItem       `json:"active"`
	BackOrders       []domain.OrderItem       `json:"back_orders"`
	RecentDispatches []domain.DispatchNote    `json:"recent_dispatches"`
	OlderDispatches  []domain.DispatchNote    `json:"older_dispatches"`
	LastDispatch     map[string]time.Time     `json:"last_dispatch"`
}

// OrderService is the application port for basket submission, reorder and the
// my-orders view.
type OrderService interface {
	Submit(ctx context.Context, sessionID, username string, kind domain.OrderKind, comments string) (*domain.Order, error)
	RecentOrders(ctx context.Context, username string, kind domain.OrderKind) ([]domain.Order, error)
	Resubmit(ctx context.Context, username string, orderIndex int) error
	CopyToBasket(ctx context.Context, sessionID, username string, orderIndex int) (*domain.Basket, error)
	MyOrders(ctx context.Context, email string) (*MyOrdersView, error)
}

// StocktakeService is the application port for the stocktake workflow.
type StocktakeService interface {
	OpenDraft(ctx context.Context, username string) (*domain.Stocktake, error)
	SetItem(ctx context.Context, stocktakeID uuid.UUID, partNumber string, quantity int) (*domain.Stocktake, error)
	Submit(ctx context.Context, stocktakeID uuid.UUID, req domain.SubmitRequest) error
	Unlock(ctx context.Context, stocktakeID uuid.UUID) error
	Reset(ctx context.Context, stocktakeID uuid.UUID) error
	ListCurrent(ctx context.Context) (*domain.StocktakeRun, []domain.Stocktake, error)
	MasterTotals(ctx context.Context) (*domain.StocktakeRun, []domain.MasterTotalLine, error)
	EngineerSheet(ctx context.Context, stocktakeID uuid.UUID) (*domain.Stocktake, error)
}
