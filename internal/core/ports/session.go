// internal/core/ports/session.go
package ports

import (
	"context"

	"github.com/servitech/parts-portal/internal/core/domain"
)

// SessionStore keeps per-session state: the basket and the leader flag.
// Implementations are expected to apply a sliding TTL.
type SessionStore interface {
	Basket(ctx context.Context, sessionID string) (*domain.Basket, error)
	SaveBasket(ctx context.Context, sessionID string, basket *domain.Basket) error
	ClearBasket(ctx context.Context, sessionID string) error

	SetLeader(ctx context.Context, sessionID string) error
	IsLeader(ctx context.Context, sessionID string) (bool, error)
	ClearLeader(ctx context.Context, sessionID string) error
}
