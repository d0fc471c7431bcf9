// internal/core/services/orders.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// OrdersConfig holds the routing addresses for order notifications.
type OrdersConfig struct {
	// PartsMailbox receives parts orders, ReagentsMailbox reagents orders.
	PartsMailbox    string
	ReagentsMailbox string
	// RecentLimit caps the reorder history, newest first.
	RecentLimit int
}

// OrderService handles basket submission, reorder and the my-orders view.
type OrderService struct {
	orders     ports.OrderRepository
	dispatches ports.DispatchRepository
	sessions   ports.SessionStore
	mailer     ports.Mailer
	catalogue  *domain.Catalogue
	config     OrdersConfig
	logger     *slog.Logger
	now        func() time.Time
}

// Statically assert that *OrderService implements the port.
var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service
func NewOrderService(
	orders ports.OrderRepository,
	dispatches ports.DispatchRepository,
	sessions ports.SessionStore,
	mailer ports.Mailer,
	catalogue *domain.Catalogue,
	config OrdersConfig,
	logger *slog.Logger,
) *OrderService {
	if config.RecentLimit <= 0 {
		config.RecentLimit = 2
	}
	return &OrderService{
		orders:     orders,
		dispatches: dispatches,
		sessions:   sessions,
		mailer:     mailer,
		catalogue:  catalogue,
		config:     config,
		logger:     logger.With(slog.String("service", "orders")),
		now:        time.Now,
	}
}

// engineerEmail derives the company address from a bare username.
func engineerEmail(username string) (string, error) {
	return domain.NormalizeEmail(strings.TrimSpace(username) + domain.EmailDomain)
}

func kindLabel(kind domain.OrderKind) string {
	if kind == domain.OrderKindReagents {
		return "Reagents"
	}
	return "Parts"
}

func (s *OrderService) mailbox(kind domain.OrderKind) string {
	if kind == domain.OrderKindReagents {
		return s.config.ReagentsMailbox
	}
	return s.config.PartsMailbox
}

// Submit sends the order email for every basket line and, only if that
// succeeds, persists the order and clears the basket. A mailer failure leaves
// no trace: no database row and an untouched basket.
func (s *OrderService) Submit(ctx context.Context, sessionID, username string, kind domain.OrderKind, comments string) (*domain.Order, error) {
	email, err := engineerEmail(username)
	if err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid order kind %q", kind)
	}

	basket, err := s.sessions.Basket(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load basket: %w", err)
	}
	if basket.IsEmpty() {
		return nil, domain.ErrEmptyBasket
	}

	// The whole basket goes into one order; the kind only picks the mailbox.
	order := &domain.Order{
		EngineerEmail: email,
		Kind:          kind,
		Comments:      strings.TrimSpace(comments),
	}
	for _, l := range basket.Lines {
		order.Items = append(order.Items, domain.OrderItem{
			PartNumber:  l.PartNumber,
			Description: l.Description,
			Quantity:    l.Quantity,
		})
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	subject := fmt.Sprintf("%s order from %s", kindLabel(kind), email)
	err = s.mailer.Send(ctx, ports.Email{
		To:      []string{s.mailbox(kind)},
		CC:      []string{email},
		Subject: subject,
		Body:    formatOrderBody(order),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "order notification failed, nothing persisted",
			slog.String("engineer", email),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", domain.ErrNotifyFailed, err)
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := s.sessions.ClearBasket(ctx, sessionID); err != nil {
		// the order went through; a stale basket is recoverable
		s.logger.WarnContext(ctx, "failed to clear basket after submit",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
	}

	s.logger.InfoContext(ctx, "order submitted",
		slog.String("order_id", order.ID.String()),
		slog.String("engineer", email),
		slog.Int("items", len(order.Items)))

	return order, nil
}

func formatOrderBody(order *domain.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order from %s\n\n", order.EngineerEmail)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "- %d x %s  %s\n", it.Quantity, it.PartNumber, it.Description)
	}
	if order.Comments != "" {
		fmt.Fprintf(&b, "\nComments:\n%s\n", order.Comments)
	}
	return b.String()
}

// RecentOrders returns the engineer's newest orders with items. An empty kind
// matches both kinds.
func (s *OrderService) RecentOrders(ctx context.Context, username string, kind domain.OrderKind) ([]domain.Order, error) {
	email, err := engineerEmail(username)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.FindRecentByEngineer(ctx, email, kind, s.config.RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) recentOrderAt(ctx context.Context, username string, orderIndex int) (*domain.Order, string, error) {
	email, err := engineerEmail(username)
	if err != nil {
		return nil, "", err
	}

	// Indexes come from the reagent reorder listing, so resolve against the
	// same history.
	orders, err := s.orders.FindRecentByEngineer(ctx, email, domain.OrderKindReagents, s.config.RecentLimit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load recent orders: %w", err)
	}
	if orderIndex < 0 || orderIndex >= len(orders) {
		return nil, "", domain.ErrInvalidSelection
	}
	return &orders[orderIndex], email, nil
}

// Resubmit re-sends the notification for a past order. Nothing is written to
// the database.
func (s *OrderService) Resubmit(ctx context.Context, username string, orderIndex int) error {
	order, email, err := s.recentOrderAt(ctx, username, orderIndex)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Re-order: %s order from %s", kindLabel(order.Kind), email)
	err = s.mailer.Send(ctx, ports.Email{
		To:      []string{s.mailbox(order.Kind)},
		CC:      []string{email},
		Subject: subject,
		Body:    formatOrderBody(order),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNotifyFailed, err)
	}

	s.logger.InfoContext(ctx, "order resubmitted",
		slog.String("order_id", order.ID.String()),
		slog.String("engineer", email))

	return nil
}

// CopyToBasket merges a past order's lines into the session basket, summing
// quantities for parts already present.
func (s *OrderService) CopyToBasket(ctx context.Context, sessionID, username string, orderIndex int) (*domain.Basket, error) {
	order, _, err := s.recentOrderAt(ctx, username, orderIndex)
	if err != nil {
		return nil, err
	}

	basket, err := s.sessions.Basket(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load basket: %w", err)
	}

	for _, it := range order.Items {
		part, ok := s.catalogue.Find(it.PartNumber)
		if !ok {
			// dropped from the catalogue since; keep the ordered snapshot
			part = domain.PartRecord{PartNumber: it.PartNumber, Description: it.Description}
		}
		if err := basket.Add(part, it.Quantity); err != nil {
			return nil, err
		}
	}

	if err := s.sessions.SaveBasket(ctx, sessionID, basket); err != nil {
		return nil, fmt.Errorf("failed to save basket: %w", err)
	}

	return basket, nil
}

// MyOrders assembles the engineer's outstanding items and dispatch history.
func (s *OrderService) MyOrders(ctx context.Context, email string) (*ports.MyOrdersView, error) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}

	items, err := s.orders.FindOutstandingItems(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to load outstanding items: %w", err)
	}

	view := &ports.MyOrdersView{LastDispatch: map[string]time.Time{}}
	for _, it := range items {
		if it.BackOrder {
			view.BackOrders = append(view.BackOrders, it)
		} else {
			view.Active = append(view.Active, it)
		}
	}

	notes, err := s.dispatches.FindByEngineer(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispatch notes: %w", err)
	}

	view.RecentDispatches, view.OlderDispatches = domain.SplitDispatches(notes, s.now())
	view.LastDispatch = domain.LastDispatchByPart(notes)

	return view, nil
}
