// internal/adapters/db/order_repository.go
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

// orderRepository implements ports.OrderRepository
type orderRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *Database, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "orders")),
	}
}

// Save persists an order and its items in one transaction.
func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO orders (id, engineer_email, kind, comments)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`,
			order.ID, order.EngineerEmail, order.Kind, order.Comments,
		).Scan(&order.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for i := range order.Items {
			batch.Queue(`
				INSERT INTO order_items (order_id, part_number, description, quantity, back_order)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING id`,
				order.ID, order.Items[i].PartNumber, order.Items[i].Description,
				order.Items[i].Quantity, order.Items[i].BackOrder,
			)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			if err := br.QueryRow().Scan(&order.Items[i].ID); err != nil {
				return fmt.Errorf("failed to insert item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.DebugContext(ctx, "order saved",
		slog.String("order_id", order.ID.String()),
		slog.String("engineer", order.EngineerEmail),
		slog.Int("items", len(order.Items)))

	return nil
}

// FindRecentByEngineer returns the newest orders for an engineer, items
// included, newest first. An empty kind matches both kinds.
func (r *orderRepository) FindRecentByEngineer(ctx context.Context, email string, kind domain.OrderKind, limit int) ([]domain.Order, error) {
	qb := squirrel.Select("id", "engineer_email", "kind", "comments", "created_at").
		From("orders").
		Where(squirrel.Eq{"engineer_email": email}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if kind != "" {
		qb = qb.Where(squirrel.Eq{"kind": kind})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.EngineerEmail, &o.Kind, &o.Comments, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		items, err := r.findItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

func (r *orderRepository) findItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, part_number, description, quantity, quantity_sent, back_order
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PartNumber, &it.Description,
			&it.Quantity, &it.QuantitySent, &it.BackOrder); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// FindOutstandingItems returns items with quantity still owed across all of an
// engineer's orders, oldest order first.
func (r *orderRepository) FindOutstandingItems(ctx context.Context, email string) ([]domain.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.order_id, i.part_number, i.description, i.quantity, i.quantity_sent, i.back_order
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.engineer_email = $1 AND i.quantity > i.quantity_sent
		ORDER BY o.created_at, i.id`,
		email)
	if err != nil {
		return nil, fmt.Errorf("failed to query outstanding items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.PartNumber, &it.Description,
			&it.Quantity, &it.QuantitySent, &it.BackOrder); err != nil {
			return nil, fmt.Errorf("failed to scan outstanding item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
