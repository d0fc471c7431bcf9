// internal/handlers/orders.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
)

// OrderHandler handles order submission, reorder and the my-orders view
type OrderHandler struct {
	service ports.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service ports.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "orders")),
	}
}

// SubmitOrder handles POST /api/v1/orders/submit
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.FormValue("email_user")
	kind := domain.OrderKind(r.FormValue("source"))
	comments := r.FormValue("comments")

	if !kind.IsValid() {
		h.respondError(w, http.StatusBadRequest, "Unknown order source")
		return
	}

	order, err := h.service.Submit(ctx, middleware.SessionID(ctx), username, kind, comments)
	if err != nil {
		h.respondOrderError(w, r, err, "Failed to submit order")
		return
	}

	h.logger.InfoContext(ctx, "order submitted",
		slog.String("order_id", order.ID.String()),
		slog.String("engineer", order.EngineerEmail),
		slog.String("kind", string(order.Kind)))

	h.respondJSON(w, http.StatusCreated, order)
}

// RecentOrders handles GET /api/v1/orders/recent
func (h *OrderHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.URL.Query().Get("email_user")
	kind := domain.OrderKind(r.URL.Query().Get("kind"))

	orders, err := h.service.RecentOrders(ctx, username, kind)
	if err != nil {
		h.respondOrderError(w, r, err, "Failed to load recent orders")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"orders": orders,
		"total":  len(orders),
	})
}

// Resubmit handles POST /api/v1/orders/resubmit
func (h *OrderHandler) Resubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.FormValue("email_user")
	orderIndex, err := strconv.Atoi(r.FormValue("order_index"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid order index")
		return
	}

	if err := h.service.Resubmit(ctx, username, orderIndex); err != nil {
		h.respondOrderError(w, r, err, "Failed to resubmit order")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Order resubmitted"})
}

// CopyToBasket handles POST /api/v1/orders/copy-to-basket
func (h *OrderHandler) CopyToBasket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username := r.FormValue("email_user")
	orderIndex, err := strconv.Atoi(r.FormValue("order_index"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid order index")
		return
	}

	basket, err := h.service.CopyToBasket(ctx, middleware.SessionID(ctx), username, orderIndex)
	if err != nil {
		h.respondOrderError(w, r, err, "Failed to copy order to basket")
		return
	}

	h.respondJSON(w, http.StatusOK, basketResponse(basket))
}

// MyOrders handles GET /api/v1/my-orders
func (h *OrderHandler) MyOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.URL.Query().Get("email")

	view, err := h.service.MyOrders(ctx, email)
	if err != nil {
		h.respondOrderError(w, r, err, "Failed to load orders")
		return
	}

	h.respondJSON(w, http.StatusOK, view)
}

// respondOrderError maps service errors onto HTTP statuses.
func (h *OrderHandler) respondOrderError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		h.respondError(w, http.StatusBadRequest, "Invalid engineer email")
	case errors.Is(err, domain.ErrEmptyBasket):
		h.respondError(w, http.StatusBadRequest, "Basket is empty")
	case errors.Is(err, domain.ErrInvalidSelection):
		h.respondError(w, http.StatusBadRequest, "Invalid order selection")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrNotifyFailed):
		// nothing was persisted and the basket is intact
		h.logger.ErrorContext(r.Context(), "order notification failed",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusBadGateway, "Order email could not be sent; nothing was submitted")
	default:
		h.logger.ErrorContext(r.Context(), fallback,
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *OrderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *OrderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
