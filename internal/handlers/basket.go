// internal/handlers/basket.go
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

// BasketHandler manages the per-session basket
type BasketHandler struct {
	sessions  ports.SessionStore
	catalogue *domain.Catalogue
	logger    *slog.Logger
}

// NewBasketHandler creates a new basket handler
func NewBasketHandler(sessions ports.SessionStore, cat *domain.Catalogue, logger *slog.Logger) *BasketHandler {
	return &BasketHandler{
		sessions:  sessions,
		catalogue: cat,
		logger:    logger.With(slog.String("handler", "basket")),
	}
}

// BasketResponse is the basket payload returned by every basket operation
type BasketResponse struct {
	Lines         []domain.BasketLine `json:"lines"`
	TotalQuantity int                 `json:"total_quantity"`
}

func basketResponse(b *domain.Basket) BasketResponse {
	return BasketResponse{
		Lines:         b.Lines,
		TotalQuantity: b.TotalQuantity(),
	}
}

// GetBasket handles GET /api/v1/basket
func (h *BasketHandler) GetBasket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	basket, err := h.sessions.Basket(ctx, middleware.SessionID(ctx))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load basket",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load basket")
		return
	}

	h.respondJSON(w, http.StatusOK, basketResponse(basket))
}

// AddItem handles POST /api/v1/basket/add
func (h *BasketHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	partNumber := domain.NormalizePartNumber(r.FormValue("part_number"))
	part, ok := h.catalogue.Find(partNumber)
	if !ok {
		h.respondError(w, http.StatusNotFound, "Unknown part")
		return
	}

	quantity := 1
	if q := r.FormValue("quantity"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid quantity")
			return
		}
		quantity = parsed
	}

	h.mutateBasket(w, r, func(b *domain.Basket) error {
		return b.Add(part, quantity)
	})
}

// SetQuantity handles POST /api/v1/basket/quantity. Zero or negative removes
// the line.
func (h *BasketHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	partNumber := domain.NormalizePartNumber(r.FormValue("part_number"))
	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	h.mutateBasket(w, r, func(b *domain.Basket) error {
		b.SetQuantity(partNumber, quantity)
		return nil
	})
}

// RemoveItem handles POST /api/v1/basket/remove
func (h *BasketHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	partNumber := domain.NormalizePartNumber(r.FormValue("part_number"))

	h.mutateBasket(w, r, func(b *domain.Basket) error {
		b.Remove(partNumber)
		return nil
	})
}

// Clear handles POST /api/v1/basket/clear
func (h *BasketHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.ClearBasket(ctx, middleware.SessionID(ctx)); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear basket",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to clear basket")
		return
	}

	h.respondJSON(w, http.StatusOK, basketResponse(&domain.Basket{}))
}

// mutateBasket loads, mutates and saves the session basket in one place.
func (h *BasketHandler) mutateBasket(w http.ResponseWriter, r *http.Request, mutate func(*domain.Basket) error) {
	ctx := r.Context()
	sessionID := middleware.SessionID(ctx)

	basket, err := h.sessions.Basket(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load basket",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to load basket")
		return
	}

	if err := mutate(basket); err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			h.respondError(w, http.StatusBadRequest, "Quantity must be at least 1")
			return
		}
		h.respondError(w, http.StatusInternalServerError, "Failed to update basket")
		return
	}

	if err := h.sessions.SaveBasket(ctx, sessionID, basket); err != nil {
		h.logger.ErrorContext(ctx, "failed to save basket",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to save basket")
		return
	}

	h.respondJSON(w, http.StatusOK, basketResponse(basket))
}

func (h *BasketHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *BasketHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
