// internal/handlers/stocktake.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// StocktakeHandler handles the engineer side of the stocktake workflow
type StocktakeHandler struct {
	service ports.StocktakeService
	logger  *slog.Logger
}

// NewStocktakeHandler creates a new stocktake handler
func NewStocktakeHandler(service ports.StocktakeService, logger *slog.Logger) *StocktakeHandler {
	return &StocktakeHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stocktake")),
	}
}

// Open handles POST /api/v1/stocktake/open. It returns the engineer's sheet
// for the active run, creating run and sheet as needed.
func (h *StocktakeHandler) Open(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	st, err := h.service.OpenDraft(ctx, r.FormValue("email_user"))
	if err != nil {
		h.respondStocktakeError(w, r, err, "Failed to open stocktake")
		return
	}

	h.respondJSON(w, http.StatusOK, st)
}

// SetItem handles POST /api/v1/stocktake/items
func (h *StocktakeHandler) SetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stocktakeID, err := uuid.Parse(r.FormValue("stocktake_id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid stocktake ID")
		return
	}

	partNumber := domain.NormalizePartNumber(r.FormValue("part_number"))
	if partNumber == "" {
		h.respondError(w, http.StatusBadRequest, "Part number is required")
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}

	st, err := h.service.SetItem(ctx, stocktakeID, partNumber, quantity)
	if err != nil {
		h.respondStocktakeError(w, r, err, "Failed to update stocktake")
		return
	}

	h.respondJSON(w, http.StatusOK, st)
}

// Submit handles POST /api/v1/stocktake/submit
func (h *StocktakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stocktakeID, err := uuid.Parse(r.FormValue("stocktake_id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid stocktake ID")
		return
	}

	acknowledged, _ := strconv.ParseBool(r.FormValue("acknowledge"))
	req := domain.SubmitRequest{
		Acknowledged:  acknowledged,
		ConfirmPhrase: r.FormValue("confirm_text"),
	}

	if err := h.service.Submit(ctx, stocktakeID, req); err != nil {
		h.respondStocktakeError(w, r, err, "Failed to submit stocktake")
		return
	}

	h.logger.InfoContext(ctx, "stocktake submitted",
		slog.String("stocktake_id", stocktakeID.String()))

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Stocktake submitted and locked"})
}

// respondStocktakeError maps workflow errors onto HTTP statuses.
func (h *StocktakeHandler) respondStocktakeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrInvalidEmail):
		h.respondError(w, http.StatusBadRequest, "Invalid engineer email")
	case errors.Is(err, domain.ErrLocked):
		h.respondError(w, http.StatusConflict, "Stocktake is locked")
	case errors.Is(err, domain.ErrConfirmRequired):
		h.respondError(w, http.StatusBadRequest, "Acknowledgement and the confirmation phrase are required")
	case errors.Is(err, domain.ErrEmptyStocktake):
		h.respondError(w, http.StatusBadRequest, "Stocktake has no counted items")
	case errors.Is(err, domain.ErrNoActiveRun):
		h.respondError(w, http.StatusNotFound, "No active stocktake run")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Stocktake not found")
	default:
		h.logger.ErrorContext(r.Context(), fallback,
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

func (h *StocktakeHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *StocktakeHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
