// internal/handlers/leader.go
package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
)

// LeaderHandler handles the team-leader area: login, the run overview and
// unlock/reset of submitted sheets.
type LeaderHandler struct {
	service  ports.StocktakeService
	sessions ports.SessionStore
	secret   string
	logger   *slog.Logger
}

// NewLeaderHandler creates a new leader handler
func NewLeaderHandler(service ports.StocktakeService, sessions ports.SessionStore, secret string, logger *slog.Logger) *LeaderHandler {
	return &LeaderHandler{
		service:  service,
		sessions: sessions,
		secret:   secret,
		logger:   logger.With(slog.String("handler", "leader")),
	}
}

// Login handles POST /api/v1/leader/login
func (h *LeaderHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	supplied := r.FormValue("secret")
	if subtle.ConstantTimeCompare([]byte(supplied), []byte(h.secret)) != 1 {
		h.logger.WarnContext(ctx, "leader login rejected")
		h.respondError(w, http.StatusUnauthorized, "Invalid secret")
		return
	}

	if err := h.sessions.SetLeader(ctx, middleware.SessionID(ctx)); err != nil {
		h.logger.ErrorContext(ctx, "failed to mark leader session",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged in as leader"})
}

// Logout handles POST /api/v1/leader/logout
func (h *LeaderHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.ClearLeader(ctx, middleware.SessionID(ctx)); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear leader session",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// RunOverview is the leader view of the active run.
type RunOverview struct {
	Run        *domain.StocktakeRun `json:"run"`
	Stocktakes []domain.Stocktake   `json:"stocktakes"`
	Submitted  int                  `json:"submitted"`
	Drafts     int                  `json:"drafts"`
}

// ListStocktakes handles GET /api/v1/leader/stocktakes
func (h *LeaderHandler) ListStocktakes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, stocktakes, err := h.service.ListCurrent(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRun) {
			h.respondError(w, http.StatusNotFound, "No active stocktake run")
			return
		}
		h.logger.ErrorContext(ctx, "failed to list stocktakes",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to list stocktakes")
		return
	}

	overview := RunOverview{Run: run, Stocktakes: stocktakes}
	for _, st := range stocktakes {
		if st.Status == domain.StatusSubmitted {
			overview.Submitted++
		} else {
			overview.Drafts++
		}
	}

	h.respondJSON(w, http.StatusOK, overview)
}

// Unlock handles POST /api/v1/leader/stocktakes/{id}/unlock
func (h *LeaderHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.reopen(w, r, "unlock")
}

// Reset handles POST /api/v1/leader/stocktakes/{id}/reset
func (h *LeaderHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.reopen(w, r, "reset")
}

func (h *LeaderHandler) reopen(w http.ResponseWriter, r *http.Request, action string) {
	ctx := r.Context()

	stocktakeID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid stocktake ID")
		return
	}

	switch action {
	case "reset":
		err = h.service.Reset(ctx, stocktakeID)
	default:
		err = h.service.Unlock(ctx, stocktakeID)
	}

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.respondError(w, http.StatusNotFound, "Stocktake not found")
			return
		}
		h.logger.ErrorContext(ctx, "failed to reopen stocktake",
			slog.String("stocktake_id", stocktakeID.String()),
			slog.String("action", action),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to reopen stocktake")
		return
	}

	h.logger.InfoContext(ctx, "stocktake reopened",
		slog.String("stocktake_id", stocktakeID.String()),
		slog.String("action", action))

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Stocktake reopened",
		"action":  action,
	})
}

func (h *LeaderHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *LeaderHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
