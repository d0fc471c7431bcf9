// internal/handlers/catalogue.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/servitech/parts-portal/internal/adapters/catalogue"
	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// CatalogueHandler serves the part catalogue and part images
type CatalogueHandler struct {
	catalogue   *domain.Catalogue
	images      ports.ImageStore
	imageExpiry time.Duration
	logger      *slog.Logger
}

// NewCatalogueHandler creates a new catalogue handler
func NewCatalogueHandler(cat *domain.Catalogue, images ports.ImageStore, imageExpiry time.Duration, logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{
		catalogue:   cat,
		images:      images,
		imageExpiry: imageExpiry,
		logger:      logger.With(slog.String("handler", "catalogue")),
	}
}

// CatalogueResponse is the listing payload for both the parts and reagents views
type CatalogueResponse struct {
	Parts      []domain.PartRecord `json:"parts"`
	Categories []string            `json:"categories"`
	Total      int                 `json:"total"`
}

// ListParts handles GET /api/v1/catalogue
func (h *CatalogueHandler) ListParts(w http.ResponseWriter, r *http.Request) {
	filter := domain.CatalogueFilter{
		Category:   r.URL.Query().Get("category"),
		SearchTerm: r.URL.Query().Get("search"),
	}

	all := h.catalogue.Parts()
	parts := domain.Filter(all, filter)

	h.respondJSON(w, http.StatusOK, CatalogueResponse{
		Parts:      parts,
		Categories: domain.Categories(all),
		Total:      len(parts),
	})
}

// ListReagents handles GET /api/v1/reagents
func (h *CatalogueHandler) ListReagents(w http.ResponseWriter, r *http.Request) {
	filter := domain.CatalogueFilter{
		SearchTerm: r.URL.Query().Get("search"),
	}

	all := h.catalogue.Reagents()
	reagents := domain.Filter(all, filter)

	h.respondJSON(w, http.StatusOK, CatalogueResponse{
		Parts:      reagents,
		Categories: domain.Categories(all),
		Total:      len(reagents),
	})
}

// PartImage handles GET /api/v1/parts/{part}/image and redirects to a
// presigned object URL. Hidden parts still resolve here so old order links
// keep working.
func (h *CatalogueHandler) PartImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	partNumber := domain.NormalizePartNumber(r.PathValue("part"))

	if _, ok := h.catalogue.Find(partNumber); !ok {
		h.respondError(w, http.StatusNotFound, "Unknown part")
		return
	}

	key := catalogue.ImageKey(partNumber)

	exists, err := h.images.Exists(ctx, key)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check image",
			slog.String("part_number", partNumber),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to locate image")
		return
	}
	if !exists {
		h.respondError(w, http.StatusNotFound, "No image for part")
		return
	}

	url, err := h.images.PresignedURL(ctx, key, h.imageExpiry)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to presign image",
			slog.String("part_number", partNumber),
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to resolve image")
		return
	}

	http.Redirect(w, r, url, http.StatusFound)
}

func (h *CatalogueHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *CatalogueHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
