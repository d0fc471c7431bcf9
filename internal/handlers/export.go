// internal/handlers/export.go
package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tealeg/xlsx/v3"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/core/ports"
)

// ExportHandler produces the leader's stocktake downloads
type ExportHandler struct {
	service ports.StocktakeService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.StocktakeService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// TotalsCSV handles GET /api/v1/leader/export/totals.csv
func (h *ExportHandler) TotalsCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, totals, err := h.service.MasterTotals(ctx)
	if err != nil {
		h.respondExportError(w, r, err, "Failed to build master totals")
		return
	}

	records := [][]string{{"Part Number", "Description", "Total"}}
	for _, line := range totals {
		records = append(records, []string{
			line.PartNumber,
			line.Description,
			strconv.Itoa(line.Total),
		})
	}

	h.writeCSV(w, r, "stocktake_totals_"+exportSlug(run.Name), records)
}

// TotalsXLSX handles GET /api/v1/leader/export/totals.xlsx
func (h *ExportHandler) TotalsXLSX(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, totals, err := h.service.MasterTotals(ctx)
	if err != nil {
		h.respondExportError(w, r, err, "Failed to build master totals")
		return
	}

	data, err := h.generateTotalsWorkbook(totals)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate workbook",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate workbook")
		return
	}

	filename := fmt.Sprintf("stocktake_totals_%s_%s.xlsx",
		exportSlug(run.Name), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write workbook response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "totals workbook exported",
		slog.Int("rows", len(totals)),
		slog.String("filename", filename))
}

// AllCSV handles GET /api/v1/leader/export/all.csv: every submitted sheet of
// the active run, one row per counted item.
func (h *ExportHandler) AllCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	run, stocktakes, err := h.service.ListCurrent(ctx)
	if err != nil {
		h.respondExportError(w, r, err, "Failed to list stocktakes")
		return
	}

	records := [][]string{{"Engineer", "Status", "Submitted At", "Part Number", "Description", "Quantity"}}
	for _, st := range stocktakes {
		if st.Status != domain.StatusSubmitted {
			continue
		}
		submittedAt := ""
		if st.SubmittedAt != nil {
			submittedAt = st.SubmittedAt.Format(time.RFC3339)
		}
		for _, item := range st.Items {
			records = append(records, []string{
				st.EngineerEmail,
				string(st.Status),
				submittedAt,
				item.PartNumber,
				item.Description,
				strconv.Itoa(item.Quantity),
			})
		}
	}

	h.writeCSV(w, r, "stocktake_all_"+exportSlug(run.Name), records)
}

// EngineerCSV handles GET /api/v1/leader/export/engineer.csv?stocktake_id=
func (h *ExportHandler) EngineerCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stocktakeID, err := uuid.Parse(r.URL.Query().Get("stocktake_id"))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid stocktake ID")
		return
	}

	st, err := h.service.EngineerSheet(ctx, stocktakeID)
	if err != nil {
		h.respondExportError(w, r, err, "Failed to load stocktake")
		return
	}

	records := [][]string{{"Part Number", "Description", "Quantity"}}
	for _, item := range st.Items {
		records = append(records, []string{
			item.PartNumber,
			item.Description,
			strconv.Itoa(item.Quantity),
		})
	}

	h.writeCSV(w, r, "stocktake_"+exportSlug(st.EngineerEmail), records)
}

// exportSlug makes a run name or engineer address safe for a filename.
func exportSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, slug)
	return strings.Trim(slug, "_")
}

func (h *ExportHandler) generateTotalsWorkbook(totals []domain.MasterTotalLine) ([]byte, error) {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet("Master Totals")
	if err != nil {
		return nil, fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range []string{"Part Number", "Description", "Total"} {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, line := range totals {
		row := sheet.AddRow()
		row.AddCell().Value = line.PartNumber
		row.AddCell().Value = line.Description
		row.AddCell().SetInt(line.Total)
	}

	// tealeg column numbers are 1-based
	sheet.SetColWidth(1, 1, 20)
	sheet.SetColWidth(2, 2, 40)
	sheet.SetColWidth(3, 3, 10)

	var buffer bytes.Buffer
	if err := file.Write(&buffer); err != nil {
		return nil, fmt.Errorf("failed to write workbook to buffer: %w", err)
	}

	return buffer.Bytes(), nil
}

func (h *ExportHandler) writeCSV(w http.ResponseWriter, r *http.Request, name string, records [][]string) {
	ctx := r.Context()

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.WriteAll(records); err != nil {
		h.logger.ErrorContext(ctx, "failed to encode CSV",
			slog.String("error", err.Error()))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate CSV")
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(buffer.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "failed to write CSV response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "csv exported",
		slog.Int("rows", len(records)-1),
		slog.String("filename", filename))
}

func (h *ExportHandler) respondExportError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
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

func (h *ExportHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func (h *ExportHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}
