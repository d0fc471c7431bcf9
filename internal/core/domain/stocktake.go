// internal/core/domain/stocktake.go
package domain

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// StocktakeStatus tracks the lifecycle of one engineer's count sheet.
type StocktakeStatus string

const (
	// StatusDraft allows edits; counts are held but not yet aggregated.
	StatusDraft StocktakeStatus = "draft"
	// StatusSubmitted locks the sheet and feeds it into the master totals.
	StatusSubmitted StocktakeStatus = "submitted"
)

// ConfirmPhrase must be typed by the engineer to submit a stocktake.
const ConfirmPhrase = "CONFIRM"

var (
	// ErrLocked is returned when a submitted sheet is edited or resubmitted.
	ErrLocked = errors.New("stocktake is locked")

	// ErrNotLeader guards the leader-only operations.
	ErrNotLeader = errors.New("leader access required")

	// ErrNoActiveRun is returned when no stocktake run is open.
	ErrNoActiveRun = errors.New("no active stocktake run")

	// ErrConfirmRequired is returned when the acknowledgement flag or the
	// confirmation phrase is missing on submit.
	ErrConfirmRequired = errors.New("submission not confirmed")

	// ErrEmptyStocktake rejects submitting a sheet with no counted items.
	ErrEmptyStocktake = errors.New("stocktake has no items")
)

// MatchesConfirmPhrase checks the typed phrase, ignoring case and surrounding
// whitespace.
func MatchesConfirmPhrase(phrase string) bool {
	return strings.EqualFold(strings.TrimSpace(phrase), ConfirmPhrase)
}

// StocktakeRun is one counting campaign. At most one run is active at a time.
type StocktakeRun struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// StocktakeItem is one counted part on a sheet. Quantity zero is expressed by
// deleting the row, so persisted quantities are always positive.
type StocktakeItem struct {
	ID          int64     `json:"id"`
	StocktakeID uuid.UUID `json:"stocktake_id"`
	PartNumber  string    `json:"part_number"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Stocktake is one engineer's sheet within a run. A run holds at most one
// sheet per engineer.
type Stocktake struct {
	ID            uuid.UUID       `json:"id"`
	RunID         uuid.UUID       `json:"run_id"`
	EngineerEmail string          `json:"engineer_email"`
	Status        StocktakeStatus `json:"status"`
	SubmittedAt   *time.Time      `json:"submitted_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []StocktakeItem `json:"items,omitempty"`
}

// IsLocked reports whether the sheet rejects edits.
func (s *Stocktake) IsLocked() bool {
	return s.Status == StatusSubmitted
}

// SubmitRequest carries the engineer's confirmation of a submit.
type SubmitRequest struct {
	Acknowledged  bool   `json:"acknowledged"`
	ConfirmPhrase string `json:"confirm_phrase"`
}

// Validate enforces the two-step confirmation.
func (r SubmitRequest) Validate() error {
	if !r.Acknowledged || !MatchesConfirmPhrase(r.ConfirmPhrase) {
		return ErrConfirmRequired
	}
	return nil
}

// MasterTotalLine is one row of the leader's aggregated view.
type MasterTotalLine struct {
	PartNumber  string `json:"part_number"`
	Description string `json:"description"`
	Total       int    `json:"total"`
}

// MasterTotals sums items across submitted sheets only. Descriptions come
// from the catalogue; parts no longer listed keep an empty description.
func MasterTotals(stocktakes []Stocktake, catalogue *Catalogue) []MasterTotalLine {
	totals := make(map[string]int)
	for _, st := range stocktakes {
		if st.Status != StatusSubmitted {
			continue
		}
		for _, it := range st.Items {
			totals[it.PartNumber] += it.Quantity
		}
	}

	out := make([]MasterTotalLine, 0, len(totals))
	for pn, total := range totals {
		line := MasterTotalLine{PartNumber: pn, Total: total}
		if rec, ok := catalogue.Find(pn); ok {
			line.Description = rec.Description
		}
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartNumber < out[j].PartNumber })
	return out
}
