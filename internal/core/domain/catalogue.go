// internal/core/domain/catalogue.go
package domain

import (
	"sort"
	"strings"
)

// PartRecord represents a single catalogue line. Records are loaded once at
// startup and never mutated afterwards.
type PartRecord struct {
	PartNumber   string `json:"part_number"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Make         string `json:"make,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Image        string `json:"image,omitempty"`
}

// IsReagent reports whether the record belongs to the reagents view. A
// case-insensitive "reagent" substring on the category is the sole classifier.
func (p PartRecord) IsReagent() bool {
	return strings.Contains(strings.ToLower(p.Category), "reagent")
}

// Catalogue is an immutable, process-lifetime view over the part list.
// Construct one with NewCatalogue and inject it where needed; never share it
// as a mutable global.
type Catalogue struct {
	parts  []PartRecord
	byPart map[string]PartRecord
	hidden map[string]struct{}
}

// NormalizePartNumber trims whitespace and uppercases a part number. Lookups
// and the hidden set are keyed on the normalized form, so part numbers match
// regardless of the case the CSV or the client used.
func NormalizePartNumber(partNumber string) string {
	return strings.ToUpper(strings.TrimSpace(partNumber))
}

// NewCatalogue builds a catalogue from loaded records plus a set of part
// numbers to hide from all listings. Hidden entries stay resolvable through
// Find so that historical snapshots keep their descriptions.
func NewCatalogue(parts []PartRecord, hiddenPartNumbers []string) *Catalogue {
	hidden := make(map[string]struct{}, len(hiddenPartNumbers))
	for _, pn := range hiddenPartNumbers {
		if n := NormalizePartNumber(pn); n != "" {
			hidden[n] = struct{}{}
		}
	}

	byPart := make(map[string]PartRecord, len(parts))
	kept := make([]PartRecord, 0, len(parts))
	for _, p := range parts {
		byPart[NormalizePartNumber(p.PartNumber)] = p
		kept = append(kept, p)
	}

	return &Catalogue{parts: kept, byPart: byPart, hidden: hidden}
}

// Find returns the record for a part number, matched case-insensitively.
func (c *Catalogue) Find(partNumber string) (PartRecord, bool) {
	p, ok := c.byPart[NormalizePartNumber(partNumber)]
	return p, ok
}

// Len returns the number of loaded records, hidden ones included.
func (c *Catalogue) Len() int {
	return len(c.parts)
}

func (c *Catalogue) isHidden(p PartRecord) bool {
	_, ok := c.hidden[NormalizePartNumber(p.PartNumber)]
	return ok
}

// Parts returns the non-reagent view, hidden entries excluded.
func (c *Catalogue) Parts() []PartRecord {
	return c.collect(func(p PartRecord) bool { return !p.IsReagent() })
}

// Reagents returns the reagent view, hidden entries excluded.
func (c *Catalogue) Reagents() []PartRecord {
	return c.collect(PartRecord.IsReagent)
}

func (c *Catalogue) collect(keep func(PartRecord) bool) []PartRecord {
	out := make([]PartRecord, 0, len(c.parts))
	for _, p := range c.parts {
		if keep(p) && !c.isHidden(p) {
			out = append(out, p)
		}
	}
	return out
}

// CatalogueFilter holds the optional match criteria for a listing query.
type CatalogueFilter struct {
	Category   string
	SearchTerm string
}

// Filter applies a filter to a previously selected view. The search term is a
// case-insensitive substring match across part number, description, make and
// manufacturer; the category, when set, must match exactly.
func Filter(parts []PartRecord, f CatalogueFilter) []PartRecord {
	search := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	out := make([]PartRecord, 0, len(parts))
	for _, p := range parts {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p PartRecord, search string) bool {
	return strings.Contains(strings.ToLower(p.PartNumber), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Make), search) ||
		strings.Contains(strings.ToLower(p.Manufacturer), search)
}

// Categories returns the sorted distinct categories of the given view.
func Categories(parts []PartRecord) []string {
	seen := make(map[string]struct{})
	for _, p := range parts {
		seen[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
