// internal/core/domain/basket.go
package domain

import "errors"

var (
	// ErrEmptyBasket is returned when an order is submitted from a basket
	// holding no lines.
	ErrEmptyBasket = errors.New("basket is empty")

	// ErrInvalidQuantity is returned for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// BasketLine is a single entry in a session basket. Catalogue fields are
// snapshotted at add time so the basket stays readable even if the catalogue
// is reloaded.
type BasketLine struct {
	PartNumber   string `json:"part_number"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	Make         string `json:"make,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Image        string `json:"image,omitempty"`
	Quantity     int    `json:"quantity"`
}

// Basket is the ordered collection of lines for one session. It is a plain
// value object; persistence lives behind ports.SessionStore.
type Basket struct {
	Lines []BasketLine `json:"lines"`
}

func (b *Basket) find(partNumber string) int {
	for i := range b.Lines {
		if b.Lines[i].PartNumber == partNumber {
			return i
		}
	}
	return -1
}

// Add appends a line or, when the part is already present, increments its
// quantity. Insertion order of first appearance is preserved.
func (b *Basket) Add(part PartRecord, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if i := b.find(part.PartNumber); i >= 0 {
		b.Lines[i].Quantity += quantity
		return nil
	}
	b.Lines = append(b.Lines, BasketLine{
		PartNumber:   part.PartNumber,
		Description:  part.Description,
		Category:     part.Category,
		Make:         part.Make,
		Manufacturer: part.Manufacturer,
		Image:        part.Image,
		Quantity:     quantity,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing line. Zero or negative
// removes the line; unknown part numbers are a silent no-op.
func (b *Basket) SetQuantity(partNumber string, quantity int) {
	if quantity <= 0 {
		b.Remove(partNumber)
		return
	}
	if i := b.find(partNumber); i >= 0 {
		b.Lines[i].Quantity = quantity
	}
}

// Remove drops a line. Unknown part numbers are a silent no-op.
func (b *Basket) Remove(partNumber string) {
	if i := b.find(partNumber); i >= 0 {
		b.Lines = append(b.Lines[:i], b.Lines[i+1:]...)
	}
}

// Clear empties the basket.
func (b *Basket) Clear() {
	b.Lines = nil
}

// IsEmpty reports whether the basket holds no lines.
func (b *Basket) IsEmpty() bool {
	return len(b.Lines) == 0
}

// TotalQuantity sums the quantities across all lines.
func (b *Basket) TotalQuantity() int {
	total := 0
	for _, l := range b.Lines {
		total += l.Quantity
	}
	return total
}
