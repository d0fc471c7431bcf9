// internal/core/domain/order.go
package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderKind selects the mailbox an order is routed to.
type OrderKind string

const (
	OrderKindParts    OrderKind = "parts"
	OrderKindReagents OrderKind = "reagents"
)

// IsValid checks if the order kind is one of the known values.
func (k OrderKind) IsValid() bool {
	return k == OrderKindParts || k == OrderKindReagents
}

// EmailDomain is the only domain accepted for engineer addresses.
const EmailDomain = "@servitech.co.uk"

var (
	// ErrInvalidEmail is returned for addresses outside the company domain.
	ErrInvalidEmail = errors.New("email must belong to " + EmailDomain)

	// ErrNotFound is the generic lookup miss for orders and stocktakes.
	ErrNotFound = errors.New("not found")

	// ErrNotifyFailed marks a submission aborted because the notification
	// could not be sent. Nothing is persisted in that case.
	ErrNotifyFailed = errors.New("notification failed")

	// ErrInvalidSelection is returned when a resubmission selects no lines
	// or references items outside the source order.
	ErrInvalidSelection = errors.New("invalid item selection")
)

// NormalizeEmail lowercases and trims an engineer address and validates its
// domain.
func NormalizeEmail(email string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	if e == "" || !strings.HasSuffix(e, EmailDomain) || e == EmailDomain {
		return "", ErrInvalidEmail
	}
	return e, nil
}

// OrderItem is one line of a persisted order. QuantitySent is maintained
// externally as dispatch notes arrive; a line stays active while
// Quantity > QuantitySent.
type OrderItem struct {
	ID           int64     `json:"id"`
	OrderID      uuid.UUID `json:"order_id"`
	PartNumber   string    `json:"part_number"`
	Description  string    `json:"description"`
	Quantity     int       `json:"quantity"`
	QuantitySent int       `json:"quantity_sent"`
	BackOrder    bool      `json:"back_order"`
}

// Outstanding returns the quantity not yet covered by dispatches.
func (i OrderItem) Outstanding() int {
	if n := i.Quantity - i.QuantitySent; n > 0 {
		return n
	}
	return 0
}

// Order is a submitted basket of one kind for one engineer.
type Order struct {
	ID            uuid.UUID   `json:"id"`
	EngineerEmail string      `json:"engineer_email"`
	Kind          OrderKind   `json:"kind"`
	Comments      string      `json:"comments,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items,omitempty"`
}

// Validate checks the order is submittable.
func (o *Order) Validate() error {
	if _, err := NormalizeEmail(o.EngineerEmail); err != nil {
		return err
	}
	if !o.Kind.IsValid() {
		return fmt.Errorf("invalid order kind %q", o.Kind)
	}
	if len(o.Items) == 0 {
		return ErrEmptyBasket
	}
	for _, it := range o.Items {
		if it.Quantity < 1 {
			return fmt.Errorf("part %s: %w", it.PartNumber, ErrInvalidQuantity)
		}
	}
	return nil
}

// DispatchItem is one shipped line on a dispatch note.
type DispatchItem struct {
	ID           int64     `json:"id"`
	NoteID       uuid.UUID `json:"note_id"`
	PartNumber   string    `json:"part_number"`
	Description  string    `json:"description"`
	QuantitySent int       `json:"quantity_sent"`
}

// DispatchNote records a shipment against an engineer. Notes are authored by
// the warehouse system; the portal only reads them.
type DispatchNote struct {
	ID            uuid.UUID      `json:"id"`
	EngineerEmail string         `json:"engineer_email"`
	PickerName    string         `json:"picker_name"`
	CreatedAt     time.Time      `json:"created_at"`
	Items         []DispatchItem `json:"items,omitempty"`
}

// RecentDispatchWindow splits the my-orders dispatch listing into recent and
// older groups.
const RecentDispatchWindow = 7 * 24 * time.Hour

// SplitDispatches partitions notes around the recent window relative to now.
// Input order is preserved within each group.
func SplitDispatches(notes []DispatchNote, now time.Time) (recent, older []DispatchNote) {
	cutoff := now.Add(-RecentDispatchWindow)
	for _, n := range notes {
		if n.CreatedAt.After(cutoff) {
			recent = append(recent, n)
		} else {
			older = append(older, n)
		}
	}
	return recent, older
}

// LastDispatchByPart maps each part number to the latest dispatch time seen
// across the given notes.
func LastDispatchByPart(notes []DispatchNote) map[string]time.Time {
	out := make(map[string]time.Time)
	for _, n := range notes {
		for _, it := range n.Items {
			if last, ok := out[it.PartNumber]; !ok || n.CreatedAt.After(last) {
				out[it.PartNumber] = n.CreatedAt
			}
		}
	}
	return out
}
