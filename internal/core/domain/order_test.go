package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servitech/parts-portal/internal/core/domain"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		want      string
		wantError bool
	}{
		{name: "valid_address", email: "joe.bloggs@servitech.co.uk", want: "joe.bloggs@servitech.co.uk"},
		{name: "uppercase_lowered", email: "Joe.Bloggs@Servitech.co.uk", want: "joe.bloggs@servitech.co.uk"},
		{name: "whitespace_trimmed", email: "  joe@servitech.co.uk ", want: "joe@servitech.co.uk"},
		{name: "wrong_domain_rejected", email: "joe@example.com", wantError: true},
		{name: "bare_domain_rejected", email: "@servitech.co.uk", wantError: true},
		{name: "empty_rejected", email: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NormalizeEmail(tt.email)
			if tt.wantError {
				assert.ErrorIs(t, err, domain.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrder_Validate(t *testing.T) {
	valid := func() *domain.Order {
		return &domain.Order{
			EngineerEmail: "joe@servitech.co.uk",
			Kind:          domain.OrderKindParts,
			Items:         []domain.OrderItem{{PartNumber: "AB-100", Quantity: 1}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Order)
		wantErr error
	}{
		{name: "valid_order", mutate: func(o *domain.Order) {}},
		{name: "bad_email", mutate: func(o *domain.Order) { o.EngineerEmail = "joe@gmail.com" }, wantErr: domain.ErrInvalidEmail},
		{name: "no_items", mutate: func(o *domain.Order) { o.Items = nil }, wantErr: domain.ErrEmptyBasket},
		{name: "zero_quantity_item", mutate: func(o *domain.Order) { o.Items[0].Quantity = 0 }, wantErr: domain.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(o)
			err := o.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("bad_kind", func(t *testing.T) {
		o := valid()
		o.Kind = "widgets"
		assert.Error(t, o.Validate())
	})
}

func TestOrderItem_Outstanding(t *testing.T) {
	assert.Equal(t, 3, domain.OrderItem{Quantity: 5, QuantitySent: 2}.Outstanding())
	assert.Equal(t, 0, domain.OrderItem{Quantity: 5, QuantitySent: 5}.Outstanding())
	// over-dispatch never goes negative
	assert.Equal(t, 0, domain.OrderItem{Quantity: 5, QuantitySent: 9}.Outstanding())
}

func TestSplitDispatches(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	recentNote := domain.DispatchNote{ID: uuid.New(), CreatedAt: now.Add(-2 * 24 * time.Hour)}
	boundaryNote := domain.DispatchNote{ID: uuid.New(), CreatedAt: now.Add(-domain.RecentDispatchWindow)}
	oldNote := domain.DispatchNote{ID: uuid.New(), CreatedAt: now.Add(-30 * 24 * time.Hour)}

	recent, older := domain.SplitDispatches([]domain.DispatchNote{recentNote, boundaryNote, oldNote}, now)

	require.Len(t, recent, 1)
	assert.Equal(t, recentNote.ID, recent[0].ID)
	// exactly-on-boundary counts as older
	require.Len(t, older, 2)
	assert.Equal(t, boundaryNote.ID, older[0].ID)
}

func TestLastDispatchByPart(t *testing.T) {
	early := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	notes := []domain.DispatchNote{
		{CreatedAt: late, Items: []domain.DispatchItem{{PartNumber: "AB-100", QuantitySent: 1}}},
		{CreatedAt: early, Items: []domain.DispatchItem{
			{PartNumber: "AB-100", QuantitySent: 2},
			{PartNumber: "AB-200", QuantitySent: 1},
		}},
	}

	last := domain.LastDispatchByPart(notes)
	assert.Equal(t, late, last["AB-100"])
	assert.Equal(t, early, last["AB-200"])
	assert.NotContains(t, last, "AB-300")
}
