package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servitech/parts-portal/internal/core/domain"
)

func TestBasket_Add(t *testing.T) {
	part := domain.PartRecord{PartNumber: "AB-100", Description: "Widget bracket", Category: "Brackets"}
	other := domain.PartRecord{PartNumber: "AB-200", Description: "Widget clamp", Category: "Clamps"}

	t.Run("adds_new_line_with_snapshot", func(t *testing.T) {
		var b domain.Basket
		require.NoError(t, b.Add(part, 2))
		require.Len(t, b.Lines, 1)
		assert.Equal(t, "Widget bracket", b.Lines[0].Description)
		assert.Equal(t, 2, b.Lines[0].Quantity)
	})

	t.Run("merges_quantity_for_existing_part", func(t *testing.T) {
		var b domain.Basket
		require.NoError(t, b.Add(part, 2))
		require.NoError(t, b.Add(part, 3))
		require.Len(t, b.Lines, 1)
		assert.Equal(t, 5, b.Lines[0].Quantity)
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		var b domain.Basket
		require.NoError(t, b.Add(part, 1))
		require.NoError(t, b.Add(other, 1))
		require.NoError(t, b.Add(part, 1))
		require.Len(t, b.Lines, 2)
		assert.Equal(t, "AB-100", b.Lines[0].PartNumber)
		assert.Equal(t, "AB-200", b.Lines[1].PartNumber)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		var b domain.Basket
		assert.ErrorIs(t, b.Add(part, 0), domain.ErrInvalidQuantity)
		assert.ErrorIs(t, b.Add(part, -1), domain.ErrInvalidQuantity)
		assert.True(t, b.IsEmpty())
	})
}

func TestBasket_SetQuantity(t *testing.T) {
	part := domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}

	var b domain.Basket
	require.NoError(t, b.Add(part, 2))

	b.SetQuantity("AB-100", 7)
	assert.Equal(t, 7, b.Lines[0].Quantity)

	// unknown part is a no-op, not an error
	b.SetQuantity("NOPE", 3)
	require.Len(t, b.Lines, 1)

	// zero removes the line
	b.SetQuantity("AB-100", 0)
	assert.True(t, b.IsEmpty())
}

func TestBasket_RemoveAndClear(t *testing.T) {
	var b domain.Basket
	require.NoError(t, b.Add(domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}, 1))
	require.NoError(t, b.Add(domain.PartRecord{PartNumber: "AB-200", Category: "Clamps"}, 1))

	b.Remove("AB-100")
	require.Len(t, b.Lines, 1)
	assert.Equal(t, "AB-200", b.Lines[0].PartNumber)

	b.Remove("NOPE")
	require.Len(t, b.Lines, 1)

	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestBasket_TotalQuantity(t *testing.T) {
	var b domain.Basket
	require.NoError(t, b.Add(domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}, 1))
	require.NoError(t, b.Add(domain.PartRecord{PartNumber: "RG-10", Category: "Lab Reagents"}, 2))
	require.NoError(t, b.Add(domain.PartRecord{PartNumber: "AB-200", Category: "Clamps"}, 3))

	assert.Equal(t, 6, b.TotalQuantity())
}
