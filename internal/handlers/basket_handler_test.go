package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/internal/handlers"
	"github.com/servitech/parts-portal/internal/handlers/middleware"
	"github.com/servitech/parts-portal/test/helpers"
	"github.com/servitech/parts-portal/test/mocks"
)

func newBasketHandler(t *testing.T) (*handlers.BasketHandler, *mocks.MockSessionStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mocks.NewMockSessionStore(ctrl)
	h := handlers.NewBasketHandler(sessions, testCatalogue(), helpers.TestLogger())
	return h, sessions
}

func seededBasket() *domain.Basket {
	return &domain.Basket{Lines: []domain.BasketLine{
		{PartNumber: "AB-100", Description: "Widget bracket", Category: "Brackets", Quantity: 2},
		{PartNumber: "RG-10", Description: "Cleaning reagent", Category: "Lab Reagents", Quantity: 1},
	}}
}

func TestBasketHandler_GetBasket(t *testing.T) {
	h, sessions := newBasketHandler(t)

	sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(seededBasket(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/basket", nil)
	w := httptest.NewRecorder()
	middleware.Session(http.HandlerFunc(h.GetBasket)).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_quantity":3`)
	assert.Contains(t, w.Body.String(), "AB-100")
}

func TestBasketHandler_AddItem(t *testing.T) {
	t.Run("adds_known_part_with_default_quantity", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(&domain.Basket{}, nil)
		sessions.EXPECT().
			SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
				require.Len(t, b.Lines, 1)
				assert.Equal(t, "AB-100", b.Lines[0].PartNumber)
				assert.Equal(t, "Widget bracket", b.Lines[0].Description)
				assert.Equal(t, 1, b.Lines[0].Quantity)
				return nil
			})

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"ab-100"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_quantity":1`)
	})

	t.Run("merges_into_existing_line", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(seededBasket(), nil)
		sessions.EXPECT().
			SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
				require.Len(t, b.Lines, 2)
				assert.Equal(t, 5, b.Lines[0].Quantity)
				return nil
			})

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"3"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_quantity":6`)
	})

	t.Run("matches_lowercase_catalogue_entries", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(&domain.Basket{}, nil)
		sessions.EXPECT().
			SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
				require.Len(t, b.Lines, 1)
				// the line keeps the part number as the catalogue lists it
				assert.Equal(t, "mk2-sensor", b.Lines[0].PartNumber)
				return nil
			})

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"mk2-sensor"},
		})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown_part_is_not_found", func(t *testing.T) {
		h, _ := newBasketHandler(t)

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"NOPE-1"},
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown part")
	})

	t.Run("rejects_zero_quantity", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(&domain.Basket{}, nil)

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"0"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Quantity must be at least 1")
	})

	t.Run("rejects_malformed_quantity", func(t *testing.T) {
		h, _ := newBasketHandler(t)

		w := postForm(t, http.HandlerFunc(h.AddItem), "/api/v1/basket/add", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"lots"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBasketHandler_SetQuantity(t *testing.T) {
	t.Run("updates_line_quantity", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(seededBasket(), nil)
		sessions.EXPECT().
			SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
				assert.Equal(t, 9, b.Lines[0].Quantity)
				return nil
			})

		w := postForm(t, http.HandlerFunc(h.SetQuantity), "/api/v1/basket/quantity", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"9"},
		})

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("zero_removes_the_line", func(t *testing.T) {
		h, sessions := newBasketHandler(t)

		sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(seededBasket(), nil)
		sessions.EXPECT().
			SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
				require.Len(t, b.Lines, 1)
				assert.Equal(t, "RG-10", b.Lines[0].PartNumber)
				return nil
			})

		w := postForm(t, http.HandlerFunc(h.SetQuantity), "/api/v1/basket/quantity", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"0"},
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_quantity":1`)
	})

	t.Run("rejects_malformed_quantity", func(t *testing.T) {
		h, _ := newBasketHandler(t)

		w := postForm(t, http.HandlerFunc(h.SetQuantity), "/api/v1/basket/quantity", url.Values{
			"part_number": {"AB-100"},
			"quantity":    {"nine"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid quantity")
	})
}

func TestBasketHandler_RemoveItem(t *testing.T) {
	h, sessions := newBasketHandler(t)

	sessions.EXPECT().Basket(gomock.Any(), gomock.Any()).Return(seededBasket(), nil)
	sessions.EXPECT().
		SaveBasket(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ string, b *domain.Basket) error {
			require.Len(t, b.Lines, 1)
			assert.Equal(t, "AB-100", b.Lines[0].PartNumber)
			return nil
		})

	w := postForm(t, http.HandlerFunc(h.RemoveItem), "/api/v1/basket/remove", url.Values{
		"part_number": {"RG-10"},
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestBasketHandler_Clear(t *testing.T) {
	h, sessions := newBasketHandler(t)

	sessions.EXPECT().ClearBasket(gomock.Any(), gomock.Any()).Return(nil)

	w := postForm(t, http.HandlerFunc(h.Clear), "/api/v1/basket/clear", url.Values{})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_quantity":0`)
}
