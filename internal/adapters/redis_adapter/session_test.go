package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/servitech/parts-portal/internal/adapters/redis_adapter"
	"github.com/servitech/parts-portal/internal/core/domain"
	"github.com/servitech/parts-portal/test/helpers"
)

func newTestStore(t *testing.T) (*redis_a.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redis_a.NewSessionStore(client, 30*time.Minute, helpers.TestLogger()), mr
}

func TestSessionStore_BasketRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	basket := &domain.Basket{}
	require.NoError(t, basket.Add(domain.PartRecord{PartNumber: "AB-100", Description: "Widget bracket", Category: "Brackets"}, 2))
	require.NoError(t, basket.Add(domain.PartRecord{PartNumber: "RG-10", Category: "Lab Reagents"}, 1))

	require.NoError(t, store.SaveBasket(ctx, "sess-1", basket))

	got, err := store.Basket(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "AB-100", got.Lines[0].PartNumber)
	assert.Equal(t, 2, got.Lines[0].Quantity)
	assert.Equal(t, "Widget bracket", got.Lines[0].Description)
}

func TestSessionStore_MissingBasketIsEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	got, err := store.Basket(ctx, "unknown-session")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSessionStore_ClearBasket(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	basket := &domain.Basket{}
	require.NoError(t, basket.Add(domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}, 1))
	require.NoError(t, store.SaveBasket(ctx, "sess-1", basket))

	require.NoError(t, store.ClearBasket(ctx, "sess-1"))

	got, err := store.Basket(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSessionStore_BasketsAreIsolatedPerSession(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	basket := &domain.Basket{}
	require.NoError(t, basket.Add(domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}, 1))
	require.NoError(t, store.SaveBasket(ctx, "sess-1", basket))

	got, err := store.Basket(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}

func TestSessionStore_LeaderFlag(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	ok, err := store.IsLeader(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetLeader(ctx, "sess-1"))

	ok, err = store.IsLeader(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// other sessions stay unauthenticated
	ok, err = store.IsLeader(ctx, "sess-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ClearLeader(ctx, "sess-1"))
	ok, err = store.IsLeader(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionStore_SessionExpires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	basket := &domain.Basket{}
	require.NoError(t, basket.Add(domain.PartRecord{PartNumber: "AB-100", Category: "Brackets"}, 1))
	require.NoError(t, store.SaveBasket(ctx, "sess-1", basket))

	mr.FastForward(31 * time.Minute)

	got, err := store.Basket(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
