//go:build integration

package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/pkg/platform/sentinel"
	"lustre/pkg/testutil/containers"
)

func TestRedisStoreIntegration(t *testing.T) {
	rc := containers.NewRedisContainer(t)
	ctx := context.Background()

	t.Run("load before any write reports not found", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		store := NewRedisStore(rc.Client, "luxury-pearl-cart")

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		store := NewRedisStore(rc.Client, "luxury-pearl-cart")

		require.NoError(t, store.Save(ctx, sampleItems()))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-001", items[0].ID)
		assert.Equal(t, 2, items[1].Quantity)
	})

	t.Run("distinct storage keys are independent", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		first := NewRedisStore(rc.Client, "cart-one")
		second := NewRedisStore(rc.Client, "cart-two")

		require.NoError(t, first.Save(ctx, sampleItems()))

		_, err := second.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("corrupt payload reads as not found", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		store := NewRedisStore(rc.Client, "luxury-pearl-cart")

		require.NoError(t, rc.Client.Set(ctx, "cart:snapshot:luxury-pearl-cart", "{not json", 0).Err())

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("key carries no expiry", func(t *testing.T) {
		require.NoError(t, rc.FlushAll(ctx))
		store := NewRedisStore(rc.Client, "luxury-pearl-cart")
		require.NoError(t, store.Save(ctx, sampleItems()))

		ttl, err := rc.Client.TTL(ctx, "cart:snapshot:luxury-pearl-cart").Result()
		require.NoError(t, err)
		assert.Less(t, ttl, time.Duration(0))
	})
}
