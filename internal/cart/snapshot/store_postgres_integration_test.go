//go:build integration

package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/pkg/platform/sentinel"
	"lustre/pkg/testutil/containers"
)

func TestPostgresStoreIntegration(t *testing.T) {
	pc := containers.NewPostgresContainer(t)
	ctx := context.Background()

	store := NewPostgresStore(pc.Pool, "luxury-pearl-cart")
	require.NoError(t, store.EnsureSchema(ctx))

	truncate := func(t *testing.T) {
		t.Helper()
		_, err := pc.Pool.Exec(ctx, `TRUNCATE cart_snapshots`)
		require.NoError(t, err)
	}

	t.Run("ensure schema is idempotent", func(t *testing.T) {
		require.NoError(t, store.EnsureSchema(ctx))
	})

	t.Run("load before any write reports not found", func(t *testing.T) {
		truncate(t)
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		truncate(t)
		require.NoError(t, store.Save(ctx, sampleItems()))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-001", items[0].ID)
		require.NotNil(t, items[1].Metadata)
		assert.Equal(t, "South Sea", items[1].Metadata.PearlType)
	})

	t.Run("save upserts the existing row", func(t *testing.T) {
		truncate(t)
		require.NoError(t, store.Save(ctx, sampleItems()))
		require.NoError(t, store.Save(ctx, sampleItems()[:1]))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)

		var rows int
		require.NoError(t, pc.Pool.QueryRow(ctx, `SELECT count(*) FROM cart_snapshots`).Scan(&rows))
		assert.Equal(t, 1, rows)
	})

	t.Run("distinct storage keys are independent rows", func(t *testing.T) {
		truncate(t)
		other := NewPostgresStore(pc.Pool, "cart-two")

		require.NoError(t, store.Save(ctx, sampleItems()))

		_, err := other.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("corrupt payload reads as not found", func(t *testing.T) {
		truncate(t)
		_, err := pc.Pool.Exec(ctx, `
			INSERT INTO cart_snapshots (storage_key, payload)
			VALUES ($1, $2)`,
			"luxury-pearl-cart", []byte(`{"version":99,"items":[]}`),
		)
		require.NoError(t, err)

		_, err = store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
