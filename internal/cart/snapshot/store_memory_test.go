package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/pkg/platform/sentinel"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load before any write reports not found", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, sampleItems()))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-001", items[0].ID)
	})

	t.Run("saving an empty list is a valid snapshot", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, sampleItems()))
		require.NoError(t, store.Save(ctx, nil))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("corrupt payload reads as not found", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Save(ctx, sampleItems()))
		store.Corrupt()

		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
