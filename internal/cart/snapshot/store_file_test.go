package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/pkg/platform/sentinel"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load before any write reports not found", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "luxury-pearl-cart")
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("round trip", func(t *testing.T) {
		store := NewFileStore(t.TempDir(), "luxury-pearl-cart")
		require.NoError(t, store.Save(ctx, sampleItems()))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p-004", items[1].ID)
	})

	t.Run("storage key names the file", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir, "luxury-pearl-cart")
		require.NoError(t, store.Save(ctx, sampleItems()))

		_, err := os.Stat(filepath.Join(dir, "luxury-pearl-cart.json"))
		assert.NoError(t, err)
	})

	t.Run("distinct keys are independent slots", func(t *testing.T) {
		dir := t.TempDir()
		first := NewFileStore(dir, "cart-one")
		second := NewFileStore(dir, "cart-two")

		require.NoError(t, first.Save(ctx, sampleItems()))

		_, err := second.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("corrupt file reads as not found", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "cart.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store := NewFileStoreAt(path)
		_, err := store.Load(ctx)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("save overwrites atomically", func(t *testing.T) {
		dir := t.TempDir()
		store := NewFileStore(dir, "cart")
		require.NoError(t, store.Save(ctx, sampleItems()))
		require.NoError(t, store.Save(ctx, sampleItems()[:1]))

		items, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)

		// No temp file left behind.
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cart.json", entries[0].Name())
	})
}
