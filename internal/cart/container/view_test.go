package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/internal/cart/models"
)

func TestView(t *testing.T) {
	ctx := context.Background()

	t.Run("primes with current state", func(t *testing.T) {
		c := New(ctx)
		require.NoError(t, c.AddItem(ctx, descriptor("a", 100), 2))

		v := NewView(c)
		defer v.Close()

		assert.Equal(t, 2, v.TotalItems())
		assert.Equal(t, int64(200), v.TotalPrice())
	})

	t.Run("aggregates are fresh immediately after a mutation returns", func(t *testing.T) {
		c := New(ctx)
		v := NewView(c)
		defer v.Close()

		require.NoError(t, c.AddItem(ctx, descriptor("a", 100), 1))
		assert.Equal(t, models.Totals{Items: 1, Price: 100}, v.Totals())

		require.NoError(t, c.AddItem(ctx, descriptor("b", 50), 3))
		assert.Equal(t, models.Totals{Items: 4, Price: 250}, v.Totals())

		require.NoError(t, c.UpdateQuantity(ctx, "b", 1))
		assert.Equal(t, models.Totals{Items: 2, Price: 150}, v.Totals())

		require.NoError(t, c.Clear(ctx))
		assert.Equal(t, models.Totals{}, v.Totals())
	})

	t.Run("items are copies of the last snapshot", func(t *testing.T) {
		c := New(ctx)
		v := NewView(c)
		defer v.Close()

		require.NoError(t, c.AddItem(ctx, descriptor("a", 100), 1))
		items := v.Items()
		require.Len(t, items, 1)

		items[0].Quantity = 99
		assert.Equal(t, 1, v.Items()[0].Quantity)
	})

	t.Run("multiple views observe the same container independently", func(t *testing.T) {
		c := New(ctx)
		first := NewView(c)
		defer first.Close()
		second := NewView(c)
		defer second.Close()

		require.NoError(t, c.AddItem(ctx, descriptor("a", 100), 1))

		assert.Equal(t, first.Totals(), second.Totals())
	})

	t.Run("creation concurrent with a mutation never leaves the view stale", func(t *testing.T) {
		c := New(ctx)

		// The mutation either lands before the view primes (the prime
		// sees it) or after it subscribes (the notification delivers
		// it); there must be no window where it does neither.
		for i := 0; i < 200; i++ {
			done := make(chan struct{})
			go func() {
				defer close(done)
				_ = c.AddItem(ctx, descriptor("a", 100), 1)
			}()

			v := NewView(c)
			<-done

			assert.Equal(t, c.Totals(), v.Totals())
			v.Close()
		}
	})

	t.Run("closed view keeps serving its last snapshot", func(t *testing.T) {
		c := New(ctx)
		v := NewView(c)

		require.NoError(t, c.AddItem(ctx, descriptor("a", 100), 1))
		v.Close()
		require.NoError(t, c.AddItem(ctx, descriptor("b", 50), 1))

		assert.Equal(t, models.Totals{Items: 1, Price: 100}, v.Totals())
	})
}
