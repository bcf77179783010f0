package container

import (
	"sync"

	"lustre/internal/cart/models"
)

// View is the derived-aggregate adapter: it subscribes to a container and
// exposes the latest item list and totals to any number of independent
// readers without each of them re-running the reduction. Reads are
// non-destructive copies of the snapshot taken at the last notification.
//
// Because container notifications are synchronous, a reader that consults the
// view immediately after a mutation returns always sees the post-mutation
// aggregates; there is no eventual-consistency window.
type View struct {
	mu          sync.RWMutex
	snap        Snapshot
	unsubscribe func()
}

// NewView builds a view over the container. Priming and subscribing happen
// in one container critical section, so a view created while other
// goroutines mutate the cart can never miss the notification in between.
func NewView(c *Container) *View {
	v := &View{}
	v.unsubscribe = c.subscribeAndPrime(func(snap Snapshot) {
		v.mu.Lock()
		v.snap = snap
		v.mu.Unlock()
	})
	return v
}

// Items returns a copy of the item list as of the last change notification.
func (v *View) Items() []models.LineItem {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return models.CloneItems(v.snap.Items)
}

// Totals returns the derived aggregates as of the last change notification.
func (v *View) Totals() models.Totals {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap.Totals
}

// TotalItems returns the sum of all quantities.
func (v *View) TotalItems() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap.Totals.Items
}

// TotalPrice returns the sum of price times quantity over all items.
func (v *View) TotalPrice() int64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap.Totals.Price
}

// Close detaches the view from the container. The view keeps serving its
// last snapshot afterwards.
func (v *View) Close() {
	v.unsubscribe()
}
