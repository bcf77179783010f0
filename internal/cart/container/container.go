// Package container implements the cart state container: the sole owner and
// writer of the cart's line items. Mutations are atomic with respect to the
// item list, notify subscribers synchronously before returning, and write
// through to an injected snapshot store when one is configured.
//
// The container is constructed explicitly and passed by reference to its
// consumers; there is no package-level singleton, which keeps lifecycle and
// test isolation explicit.
package container

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"lustre/internal/cart/models"
	"lustre/internal/cart/snapshot"
	"lustre/pkg/platform/sentinel"
)

// Validator is an optional pre-mutation hook. It receives the prospective
// post-mutation quantity for an item and may reject it, e.g. to enforce a
// stock ceiling. No validator is installed by default: stock checks are the
// caller's responsibility.
type Validator func(ctx context.Context, itemID string, quantity int) error

// Snapshot is the read view handed to subscribers and returned by State.
// Items is a defensive copy; holding it never observes later mutations.
type Snapshot struct {
	Items  []models.LineItem
	Totals models.Totals
}

// Container owns the canonical ordered list of cart line items.
//
// All operations are safe for concurrent use. Notifications and the
// write-through persistence run while the mutation lock is held, so a
// subscriber observing a notification always sees the state the mutation
// produced, in mutation order. Subscriber callbacks must therefore work from
// the snapshot they receive and must not call back into the container.
type Container struct {
	mu        sync.RWMutex
	items     []models.LineItem
	subs      map[int]func(Snapshot)
	nextSubID int

	snapshots     snapshot.Store
	validate      Validator
	logger        *slog.Logger
	onPersistFail func()
}

// Option configures a Container.
type Option func(*Container)

// WithSnapshots enables write-through persistence and hydrate-on-construct
// against the given store.
func WithSnapshots(store snapshot.Store) Option {
	return func(c *Container) { c.snapshots = store }
}

// WithValidator installs a pre-mutation quantity validation hook.
func WithValidator(v Validator) Option {
	return func(c *Container) { c.validate = v }
}

// WithLogger sets the logger used for persistence failure reporting.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) { c.logger = logger }
}

// WithPersistFailureHook registers fn to run whenever a write-through save
// fails, so callers can count failures without the container depending on a
// metrics registry.
func WithPersistFailureHook(fn func()) Option {
	return func(c *Container) { c.onPersistFail = fn }
}

// New constructs a container and, when a snapshot store is configured,
// hydrates it from the persisted slot. An absent, corrupt, or unreadable
// snapshot yields an empty cart; hydration never fails construction.
func New(ctx context.Context, opts ...Option) *Container {
	c := &Container{
		subs:   make(map[int]func(Snapshot)),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.hydrate(ctx)
	return c
}

func (c *Container) hydrate(ctx context.Context) {
	if c.snapshots == nil {
		return
	}
	items, err := c.snapshots.Load(ctx)
	if err != nil {
		if !errors.Is(err, sentinel.ErrNotFound) {
			c.logger.WarnContext(ctx, "cart snapshot load failed, starting empty", "error", err)
		}
		return
	}
	c.items = sanitize(items)
}

// sanitize re-establishes the list invariants on hydrated data: duplicate ids
// merge into the first occurrence and non-positive quantities are dropped.
func sanitize(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if i, ok := index[item.ID]; ok {
			out[i].Quantity += item.Quantity
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out
}

// AddItem merges the descriptor into the cart: an existing item's quantity is
// incremented by quantity, otherwise a new line item is appended. A quantity
// below 1 is treated as 1. The list never grows by more than one entry and
// ids stay unique. Fails only when a validation hook rejects the resulting
// quantity.
func (c *Container) AddItem(ctx context.Context, desc models.ItemDescriptor, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := quantity
	if i := c.indexOf(desc.ID); i >= 0 {
		next = c.items[i].Quantity + quantity
	}
	if c.validate != nil {
		if err := c.validate(ctx, desc.ID, next); err != nil {
			return err
		}
	}

	if i := c.indexOf(desc.ID); i >= 0 {
		c.items[i].Quantity = next
	} else {
		c.items = append(c.items, models.NewLineItem(desc, quantity))
	}

	c.persistAndNotifyLocked(ctx)
	return nil
}

// RemoveItem deletes the line item with the matching id. Removing an absent
// id is a no-op, not an error.
func (c *Container) RemoveItem(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)

	c.persistAndNotifyLocked(ctx)
	return nil
}

// UpdateQuantity sets the quantity of the matching item. A quantity <= 0
// removes the item; an unknown id is a no-op. Neither is an error: clamping
// and removal are the defined behavior. Fails only when a validation hook
// rejects the new quantity.
func (c *Container) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	if quantity <= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
		c.persistAndNotifyLocked(ctx)
		return nil
	}
	if c.validate != nil {
		if err := c.validate(ctx, id, quantity); err != nil {
			return err
		}
	}
	c.items[i].Quantity = quantity

	c.persistAndNotifyLocked(ctx)
	return nil
}

// Clear empties the item list unconditionally.
func (c *Container) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil

	c.persistAndNotifyLocked(ctx)
	return nil
}

// Items returns a copy of the current ordered item list.
func (c *Container) Items() []models.LineItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.CloneItems(c.items)
}

// Totals recomputes the derived aggregates from the current item list.
func (c *Container) Totals() models.Totals {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return models.ComputeTotals(c.items)
}

// State returns the item list and totals as one consistent snapshot.
func (c *Container) State() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to be called synchronously after every mutation with
// a snapshot of the post-mutation state. The returned function removes the
// subscription; calling it more than once is harmless.
func (c *Container) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscribeLocked(fn)
}

func (c *Container) subscribeLocked(fn func(Snapshot)) func() {
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = fn

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}

// subscribeAndPrime registers fn and immediately invokes it with the current
// snapshot inside the same critical section, so no concurrent mutation's
// notification can fall between the initial read and the subscription.
func (c *Container) subscribeAndPrime(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	unsubscribe := c.subscribeLocked(fn)
	fn(c.snapshotLocked())
	return unsubscribe
}

func (c *Container) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Container) snapshotLocked() Snapshot {
	return Snapshot{
		Items:  models.CloneItems(c.items),
		Totals: models.ComputeTotals(c.items),
	}
}

// persistAndNotifyLocked runs the write-through persistence and subscriber
// notifications for a completed mutation. A failed write is logged and the
// in-memory state stays authoritative for the session; nothing rolls back.
func (c *Container) persistAndNotifyLocked(ctx context.Context) {
	snap := c.snapshotLocked()

	if c.snapshots != nil {
		if err := c.snapshots.Save(ctx, snap.Items); err != nil {
			c.logger.WarnContext(ctx, "cart snapshot write failed, in-memory state retained",
				"error", err,
				"total_items", snap.Totals.Items,
			)
			if c.onPersistFail != nil {
				c.onPersistFail()
			}
		}
	}

	for _, fn := range c.subs {
		fn(snap)
	}
}
