// Package models defines the cart line item types shared by the container,
// snapshot backends, service, and handler layers.
package models

// ItemMetadata carries optional descriptive fields copied from the catalog at
// add-time. Display only; never used in any computation.
type ItemMetadata struct {
	PearlType string `json:"pearl_type,omitempty"`
	Length    string `json:"length,omitempty"`
}

// ItemDescriptor is the catalog-facing shape passed into AddItem: a line item
// without a quantity. Values are treated as opaque and already validated by
// the catalog layer.
type ItemDescriptor struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    int64         `json:"price"`
	Image    string        `json:"image"`
	Metadata *ItemMetadata `json:"metadata,omitempty"`
}

// LineItem is one product's presence in the cart. Price is an integer amount
// in minor currency units, immutable after add. Quantity is the sole mutable
// field and is always >= 1 while the item exists.
type LineItem struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Price    int64         `json:"price"`
	Quantity int           `json:"quantity"`
	Image    string        `json:"image"`
	Metadata *ItemMetadata `json:"metadata,omitempty"`
}

// NewLineItem materializes a descriptor into a line item with the given
// starting quantity.
func NewLineItem(desc ItemDescriptor, quantity int) LineItem {
	return LineItem{
		ID:       desc.ID,
		Name:     desc.Name,
		Price:    desc.Price,
		Quantity: quantity,
		Image:    desc.Image,
		Metadata: desc.Metadata,
	}
}

// Totals are the derived aggregates over a cart's items. They are never
// stored; recompute them from the item list on every read.
type Totals struct {
	Items int   `json:"total_items"`
	Price int64 `json:"total_price"`
}

// ComputeTotals reduces an item list to its aggregates.
func ComputeTotals(items []LineItem) Totals {
	var t Totals
	for _, item := range items {
		t.Items += item.Quantity
		t.Price += item.Price * int64(item.Quantity)
	}
	return t
}

// CloneItems returns a defensive copy of an item list so callers can hold
// snapshots without observing later mutations.
func CloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
