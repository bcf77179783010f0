// Package audit defines the storefront audit event model and publisher
// contract. Domain services emit events through a Publisher; sinks decide
// where they land (structured logs in development, Kafka in production).
package audit

import (
	"context"
	"log/slog"
	"time"
)

// Event captures a key storefront action. Keep it transport-agnostic so
// publishers can fan out without knowing domain internals.
type Event struct {
	ID        string    `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	ProductID string    `json:"product_id,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	Quantity  int       `json:"quantity,omitempty"`
	// TotalPrice is the cart/order total in minor currency units at the
	// moment the event fired.
	TotalPrice int64  `json:"total_price,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// Action enumerates auditable storefront actions.
type Action string

const (
	ActionItemAdded       Action = "cart_item_added"
	ActionItemRemoved     Action = "cart_item_removed"
	ActionQuantityUpdated Action = "cart_quantity_updated"
	ActionCartCleared     Action = "cart_cleared"
	ActionOrderPlaced     Action = "order_placed"
)

// Publisher delivers audit events to a sink. Implementations must be safe for
// concurrent use. Publish failures should be handled by the publisher itself
// (retry, drop-with-metric); callers treat publishing as best-effort.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes audit events to a slog logger. It is the development
// and test sink, and the fallback when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher builds a slog-backed publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, "audit event",
		"action", string(event.Action),
		"event_id", event.ID,
		"product_id", event.ProductID,
		"order_id", event.OrderID,
		"quantity", event.Quantity,
		"total_price", event.TotalPrice,
		"request_id", event.RequestID,
	)
	return nil
}
