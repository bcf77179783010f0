// Package checkout places orders against the current cart. There is no
// payment processing or order persistence: placement validates the cart,
// simulates the processing step, and clears the cart on success.
package checkout

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"lustre/internal/cart/container"
	"lustre/internal/cart/models"
	checkoutmetrics "lustre/internal/checkout/metrics"
	"lustre/pkg/derrors"
	"lustre/pkg/platform/audit"
	"lustre/pkg/requestcontext"
)

// Cart is the slice of the cart service checkout depends on.
type Cart interface {
	State(ctx context.Context) container.Snapshot
	Clear(ctx context.Context) error
}

// Order is the confirmation returned to the customer. Items and totals are
// captured at placement time; the cart is empty afterwards.
type Order struct {
	ID         string            `json:"id"`
	Items      []models.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
	PlacedAt   time.Time         `json:"placed_at"`
}

// Service orchestrates order placement.
type Service struct {
	cart            Cart
	processingDelay time.Duration
	logger          *slog.Logger
	metrics         *checkoutmetrics.Metrics
	publisher       audit.Publisher
	tracer          trace.Tracer
}

// Option configures a checkout Service.
type Option func(*Service)

// WithMetrics sets the checkout metrics collector.
func WithMetrics(m *checkoutmetrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithAuditPublisher sets the audit event sink.
func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// New creates a checkout Service. processingDelay simulates the payment and
// fulfillment round trip; it honors context cancellation.
func New(cart Cart, processingDelay time.Duration, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		cart:            cart,
		processingDelay: processingDelay,
		logger:          logger,
		tracer:          otel.Tracer("lustre/checkout"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PlaceOrder validates the cart, runs the simulated processing step, issues
// an order ID, and clears the cart. An empty cart is a conflict, not an
// internal error. Cancellation during processing aborts the order and leaves
// the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context) (*Order, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "checkout.PlaceOrder")
	defer span.End()

	snap := s.cart.State(ctx)
	if len(snap.Items) == 0 {
		if s.metrics != nil {
			s.metrics.IncrementOrderRejected()
		}
		return nil, derrors.New(derrors.CodeConflict, "cart is empty")
	}

	if err := s.process(ctx); err != nil {
		return nil, err
	}

	order := &Order{
		ID:         uuid.NewString(),
		Items:      snap.Items,
		TotalItems: snap.Totals.Items,
		TotalPrice: snap.Totals.Price,
		PlacedAt:   requestcontext.Now(ctx),
	}
	span.SetAttributes(
		attribute.String("order.id", order.ID),
		attribute.Int("order.total_items", order.TotalItems),
	)

	if err := s.cart.Clear(ctx); err != nil {
		// The order is already confirmed; a failed clear is logged, not
		// surfaced, so the customer never sees a phantom failure.
		s.logger.ErrorContext(ctx, "cart clear after checkout failed", "order_id", order.ID, "error", err)
	}

	if s.metrics != nil {
		s.metrics.ObserveOrderPlaced(start)
	}
	if s.publisher != nil {
		event := audit.Event{
			ID:         uuid.NewString(),
			Action:     audit.ActionOrderPlaced,
			Timestamp:  order.PlacedAt,
			OrderID:    order.ID,
			Quantity:   order.TotalItems,
			TotalPrice: order.TotalPrice,
			RequestID:  requestcontext.RequestID(ctx),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.WarnContext(ctx, "audit publish failed", "order_id", order.ID, "error", err)
		}
	}

	s.logger.InfoContext(ctx, "order placed",
		"order_id", order.ID,
		"total_items", order.TotalItems,
		"total_price", order.TotalPrice,
	)
	return order, nil
}

// process simulates the payment/fulfillment round trip.
func (s *Service) process(ctx context.Context) error {
	if s.processingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return derrors.Wrap(ctx.Err(), derrors.CodeUnavailable, "checkout canceled")
	}
}
