// Package service orchestrates cart mutations: it delegates state transitions
// to the container and layers on metrics and audit events. Handlers talk to
// this package, never to the container directly.
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"lustre/internal/cart/container"
	cartmetrics "lustre/internal/cart/metrics"
	"lustre/internal/cart/models"
	"lustre/pkg/platform/audit"
	"lustre/pkg/requestcontext"
)

// CartService exposes the four cart mutations plus read access. All
// mutations return the post-mutation snapshot so callers render current
// state without a second read.
type CartService struct {
	cart    *container.Container
	emitter *auditEmitter
	metrics *cartmetrics.Metrics
}

// Option configures a CartService.
type Option func(*serviceConfig)

type serviceConfig struct {
	logger    *slog.Logger
	publisher audit.Publisher
	metrics   *cartmetrics.Metrics
}

// WithLogger sets the service logger (used for audit fallback reporting).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *serviceConfig) { cfg.logger = logger }
}

// WithAuditPublisher sets the audit event sink.
func WithAuditPublisher(p audit.Publisher) Option {
	return func(cfg *serviceConfig) { cfg.publisher = p }
}

// WithMetrics sets the cart metrics collector.
func WithMetrics(m *cartmetrics.Metrics) Option {
	return func(cfg *serviceConfig) { cfg.metrics = m }
}

// New creates a CartService over the given container.
func New(cart *container.Container, opts ...Option) *CartService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &CartService{
		cart:    cart,
		emitter: newAuditEmitter(cfg.logger, cfg.publisher),
		metrics: cfg.metrics,
	}
}

// AddItem merges an item descriptor into the cart. quantity < 1 defaults
// to 1.
func (s *CartService) AddItem(ctx context.Context, desc models.ItemDescriptor, quantity int) (container.Snapshot, error) {
	if err := s.cart.AddItem(ctx, desc, quantity); err != nil {
		return container.Snapshot{}, err
	}
	snap := s.cart.State()
	s.observe("add", snap)
	s.emitter.emit(ctx, audit.Event{
		Action:     audit.ActionItemAdded,
		ProductID:  desc.ID,
		Quantity:   quantity,
		TotalPrice: snap.Totals.Price,
	})
	return snap, nil
}

// RemoveItem deletes a line item; absent ids are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, id string) (container.Snapshot, error) {
	if err := s.cart.RemoveItem(ctx, id); err != nil {
		return container.Snapshot{}, err
	}
	snap := s.cart.State()
	s.observe("remove", snap)
	s.emitter.emit(ctx, audit.Event{
		Action:     audit.ActionItemRemoved,
		ProductID:  id,
		TotalPrice: snap.Totals.Price,
	})
	return snap, nil
}

// UpdateQuantity sets an item's quantity; <= 0 removes it.
func (s *CartService) UpdateQuantity(ctx context.Context, id string, quantity int) (container.Snapshot, error) {
	if err := s.cart.UpdateQuantity(ctx, id, quantity); err != nil {
		return container.Snapshot{}, err
	}
	snap := s.cart.State()
	s.observe("update", snap)
	s.emitter.emit(ctx, audit.Event{
		Action:     audit.ActionQuantityUpdated,
		ProductID:  id,
		Quantity:   quantity,
		TotalPrice: snap.Totals.Price,
	})
	return snap, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	if err := s.cart.Clear(ctx); err != nil {
		return err
	}
	s.observe("clear", s.cart.State())
	s.emitter.emit(ctx, audit.Event{Action: audit.ActionCartCleared})
	return nil
}

// State returns the current items and derived totals.
func (s *CartService) State(ctx context.Context) container.Snapshot {
	return s.cart.State()
}

func (s *CartService) observe(operation string, snap container.Snapshot) {
	if s.metrics == nil {
		return
	}
	s.metrics.ObserveMutation(operation, snap.Totals.Items, snap.Totals.Price)
}

// auditEmitter publishes audit events best-effort. A nil publisher degrades
// to a no-op so tests and minimal deployments need no wiring.
type auditEmitter struct {
	logger    *slog.Logger
	publisher audit.Publisher
}

func newAuditEmitter(logger *slog.Logger, publisher audit.Publisher) *auditEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &auditEmitter{logger: logger, publisher: publisher}
}

func (e *auditEmitter) emit(ctx context.Context, event audit.Event) {
	if e.publisher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = requestcontext.Now(ctx)
	event.RequestID = requestcontext.RequestID(ctx)
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.WarnContext(ctx, "audit publish failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}
