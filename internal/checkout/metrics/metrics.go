package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the checkout module.
type Metrics struct {
	OrdersPlaced       prometheus.Counter
	OrdersRejected     prometheus.Counter
	PlaceOrderDuration prometheus.Histogram
}

// New creates a new Metrics instance with all checkout metrics registered.
func New() *Metrics {
	return &Metrics{
		OrdersPlaced: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lustre_orders_placed_total",
			Help: "Total orders placed successfully",
		}),
		OrdersRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lustre_orders_rejected_total",
			Help: "Total order attempts rejected (empty cart)",
		}),
		PlaceOrderDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lustre_place_order_duration_seconds",
			Help:    "Duration of order placement including simulated processing",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveOrderPlaced records a successful order and its duration.
func (m *Metrics) ObserveOrderPlaced(start time.Time) {
	m.OrdersPlaced.Inc()
	m.PlaceOrderDuration.Observe(time.Since(start).Seconds())
}

// IncrementOrderRejected records a rejected order attempt.
func (m *Metrics) IncrementOrderRejected() {
	m.OrdersRejected.Inc()
}
