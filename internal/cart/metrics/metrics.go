package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the cart module.
type Metrics struct {
	Mutations       *prometheus.CounterVec
	PersistFailures prometheus.Counter
	ItemsInCart     prometheus.Gauge
	CartValueMinor  prometheus.Gauge
}

// New creates a new Metrics instance with all cart module metrics registered.
func New() *Metrics {
	return &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lustre_cart_mutations_total",
			Help: "Total cart mutations by operation (add, remove, update, clear)",
		}, []string{"operation"}),
		PersistFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lustre_cart_persist_failures_total",
			Help: "Total cart snapshot write failures",
		}),
		ItemsInCart: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lustre_cart_items",
			Help: "Current total item quantity in the cart",
		}),
		CartValueMinor: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "lustre_cart_value_minor_units",
			Help: "Current cart value in minor currency units",
		}),
	}
}

// ObserveMutation records a cart mutation and the resulting aggregates.
func (m *Metrics) ObserveMutation(operation string, totalItems int, totalPrice int64) {
	m.Mutations.WithLabelValues(operation).Inc()
	m.ItemsInCart.Set(float64(totalItems))
	m.CartValueMinor.Set(float64(totalPrice))
}

// IncrementPersistFailure records a failed snapshot write.
func (m *Metrics) IncrementPersistFailure() {
	m.PersistFailures.Inc()
}
