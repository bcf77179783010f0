package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the HTTP-level Prometheus metrics shared by all handlers.
// Per-module metrics live in each module's metrics package.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers the platform HTTP metrics.
func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lustre_http_requests_total",
			Help: "Total HTTP requests by method, route, and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lustre_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

// ObserveRequest records a completed HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
