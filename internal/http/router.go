// Package http wires the module handlers, shared middleware, and operational
// endpoints into the storefront's root router.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lustre/internal/http/shared"
	"lustre/internal/platform/metrics"
	"lustre/internal/platform/middleware"
)

// Registrar is implemented by every module handler.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck probes a backing dependency. A nil check means the server has
// no external dependency to consult.
type HealthCheck func(ctx context.Context) error

// NewRouter builds the root router: middleware chain, API routes, and the
// operational /healthz and /metrics endpoints. /healthz consults the given
// health check and degrades to 503 when it fails.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, health HealthCheck, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)
	r.Use(middleware.Latency(m))

	for _, h := range handlers {
		h.Register(r)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				logger.ErrorContext(r.Context(), "health check failed", "error", err)
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
