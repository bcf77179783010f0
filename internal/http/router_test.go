package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/internal/platform/metrics"
	"lustre/pkg/testutil"
)

// One shared instance: the collectors register against the default
// prometheus registry, which tolerates only a single registration.
var testMetrics = metrics.New()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthz(t *testing.T) {
	testutil.Given(t, "a router over a healthy backend", func(t *testing.T) {
		router := NewRouter(discardLogger(), testMetrics, func(context.Context) error { return nil })

		testutil.When(t, "probing /healthz", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "it reports ok", func(t *testing.T) {
				require.Equal(t, http.StatusOK, rr.Code)
				assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
			})
		})
	})

	testutil.Given(t, "a router over an unreachable backend", func(t *testing.T) {
		check := func(context.Context) error { return errors.New("connection refused") }
		router := NewRouter(discardLogger(), testMetrics, check)

		testutil.When(t, "probing /healthz", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "it degrades to service unavailable", func(t *testing.T) {
				require.Equal(t, http.StatusServiceUnavailable, rr.Code)
				assert.JSONEq(t, `{"status":"degraded"}`, rr.Body.String())
			})
		})
	})

	testutil.Given(t, "a router with no health check wired", func(t *testing.T) {
		router := NewRouter(discardLogger(), testMetrics, nil)

		testutil.When(t, "probing /healthz", func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

			testutil.Then(t, "it reports ok", func(t *testing.T) {
				assert.Equal(t, http.StatusOK, rr.Code)
			})
		})
	})
}

func TestMetricsEndpoint(t *testing.T) {
	router := NewRouter(discardLogger(), testMetrics, nil)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Body.String())
}
