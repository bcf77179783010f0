// Package handler exposes checkout over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lustre/internal/checkout"
	"lustre/internal/http/shared"
	"lustre/internal/platform/middleware"
	"lustre/pkg/derrors"
)

// Service defines the checkout operations the handler depends on.
type Service interface {
	PlaceOrder(ctx context.Context) (*checkout.Order, error)
}

// Handler handles checkout endpoints.
type Handler struct {
	logger   *slog.Logger
	checkout Service
}

// New creates a new checkout Handler.
func New(checkout Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, checkout: checkout}
}

// Register mounts the checkout routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/checkout", h.handlePlaceOrder)
}

func (h *Handler) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	order, err := h.checkout.PlaceOrder(ctx)
	if err != nil {
		if derrors.Is(err, derrors.CodeConflict) {
			shared.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "order placement failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, order)
}
