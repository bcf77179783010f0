// Package handler exposes the cart over HTTP. It is a thin layer: request
// decoding, response shaping, and domain error translation only.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"lustre/internal/cart/container"
	"lustre/internal/cart/models"
	"lustre/internal/http/shared"
	"lustre/internal/platform/middleware"
	"lustre/pkg/derrors"
)

// Service defines the cart operations the handler depends on.
type Service interface {
	AddItem(ctx context.Context, desc models.ItemDescriptor, quantity int) (container.Snapshot, error)
	RemoveItem(ctx context.Context, id string) (container.Snapshot, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (container.Snapshot, error)
	Clear(ctx context.Context) error
	State(ctx context.Context) container.Snapshot
}

//go:generate mockgen -source=handler.go -destination=mocks/cart_mocks.go -package=mocks Service

// Handler handles cart endpoints.
type Handler struct {
	logger *slog.Logger
	cart   Service
}

// New creates a new cart Handler.
func New(cart Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, cart: cart}
}

// Register mounts the cart routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/cart", h.handleGetCart)
	r.Post("/cart/items", h.handleAddItem)
	r.Put("/cart/items/{id}", h.handleUpdateQuantity)
	r.Delete("/cart/items/{id}", h.handleRemoveItem)
	r.Delete("/cart", h.handleClearCart)
}

type addItemRequest struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Price    int64                `json:"price"`
	Image    string               `json:"image"`
	Metadata *models.ItemMetadata `json:"metadata,omitempty"`
	// Quantity is the starting quantity; omitted or non-positive means 1.
	Quantity int `json:"quantity,omitempty"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// cartResponse is the envelope for every cart read and mutation: the current
// ordered item list plus the derived aggregates.
type cartResponse struct {
	Items      []models.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice int64             `json:"total_price"`
}

func newCartResponse(snap container.Snapshot) cartResponse {
	items := snap.Items
	if items == nil {
		items = []models.LineItem{}
	}
	return cartResponse{
		Items:      items,
		TotalItems: snap.Totals.Items,
		TotalPrice: snap.Totals.Price,
	}
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, newCartResponse(h.cart.State(r.Context())))
}

func (h *Handler) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid add item request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}
	if strings.TrimSpace(req.ID) == "" || strings.TrimSpace(req.Name) == "" {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "item id and name are required"))
		return
	}
	if req.Price < 0 {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "item price must not be negative"))
		return
	}

	desc := models.ItemDescriptor{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		Metadata: req.Metadata,
	}
	snap, err := h.cart.AddItem(ctx, desc, req.Quantity)
	if err != nil {
		h.writeServiceError(w, r, "add item", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, newCartResponse(snap))
}

func (h *Handler) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "invalid request body"))
		return
	}

	snap, err := h.cart.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		h.writeServiceError(w, r, "update quantity", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, newCartResponse(snap))
}

func (h *Handler) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	snap, err := h.cart.RemoveItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, r, "remove item", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, newCartResponse(snap))
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		h.writeServiceError(w, r, "clear cart", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	ctx := r.Context()
	h.logger.WarnContext(ctx, "cart operation rejected",
		"operation", op,
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
	shared.WriteError(w, err)
}
