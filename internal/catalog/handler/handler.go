// Package handler exposes catalog browsing over HTTP.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lustre/internal/catalog"
	"lustre/internal/http/shared"
	"lustre/pkg/derrors"
	"lustre/pkg/platform/sentinel"
)

// Service defines the catalog operations the handler depends on.
type Service interface {
	List(ctx context.Context, filter catalog.Filter, cursor, limit int) (catalog.Page, error)
	GetBySlug(ctx context.Context, slug string) (catalog.Product, error)
	Categories(ctx context.Context) []catalog.Category
}

// Handler handles catalog endpoints.
type Handler struct {
	logger  *slog.Logger
	catalog Service
}

// New creates a new catalog Handler.
func New(catalog Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, catalog: catalog}
}

// Register mounts the catalog routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/products", h.handleListProducts)
	r.Get("/products/{slug}", h.handleGetProduct)
	r.Get("/categories", h.handleListCategories)
}

func (h *Handler) handleListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := catalog.Filter{
		Search:      q.Get("search"),
		Collections: splitParam(q.Get("collections")),
		Colors:      splitParam(q.Get("colors")),
		SortBy:      q.Get("sort"),
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			shared.WriteError(w, derrors.New(derrors.CodeBadRequest, "max_price must be an integer"))
			return
		}
		filter.MaxPrice = &maxPrice
	}

	cursor := parseIntDefault(q.Get("cursor"), 1)
	limit := parseIntDefault(q.Get("limit"), 0)

	page, err := h.catalog.List(ctx, filter, cursor, limit)
	if err != nil {
		shared.WriteError(w, derrors.New(derrors.CodeBadRequest, err.Error()))
		return
	}
	shared.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	product, err := h.catalog.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			shared.WriteError(w, derrors.New(derrors.CodeNotFound, "product not found"))
			return
		}
		h.logger.ErrorContext(r.Context(), "product lookup failed", "slug", slug, "error", err)
		shared.WriteError(w, derrors.New(derrors.CodeInternal, "product lookup failed"))
		return
	}
	shared.WriteJSON(w, http.StatusOK, product)
}

func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	shared.WriteJSON(w, http.StatusOK, h.catalog.Categories(r.Context()))
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseIntDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
