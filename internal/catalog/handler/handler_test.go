package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lustre/internal/catalog"
	"lustre/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := New(catalog.NewService(8), slog.New(slog.NewTextHandler(io.Discard, nil)))
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHandleListProducts(t *testing.T) {
	r := newTestRouter(t)

	t.Run("first page with default size", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/products"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := testutil.UnmarshalResponse[catalog.Page](t, rr)
		assert.Len(t, page.Products, 8)
		require.NotNil(t, page.NextCursor)
		assert.Equal(t, 2, *page.NextCursor)
	})

	t.Run("query parameters drive the filter", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
			"/products?search=tahitian&sort=price-desc&limit=50"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := testutil.UnmarshalResponse[catalog.Page](t, rr)
		require.NotEmpty(t, page.Products)
		for i := 1; i < len(page.Products); i++ {
			assert.GreaterOrEqual(t, page.Products[i-1].Price, page.Products[i].Price)
		}
		for _, p := range page.Products {
			assert.Equal(t, "Tahitian", p.Metadata.PearlType)
		}
	})

	t.Run("max_price filters the listing", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
			"/products?max_price=700&limit=50"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := testutil.UnmarshalResponse[catalog.Page](t, rr)
		require.NotEmpty(t, page.Products)
		for _, p := range page.Products {
			assert.LessOrEqual(t, p.Price, int64(700))
		}
	})

	t.Run("collections accepts a comma-separated list", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
			"/products?collections=Rings,Bracelets&limit=50"))

		require.Equal(t, http.StatusOK, rr.Code)
		page := testutil.UnmarshalResponse[catalog.Page](t, rr)
		require.NotEmpty(t, page.Products)
		for _, p := range page.Products {
			assert.Contains(t, []string{"Rings", "Bracelets"}, p.Category)
		}
	})

	t.Run("bad max_price is rejected", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/products?max_price=abc"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown sort order is rejected", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/products?sort=name-asc"))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleGetProduct(t *testing.T) {
	r := newTestRouter(t)

	t.Run("found", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/products/akoya-classic-studs"))

		require.Equal(t, http.StatusOK, rr.Code)
		p := testutil.UnmarshalResponse[catalog.Product](t, rr)
		assert.Equal(t, "p-002", p.ID)
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/products/missing"))

		require.Equal(t, http.StatusNotFound, rr.Code)
		errResp := testutil.UnmarshalResponse[map[string]string](t, rr)
		assert.Equal(t, "not_found", (*errResp)["error"])
	})
}

func TestHandleListCategories(t *testing.T) {
	r := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/categories"))

	require.Equal(t, http.StatusOK, rr.Code)
	categories := testutil.UnmarshalResponse[[]catalog.Category](t, rr)
	assert.Len(t, *categories, 4)
}
