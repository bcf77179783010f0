package catalog

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"lustre/pkg/platform/sentinel"
)

// DefaultPageSize matches the storefront's listing grid.
const DefaultPageSize = 8

// Service answers catalog queries over the fixed product collection.
type Service struct {
	products   []Product
	categories []Category
	bySlug     map[string]int
	pageSize   int
}

// NewService builds a catalog service over the seed dataset.
func NewService(pageSize int) *Service {
	return newService(seedProducts, seedCategories, pageSize)
}

// NewServiceWith builds a catalog over an explicit dataset. Test seam.
func NewServiceWith(products []Product, categories []Category, pageSize int) *Service {
	return newService(products, categories, pageSize)
}

func newService(products []Product, categories []Category, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	bySlug := make(map[string]int, len(products))
	for i, p := range products {
		bySlug[p.Slug] = i
	}
	return &Service{
		products:   products,
		categories: categories,
		bySlug:     bySlug,
		pageSize:   pageSize,
	}
}

// List returns one page of products matching the filter. cursor is a 1-based
// page number; values below 1 are treated as 1. limit <= 0 uses the
// configured page size.
func (s *Service) List(ctx context.Context, filter Filter, cursor, limit int) (Page, error) {
	if cursor < 1 {
		cursor = 1
	}
	if limit <= 0 {
		limit = s.pageSize
	}

	filtered := s.filter(filter)

	sortBy := filter.SortBy
	switch sortBy {
	case "", SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	default:
		return Page{}, fmt.Errorf("unknown sort order %q", sortBy)
	}

	start := (cursor - 1) * limit
	if start >= len(filtered) {
		return Page{Products: []Product{}}, nil
	}
	end := min(start+limit, len(filtered))

	page := Page{Products: filtered[start:end]}
	if end < len(filtered) {
		next := cursor + 1
		page.NextCursor = &next
	}
	return page, nil
}

// GetBySlug returns the product with the given slug, or sentinel.ErrNotFound.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Product, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Product{}, sentinel.ErrNotFound
	}
	return s.products[i], nil
}

// Categories returns the browsing categories.
func (s *Service) Categories(ctx context.Context) []Category {
	return slices.Clone(s.categories)
}

// Stock reports the available stock for a product ID. Used by the optional
// cart quantity validation hook.
func (s *Service) Stock(ctx context.Context, productID string) (int, bool) {
	for _, p := range s.products {
		if p.ID == productID {
			return p.Stock, true
		}
	}
	return 0, false
}

func (s *Service) filter(f Filter) []Product {
	out := make([]Product, 0, len(s.products))
	query := strings.ToLower(strings.TrimSpace(f.Search))

	for _, p := range s.products {
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if len(f.Collections) > 0 && !slices.Contains(f.Collections, p.Category) {
			continue
		}
		if len(f.Colors) > 0 && !sharesColor(p.Colors, f.Colors) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Metadata.PearlType), query)
}

func sharesColor(have, want []string) bool {
	for _, c := range have {
		if slices.Contains(want, c) {
			return true
		}
	}
	return false
}
