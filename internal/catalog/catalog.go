// Package catalog serves the product collection: listing with filters,
// sorting and cursor pagination, slug lookup, and categories. The dataset is
// a fixed in-memory collection; there is no inventory mutation.
package catalog

// ProductMetadata carries pearl-specific display attributes.
type ProductMetadata struct {
	PearlType string `json:"pearl_type"`
	Length    string `json:"length"`
	Grade     string `json:"grade"`
}

// Product is one catalog entry. Price is an integer amount in minor
// currency units.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Price       int64           `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	Colors      []string        `json:"colors"`
	Metadata    ProductMetadata `json:"metadata"`
}

// Category groups products for browsing.
type Category struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Sort orders for product listings.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	// Search matches name, description, or pearl type, case-insensitively.
	Search string
	// MaxPrice keeps products priced at or below the limit; nil disables.
	MaxPrice *int64
	// Collections keeps products whose category is in the set.
	Collections []string
	// Colors keeps products sharing at least one color with the set.
	Colors []string
	// SortBy is SortPriceAsc (default) or SortPriceDesc.
	SortBy string
}

// Page is one listing page. NextCursor is nil when the listing is exhausted.
type Page struct {
	Products   []Product `json:"products"`
	NextCursor *int      `json:"next_cursor"`
}
