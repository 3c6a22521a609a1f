package models

import "math"

// Sort options accepted by QuerySpec.
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

// CategoryAll disables category filtering.
const CategoryAll = "All"

// PriceUnbounded marks an open-ended price range.
const PriceUnbounded = math.MaxInt

// QuerySpec is the composable filter/sort/page request against the
// catalog. A new value is produced on every filter change.
type QuerySpec struct {
	Search    string  `json:"search"`
	Category  string  `json:"category"`
	MinRating float64 `json:"minRating"`
	PriceMin  int     `json:"priceMin"`
	PriceMax  int     `json:"priceMax"`
	Sort      string  `json:"sort"`
	Page      int     `json:"page"`
	PageSize  int     `json:"pageSize"`
}

// DefaultQuerySpec returns the spec applied before any user input.
func DefaultQuerySpec() QuerySpec {
	return QuerySpec{
		Category: CategoryAll,
		PriceMax: PriceUnbounded,
		Sort:     SortFeatured,
		Page:     1,
		PageSize: 6,
	}
}

// QueryResult is one page of listings matching a QuerySpec. Derived,
// never persisted.
type QueryResult struct {
	Items      []ServiceListing `json:"data"`
	Total      int              `json:"total"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
}
