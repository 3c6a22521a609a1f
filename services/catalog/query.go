package catalog

import (
	"sort"
	"strings"

	"serveease/models"
)

// ApplyQuery evaluates a query spec against the full dataset and returns
// one page of matches. Pure: the dataset is never mutated and equal
// inputs always produce equal outputs.
func ApplyQuery(dataset []models.ServiceListing, spec models.QuerySpec) models.QueryResult {
	spec = normalize(spec)

	var matched []models.ServiceListing
	for _, listing := range dataset {
		if matches(listing, spec) {
			matched = append(matched, listing)
		}
	}

	// Stable sort keeps original dataset order for equal keys.
	sort.SliceStable(matched, less(spec.Sort, matched))

	total := len(matched)
	totalPages := (total + spec.PageSize - 1) / spec.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := spec.Page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * spec.PageSize
	end := start + spec.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]models.ServiceListing, end-start)
	copy(items, matched[start:end])

	return models.QueryResult{
		Items:      items,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}
}

func matches(listing models.ServiceListing, spec models.QuerySpec) bool {
	if spec.Category != models.CategoryAll && listing.Category != spec.Category {
		return false
	}
	if spec.Search != "" {
		target := strings.ToLower(listing.Title + " " + listing.Category + " " + listing.Description)
		if !strings.Contains(target, strings.ToLower(spec.Search)) {
			return false
		}
	}
	if listing.Rating < spec.MinRating {
		return false
	}
	if listing.Price < spec.PriceMin || listing.Price > spec.PriceMax {
		return false
	}
	return true
}

func less(sortKey string, listings []models.ServiceListing) func(i, j int) bool {
	switch sortKey {
	case models.SortPriceAsc:
		return func(i, j int) bool { return listings[i].Price < listings[j].Price }
	case models.SortPriceDesc:
		return func(i, j int) bool { return listings[i].Price > listings[j].Price }
	case models.SortRatingDesc:
		return func(i, j int) bool { return listings[i].Rating > listings[j].Rating }
	default: // featured
		return func(i, j int) bool { return listings[i].ReviewCount > listings[j].ReviewCount }
	}
}

// normalize fills defaults so raw HTTP input cannot produce a degenerate
// spec. A zero or negative price ceiling reads as unbounded.
func normalize(spec models.QuerySpec) models.QuerySpec {
	if spec.Category == "" {
		spec.Category = models.CategoryAll
	}
	if spec.Sort == "" {
		spec.Sort = models.SortFeatured
	}
	if spec.PriceMin < 0 {
		spec.PriceMin = 0
	}
	if spec.PriceMax <= 0 {
		spec.PriceMax = models.PriceUnbounded
	}
	if spec.Page < 1 {
		spec.Page = 1
	}
	if spec.PageSize < 1 {
		spec.PageSize = models.DefaultQuerySpec().PageSize
	}
	return spec
}
