// internal/domain/catalog/search.go
package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// AnyFacet is the query value that disables a filter dimension
const AnyFacet = "all"

// Sort orders accepted by the search engine
const (
	SortNewest   = "newest"
	SortLowest   = "lowest"
	SortHighest  = "highest"
	SortTopRated = "toprated"
)

// SearchQuery represents one set of search parameters. Zero-value fields
// are not valid; build queries with DefaultQuery or QueryFromParams.
type SearchQuery struct {
	Category   string `json:"category"`
	Text       string `json:"text"`
	PriceRange string `json:"price_range"`
	MinRating  string `json:"min_rating"`
	SortOrder  string `json:"sort_order"`
	Page       int    `json:"page"`
}

// DefaultQuery returns the query matching the whole catalog, newest first
func DefaultQuery() SearchQuery {
	return SearchQuery{
		Category:   AnyFacet,
		Text:       AnyFacet,
		PriceRange: AnyFacet,
		MinRating:  AnyFacet,
		SortOrder:  SortNewest,
		Page:       1,
	}
}

// QueryFromParams builds a SearchQuery from URL query parameters.
// Parameter names and defaults match the navigation contract:
// category, query, price, rating, order, page.
func QueryFromParams(params url.Values) SearchQuery {
	q := DefaultQuery()
	if v := params.Get("category"); v != "" {
		q.Category = v
	}
	if v := params.Get("query"); v != "" {
		q.Text = v
	}
	if v := params.Get("price"); v != "" {
		q.PriceRange = v
	}
	if v := params.Get("rating"); v != "" {
		q.MinRating = v
	}
	if v := params.Get("order"); v != "" {
		q.SortOrder = v
	}
	if v := params.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page >= 1 {
			q.Page = page
		}
	}
	return q
}

// SearchResult represents one page of matched products
type SearchResult struct {
	Products   []Product `json:"products"`
	TotalCount int       `json:"total_count"`
	PageCount  int       `json:"page_count"`
	Page       int       `json:"page"`
}

// Engine filters, sorts and paginates a static catalog. Search is pure:
// identical (catalog, query) inputs always produce identical results.
type Engine struct {
	pageSize int
}

// NewEngine creates a search engine with the given page size
func NewEngine(pageSize int) *Engine {
	return &Engine{pageSize: pageSize}
}

// Search evaluates the conjunction of category, text, price and rating
// filters, then sorts and slices the requested page window.
func (e *Engine) Search(catalog []Product, q SearchQuery) SearchResult {
	matched := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if matchesCategory(p, q.Category) &&
			matchesText(p, q.Text) &&
			matchesPriceRange(p, q.PriceRange) &&
			matchesMinRating(p, q.MinRating) {
			matched = append(matched, p)
		}
	}

	// "newest" keeps the catalog's relative order, so every sort must be stable
	switch q.SortOrder {
	case SortLowest:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case SortHighest:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	case SortTopRated:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}

	total := len(matched)
	pageCount := (total + e.pageSize - 1) / e.pageSize

	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * e.pageSize
	end := start + e.pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return SearchResult{
		Products:   matched[start:end],
		TotalCount: total,
		PageCount:  pageCount,
		Page:       page,
	}
}

func matchesCategory(p Product, category string) bool {
	if category == AnyFacet {
		return true
	}
	return p.Category == category
}

func matchesText(p Product, text string) bool {
	if text == AnyFacet {
		return true
	}
	text = strings.ToLower(text)
	return strings.Contains(strings.ToLower(p.Name), text) ||
		strings.Contains(strings.ToLower(p.Description), text)
}

// matchesPriceRange parses ranges of the form "<min>-<max>". A malformed
// range matches nothing, mirroring the navigation contract's behavior for
// unparseable values.
func matchesPriceRange(p Product, priceRange string) bool {
	if priceRange == AnyFacet {
		return true
	}
	bounds := strings.SplitN(priceRange, "-", 2)
	if len(bounds) != 2 {
		return false
	}
	min, err := strconv.ParseFloat(bounds[0], 64)
	if err != nil {
		return false
	}
	max, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		return false
	}
	return p.Price >= min && p.Price <= max
}

func matchesMinRating(p Product, minRating string) bool {
	if minRating == AnyFacet {
		return true
	}
	min, err := strconv.ParseFloat(minRating, 64)
	if err != nil {
		return false
	}
	return p.Rating >= min
}
