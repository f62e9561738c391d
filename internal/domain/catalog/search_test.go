// internal/domain/catalog/search_test.go
package catalog

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Product {
	return []Product{
		{ID: "1", Slug: "alpha-shirt", Name: "Alpha Shirt", Category: "Shirts", Price: 30, Rating: 4.5, Description: "classic fit"},
		{ID: "2", Slug: "beta-pants", Name: "Beta Pants", Category: "Pants", Price: 10, Rating: 2.0, Description: "casual wear"},
		{ID: "3", Slug: "gamma-shirt", Name: "Gamma Shirt", Category: "Shirts", Price: 20, Rating: 4.0, Description: "slim cut"},
	}
}

func resultIDs(result SearchResult) []string {
	ids := make([]string, len(result.Products))
	for i, p := range result.Products {
		ids[i] = p.ID
	}
	return ids
}

func TestSearchFilters(t *testing.T) {
	engine := NewEngine(10)

	tests := []struct {
		name  string
		query func() SearchQuery
		want  []string
	}{
		{
			name:  "no filters matches everything in catalog order",
			query: DefaultQuery,
			want:  []string{"1", "2", "3"},
		},
		{
			name: "category filter",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.Category = "Shirts"
				return q
			},
			want: []string{"1", "3"},
		},
		{
			name: "text filter matches name case-insensitively",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.Text = "ALPHA"
				return q
			},
			want: []string{"1"},
		},
		{
			name: "text filter matches description",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.Text = "slim"
				return q
			},
			want: []string{"3"},
		},
		{
			name: "price range is inclusive on both bounds",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.PriceRange = "10-20"
				return q
			},
			want: []string{"2", "3"},
		},
		{
			name: "minimum rating",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.MinRating = "4"
				return q
			},
			want: []string{"1", "3"},
		},
		{
			name: "filters combine as a conjunction",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.Category = "Shirts"
				q.PriceRange = "15-25"
				q.MinRating = "4"
				return q
			},
			want: []string{"3"},
		},
		{
			name: "malformed price range matches nothing",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.PriceRange = "cheap"
				return q
			},
			want: []string{},
		},
		{
			name: "half-open price range matches nothing",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.PriceRange = "10-"
				return q
			},
			want: []string{},
		},
		{
			name: "malformed rating matches nothing",
			query: func() SearchQuery {
				q := DefaultQuery()
				q.MinRating = "best"
				return q
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.Search(testCatalog(), tt.query())
			assert.Equal(t, tt.want, resultIDs(result))
			assert.Equal(t, len(tt.want), result.TotalCount)
		})
	}
}

func TestSearchSortOrders(t *testing.T) {
	engine := NewEngine(10)

	tests := []struct {
		order string
		want  []string
	}{
		{SortNewest, []string{"1", "2", "3"}},
		{SortLowest, []string{"2", "3", "1"}},
		{SortHighest, []string{"1", "3", "2"}},
		{SortTopRated, []string{"1", "3", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			q := DefaultQuery()
			q.SortOrder = tt.order
			result := engine.Search(testCatalog(), q)
			assert.Equal(t, tt.want, resultIDs(result))
		})
	}
}

func TestSearchSortIsStable(t *testing.T) {
	engine := NewEngine(10)

	// Equal prices keep their catalog order
	catalog := []Product{
		{ID: "1", Price: 10},
		{ID: "2", Price: 10},
		{ID: "3", Price: 5},
	}

	q := DefaultQuery()
	q.SortOrder = SortLowest
	result := engine.Search(catalog, q)
	assert.Equal(t, []string{"3", "1", "2"}, resultIDs(result))
}

func TestSearchPagination(t *testing.T) {
	engine := NewEngine(10)

	catalog := make([]Product, 25)
	for i := range catalog {
		catalog[i] = Product{ID: fmt.Sprintf("%d", i+1), Category: "Shirts"}
	}

	tests := []struct {
		name      string
		page      int
		wantLen   int
		wantFirst string
	}{
		{"first page", 1, 10, "1"},
		{"second page", 2, 10, "11"},
		{"last partial page", 3, 5, "21"},
		{"page beyond the end is empty", 4, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := DefaultQuery()
			q.Page = tt.page
			result := engine.Search(catalog, q)

			require.Len(t, result.Products, tt.wantLen)
			assert.Equal(t, 25, result.TotalCount)
			assert.Equal(t, 3, result.PageCount)
			assert.Equal(t, tt.page, result.Page)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, result.Products[0].ID)
			}
		})
	}
}

func TestSearchIsPure(t *testing.T) {
	engine := NewEngine(10)
	catalog := testCatalog()

	q := DefaultQuery()
	q.SortOrder = SortLowest

	first := engine.Search(catalog, q)
	second := engine.Search(catalog, q)
	assert.Equal(t, first, second)

	// The input catalog is never reordered
	assert.Equal(t, []string{"1", "2", "3"}, func() []string {
		ids := make([]string, len(catalog))
		for i, p := range catalog {
			ids[i] = p.ID
		}
		return ids
	}())
}

func TestQueryFromParams(t *testing.T) {
	t.Run("empty params yield the default query", func(t *testing.T) {
		q := QueryFromParams(url.Values{})
		assert.Equal(t, DefaultQuery(), q)
	})

	t.Run("all params are picked up", func(t *testing.T) {
		q := QueryFromParams(url.Values{
			"category": {"Shirts"},
			"query":    {"nike"},
			"price":    {"51-200"},
			"rating":   {"4"},
			"order":    {"lowest"},
			"page":     {"2"},
		})
		assert.Equal(t, SearchQuery{
			Category:   "Shirts",
			Text:       "nike",
			PriceRange: "51-200",
			MinRating:  "4",
			SortOrder:  "lowest",
			Page:       2,
		}, q)
	})

	t.Run("invalid page falls back to 1", func(t *testing.T) {
		for _, page := range []string{"0", "-3", "abc"} {
			q := QueryFromParams(url.Values{"page": {page}})
			assert.Equal(t, 1, q.Page, "page=%s", page)
		}
	})
}
