// internal/domain/catalog/categories_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name     string
		products []Product
		want     []string
	}{
		{
			name:     "empty catalog",
			products: nil,
			want:     []string{},
		},
		{
			name: "duplicates collapse to first occurrence order",
			products: []Product{
				{Category: "Shirts"},
				{Category: "Pants"},
				{Category: "Shirts"},
				{Category: "Shoes"},
				{Category: "Pants"},
			},
			want: []string{"Shirts", "Pants", "Shoes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categories(tt.products))
		})
	}
}

func TestPriceBucketsParseAsRanges(t *testing.T) {
	engine := NewEngine(10)
	products := []Product{{ID: "1", Price: 120}}

	// Every advertised bucket value must be accepted by the price filter
	for _, bucket := range PriceBuckets() {
		q := DefaultQuery()
		q.PriceRange = bucket.Value

		result := engine.Search(products, q)
		if bucket.Value == "51-200" {
			assert.Equal(t, 1, result.TotalCount, bucket.Name)
		} else {
			assert.Equal(t, 0, result.TotalCount, bucket.Name)
		}
	}
}

func TestRatingThresholds(t *testing.T) {
	thresholds := RatingThresholds()
	assert.Len(t, thresholds, 4)
	assert.Equal(t, float64(4), thresholds[0].Rating)
	assert.Equal(t, float64(1), thresholds[len(thresholds)-1].Rating)
}
