// internal/domain/catalog/facets.go
package catalog

// PriceBucket represents one price range option in the search sidebar
type PriceBucket struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RatingThreshold represents one "N stars & up" option in the search sidebar
type RatingThreshold struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// PriceBuckets returns the fixed price facets offered by the search UI
func PriceBuckets() []PriceBucket {
	return []PriceBucket{
		{Name: "$1 to $50", Value: "1-50"},
		{Name: "$51 to $200", Value: "51-200"},
		{Name: "$201 to $1000", Value: "201-1000"},
	}
}

// RatingThresholds returns the fixed rating facets offered by the search UI
func RatingThresholds() []RatingThreshold {
	return []RatingThreshold{
		{Name: "4stars & up", Rating: 4},
		{Name: "3stars & up", Rating: 3},
		{Name: "2stars & up", Rating: 2},
		{Name: "1stars & up", Rating: 1},
	}
}
