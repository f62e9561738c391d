// internal/domain/catalog/categories.go
package catalog

// Categories derives the distinct category names of a catalog in
// first-occurrence order. It is recomputed whenever the catalog
// reference changes, which for a static catalog is once per process.
func Categories(products []Product) []string {
	seen := make(map[string]bool, len(products))
	categories := make([]string, 0, len(products))
	for _, p := range products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	return categories
}
