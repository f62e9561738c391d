// internal/domain/catalog/entity.go
package catalog

// Product represents a catalog entry. The catalog is static for the
// lifetime of a session; products are never mutated by the storefront.
type Product struct {
	ID           string  `json:"id" yaml:"id"`
	Slug         string  `json:"slug" yaml:"slug"`
	Name         string  `json:"name" yaml:"name"`
	Category     string  `json:"category" yaml:"category"`
	Image        string  `json:"image" yaml:"image"`
	Price        float64 `json:"price" yaml:"price"`
	CountInStock int     `json:"count_in_stock" yaml:"countInStock"`
	Rating       float64 `json:"rating" yaml:"rating"`
	NumReviews   int     `json:"num_reviews" yaml:"numReviews"`
	Description  string  `json:"description" yaml:"description"`
}

// Accessor provides synchronous read-only access to the product catalog.
// Filtering and pagination are never pushed down to the source.
type Accessor interface {
	Products() []Product
	ProductBySlug(slug string) (Product, bool)
}

// StaticAccessor serves a fixed in-memory catalog
type StaticAccessor struct {
	products []Product
	bySlug   map[string]int
}

// NewStaticAccessor creates an accessor over a fixed product collection
func NewStaticAccessor(products []Product) *StaticAccessor {
	bySlug := make(map[string]int, len(products))
	for i, p := range products {
		bySlug[p.Slug] = i
	}
	return &StaticAccessor{
		products: products,
		bySlug:   bySlug,
	}
}

// Products returns the full catalog in its canonical order
func (a *StaticAccessor) Products() []Product {
	return a.products
}

// ProductBySlug looks up a single product by its slug
func (a *StaticAccessor) ProductBySlug(slug string) (Product, bool) {
	i, ok := a.bySlug[slug]
	if !ok {
		return Product{}, false
	}
	return a.products[i], true
}
