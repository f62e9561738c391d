// internal/domain/catalog/seed.go
package catalog

import (
	"fmt"
	"os"

	"github.com/your-org/storefront/internal/domain/user"
	"gopkg.in/yaml.v3"
)

// SeedData holds the static product and user collections the storefront
// is provisioned with. It is the full CatalogAccessor payload.
type SeedData struct {
	Products []Product   `yaml:"products"`
	Users    []user.User `yaml:"users"`
}

// LoadSeedFile reads seed data from a YAML file
func LoadSeedFile(path string) (*SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var seed SeedData
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	if len(seed.Products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	return &seed, nil
}

// DefaultSeed returns the built-in demo catalog used when no catalog
// file is configured and no database is enabled.
func DefaultSeed() *SeedData {
	return &SeedData{
		Products: []Product{
			{
				ID:           "1",
				Slug:         "nike-slim-shirt",
				Name:         "Nike Slim Shirt",
				Category:     "Shirts",
				Image:        "/images/p1.jpg",
				Price:        120,
				CountInStock: 10,
				Rating:       4.5,
				NumReviews:   10,
				Description:  "high quality slim shirt",
			},
			{
				ID:           "2",
				Slug:         "adidas-fit-shirt",
				Name:         "Adidas Fit Shirt",
				Category:     "Shirts",
				Image:        "/images/p2.jpg",
				Price:        100,
				CountInStock: 20,
				Rating:       4.0,
				NumReviews:   10,
				Description:  "high quality fit shirt",
			},
			{
				ID:           "3",
				Slug:         "lacoste-free-shirt",
				Name:         "Lacoste Free Shirt",
				Category:     "Shirts",
				Image:        "/images/p3.jpg",
				Price:        220,
				CountInStock: 0,
				Rating:       4.8,
				NumReviews:   17,
				Description:  "high quality free shirt",
			},
			{
				ID:           "4",
				Slug:         "nike-slim-pant",
				Name:         "Nike Slim Pant",
				Category:     "Pants",
				Image:        "/images/p4.jpg",
				Price:        78,
				CountInStock: 15,
				Rating:       4.5,
				NumReviews:   14,
				Description:  "high quality slim pant",
			},
			{
				ID:           "5",
				Slug:         "puma-slim-pant",
				Name:         "Puma Slim Pant",
				Category:     "Pants",
				Image:        "/images/p5.jpg",
				Price:        65,
				CountInStock: 5,
				Rating:       4.5,
				NumReviews:   10,
				Description:  "high quality slim pant",
			},
			{
				ID:           "6",
				Slug:         "adidas-fit-pant",
				Name:         "Adidas Fit Pant",
				Category:     "Pants",
				Image:        "/images/p6.jpg",
				Price:        139,
				CountInStock: 12,
				Rating:       4.5,
				NumReviews:   15,
				Description:  "high quality fit pant",
			},
		},
		Users: []user.User{
			{
				ID:    "1",
				Name:  "Admin",
				Email: "admin@example.com",
				// bcrypt hash of the demo password; never verified at sign-in
				Password: "$2a$12$8vZ1kXrR0PuN1C9hTdPzkO9yVXjW5pG4n3mXA0eFQxJZ1m7kC0uS6",
				IsAdmin:  true,
			},
			{
				ID:       "2",
				Name:     "John Doe",
				Email:    "user@example.com",
				Password: "$2a$12$kC0uS68vZ1kXrR0PuN1C9.TdPzkO9yVXjW5pG4n3mXA0eFQxJZ1m7",
				IsAdmin:  false,
			},
		},
	}
}
