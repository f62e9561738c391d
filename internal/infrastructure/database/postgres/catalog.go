// internal/infrastructure/database/postgres/catalog.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// ProductRecord is the relational shape of a catalog product
type ProductRecord struct {
	ID           uint    `gorm:"primaryKey"`
	Slug         string  `gorm:"uniqueIndex;not null;size:255"`
	Name         string  `gorm:"not null;size:255"`
	Category     string  `gorm:"index;size:100"`
	Image        string  `gorm:"size:500"`
	Price        float64 `gorm:"not null"`
	CountInStock int     `gorm:"not null;default:0"`
	Rating       float64
	NumReviews   int
	Description  string
}

// TableName overrides the table name
func (ProductRecord) TableName() string {
	return "products"
}

// UserRecord is the relational shape of a directory user
type UserRecord struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:100"`
	Email    string `gorm:"uniqueIndex;not null;size:255"`
	Password string `gorm:"not null;size:255"`
	IsAdmin  bool   `gorm:"default:false"`
}

// TableName overrides the table name
func (UserRecord) TableName() string {
	return "users"
}

// Migrate creates the catalog tables
func (d *Database) Migrate() error {
	if err := d.db.AutoMigrate(&ProductRecord{}, &UserRecord{}); err != nil {
		return fmt.Errorf("failed to migrate catalog tables: %w", err)
	}
	return nil
}

// Seed populates empty catalog tables from seed data. Seed passwords are
// stored bcrypt-hashed; they are directory data and are never verified
// at sign-in.
func (d *Database) Seed(seed *catalog.SeedData, bcryptCost int) error {
	var productCount int64
	if err := d.db.Model(&ProductRecord{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount == 0 {
		records := make([]ProductRecord, len(seed.Products))
		for i, p := range seed.Products {
			records[i] = ProductRecord{
				Slug:         p.Slug,
				Name:         p.Name,
				Category:     p.Category,
				Image:        p.Image,
				Price:        p.Price,
				CountInStock: p.CountInStock,
				Rating:       p.Rating,
				NumReviews:   p.NumReviews,
				Description:  p.Description,
			}
		}
		if err := d.db.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Printf("Seeded %d products", len(records))
	}

	var userCount int64
	if err := d.db.Model(&UserRecord{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	if userCount == 0 {
		for _, u := range seed.Users {
			hash, err := auth.HashPassword(u.Password, bcryptCost)
			if err != nil {
				return err
			}
			record := UserRecord{
				Name:     u.Name,
				Email:    u.Email,
				Password: hash,
				IsAdmin:  u.IsAdmin,
			}
			if err := d.db.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Email, err)
			}
		}
		log.Printf("Seeded %d users", len(seed.Users))
	}

	return nil
}

// LoadCatalog reads the full product and user collections once. The
// result backs the static accessor for the life of the process; the
// storefront never queries per request.
func (d *Database) LoadCatalog() (*catalog.SeedData, error) {
	var productRecords []ProductRecord
	if err := d.db.Order("id ASC").Find(&productRecords).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	var userRecords []UserRecord
	if err := d.db.Order("id ASC").Find(&userRecords).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	seed := &catalog.SeedData{
		Products: make([]catalog.Product, len(productRecords)),
		Users:    make([]user.User, len(userRecords)),
	}
	for i, r := range productRecords {
		seed.Products[i] = catalog.Product{
			ID:           fmt.Sprintf("%d", r.ID),
			Slug:         r.Slug,
			Name:         r.Name,
			Category:     r.Category,
			Image:        r.Image,
			Price:        r.Price,
			CountInStock: r.CountInStock,
			Rating:       r.Rating,
			NumReviews:   r.NumReviews,
			Description:  r.Description,
		}
	}
	for i, r := range userRecords {
		seed.Users[i] = user.User{
			ID:       fmt.Sprintf("%d", r.ID),
			Name:     r.Name,
			Email:    r.Email,
			Password: r.Password,
			IsAdmin:  r.IsAdmin,
		}
	}

	return seed, nil
}
