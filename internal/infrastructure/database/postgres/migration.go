// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/product"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	logrus.Info("Running database auto-migrations...")

	models := []interface{}{
		&product.Product{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	logrus.Info("Database auto-migrations completed")
	return nil
}

// CreateIndexes creates indexes the auto-migration does not cover
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products(featured) WHERE featured = true",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_name ON products(name)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData inserts the starter catalog when the products table is
// empty. Used in development so a fresh database has something to browse.
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Seeding initial catalog...")

	seed := []product.Product{
		{
			Name:        "iPhone 13 Pro",
			Description: "Latest iPhone with Pro camera system",
			Price:       899.99,
			Stock:       15,
			Category:    "smartphones",
			Images:      product.StringList{"https://images.unsplash.com/photo-1633891120862-aaa056fe62f6?w=500"},
			Specifications: product.StringMap{
				"Storage": "128GB",
				"Display": `6.1" Super Retina XDR`,
				"Chip":    "A15 Bionic",
			},
			IsActive:           true,
			Featured:           true,
			DiscountPercentage: 5,
		},
		{
			Name:        "MacBook Air M2",
			Description: "Lightweight and powerful laptop",
			Price:       1199.99,
			Stock:       8,
			Category:    "laptops",
			Images:      product.StringList{"https://images.unsplash.com/photo-1661961112951-f2bfd1f253ce?w=500"},
			Specifications: product.StringMap{
				"Chip":    "M2",
				"Memory":  "8GB",
				"Storage": "256GB SSD",
			},
			IsActive: true,
			Featured: true,
		},
		{
			Name:        "iPad Air",
			Description: "Powerful. Colorful. Wonderful.",
			Price:       599.99,
			Stock:       12,
			Category:    "tablets",
			Images:      product.StringList{"https://images.unsplash.com/photo-1642774046487-3b62b24a3a64?w=500"},
			Specifications: product.StringMap{
				"Display": `10.9" Liquid Retina`,
				"Chip":    "M1",
				"Storage": "64GB",
			},
			IsActive:           true,
			DiscountPercentage: 10,
		},
	}

	if err := m.db.Create(&seed).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	logrus.Infof("Seeded %d products", len(seed))
	return nil
}
