// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/saree-storefront/internal/domain/order"
	"github.com/your-org/saree-storefront/internal/domain/product"
	"github.com/your-org/saree-storefront/internal/domain/user"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{db: db}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: base tables before dependents
	models := []interface{}{
		&user.User{},
		&product.Product{},
		&order.Order{},
		&order.Item{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_payment ON orders(status, payment_status)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category, is_active)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData inserts development fixtures when the catalog is empty
func (m *Migration) SeedInitialData() error {
	var count int64
	if err := m.db.Model(&product.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Seeding development catalog...")

	seed := []product.Product{
		{
			Name:          "Royal Silk Saree",
			Price:         1599900,
			OriginalPrice: 1999900,
			Category:      "silk",
			Fabric:        "Pure Silk",
			Occasion:      "wedding",
			Colors:        "red,gold,maroon",
			Sizes:         "Free Size",
			Rating:        4.8,
			ReviewCount:   156,
			IsActive:      true,
			IsFeatured:    true,
		},
		{
			Name:          "Cotton Handloom Saree",
			Price:         399900,
			OriginalPrice: 499900,
			Category:      "cotton",
			Fabric:        "Cotton",
			Occasion:      "casual",
			Colors:        "blue,white,green",
			Sizes:         "Free Size",
			Rating:        4.6,
			ReviewCount:   89,
			IsActive:      true,
		},
		{
			Name:          "Designer Georgette Saree",
			Price:         899900,
			OriginalPrice: 1199900,
			Category:      "georgette",
			Fabric:        "Georgette",
			Occasion:      "party",
			Colors:        "pink,gold,cream",
			Sizes:         "Free Size",
			Rating:        4.7,
			ReviewCount:   124,
			IsActive:      true,
		},
	}

	for i := range seed {
		if err := m.db.Create(&seed[i]).Error; err != nil {
			return fmt.Errorf("failed to seed product %q: %w", seed[i].Name, err)
		}
	}

	return nil
}
