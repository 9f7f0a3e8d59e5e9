// internal/domain/product/entity.go
package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a saree in the catalog
type Product struct {
	ID            string         `gorm:"primaryKey;size:36" json:"id"`
	Name          string         `gorm:"not null;size:255" json:"name"`
	Description   string         `gorm:"type:text" json:"description"`
	Price         int64          `gorm:"not null" json:"price"`  // In paise
	OriginalPrice int64          `json:"original_price"`         // Pre-discount price
	Category      string         `gorm:"not null;size:100;index" json:"category"`
	Fabric        string         `gorm:"size:100" json:"fabric"`
	Occasion      string         `gorm:"size:100" json:"occasion"`
	Colors        string         `gorm:"size:500" json:"colors"` // Comma-separated
	Sizes         string         `gorm:"size:255" json:"sizes"`  // Comma-separated
	Image         string         `gorm:"size:500" json:"image"`
	Rating        float64        `gorm:"default:0" json:"rating"`
	ReviewCount   int            `gorm:"default:0" json:"review_count"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// BeforeCreate assigns an opaque ID when none was provided
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ColorList returns the colors as a slice
func (p *Product) ColorList() []string {
	return splitCSV(p.Colors)
}

// SizeList returns the sizes as a slice
func (p *Product) SizeList() []string {
	return splitCSV(p.Sizes)
}

// GetDiscountPercentage returns the discount relative to the original price
func (p *Product) GetDiscountPercentage() int {
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int(((p.OriginalPrice - p.Price) * 100) / p.OriginalPrice)
	}
	return 0
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
