// internal/domain/product/service.go
package product

import (
	"errors"
	"strconv"
	"strings"

	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
	"github.com/your-org/saree-storefront/internal/pkg/query"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no product exists for the requested ID
var ErrNotFound = errors.New("product not found")

// Service handles catalog business logic
type Service struct {
	db *gorm.DB
}

// NewService creates a new product service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListParams selects and orders a catalog view
type ListParams struct {
	Search     string // Matches name, fabric, category
	Category   string // "all" means no constraint
	PriceRange string // "min-max" or "min" in paise, "all" means no constraint
	SortBy     string // price-low, price-high, rating, newest; default keeps original order
}

// CreateProductRequest represents an admin create request
type CreateProductRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Price         int64    `json:"price" binding:"required,min=1"`
	OriginalPrice int64    `json:"original_price"`
	Category      string   `json:"category" binding:"required"`
	Fabric        string   `json:"fabric"`
	Occasion      string   `json:"occasion"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Image         string   `json:"image"`
	IsFeatured    bool     `json:"is_featured"`
}

// UpdateProductRequest represents an admin update request; nil fields are
// left unchanged
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *int64   `json:"price"`
	OriginalPrice *int64   `json:"original_price"`
	Category      *string  `json:"category"`
	Fabric        *string  `json:"fabric"`
	Occasion      *string  `json:"occasion"`
	Colors        []string `json:"colors"`
	Sizes         []string `json:"sizes"`
	Image         *string  `json:"image"`
	IsActive      *bool    `json:"is_active"`
	IsFeatured    *bool    `json:"is_featured"`
}

// List fetches the active catalog and applies search, filters, and sort in
// memory over the snapshot
func (s *Service) List(params ListParams) ([]Product, error) {
	var products []Product
	if err := s.db.Where("is_active = ?", true).Order("created_at").Find(&products).Error; err != nil {
		return nil, apperrors.NewCollaborator("product list", err)
	}

	return ApplyCatalogQuery(products, params), nil
}

// Get returns one product by ID
func (s *Service) Get(id string) (*Product, error) {
	var prod Product
	if err := s.db.Where("id = ?", id).First(&prod).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.NewCollaborator("product get", err)
	}
	return &prod, nil
}

// Create adds a product to the catalog
func (s *Service) Create(req *CreateProductRequest) (*Product, error) {
	if req.Price < 1 {
		return nil, apperrors.NewValidation("price", "must be positive")
	}

	prod := Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Fabric:        req.Fabric,
		Occasion:      req.Occasion,
		Colors:        strings.Join(req.Colors, ","),
		Sizes:         strings.Join(req.Sizes, ","),
		Image:         req.Image,
		IsActive:      true,
		IsFeatured:    req.IsFeatured,
	}

	if err := s.db.Create(&prod).Error; err != nil {
		return nil, apperrors.NewCollaborator("product create", err)
	}
	return &prod, nil
}

// Update applies a partial update to a product
func (s *Service) Update(id string, req *UpdateProductRequest) (*Product, error) {
	prod, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		prod.Name = *req.Name
	}
	if req.Description != nil {
		prod.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 1 {
			return nil, apperrors.NewValidation("price", "must be positive")
		}
		prod.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		prod.OriginalPrice = *req.OriginalPrice
	}
	if req.Category != nil {
		prod.Category = *req.Category
	}
	if req.Fabric != nil {
		prod.Fabric = *req.Fabric
	}
	if req.Occasion != nil {
		prod.Occasion = *req.Occasion
	}
	if req.Colors != nil {
		prod.Colors = strings.Join(req.Colors, ",")
	}
	if req.Sizes != nil {
		prod.Sizes = strings.Join(req.Sizes, ",")
	}
	if req.Image != nil {
		prod.Image = *req.Image
	}
	if req.IsActive != nil {
		prod.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		prod.IsFeatured = *req.IsFeatured
	}

	if err := s.db.Save(prod).Error; err != nil {
		return nil, apperrors.NewCollaborator("product update", err)
	}
	return prod, nil
}

// Delete soft-deletes a product
func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return apperrors.NewCollaborator("product delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of active products
func (s *Service) Count() (int64, error) {
	var count int64
	err := s.db.Model(&Product{}).Where("is_active = ?", true).Count(&count).Error
	if err != nil {
		return 0, apperrors.NewCollaborator("product count", err)
	}
	return count, nil
}

// ApplyCatalogQuery runs the search, categorical, and price filters followed
// by the selected sort over a snapshot. Pure: the snapshot is never mutated.
func ApplyCatalogQuery(products []Product, params ListParams) []Product {
	filtered := query.Search(products, params.Search, func(p Product) []string {
		return []string{p.Name, p.Fabric, p.Category}
	})

	filtered = query.FilterEq(filtered, params.Category, func(p Product) string {
		return p.Category
	})

	if min, max, ok := parsePriceRange(params.PriceRange); ok {
		filtered = query.Filter(filtered, func(p Product) bool {
			if max > 0 {
				return p.Price >= min && p.Price <= max
			}
			return p.Price >= min
		})
	}

	switch params.SortBy {
	case "price-low":
		return query.SortStable(filtered, func(a, b Product) bool { return a.Price < b.Price })
	case "price-high":
		return query.SortStable(filtered, func(a, b Product) bool { return a.Price > b.Price })
	case "rating":
		return query.SortStable(filtered, func(a, b Product) bool { return a.Rating > b.Rating })
	case "newest":
		return query.SortStable(filtered, func(a, b Product) bool { return a.CreatedAt.After(b.CreatedAt) })
	default:
		// Featured keeps the snapshot's original order
		return query.Clone(filtered)
	}
}

// parsePriceRange parses "min-max" or "min" bucket values in paise
func parsePriceRange(s string) (min, max int64, ok bool) {
	if s == "" || s == query.All {
		return 0, 0, false
	}

	parts := strings.SplitN(s, "-", 2)
	min, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	if len(parts) == 2 && parts[1] != "" {
		max, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}
