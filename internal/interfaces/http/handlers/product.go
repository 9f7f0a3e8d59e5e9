// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/domain/product"
	"gorm.io/gorm"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	products *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{products: product.NewService(db)}
}

// List handles GET /products with search, category, price_range, and
// sort_by query parameters
func (h *ProductHandler) List(c *gin.Context) {
	params := product.ListParams{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("price_range"),
		SortBy:     c.Query("sort_by"),
	}

	products, err := h.products.List(params)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": products,
			"count":    len(products),
		},
	})
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	prod, err := h.products.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    prod,
	})
}

// Create handles POST /admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	prod, err := h.products.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    prod,
	})
}

// Update handles PUT /admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	prod, err := h.products.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    prod,
	})
}

// Delete handles DELETE /admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.products.Delete(c.Param("id")); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
