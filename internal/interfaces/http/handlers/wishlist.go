// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/domain/session"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	sessions *session.Manager
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(sessions *session.Manager) *WishlistHandler {
	return &WishlistHandler{sessions: sessions}
}

// AddToWishlistRequest represents add to wishlist request
type AddToWishlistRequest struct {
	ProductID     string   `json:"product_id" binding:"required"`
	Name          string   `json:"name" binding:"required"`
	Price         int64    `json:"price" binding:"required,min=1"`
	OriginalPrice int64    `json:"original_price"`
	Category      string   `json:"category"`
	Colors        []string `json:"colors"`
	Image         string   `json:"image"`
}

// MoveToCartRequest represents a wishlist to cart move
type MoveToCartRequest struct {
	Color    string `json:"color"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items": s.WishlistItems(),
			"count": s.WishlistTotalItems(),
		},
	})
}

// AddToWishlist handles POST /wishlist/items
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	var req AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := s.AddToWishlist(c.Request.Context(), wishlist.Entry{
		ProductID:     req.ProductID,
		Name:          req.Name,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Colors:        req.Colors,
		Image:         req.Image,
		AddedAt:       time.Now().UTC(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to wishlist",
		"data": gin.H{
			"items": s.WishlistItems(),
			"count": s.WishlistTotalItems(),
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/items/:productId
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	if err := s.RemoveFromWishlist(c.Request.Context(), c.Param("productId")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist",
		"data": gin.H{
			"count": s.WishlistTotalItems(),
		},
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	if err := s.ClearWishlist(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared",
	})
}

// Contains handles GET /wishlist/contains/:productId, used by the UI to
// render the heart toggle
func (h *WishlistHandler) Contains(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"product_id":  c.Param("productId"),
			"in_wishlist": s.WishlistContains(c.Param("productId")),
		},
	})
}

// MoveToCart handles POST /wishlist/items/:productId/move-to-cart
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	var req MoveToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := s.MoveToCart(c.Request.Context(), c.Param("productId"), req.Color, req.Size, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item moved to cart",
		"data": gin.H{
			"cart_totals":    s.CartTotals(),
			"wishlist_count": s.WishlistTotalItems(),
		},
	})
}
