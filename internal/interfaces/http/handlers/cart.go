// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/session"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	sessions *session.Manager
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *session.Manager) *CartHandler {
	return &CartHandler{sessions: sessions}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Color     string `json:"color"`
	Size      string `json:"size"`
	Name      string `json:"name" binding:"required"`
	UnitPrice int64  `json:"unit_price" binding:"required,min=1"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"items":  s.CartItems(),
			"totals": s.CartTotals(),
		},
	})
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := s.AddToCart(c.Request.Context(), cart.LineItem{
		Key:       cart.ItemKey{ProductID: req.ProductID, Color: req.Color, Size: req.Size},
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Image:     req.Image,
		Quantity:  req.Quantity,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data": gin.H{
			"items":  s.CartItems(),
			"totals": s.CartTotals(),
		},
	})
}

// UpdateCartItem handles PUT /cart/items/:productId
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	s := resolveSession(c, h.sessions)
	key := itemKeyFromRequest(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := s.UpdateCartQuantity(c.Request.Context(), key, req.Quantity); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated successfully",
		"data": gin.H{
			"items":  s.CartItems(),
			"totals": s.CartTotals(),
		},
	})
}

// RemoveFromCart handles DELETE /cart/items/:productId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	if err := s.RemoveFromCart(c.Request.Context(), itemKeyFromRequest(c)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"data": gin.H{
			"items":  s.CartItems(),
			"totals": s.CartTotals(),
		},
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	s := resolveSession(c, h.sessions)

	if err := s.ClearCart(c.Request.Context()); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

// itemKeyFromRequest builds the composite line-item key from the path and
// the color/size query parameters
func itemKeyFromRequest(c *gin.Context) cart.ItemKey {
	return cart.ItemKey{
		ProductID: c.Param("productId"),
		Color:     c.Query("color"),
		Size:      c.Query("size"),
	}
}
