// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/order"
	"github.com/your-org/saree-storefront/internal/pkg/pdf"
	"gorm.io/gorm"
)

// OrderHandler handles customer order placement and the admin dashboard.
// Dashboard reads serve from the service's snapshot; every successful
// mutation here triggers a refresh.
type OrderHandler struct {
	orders   *order.Service
	invoices *pdf.Service
	logger   *logrus.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, orders *order.Service, cfg *config.Config, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		invoices: pdf.NewService(cfg),
		logger:   logger,
	}
}

// Create handles POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orders.Create(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := h.orders.RefreshSnapshot(); err != nil {
		h.logger.WithError(err).Warn("order snapshot refresh failed after create")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    ord,
	})
}

// List handles GET /admin/orders with search, status, and payment_status
// query parameters
func (h *OrderHandler) List(c *gin.Context) {
	params := order.ListParams{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
	}

	orders := h.orders.List(params)

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data": gin.H{
			"orders": orders,
			"count":  len(orders),
		},
	})
}

// Stats handles GET /admin/orders/stats
func (h *OrderHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Order stats retrieved successfully",
		"data":    h.orders.GetStats(),
	})
}

// Get handles GET /admin/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	ord, err := h.orders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    ord,
	})
}

// Update handles PUT /admin/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req order.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	ord, err := h.orders.Update(c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		writeError(c, err)
		return
	}

	if err := h.orders.RefreshSnapshot(); err != nil {
		h.logger.WithError(err).Warn("order snapshot refresh failed after update")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order updated successfully",
		"data":    ord,
	})
}

// Invoice handles GET /admin/orders/:id/invoice
func (h *OrderHandler) Invoice(c *gin.Context) {
	ord, err := h.orders.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		writeError(c, err)
		return
	}

	buf, err := h.invoices.GenerateInvoice(ord)
	if err != nil {
		h.logger.WithError(err).WithField("order_id", ord.ID).Error("invoice generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invoice"})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", ord.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
