// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"sync"

	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
	"github.com/your-org/saree-storefront/internal/pkg/query"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no order exists for the requested ID
var ErrNotFound = errors.New("order not found")

// Service handles order business logic for the admin dashboard. Reads go
// through an in-memory snapshot of the collaborator's records; the caller
// refreshes the snapshot after a successful mutation.
type Service struct {
	db *gorm.DB

	mu       sync.RWMutex
	snapshot []Order
}

// NewService creates a new order service
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// ListParams selects an admin order view
type ListParams struct {
	Search        string // Matches order number, customer email, customer name
	Status        string // "all" means no constraint
	PaymentStatus string // "all" means no constraint
}

// Stats are the dashboard aggregates, recomputed from the full unfiltered
// snapshot on every call
type Stats struct {
	TotalOrders     int   `json:"total_orders"`
	TotalRevenue    int64 `json:"total_revenue"`
	PendingOrders   int   `json:"pending_orders"`
	CompletedOrders int   `json:"completed_orders"` // Delivered
}

// CreateOrderRequest represents a new order
type CreateOrderRequest struct {
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerName  string `json:"customer_name"`
	Items         []Item `json:"items" binding:"required,min=1"`
	ShippingCost  int64  `json:"shipping_cost"`
	TaxAmount     int64  `json:"tax_amount"`
	Notes         string `json:"notes"`
}

// UpdateOrderRequest represents an admin order update; empty fields are
// left unchanged
type UpdateOrderRequest struct {
	Status         Status        `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	TrackingNumber string        `json:"tracking_number"`
	Notes          string        `json:"notes"`
}

// RefreshSnapshot reloads the in-memory order snapshot from the
// collaborator, newest first
func (s *Service) RefreshSnapshot() error {
	var orders []Order
	err := s.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return apperrors.NewCollaborator("order snapshot refresh", err)
	}

	s.mu.Lock()
	s.snapshot = orders
	s.mu.Unlock()
	return nil
}

// List applies search and categorical filters over a copy of the snapshot
func (s *Service) List(params ListParams) []Order {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	return ApplyOrderQuery(snapshot, params)
}

// GetStats recomputes the dashboard aggregates from the full snapshot
func (s *Service) GetStats() Stats {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()

	return ComputeStats(snapshot)
}

// Get returns one order by ID
func (s *Service) Get(id string) (*Order, error) {
	var ord Order
	err := s.db.Preload("Items").Where("id = ?", id).First(&ord).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.NewCollaborator("order get", err)
	}
	return &ord, nil
}

// Create records a new pending order. Totals are derived from the items
// plus shipping and tax.
func (s *Service) Create(req *CreateOrderRequest) (*Order, error) {
	var subtotal int64
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return nil, apperrors.NewValidation("quantity", "must be at least 1")
		}
		subtotal += item.Price * int64(item.Quantity)
	}

	ord := Order{
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
		Status:        StatusPending,
		PaymentStatus: PaymentStatusPending,
		Subtotal:      subtotal,
		ShippingCost:  req.ShippingCost,
		TaxAmount:     req.TaxAmount,
		TotalAmount:   subtotal + req.ShippingCost + req.TaxAmount,
		Notes:         req.Notes,
		Items:         req.Items,
	}

	if err := s.db.Create(&ord).Error; err != nil {
		return nil, apperrors.NewCollaborator("order create", err)
	}
	return &ord, nil
}

// Update applies an admin update. Status changes must follow the
// fulfilment transitions. The snapshot is not refreshed here; the caller
// triggers that after a successful result.
func (s *Service) Update(id string, req *UpdateOrderRequest) (*Order, error) {
	ord, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Status != "" && req.Status != ord.Status {
		if !ValidStatus(req.Status) {
			return nil, apperrors.NewValidation("status", fmt.Sprintf("unknown status %q", req.Status))
		}
		if !ord.CanTransitionTo(req.Status) {
			return nil, apperrors.NewValidation("status",
				fmt.Sprintf("cannot transition from %s to %s", ord.Status, req.Status))
		}
		ord.Status = req.Status
	}
	if req.PaymentStatus != "" {
		if !ValidPaymentStatus(req.PaymentStatus) {
			return nil, apperrors.NewValidation("payment_status",
				fmt.Sprintf("unknown payment status %q", req.PaymentStatus))
		}
		ord.PaymentStatus = req.PaymentStatus
	}
	if req.TrackingNumber != "" {
		ord.TrackingNumber = req.TrackingNumber
	}
	if req.Notes != "" {
		ord.Notes = req.Notes
	}

	if err := s.db.Save(ord).Error; err != nil {
		return nil, apperrors.NewCollaborator("order update", err)
	}
	return ord, nil
}

// ApplyOrderQuery runs the admin search and categorical filters over a
// snapshot. Pure: the snapshot is never mutated.
func ApplyOrderQuery(orders []Order, params ListParams) []Order {
	filtered := query.Search(orders, params.Search, func(o Order) []string {
		return []string{o.OrderNumber, o.CustomerEmail, o.CustomerName, o.ID}
	})

	filtered = query.FilterEq(filtered, params.Status, func(o Order) string {
		return string(o.Status)
	})

	filtered = query.FilterEq(filtered, params.PaymentStatus, func(o Order) string {
		return string(o.PaymentStatus)
	})

	return query.Clone(filtered)
}

// ComputeStats derives the dashboard aggregates from a full snapshot
func ComputeStats(orders []Order) Stats {
	stats := Stats{TotalOrders: len(orders)}
	for _, ord := range orders {
		stats.TotalRevenue += ord.TotalAmount
		switch ord.Status {
		case StatusPending:
			stats.PendingOrders++
		case StatusDelivered:
			stats.CompletedOrders++
		}
	}
	return stats
}
