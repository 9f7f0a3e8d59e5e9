// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status represents the order fulfilment status
type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Order represents a customer order. Amounts are in paise.
type Order struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber   string        `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerEmail string        `gorm:"not null;size:255;index" json:"customer_email"`
	CustomerName  string        `gorm:"size:255" json:"customer_name"`
	Status        Status        `gorm:"not null;default:'pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'pending';index" json:"payment_status"`

	Subtotal     int64 `gorm:"not null" json:"subtotal"`
	ShippingCost int64 `gorm:"default:0" json:"shipping_cost"`
	TaxAmount    int64 `gorm:"default:0" json:"tax_amount"`
	TotalAmount  int64 `gorm:"not null" json:"total_amount"`

	TrackingNumber string `gorm:"size:100" json:"tracking_number"`
	Notes          string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item represents one line of an order
type Item struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	OrderID  string `gorm:"not null;size:36;index" json:"order_id"`
	Name     string `gorm:"not null;size:255" json:"name"`
	Color    string `gorm:"size:50" json:"color"`
	Size     string `gorm:"size:50" json:"size"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Price    int64  `gorm:"not null" json:"price"` // Per unit, in paise
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// BeforeCreate assigns an opaque ID and order number when absent
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%s-%s", time.Now().Format("20060102"), o.ID[:8])
	}
	return nil
}

// CanTransitionTo reports whether moving to next is a valid status change
func (o *Order) CanTransitionTo(next Status) bool {
	allowed, ok := statusTransitions[o.Status]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == next {
			return true
		}
	}
	return false
}

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// ValidStatus reports whether s is a known order status
func ValidStatus(s Status) bool {
	_, ok := statusTransitions[s]
	return ok
}

// ValidPaymentStatus reports whether s is a known payment status
func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}
