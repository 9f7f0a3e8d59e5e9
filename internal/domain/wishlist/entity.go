// internal/domain/wishlist/entity.go
package wishlist

import "time"

// Entry represents a wishlisted product. ProductID is the sole identity;
// color and size are chosen only when the entry moves to the cart.
type Entry struct {
	ProductID     string    `json:"product_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"`
	Category      string    `json:"category"`
	Colors        []string  `json:"colors"`
	Image         string    `json:"image"`
	AddedAt       time.Time `json:"added_at"`
}
