// internal/domain/cart/entity.go
package cart

// ItemKey is the composite identity of a cart line item. Two additions with
// an equal key are the same line and their quantities combine; a different
// color or size of the same product is a different line.
type ItemKey struct {
	ProductID string `json:"product_id"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// LineItem represents one line in a cart. UnitPrice is in minor currency
// units (paise); Quantity is always >= 1 while the line exists.
type LineItem struct {
	Key       ItemKey `json:"key"`
	Name      string  `json:"name"`
	UnitPrice int64   `json:"unit_price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Totals represents derived cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // Sum of quantity * unit price
}
