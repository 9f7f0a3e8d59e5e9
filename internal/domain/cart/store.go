// internal/domain/cart/store.go
package cart

import (
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// Store holds the ordered cart lines for one session. It is not safe for
// concurrent use on its own; the owning session serializes access.
type Store struct {
	items []LineItem
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{items: []LineItem{}}
}

// NewStoreWith creates a store pre-populated with the given lines.
// Lines are copied; lines sharing a key are merged via Add.
func NewStoreWith(items []LineItem) (*Store, error) {
	s := NewStore()
	for _, item := range items {
		if err := s.Add(item); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add merges the candidate into the cart. If a line with the same key
// already exists its quantity is incremented by the candidate's quantity;
// otherwise the candidate is appended, preserving insertion order.
// Stock limits are the backend's concern and are not enforced here.
func (s *Store) Add(candidate LineItem) error {
	if candidate.Key.ProductID == "" {
		return apperrors.NewValidation("product_id", "must not be empty")
	}
	if candidate.Quantity < 1 {
		return apperrors.NewValidation("quantity", "must be at least 1")
	}

	for i := range s.items {
		if s.items[i].Key == candidate.Key {
			s.items[i].Quantity += candidate.Quantity
			return nil
		}
	}

	s.items = append(s.items, candidate)
	return nil
}

// UpdateQuantity sets the quantity of the line with the given key. A
// quantity <= 0 removes the line. Updating an absent key is a no-op.
func (s *Store) UpdateQuantity(key ItemKey, quantity int) {
	if quantity <= 0 {
		s.Remove(key)
		return
	}

	for i := range s.items {
		if s.items[i].Key == key {
			s.items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line with the given key if present; otherwise no-op
func (s *Store) Remove(key ItemKey) {
	for i := range s.items {
		if s.items[i].Key == key {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (s *Store) Clear() {
	s.items = s.items[:0]
}

// Subtotal returns the sum of quantity * unit price over all lines,
// recomputed from the live items on every call
func (s *Store) Subtotal() int64 {
	var subtotal int64
	for _, item := range s.items {
		subtotal += item.UnitPrice * int64(item.Quantity)
	}
	return subtotal
}

// TotalQuantity returns the sum of all line quantities
func (s *Store) TotalQuantity() int {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Len returns the number of distinct lines
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the line with the given key
func (s *Store) Get(key ItemKey) (LineItem, bool) {
	for _, item := range s.items {
		if item.Key == key {
			return item, true
		}
	}
	return LineItem{}, false
}

// Items returns a copy of the cart lines in insertion order
func (s *Store) Items() []LineItem {
	items := make([]LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// CalculateTotals computes derived totals from the live items
func (s *Store) CalculateTotals() Totals {
	return Totals{
		ItemCount:     len(s.items),
		TotalQuantity: s.TotalQuantity(),
		SubTotal:      s.Subtotal(),
	}
}
