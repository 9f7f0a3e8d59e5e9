// internal/domain/wishlist/store.go
package wishlist

import (
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// Store holds the wishlisted products for one session, at most one entry
// per product. Not safe for concurrent use on its own; the owning session
// serializes access.
type Store struct {
	entries []Entry
	index   map[string]int // product ID -> position in entries
}

// NewStore creates an empty wishlist store
func NewStore() *Store {
	return &Store{
		entries: []Entry{},
		index:   make(map[string]int),
	}
}

// NewStoreWith creates a store pre-populated with the given entries.
// Duplicate product IDs keep the first occurrence.
func NewStoreWith(entries []Entry) (*Store, error) {
	s := NewStore()
	for _, entry := range entries {
		if err := s.Add(entry); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add inserts the entry unless the product is already wishlisted. Re-adding
// a present product is a strict no-op: the existing entry, including its
// AddedAt, is kept untouched.
func (s *Store) Add(entry Entry) error {
	if entry.ProductID == "" {
		return apperrors.NewValidation("product_id", "must not be empty")
	}

	if _, exists := s.index[entry.ProductID]; exists {
		return nil
	}

	s.index[entry.ProductID] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

// Remove deletes the entry for productID if present; otherwise no-op
func (s *Store) Remove(productID string) {
	pos, exists := s.index[productID]
	if !exists {
		return
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, productID)

	// Reindex entries shifted left by the removal
	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].ProductID] = i
	}
}

// Clear empties the wishlist unconditionally
func (s *Store) Clear() {
	s.entries = s.entries[:0]
	s.index = make(map[string]int)
}

// Contains reports whether the product is wishlisted
func (s *Store) Contains(productID string) bool {
	_, exists := s.index[productID]
	return exists
}

// Get returns the entry for productID
func (s *Store) Get(productID string) (Entry, bool) {
	pos, exists := s.index[productID]
	if !exists {
		return Entry{}, false
	}
	return s.entries[pos], true
}

// TotalItems returns the number of entries
func (s *Store) TotalItems() int {
	return len(s.entries)
}

// Items returns a copy of the entries in insertion order
func (s *Store) Items() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}
