// internal/domain/session/session.go
package session

import (
	"context"
	"sync"

	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// Session owns the cart and wishlist stores for one browser session. It
// starts Anonymous with empty stores and transitions to Authenticated on
// sign-in. All operations are serialized by the session mutex, which gives
// the stores their single-threaded-caller guarantee.
type Session struct {
	ID string

	mu         sync.Mutex
	userID     string // empty while anonymous
	generation uint64
	cart       *cart.Store
	wishlist   *wishlist.Store

	carts     CartRepository
	wishlists WishlistRepository
}

func newSession(id string, carts CartRepository, wishlists WishlistRepository) *Session {
	return &Session{
		ID:        id,
		cart:      cart.NewStore(),
		wishlist:  wishlist.NewStore(),
		carts:     carts,
		wishlists: wishlists,
	}
}

// IsAuthenticated reports whether the session is signed in
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID != ""
}

// UserID returns the signed-in user ID, or empty while anonymous
func (s *Session) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// Cart operations

// AddToCart merges the candidate into the cart and, for authenticated
// sessions, writes the cart document through to the collaborator. The local
// mutation stands even if the write-through fails; the failure is surfaced
// so the caller can retry.
func (s *Session) AddToCart(ctx context.Context, item cart.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.cart.Add(item); err != nil {
		return err
	}
	return s.persistCartLocked(ctx)
}

// UpdateCartQuantity sets the quantity for key; <= 0 removes the line and
// an absent key is a no-op
func (s *Session) UpdateCartQuantity(ctx context.Context, key cart.ItemKey, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.UpdateQuantity(key, quantity)
	return s.persistCartLocked(ctx)
}

// RemoveFromCart removes the line for key if present
func (s *Session) RemoveFromCart(ctx context.Context, key cart.ItemKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Remove(key)
	return s.persistCartLocked(ctx)
}

// ClearCart empties the cart
func (s *Session) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return s.persistCartLocked(ctx)
}

// CartItems returns a copy of the cart lines
func (s *Session) CartItems() []cart.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// CartTotals returns fresh derived totals
func (s *Session) CartTotals() cart.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.CalculateTotals()
}

// Wishlist operations

// AddToWishlist inserts the entry unless the product is already present
func (s *Session) AddToWishlist(ctx context.Context, entry wishlist.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.wishlist.Add(entry); err != nil {
		return err
	}
	return s.persistWishlistLocked(ctx)
}

// RemoveFromWishlist removes the entry for productID if present
func (s *Session) RemoveFromWishlist(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.Remove(productID)
	return s.persistWishlistLocked(ctx)
}

// ClearWishlist empties the wishlist
func (s *Session) ClearWishlist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.Clear()
	return s.persistWishlistLocked(ctx)
}

// WishlistContains reports whether the product is wishlisted
func (s *Session) WishlistContains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// WishlistItems returns a copy of the wishlist entries
func (s *Session) WishlistItems() []wishlist.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Items()
}

// WishlistTotalItems returns the number of wishlisted products
func (s *Session) WishlistTotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.TotalItems()
}

// MoveToCart moves a wishlisted product into the cart with the chosen color
// and size, then removes it from the wishlist
func (s *Session) MoveToCart(ctx context.Context, productID, color, size string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.wishlist.Get(productID)
	if !ok {
		return apperrors.NewValidation("product_id", "not in wishlist")
	}

	err := s.cart.Add(cart.LineItem{
		Key:       cart.ItemKey{ProductID: productID, Color: color, Size: size},
		Name:      entry.Name,
		UnitPrice: entry.Price,
		Image:     entry.Image,
		Quantity:  quantity,
	})
	if err != nil {
		return err
	}

	s.wishlist.Remove(productID)

	if err := s.persistCartLocked(ctx); err != nil {
		return err
	}
	return s.persistWishlistLocked(ctx)
}

// persistCartLocked writes the cart document through to the collaborator
// for authenticated sessions. Caller holds the mutex.
func (s *Session) persistCartLocked(ctx context.Context) error {
	if s.userID == "" {
		return nil
	}
	if err := s.carts.SaveCart(ctx, s.userID, s.cart.Items()); err != nil {
		return apperrors.NewCollaborator("cart save", err)
	}
	return nil
}

// persistWishlistLocked writes the wishlist document through to the
// collaborator for authenticated sessions. Caller holds the mutex.
func (s *Session) persistWishlistLocked(ctx context.Context) error {
	if s.userID == "" {
		return nil
	}
	if err := s.wishlists.SaveWishlist(ctx, s.userID, s.wishlist.Items()); err != nil {
		return apperrors.NewCollaborator("wishlist save", err)
	}
	return nil
}
