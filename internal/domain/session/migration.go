// internal/domain/session/migration.go
package session

import (
	"context"

	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// SignIn migrates the session to Authenticated(userID).
//
// The anonymous cart is merged into the user's persisted cart with the same
// key-based rule as Add: quantities sum per (product, color, size) and the
// persisted line's name, price, and image win over the anonymous snapshot.
// Wishlists union by product ID, the persisted entry winning on collision.
// The merged result is persisted first and only then swapped into the
// session, so a fetch or persist failure leaves the session in its prior
// state with its prior contents, and the error is returned to the caller.
//
// The migration is idempotent: once authenticated the session carries no
// anonymous contribution, so a repeated sign-in converges on the persisted
// state instead of doubling quantities.
func (s *Session) SignIn(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.NewValidation("user_id", "must not be empty")
	}

	s.mu.Lock()
	gen := s.generation
	var localCart []cart.LineItem
	var localWishlist []wishlist.Entry
	if s.userID == "" {
		localCart = s.cart.Items()
		localWishlist = s.wishlist.Items()
	}
	s.mu.Unlock()

	// Suspending collaborator calls happen outside the session lock
	persistedCart, err := s.carts.FetchCart(ctx, userID)
	if err != nil {
		return apperrors.NewCollaborator("cart fetch", err)
	}
	persistedWishlist, err := s.wishlists.FetchWishlist(ctx, userID)
	if err != nil {
		return apperrors.NewCollaborator("wishlist fetch", err)
	}

	mergedCart, err := mergeCarts(persistedCart, localCart)
	if err != nil {
		return err
	}
	mergedWishlist, err := mergeWishlists(persistedWishlist, localWishlist)
	if err != nil {
		return err
	}

	if err := s.carts.SaveCart(ctx, userID, mergedCart.Items()); err != nil {
		return apperrors.NewCollaborator("cart save", err)
	}
	if err := s.wishlists.SaveWishlist(ctx, userID, mergedWishlist.Items()); err != nil {
		return apperrors.NewCollaborator("wishlist save", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A sign-out (or any other transition) that happened while the
	// collaborator calls were in flight supersedes this response; applying
	// it would resurrect stale state.
	if s.generation != gen {
		return apperrors.ErrStaleResponse
	}

	s.userID = userID
	s.cart = mergedCart
	s.wishlist = mergedWishlist
	s.generation++
	return nil
}

// SignOut reverts the session to Anonymous with fresh empty stores. The
// user's persisted documents are left untouched.
func (s *Session) SignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = ""
	s.cart = cart.NewStore()
	s.wishlist = wishlist.NewStore()
	s.generation++
}

// mergeCarts builds the merged cart, persisted lines first so their
// snapshots stay authoritative on key collisions
func mergeCarts(persisted, local []cart.LineItem) (*cart.Store, error) {
	merged, err := cart.NewStoreWith(persisted)
	if err != nil {
		return nil, err
	}
	for _, item := range local {
		if err := merged.Add(item); err != nil {
			return nil, err
		}
	}

	// Persisted name/price/image win on collision; Add already keeps the
	// existing line's fields and sums quantities, so nothing more to do.
	return merged, nil
}

// mergeWishlists unions by product ID, persisted entries (and their
// AddedAt) winning on collision
func mergeWishlists(persisted, local []wishlist.Entry) (*wishlist.Store, error) {
	merged, err := wishlist.NewStoreWith(persisted)
	if err != nil {
		return nil, err
	}
	for _, entry := range local {
		if err := merged.Add(entry); err != nil {
			return nil, err
		}
	}
	return merged, nil
}
