// internal/domain/session/repository.go
package session

import (
	"context"

	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
)

// CartRepository is the persistence collaborator contract for per-user
// cart documents. Writes are last-write-wins across devices.
type CartRepository interface {
	FetchCart(ctx context.Context, userID string) ([]cart.LineItem, error)
	SaveCart(ctx context.Context, userID string, items []cart.LineItem) error
}

// WishlistRepository is the persistence collaborator contract for per-user
// wishlist documents
type WishlistRepository interface {
	FetchWishlist(ctx context.Context, userID string) ([]wishlist.Entry, error)
	SaveWishlist(ctx context.Context, userID string, entries []wishlist.Entry) error
}
