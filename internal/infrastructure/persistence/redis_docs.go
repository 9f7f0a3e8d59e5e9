// internal/infrastructure/persistence/redis_docs.go
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
)

// DocumentStore keeps per-user cart and wishlist documents as JSON values
// in Redis, keyed by user ID. Writes are last-write-wins; a missing
// document reads as empty.
type DocumentStore struct {
	client *redis.Client
	config *config.Config
}

// NewDocumentStore creates a Redis-backed document store
func NewDocumentStore(client *redis.Client, cfg *config.Config) *DocumentStore {
	return &DocumentStore{client: client, config: cfg}
}

// FetchCart loads the persisted cart document for userID
func (s *DocumentStore) FetchCart(ctx context.Context, userID string) ([]cart.LineItem, error) {
	var items []cart.LineItem
	if err := s.fetch(ctx, cartKey(userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart upserts the cart document for userID
func (s *DocumentStore) SaveCart(ctx context.Context, userID string, items []cart.LineItem) error {
	return s.save(ctx, cartKey(userID), items)
}

// FetchWishlist loads the persisted wishlist document for userID
func (s *DocumentStore) FetchWishlist(ctx context.Context, userID string) ([]wishlist.Entry, error) {
	var entries []wishlist.Entry
	if err := s.fetch(ctx, wishlistKey(userID), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveWishlist upserts the wishlist document for userID
func (s *DocumentStore) SaveWishlist(ctx context.Context, userID string, entries []wishlist.Entry) error {
	return s.save(ctx, wishlistKey(userID), entries)
}

func (s *DocumentStore) fetch(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// No document yet, read as empty
		return nil
	} else if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

func (s *DocumentStore) save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, s.config.Session.DocumentTTL).Err()
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func wishlistKey(userID string) string {
	return fmt.Sprintf("wishlist:user:%s", userID)
}
