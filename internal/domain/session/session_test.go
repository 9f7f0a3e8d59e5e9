package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/saree-storefront/internal/domain/cart"
	"github.com/your-org/saree-storefront/internal/domain/wishlist"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

// fakeRepo is an in-memory stand-in for the persistence collaborator with
// switchable failures and call hooks
type fakeRepo struct {
	carts     map[string][]cart.LineItem
	wishlists map[string][]wishlist.Entry

	failFetch bool
	failSave  bool
	onFetch   func()

	cartSaves int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		carts:     make(map[string][]cart.LineItem),
		wishlists: make(map[string][]wishlist.Entry),
	}
}

func (r *fakeRepo) FetchCart(_ context.Context, userID string) ([]cart.LineItem, error) {
	if r.onFetch != nil {
		r.onFetch()
	}
	if r.failFetch {
		return nil, errors.New("connection refused")
	}
	return r.carts[userID], nil
}

func (r *fakeRepo) SaveCart(_ context.Context, userID string, items []cart.LineItem) error {
	if r.failSave {
		return errors.New("connection refused")
	}
	r.cartSaves++
	r.carts[userID] = items
	return nil
}

func (r *fakeRepo) FetchWishlist(_ context.Context, userID string) ([]wishlist.Entry, error) {
	if r.failFetch {
		return nil, errors.New("connection refused")
	}
	return r.wishlists[userID], nil
}

func (r *fakeRepo) SaveWishlist(_ context.Context, userID string, entries []wishlist.Entry) error {
	if r.failSave {
		return errors.New("connection refused")
	}
	r.wishlists[userID] = entries
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestSession(repo *fakeRepo) *Session {
	return NewManager(repo, repo, testLogger()).Resolve("")
}

func line(productID, color, size string, qty int, price int64) cart.LineItem {
	return cart.LineItem{
		Key:       cart.ItemKey{ProductID: productID, Color: color, Size: size},
		Name:      "Saree " + productID,
		UnitPrice: price,
		Quantity:  qty,
	}
}

func wlEntry(productID string, addedAt time.Time) wishlist.Entry {
	return wishlist.Entry{
		ProductID: productID,
		Name:      "Saree " + productID,
		Price:     3999,
		AddedAt:   addedAt,
	}
}

func TestSignInMergesAnonymousCartIntoPersisted(t *testing.T) {
	repo := newFakeRepo()
	repo.carts["u1"] = []cart.LineItem{line("p1", "red", "M", 1, 500)}

	s := newTestSession(repo)
	require.NoError(t, s.AddToCart(context.Background(), line("p1", "red", "M", 2, 500)))

	require.NoError(t, s.SignIn(context.Background(), "u1"))

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "u1", s.UserID())

	// Merged result was persisted back under the user
	require.Len(t, repo.carts["u1"], 1)
	assert.Equal(t, 3, repo.carts["u1"][0].Quantity)
}

func TestSignInPersistedSnapshotIsAuthoritative(t *testing.T) {
	repo := newFakeRepo()
	persisted := line("p1", "red", "M", 1, 500)
	persisted.Name = "Royal Silk Saree"
	repo.carts["u1"] = []cart.LineItem{persisted}

	s := newTestSession(repo)
	stale := line("p1", "red", "M", 2, 450) // price changed since the guest added it
	stale.Name = "Royal Silk"
	require.NoError(t, s.AddToCart(context.Background(), stale))

	require.NoError(t, s.SignIn(context.Background(), "u1"))

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, "Royal Silk Saree", items[0].Name)
	assert.Equal(t, int64(500), items[0].UnitPrice)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestSignInIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	repo.carts["u1"] = []cart.LineItem{line("p1", "red", "M", 1, 500)}
	repo.wishlists["u1"] = []wishlist.Entry{wlEntry("p9", time.Now())}

	s := newTestSession(repo)
	require.NoError(t, s.AddToCart(context.Background(), line("p1", "red", "M", 2, 500)))
	require.NoError(t, s.AddToWishlist(context.Background(), wlEntry("p8", time.Now())))

	require.NoError(t, s.SignIn(context.Background(), "u1"))
	after1Cart := s.CartItems()
	after1Wl := s.WishlistItems()

	// No local changes in between; a second migration must not double
	require.NoError(t, s.SignIn(context.Background(), "u1"))

	assert.Equal(t, after1Cart, s.CartItems())
	assert.Equal(t, after1Wl, s.WishlistItems())
	require.Len(t, s.CartItems(), 1)
	assert.Equal(t, 3, s.CartItems()[0].Quantity)
}

func TestSignInMergesWishlistsPreferringPersistedAddedAt(t *testing.T) {
	repo := newFakeRepo()
	persistedAt := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	repo.wishlists["u1"] = []wishlist.Entry{wlEntry("p1", persistedAt)}

	s := newTestSession(repo)
	require.NoError(t, s.AddToWishlist(context.Background(), wlEntry("p1", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, s.AddToWishlist(context.Background(), wlEntry("p2", time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))))

	require.NoError(t, s.SignIn(context.Background(), "u1"))

	items := s.WishlistItems()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, persistedAt, items[0].AddedAt)
	assert.Equal(t, "p2", items[1].ProductID)
}

func TestSignInFetchFailureLeavesSessionUntouched(t *testing.T) {
	repo := newFakeRepo()
	s := newTestSession(repo)
	require.NoError(t, s.AddToCart(context.Background(), line("p1", "red", "M", 2, 500)))

	repo.failFetch = true
	err := s.SignIn(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
	assert.False(t, s.IsAuthenticated())
	require.Len(t, s.CartItems(), 1)
	assert.Equal(t, 2, s.CartItems()[0].Quantity)
}

func TestSignInPersistFailureLeavesSessionUntouched(t *testing.T) {
	repo := newFakeRepo()
	repo.carts["u1"] = []cart.LineItem{line("p1", "red", "M", 1, 500)}

	s := newTestSession(repo)
	require.NoError(t, s.AddToCart(context.Background(), line("p1", "red", "M", 2, 500)))

	repo.failSave = true
	err := s.SignIn(context.Background(), "u1")

	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, 2, s.CartItems()[0].Quantity)
	// Persisted state also untouched
	assert.Equal(t, 1, repo.carts["u1"][0].Quantity)
}

func TestSignOutResetsLocalStateOnly(t *testing.T) {
	repo := newFakeRepo()
	repo.carts["u1"] = []cart.LineItem{line("p1", "red", "M", 1, 500)}

	s := newTestSession(repo)
	require.NoError(t, s.SignIn(context.Background(), "u1"))
	require.NoError(t, s.AddToWishlist(context.Background(), wlEntry("p2", time.Now())))

	s.SignOut()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.CartItems())
	assert.Empty(t, s.WishlistItems())
	// Nothing deleted from the collaborator
	assert.NotEmpty(t, repo.carts["u1"])
	assert.NotEmpty(t, repo.wishlists["u1"])
}

func TestSignInSupersededBySignOutIsDiscarded(t *testing.T) {
	repo := newFakeRepo()
	repo.carts["u1"] = []cart.LineItem{line("p1", "red", "M", 1, 500)}

	s := newTestSession(repo)
	require.NoError(t, s.AddToCart(context.Background(), line("p2", "blue", "S", 1, 300)))

	// Sign-out lands while the migration's fetch is in flight
	repo.onFetch = func() { s.SignOut() }
	err := s.SignIn(context.Background(), "u1")

	require.ErrorIs(t, err, apperrors.ErrStaleResponse)
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.CartItems())
}

func TestAuthenticatedMutationsWriteThrough(t *testing.T) {
	repo := newFakeRepo()
	s := newTestSession(repo)

	// Anonymous mutations never touch the collaborator
	require.NoError(t, s.AddToCart(context.Background(), line("p1", "red", "M", 1, 500)))
	assert.Equal(t, 0, repo.cartSaves)

	require.NoError(t, s.SignIn(context.Background(), "u1"))
	savesAfterSignIn := repo.cartSaves

	require.NoError(t, s.AddToCart(context.Background(), line("p2", "blue", "S", 2, 300)))
	assert.Equal(t, savesAfterSignIn+1, repo.cartSaves)
	require.Len(t, repo.carts["u1"], 2)

	require.NoError(t, s.UpdateCartQuantity(context.Background(), cart.ItemKey{ProductID: "p2", Color: "blue", Size: "S"}, 0))
	require.Len(t, repo.carts["u1"], 1)
}

func TestWriteThroughFailureKeepsLocalMutation(t *testing.T) {
	repo := newFakeRepo()
	s := newTestSession(repo)
	require.NoError(t, s.SignIn(context.Background(), "u1"))

	repo.failSave = true
	err := s.AddToCart(context.Background(), line("p1", "red", "M", 2, 500))

	// Failure is surfaced but the line stays in the session
	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
	require.Len(t, s.CartItems(), 1)
	assert.Equal(t, 2, s.CartItems()[0].Quantity)
	assert.Empty(t, repo.carts["u1"])

	err = s.AddToWishlist(context.Background(), wlEntry("p2", time.Now()))
	require.Error(t, err)
	assert.True(t, apperrors.IsCollaborator(err))
	assert.True(t, s.WishlistContains("p2"))
	assert.Empty(t, repo.wishlists["u1"])
}

func TestMoveToCart(t *testing.T) {
	repo := newFakeRepo()
	s := newTestSession(repo)
	require.NoError(t, s.AddToWishlist(context.Background(), wlEntry("p1", time.Now())))

	require.NoError(t, s.MoveToCart(context.Background(), "p1", "blue", "M", 1))

	assert.False(t, s.WishlistContains("p1"))
	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, cart.ItemKey{ProductID: "p1", Color: "blue", Size: "M"}, items[0].Key)
	assert.Equal(t, int64(3999), items[0].UnitPrice)

	// Moving a product that is not wishlisted is rejected
	err := s.MoveToCart(context.Background(), "p1", "blue", "M", 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestManagerResolve(t *testing.T) {
	repo := newFakeRepo()
	m := NewManager(repo, repo, testLogger())

	s1 := m.Resolve("")
	require.NotEmpty(t, s1.ID)

	// Known IDs return the same session
	assert.Same(t, s1, m.Resolve(s1.ID))

	s2 := m.Resolve("")
	assert.NotEqual(t, s1.ID, s2.ID)

	m.Drop(s1.ID)
	assert.NotSame(t, s1, m.Resolve(s1.ID))
}
