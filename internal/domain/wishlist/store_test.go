package wishlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

func entry(productID string, addedAt time.Time) Entry {
	return Entry{
		ProductID:     productID,
		Name:          "Cotton Handloom Saree",
		Price:         3999,
		OriginalPrice: 4999,
		Category:      "cotton",
		Colors:        []string{"blue", "white"},
		Image:         "https://example.com/" + productID + ".jpg",
		AddedAt:       addedAt,
	}
}

func TestAddThenReaddIsNoop(t *testing.T) {
	s := NewStore()
	first := entry("p2", time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(entry("p2", time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC))))

	assert.Equal(t, 1, s.TotalItems())

	// Strict no-op: the original AddedAt is kept, not refreshed
	got, ok := s.Get("p2")
	require.True(t, ok)
	assert.Equal(t, first.AddedAt, got.AddedAt)
}

func TestAddValidation(t *testing.T) {
	s := NewStore()

	err := s.Add(Entry{ProductID: ""})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 0, s.TotalItems())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(entry("p1", time.Now())))

	s.Remove("p1")
	assert.Equal(t, 0, s.TotalItems())

	s.Remove("p1")
	s.Remove("never-added")
	assert.Equal(t, 0, s.TotalItems())
}

func TestRemoveKeepsIndexConsistent(t *testing.T) {
	s := NewStore()
	now := time.Now()
	require.NoError(t, s.Add(entry("p1", now)))
	require.NoError(t, s.Add(entry("p2", now)))
	require.NoError(t, s.Add(entry("p3", now)))

	s.Remove("p1")

	assert.False(t, s.Contains("p1"))
	assert.True(t, s.Contains("p2"))
	assert.True(t, s.Contains("p3"))

	// Lookups after the shift still return the right entries
	got, ok := s.Get("p3")
	require.True(t, ok)
	assert.Equal(t, "p3", got.ProductID)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.Equal(t, "p3", items[1].ProductID)
}

func TestClear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(entry("p1", time.Now())))
	require.NoError(t, s.Add(entry("p2", time.Now())))

	s.Clear()

	assert.Equal(t, 0, s.TotalItems())
	assert.False(t, s.Contains("p1"))

	// Store remains usable after Clear
	require.NoError(t, s.Add(entry("p1", time.Now())))
	assert.True(t, s.Contains("p1"))
}

func TestContains(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Contains("p1"))

	require.NoError(t, s.Add(entry("p1", time.Now())))
	assert.True(t, s.Contains("p1"))
	assert.False(t, s.Contains("p2"))
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(entry("p1", time.Now())))

	items := s.Items()
	items[0].Name = "mutated"

	got, _ := s.Get("p1")
	assert.Equal(t, "Cotton Handloom Saree", got.Name)
}
