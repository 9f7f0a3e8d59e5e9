package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/saree-storefront/internal/pkg/apperrors"
)

func lineItem(productID, color, size string, qty int, price int64) LineItem {
	return LineItem{
		Key:       ItemKey{ProductID: productID, Color: color, Size: size},
		Name:      "Royal Silk Saree",
		UnitPrice: price,
		Image:     "https://example.com/p1.jpg",
		Quantity:  qty,
	}
}

func TestAddMergesSameKey(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 1, 500)))

	assert.Equal(t, 1, s.Len())
	item, ok := s.Get(ItemKey{ProductID: "p1", Color: "red", Size: "M"})
	require.True(t, ok)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, int64(1500), s.Subtotal())
}

func TestAddMergeIsOrderIndependent(t *testing.T) {
	a := lineItem("p1", "red", "M", 2, 500)
	b := lineItem("p1", "red", "M", 5, 500)

	s1 := NewStore()
	require.NoError(t, s1.Add(a))
	require.NoError(t, s1.Add(b))

	s2 := NewStore()
	require.NoError(t, s2.Add(b))
	require.NoError(t, s2.Add(a))

	i1, _ := s1.Get(a.Key)
	i2, _ := s2.Get(a.Key)
	assert.Equal(t, 7, i1.Quantity)
	assert.Equal(t, i1.Quantity, i2.Quantity)
}

func TestDistinctColorSizeAreDistinctLines(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(lineItem("p1", "red", "M", 1, 500)))
	require.NoError(t, s.Add(lineItem("p1", "red", "L", 1, 500)))
	require.NoError(t, s.Add(lineItem("p1", "gold", "M", 1, 500)))

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.TotalQuantity())
}

func TestAddValidation(t *testing.T) {
	s := NewStore()

	err := s.Add(lineItem("p1", "red", "M", 0, 500))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	err = s.Add(lineItem("", "red", "M", 1, 500))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	// Rejected before mutating state
	assert.Equal(t, 0, s.Len())
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	key := ItemKey{ProductID: "p1", Color: "red", Size: "M"}
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))

	s.UpdateQuantity(key, 5)
	item, _ := s.Get(key)
	assert.Equal(t, 5, item.Quantity)

	// Zero and negative both remove the line
	s.UpdateQuantity(key, 0)
	assert.Equal(t, 0, s.Len())

	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))
	s.UpdateQuantity(key, -3)
	assert.Equal(t, 0, s.Len())
}

func TestUpdateQuantityAbsentKeyIsNoop(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))

	s.UpdateQuantity(ItemKey{ProductID: "missing", Color: "", Size: ""}, 3)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.TotalQuantity())
}

func TestRemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	key := ItemKey{ProductID: "p1", Color: "red", Size: "M"}
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))

	s.Remove(key)
	assert.Equal(t, 0, s.Len())

	// Removing an already-absent key leaves the store unchanged
	s.Remove(key)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(0), s.Subtotal())
}

func TestClear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))
	require.NoError(t, s.Add(lineItem("p2", "blue", "S", 1, 300)))

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int64(0), s.Subtotal())
	assert.Equal(t, 0, s.TotalQuantity())
}

func TestSubtotalStaysConsistent(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))
	require.NoError(t, s.Add(lineItem("p2", "blue", "S", 3, 300)))
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 1, 500)))
	s.UpdateQuantity(ItemKey{ProductID: "p2", Color: "blue", Size: "S"}, 1)
	s.Remove(ItemKey{ProductID: "p3", Color: "", Size: ""})

	// Subtotal must equal an independent recomputation over the live items
	var expected int64
	for _, item := range s.Items() {
		expected += item.UnitPrice * int64(item.Quantity)
	}
	assert.Equal(t, expected, s.Subtotal())
	assert.Equal(t, int64(1800), s.Subtotal())
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 1, 500)))
	require.NoError(t, s.Add(lineItem("p2", "blue", "S", 1, 300)))
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 4, 500)))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].Key.ProductID)
	assert.Equal(t, "p2", items[1].Key.ProductID)
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 1, 500)))

	items := s.Items()
	items[0].Quantity = 99

	item, _ := s.Get(ItemKey{ProductID: "p1", Color: "red", Size: "M"})
	assert.Equal(t, 1, item.Quantity)
}

func TestCalculateTotals(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(lineItem("p1", "red", "M", 2, 500)))
	require.NoError(t, s.Add(lineItem("p2", "blue", "S", 3, 300)))

	totals := s.CalculateTotals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 5, totals.TotalQuantity)
	assert.Equal(t, int64(1900), totals.SubTotal)
}
