package product

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundSentinel(t *testing.T) {
	assert.ErrorIs(t, fmt.Errorf("catalog lookup: %w", ErrNotFound), ErrNotFound)
	assert.NotErrorIs(t, errors.New("product not found"), ErrNotFound)
}

func catalog() []Product {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return []Product{
		{ID: "p1", Name: "Royal Silk Saree", Category: "silk", Fabric: "Pure Silk", Price: 300, Rating: 4.8, CreatedAt: base},
		{ID: "p2", Name: "Cotton Handloom Saree", Category: "cotton", Fabric: "Cotton", Price: 100, Rating: 4.6, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: "p3", Name: "Designer Georgette Saree", Category: "georgette", Fabric: "Georgette", Price: 100, Rating: 4.7, CreatedAt: base.AddDate(0, 0, 2)},
	}
}

func TestCatalogSearchMatchesNameFabricCategory(t *testing.T) {
	got := ApplyCatalogQuery(catalog(), ListParams{Search: "silk"})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	got = ApplyCatalogQuery(catalog(), ListParams{Search: "GEORGETTE"})
	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)

	got = ApplyCatalogQuery(catalog(), ListParams{Search: ""})
	assert.Len(t, got, 3)
}

func TestCatalogCategoryFilter(t *testing.T) {
	got := ApplyCatalogQuery(catalog(), ListParams{Category: "cotton"})
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	assert.Len(t, ApplyCatalogQuery(catalog(), ListParams{Category: "all"}), 3)
}

func TestCatalogPriceRangeFilter(t *testing.T) {
	got := ApplyCatalogQuery(catalog(), ListParams{PriceRange: "50-150"})
	assert.Len(t, got, 2)

	// Open-ended bucket: everything at or above min
	got = ApplyCatalogQuery(catalog(), ListParams{PriceRange: "200"})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// Malformed range means no constraint
	assert.Len(t, ApplyCatalogQuery(catalog(), ListParams{PriceRange: "cheap"}), 3)
}

func TestCatalogSortPriceLowIsStable(t *testing.T) {
	got := ApplyCatalogQuery(catalog(), ListParams{SortBy: "price-low"})

	require.Len(t, got, 3)
	assert.Equal(t, int64(100), got[0].Price)
	assert.Equal(t, int64(100), got[1].Price)
	assert.Equal(t, int64(300), got[2].Price)
	// The two 100-priced items keep their original relative order
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}

func TestCatalogSortVariants(t *testing.T) {
	got := ApplyCatalogQuery(catalog(), ListParams{SortBy: "price-high"})
	assert.Equal(t, "p1", got[0].ID)

	got = ApplyCatalogQuery(catalog(), ListParams{SortBy: "rating"})
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)

	got = ApplyCatalogQuery(catalog(), ListParams{SortBy: "newest"})
	assert.Equal(t, "p3", got[0].ID)
}

func TestCatalogFeaturedKeepsOriginalOrderAndCopies(t *testing.T) {
	snapshot := catalog()
	got := ApplyCatalogQuery(snapshot, ListParams{})
	require.Len(t, got, 3)
	assert.Equal(t, "p1", got[0].ID)

	// Sorting the result must not disturb the shared snapshot
	_ = ApplyCatalogQuery(snapshot, ListParams{SortBy: "price-low"})
	assert.Equal(t, "p1", snapshot[0].ID)
	assert.Equal(t, "p2", snapshot[1].ID)
}

func TestProductHelpers(t *testing.T) {
	p := Product{Colors: "red, gold,maroon", Sizes: "", Price: 1500, OriginalPrice: 2000}

	assert.Equal(t, []string{"red", "gold", "maroon"}, p.ColorList())
	assert.Nil(t, p.SizeList())
	assert.Equal(t, 25, p.GetDiscountPercentage())

	p.OriginalPrice = 0
	assert.Equal(t, 0, p.GetDiscountPercentage())
}
