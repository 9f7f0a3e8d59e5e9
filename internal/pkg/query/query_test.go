package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name     string
	Category string
	Price    int64
}

var records = []record{
	{Name: "Royal Silk Saree", Category: "silk", Price: 300},
	{Name: "Cotton Handloom", Category: "cotton", Price: 100},
	{Name: "Silk Blend Dupatta", Category: "silk", Price: 100},
}

func searchFields(r record) []string {
	return []string{r.Name, r.Category}
}

func TestSearchEmptyQueryMatchesAll(t *testing.T) {
	got := Search(records, "", searchFields)
	assert.Len(t, got, 3)
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	got := Search(records, "SILK", searchFields)
	require.Len(t, got, 2)
	assert.Equal(t, "Royal Silk Saree", got[0].Name)
	assert.Equal(t, "Silk Blend Dupatta", got[1].Name)

	// Matches any configured field, category included
	got = Search(records, "cott", searchFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Cotton Handloom", got[0].Name)
}

func TestSearchNoMatch(t *testing.T) {
	got := Search(records, "banarasi", searchFields)
	assert.Empty(t, got)
}

func TestFilterEq(t *testing.T) {
	got := FilterEq(records, "silk", func(r record) string { return r.Category })
	assert.Len(t, got, 2)

	// Sentinel means no constraint
	assert.Len(t, FilterEq(records, All, func(r record) string { return r.Category }), 3)
	assert.Len(t, FilterEq(records, "", func(r record) string { return r.Category }), 3)
}

func TestSortStableKeepsTieOrder(t *testing.T) {
	got := SortStable(records, func(a, b record) bool { return a.Price < b.Price })

	require.Len(t, got, 3)
	assert.Equal(t, int64(100), got[0].Price)
	assert.Equal(t, int64(100), got[1].Price)
	assert.Equal(t, int64(300), got[2].Price)
	// Equal-price items keep their original relative order
	assert.Equal(t, "Cotton Handloom", got[0].Name)
	assert.Equal(t, "Silk Blend Dupatta", got[1].Name)
}

func TestSortStableDoesNotMutateSource(t *testing.T) {
	src := Clone(records)
	SortStable(src, func(a, b record) bool { return a.Price < b.Price })

	assert.Equal(t, "Royal Silk Saree", src[0].Name)
	assert.Equal(t, "Cotton Handloom", src[1].Name)
}

func TestFilter(t *testing.T) {
	got := Filter(records, func(r record) bool { return r.Price >= 100 && r.Price <= 200 })
	assert.Len(t, got, 2)
}
