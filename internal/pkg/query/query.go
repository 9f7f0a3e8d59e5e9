// internal/pkg/query/query.go
package query

import (
	"sort"
	"strings"
)

// All is the sentinel filter value meaning "no constraint"
const All = "all"

// Search returns the items whose searchable fields contain q,
// case-insensitively. An empty query matches everything. The input slice is
// never mutated.
func Search[T any](items []T, q string, fields func(T) []string) []T {
	if q == "" {
		return items
	}

	needle := strings.ToLower(q)
	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// FilterEq returns the items whose field equals want. The sentinel value
// "all" (or an empty string) matches everything.
func FilterEq[T any](items []T, want string, field func(T) string) []T {
	if want == "" || want == All {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if field(item) == want {
			matched = append(matched, item)
		}
	}
	return matched
}

// Filter returns the items satisfying keep
func Filter[T any](items []T, keep func(T) bool) []T {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// SortStable returns a sorted copy of items. Ties keep their original
// relative order and the source slice is left untouched, so snapshots
// shared with other readers stay valid.
func SortStable[T any](items []T, less func(a, b T) bool) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Clone returns a shallow copy of items
func Clone[T any](items []T) []T {
	cloned := make([]T, len(items))
	copy(cloned, items)
	return cloned
}
