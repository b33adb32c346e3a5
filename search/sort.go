package search

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// Sort keys understood by SortBy.
const (
	ByRecency = "recency"
	ByLikes   = "likes"
	ByViews   = "views"
)

var comparators = map[string]func(a, b VideoRecord) int{
	ByRecency: func(a, b VideoRecord) int { return b.PublishedAt.Compare(a.PublishedAt) },
	ByLikes:   func(a, b VideoRecord) int { return cmp.Compare(b.LikeCount, a.LikeCount) },
	ByViews:   func(a, b VideoRecord) int { return cmp.Compare(b.ViewCount, a.ViewCount) },
}

// SortKeys lists the keys SortBy reorders by.
func SortKeys() []string {
	return []string{ByRecency, ByLikes, ByViews}
}

// IsSortKey reports whether key triggers a reordering.
func IsSortKey(key string) bool {
	_, ok := comparators[key]
	return ok
}

// SortBy returns a copy of records ordered descending by key.
// Ties keep their input order. Unknown keys return the copy unchanged.
func SortBy(records []VideoRecord, key string) []VideoRecord {
	sorted := slices.Clone(records)

	if compare, ok := comparators[key]; ok {
		slices.SortStableFunc(sorted, compare)
	}

	return sorted
}
