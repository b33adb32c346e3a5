package search

import "github.com/samber/lo"

// Deduplicate keeps the first record of every ID in the original order.
func Deduplicate(records []VideoRecord) []VideoRecord {
	return lo.UniqBy(records, func(v VideoRecord) int64 {
		return v.ID
	})
}
