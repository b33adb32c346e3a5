// Package search implements the short-video result aggregation pipeline:
// request building, page fetching, pagination, deduplication and sorting.
package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/mo"
)

// SortPreference selects the order the provider returns items in.
type SortPreference string

const (
	Popularity SortPreference = "popularity"
	Recency    SortPreference = "recency"
)

// ParseSortPreference maps a user supplied name onto a SortPreference.
func ParseSortPreference(s string) (SortPreference, error) {
	switch p := SortPreference(strings.ToLower(strings.TrimSpace(s))); p {
	case Popularity, Recency:
		return p, nil
	case "":
		return Popularity, nil
	default:
		return "", &InvalidQueryError{Reason: fmt.Sprintf("unknown sort preference %q", s)}
	}
}

// FilterSet is the intersection of optional constraints applied to a search.
// MinDuration and MaxDuration are expressed in seconds and must be set together.
type FilterSet struct {
	DateFrom    mo.Option[time.Time]
	DateTo      mo.Option[time.Time]
	MinLikes    mo.Option[int]
	MinViews    mo.Option[int]
	MinDuration mo.Option[int]
	MaxDuration mo.Option[int]
}

// Query is a logical search request. It is passed by value and never mutated.
type Query struct {
	Text     string
	PageSize int
	MaxPages int
	Sort     SortPreference
	Filters  FilterSet
}

// Validate reports an *InvalidQueryError when the query cannot be sent.
func (q Query) Validate() error {
	invalid := func(format string, args ...any) error {
		return &InvalidQueryError{Reason: fmt.Sprintf(format, args...)}
	}

	if strings.TrimSpace(q.Text) == "" {
		return invalid("empty search text")
	}

	if q.PageSize <= 0 {
		return invalid("page size must be positive, got %d", q.PageSize)
	}

	if q.MaxPages < 1 {
		return invalid("max pages must be at least 1, got %d", q.MaxPages)
	}

	switch q.Sort {
	case Popularity, Recency:
	default:
		return invalid("unknown sort preference %q", q.Sort)
	}

	if q.Filters.MinDuration.IsPresent() != q.Filters.MaxDuration.IsPresent() {
		return invalid("min and max duration must be given together")
	}

	return nil
}
