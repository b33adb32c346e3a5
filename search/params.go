package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/mo"
)

const (
	// DefaultBaseURL is the method root of the provider API.
	DefaultBaseURL = "https://api.vk.com/method/"
	// DefaultAPIVersion is the provider API version the response shape is written against.
	DefaultAPIVersion = "5.131"

	method     = "video.search"
	dateLayout = "2006-01-02"
)

// Settings holds the provider configuration the request builder depends on.
type Settings struct {
	BaseURL    string
	APIVersion string
}

// DefaultSettings returns the settings for the public VK API.
func DefaultSettings() Settings {
	return Settings{
		BaseURL:    DefaultBaseURL,
		APIVersion: DefaultAPIVersion,
	}
}

// Endpoint returns the absolute URL of the search method.
func (s Settings) Endpoint() string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + method
}

var sortCodes = map[SortPreference]string{
	Popularity: "2",
	Recency:    "0",
}

// filterClauses share the single filters slot of a request.
// They are applied in this order and the last present clause is the one sent.
var filterClauses = []func(FilterSet) mo.Option[string]{
	dateFromClause,
	dateToClause,
	durationClause,
}

func dateFromClause(f FilterSet) mo.Option[string] {
	if from, ok := f.DateFrom.Get(); ok {
		return mo.Some("date_from=" + from.Format(dateLayout))
	}
	return mo.None[string]()
}

func dateToClause(f FilterSet) mo.Option[string] {
	if to, ok := f.DateTo.Get(); ok {
		return mo.Some("date_to=" + to.Format(dateLayout))
	}
	return mo.None[string]()
}

func durationClause(f FilterSet) mo.Option[string] {
	from, okFrom := f.MinDuration.Get()
	to, okTo := f.MaxDuration.Get()
	if okFrom && okTo {
		return mo.Some(fmt.Sprintf("duration_from=%d,duration_to=%d", from, to))
	}
	return mo.None[string]()
}

// FilterExpression resolves the clause that occupies the filters slot.
func FilterExpression(f FilterSet) mo.Option[string] {
	expr := mo.None[string]()
	for _, clause := range filterClauses {
		if c := clause(f); c.IsPresent() {
			expr = c
		}
	}
	return expr
}

// BuildParams produces the parameters of the page request starting at offset.
func BuildParams(s Settings, q Query, offset int) url.Values {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("v", s.APIVersion)
	params.Set("count", strconv.Itoa(q.PageSize))
	params.Set("sort", sortCodes[q.Sort])
	params.Set("short", "1")
	params.Set("offset", strconv.Itoa(offset))

	if expr, ok := FilterExpression(q.Filters).Get(); ok {
		params.Set("filters", expr)
	}

	if likes, ok := q.Filters.MinLikes.Get(); ok {
		params.Set("min_likes", strconv.Itoa(likes))
	}

	if views, ok := q.Filters.MinViews.Get(); ok {
		params.Set("min_views", strconv.Itoa(views))
	}

	return params
}
