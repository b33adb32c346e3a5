// Package query remembers search texts and suggests them back.
package query

import (
	"strings"
	"time"

	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

type record struct {
	Rank     int       `json:"rank"`
	Query    string    `json:"query"`
	LastUsed time.Time `json:"last_used"`
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// memoized suggestions, dropped whenever history changes
var suggestions = make(map[string][]*record)

func load() map[string]*record {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*record)
	}

	return cached
}

// Remember bumps the rank of q by weight. Nothing is written when
// search.remember_queries is off.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchRememberQueries) {
		return nil
	}

	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached := load()
	if r, ok := cached[q]; ok {
		r.Rank += weight
		r.LastUsed = time.Now()
	} else {
		cached[q] = &record{Rank: weight, Query: q, LastUsed: time.Now()}
	}

	suggestions = make(map[string][]*record)
	return cacher.Set(cached)
}

// Suggest returns the best remembered match for q.
func Suggest(q string) mo.Option[string] {
	return mo.TupleToOption(lo.First(SuggestMany(q)))
}

// SuggestMany returns remembered queries fuzzily matching q, highest rank first.
// Equal ranks are ordered by most recent use.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchRememberQueries) {
		return []string{}
	}

	q = sanitize(q)

	records, ok := suggestions[q]
	if !ok {
		for _, r := range load() {
			if fuzzy.Match(q, r.Query) {
				records = append(records, r)
			}
		}

		slices.SortFunc(records, func(a, b *record) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return b.LastUsed.Compare(a.LastUsed)
		})

		suggestions[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.Query
	})
}

// Forget wipes the remembered history.
func Forget() error {
	suggestions = make(map[string][]*record)
	return cacher.Set(make(map[string]*record))
}

// sanitize folds case and width so "Ｃａｔｓ" and "cats" are remembered as one query.
func sanitize(q string) string {
	q = cases.Fold().String(norm.NFKC.String(q))
	return strings.Join(strings.Fields(q), " ")
}
