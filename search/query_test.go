package search

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQueryValidate(t *testing.T) {
	Convey("Query.Validate", t, func() {
		q := Query{Text: "cats", PageSize: 10, MaxPages: 1, Sort: Popularity}

		Convey("A complete query is valid", func() {
			So(q.Validate(), ShouldBeNil)
		})

		Convey("Both duration bounds together are valid", func() {
			q.Filters.MinDuration = mo.Some(0)
			q.Filters.MaxDuration = mo.Some(60)
			So(q.Validate(), ShouldBeNil)
		})

		Convey("Invalid queries", func() {
			cases := []struct {
				name   string
				mutate func(*Query)
			}{
				{"blank text", func(q *Query) { q.Text = "  " }},
				{"zero page size", func(q *Query) { q.PageSize = 0 }},
				{"negative pages", func(q *Query) { q.MaxPages = -1 }},
				{"unknown sort", func(q *Query) { q.Sort = "oldest" }},
				{"only max duration", func(q *Query) { q.Filters.MaxDuration = mo.Some(30) }},
			}

			for _, c := range cases {
				Convey("Rejects "+c.name, func() {
					bad := q
					c.mutate(&bad)
					err := bad.Validate()

					var iq *InvalidQueryError
					So(errors.As(err, &iq), ShouldBeTrue)
					So(errors.Is(err, ErrInvalidQuery), ShouldBeTrue)
				})
			}
		})
	})
}

func TestParseSortPreference(t *testing.T) {
	Convey("ParseSortPreference", t, func() {
		p, err := ParseSortPreference(" Recency ")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, Recency)

		p, err = ParseSortPreference("")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, Popularity)

		_, err = ParseSortPreference("likes")
		So(errors.Is(err, ErrInvalidQuery), ShouldBeTrue)
	})
}
