package search

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func testQuery() Query {
	return Query{Text: "travel", PageSize: 10, MaxPages: 3, Sort: Popularity}
}

func TestClientPagination(t *testing.T) {
	Convey("Given a provider with pages of 10, 10 and 7 items", t, func() {
		fake := newFakeProvider(itemRange(1, 10), itemRange(11, 10), itemRange(21, 7))
		client := NewClient(DefaultSettings(), fake.dialer())

		Convey("When searching with a page size of 10", func() {
			videos, err := client.Search(context.Background(), testQuery())

			Convey("Then exactly three pages are fetched", func() {
				So(err, ShouldBeNil)
				So(fake.calls, ShouldHaveLength, 3)
				So(fake.offsets(), ShouldResemble, []int{0, 10, 20})
			})

			Convey("Then all 27 items are returned in request order", func() {
				So(videos, ShouldHaveLength, 27)
				So(videos[0].ID, ShouldEqual, 1)
				So(videos[26].ID, ShouldEqual, 27)
			})

			Convey("Then the session is closed", func() {
				So(fake.closed, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a provider that always returns full pages", t, func() {
		fake := newFakeProvider(itemRange(1, 10), itemRange(11, 10), itemRange(21, 10))
		client := NewClient(DefaultSettings(), fake.dialer())

		Convey("When max pages is 2", func() {
			q := testQuery()
			q.MaxPages = 2
			videos, err := client.Search(context.Background(), q)

			Convey("Then it stops after two pages", func() {
				So(err, ShouldBeNil)
				So(fake.calls, ShouldHaveLength, 2)
				So(videos, ShouldHaveLength, 20)
			})
		})
	})

	Convey("Given an empty first page", t, func() {
		fake := newFakeProvider([]providerItem{})
		client := NewClient(DefaultSettings(), fake.dialer())

		videos, err := client.Search(context.Background(), testQuery())

		Convey("Then no further page is requested", func() {
			So(err, ShouldBeNil)
			So(videos, ShouldBeEmpty)
			So(fake.calls, ShouldHaveLength, 1)
		})
	})
}

func TestClientErrors(t *testing.T) {
	Convey("Given a transport that fails on the second page", t, func() {
		fake := newFakeProvider(itemRange(1, 10), itemRange(11, 10), itemRange(21, 10))
		fake.failAt = 1
		client := NewClient(DefaultSettings(), fake.dialer())

		videos, err := client.Search(context.Background(), testQuery())

		Convey("Then a TransportError is returned without partial results", func() {
			So(videos, ShouldBeNil)

			var te *TransportError
			So(errors.As(err, &te), ShouldBeTrue)
			So(te.Page, ShouldEqual, 1)
			So(errors.Is(err, errConnReset), ShouldBeTrue)
		})

		Convey("Then the aggregation stops at the failing page", func() {
			So(fake.calls, ShouldHaveLength, 2)
		})

		Convey("Then the session is still closed", func() {
			So(fake.closed, ShouldEqual, 1)
		})
	})

	Convey("Given a provider answering with an error payload", t, func() {
		fake := newFakeProvider(itemRange(1, 10), itemRange(11, 10))
		fake.errorAt = 1
		client := NewClient(DefaultSettings(), fake.dialer())

		videos, err := client.Search(context.Background(), testQuery())

		Convey("Then a ProviderError carries the provider detail", func() {
			So(videos, ShouldBeNil)

			var pe *ProviderError
			So(errors.As(err, &pe), ShouldBeTrue)
			So(pe.Code, ShouldEqual, 6)
			So(pe.Message, ShouldEqual, "Too many requests per second")
			So(fake.closed, ShouldEqual, 1)
		})
	})

	Convey("Given a query with only a minimum duration", t, func() {
		fake := newFakeProvider(itemRange(1, 10))
		client := NewClient(DefaultSettings(), fake.dialer())

		q := testQuery()
		q.Filters.MinDuration = mo.Some(10)
		_, err := client.Search(context.Background(), q)

		Convey("Then the query is rejected before any request", func() {
			So(errors.Is(err, ErrInvalidQuery), ShouldBeTrue)
			So(fake.calls, ShouldBeEmpty)
			So(fake.closed, ShouldEqual, 0)
		})
	})

	Convey("Given a dialer that cannot open a session", t, func() {
		client := NewClient(DefaultSettings(), func(context.Context) (Session, error) {
			return nil, errConnReset
		})

		_, err := client.Search(context.Background(), testQuery())

		Convey("Then a TransportError is returned", func() {
			var te *TransportError
			So(errors.As(err, &te), ShouldBeTrue)
		})
	})
}

func TestClientEndToEnd(t *testing.T) {
	Convey("Given duplicate records spread across pages", t, func() {
		first := itemRange(1, 10)
		second := itemRange(11, 10)
		second[3] = first[2]
		second[7] = first[5]
		third := itemRange(21, 4)

		fake := newFakeProvider(first, second, third)
		client := NewClient(DefaultSettings(), fake.dialer())

		q := testQuery()
		q.Filters.MinLikes = mo.Some(100)

		videos, err := client.Search(context.Background(), q)
		So(err, ShouldBeNil)

		Convey("Then every request carries the like threshold", func() {
			for _, c := range fake.calls {
				So(c.Get("min_likes"), ShouldEqual, "100")
				So(c.Get("sort"), ShouldEqual, "2")
			}
		})

		Convey("Then duplicates are removed", func() {
			So(videos, ShouldHaveLength, 22)
		})

		Convey("Then sorting by views yields a strictly decreasing list", func() {
			sorted := SortBy(videos, ByViews)
			for i := 1; i < len(sorted); i++ {
				So(sorted[i].ViewCount, ShouldBeLessThan, sorted[i-1].ViewCount)
			}
		})
	})

	Convey("Static wraps a plain transport", t, func() {
		fake := newFakeProvider(itemRange(1, 3))
		client := NewClient(DefaultSettings(), Static(fake))

		videos, err := client.Search(context.Background(), testQuery())
		So(err, ShouldBeNil)
		So(videos, ShouldHaveLength, 3)
		So(fake.closed, ShouldEqual, 0)
	})
}
