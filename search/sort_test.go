package search

import (
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(records []VideoRecord) []int64 {
	return lo.Map(records, func(v VideoRecord, _ int) int64 { return v.ID })
}

func TestDeduplicate(t *testing.T) {
	Convey("Deduplicate", t, func() {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		input := []VideoRecord{
			{ID: 3, Title: "a"},
			{ID: 1, Title: "b"},
			{ID: 3, Title: "a, edited", LikeCount: 99},
			{ID: 2, Title: "c", PublishedAt: base},
			{ID: 1, Title: "b again"},
		}

		out := Deduplicate(input)

		Convey("Should keep the first occurrence of each id in order", func() {
			So(ids(out), ShouldResemble, []int64{3, 1, 2})
			So(out[0].Title, ShouldEqual, "a")
			So(out[1].Title, ShouldEqual, "b")
		})

		Convey("Should be idempotent", func() {
			So(Deduplicate(out), ShouldResemble, out)
		})

		Convey("Should not touch its input", func() {
			So(input, ShouldHaveLength, 5)
			So(input[2].Title, ShouldEqual, "a, edited")
		})

		Convey("Should handle empty input", func() {
			So(Deduplicate(nil), ShouldBeEmpty)
		})
	})
}

func TestSortBy(t *testing.T) {
	Convey("SortBy", t, func() {
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		input := []VideoRecord{
			{ID: 1, LikeCount: 5, ViewCount: 100, PublishedAt: base},
			{ID: 2, LikeCount: 9, ViewCount: 100, PublishedAt: base.Add(2 * time.Hour)},
			{ID: 3, LikeCount: 5, ViewCount: 300, PublishedAt: base.Add(time.Hour)},
			{ID: 4, LikeCount: 1, ViewCount: 100, PublishedAt: base.Add(2 * time.Hour)},
		}

		Convey("By likes, ties keep input order", func() {
			So(ids(SortBy(input, ByLikes)), ShouldResemble, []int64{2, 1, 3, 4})
		})

		Convey("By views, ties keep input order", func() {
			So(ids(SortBy(input, ByViews)), ShouldResemble, []int64{3, 1, 2, 4})
		})

		Convey("By recency, newest first", func() {
			So(ids(SortBy(input, ByRecency)), ShouldResemble, []int64{2, 4, 3, 1})
		})

		Convey("Unknown keys leave the order alone", func() {
			for _, key := range []string{"", "date", "popularity", "LIKES"} {
				So(SortBy(input, key), ShouldResemble, input)
			}
		})

		Convey("The input is not reordered", func() {
			_ = SortBy(input, ByViews)
			So(ids(input), ShouldResemble, []int64{1, 2, 3, 4})
		})

		Convey("Every key yields a permutation", func() {
			for _, key := range SortKeys() {
				So(IsSortKey(key), ShouldBeTrue)
				So(ids(SortBy(input, key)), ShouldHaveLength, len(input))
				So(ids(SortBy(input, key)), ShouldContain, int64(3))
			}
		})
	})
}
