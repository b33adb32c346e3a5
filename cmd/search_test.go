package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/clipseek/clipseek/config"
	"github.com/clipseek/clipseek/filesystem"
	"github.com/clipseek/clipseek/key"
	"github.com/clipseek/clipseek/search"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func parsed(args ...string) *cobra.Command {
	c := &cobra.Command{Use: "search"}
	addSearchFlags(c)
	if err := c.ParseFlags(args); err != nil {
		panic(err)
	}
	return c
}

func TestBuildQuery(t *testing.T) {
	Convey("Given default configuration", t, func() {
		viper.Reset()
		So(config.Setup(), ShouldBeNil)

		Convey("Defaults fill the query", func() {
			q, err := buildQuery(parsed(), "  street food ")
			So(err, ShouldBeNil)
			So(q.Text, ShouldEqual, "street food")
			So(q.PageSize, ShouldEqual, 50)
			So(q.MaxPages, ShouldEqual, 3)
			So(q.Sort, ShouldEqual, search.Popularity)
			So(q.Filters.MinLikes.IsAbsent(), ShouldBeTrue)
		})

		Convey("Flags override defaults and set filters", func() {
			q, err := buildQuery(parsed(
				"-n", "20", "-p", "5", "-s", "recency",
				"--date-from", "2024-02-01", "--min-likes", "0",
				"--min-duration", "10", "--max-duration", "30",
			), "cats")
			So(err, ShouldBeNil)

			So(q.PageSize, ShouldEqual, 20)
			So(q.MaxPages, ShouldEqual, 5)
			So(q.Sort, ShouldEqual, search.Recency)
			So(q.Filters.DateFrom.MustGet(), ShouldEqual, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
			So(q.Filters.MinLikes.MustGet(), ShouldEqual, 0)
			So(q.Filters.MinDuration.MustGet(), ShouldEqual, 10)
			So(q.Filters.MaxDuration.MustGet(), ShouldEqual, 30)
		})

		Convey("A malformed date is an invalid query", func() {
			_, err := buildQuery(parsed("--date-to", "01/02/2024"), "cats")
			So(errors.Is(err, search.ErrInvalidQuery), ShouldBeTrue)
		})

		Convey("An unknown provider sort is an invalid query", func() {
			_, err := buildQuery(parsed("-s", "hot"), "cats")
			So(errors.Is(err, search.ErrInvalidQuery), ShouldBeTrue)
		})

		Convey("Blank text is an invalid query", func() {
			_, err := buildQuery(parsed(), "   ")
			So(errors.Is(err, search.ErrInvalidQuery), ShouldBeTrue)
		})

		Convey("Config values are used when flags are absent", func() {
			viper.Set(key.SearchMaxPages, 7)
			q, err := buildQuery(parsed(), "cats")
			So(err, ShouldBeNil)
			So(q.MaxPages, ShouldEqual, 7)
		})
	})
}

func TestResolveOrder(t *testing.T) {
	Convey("resolveOrder", t, func() {
		for _, ok := range []string{"", "likes", " Views ", "recency"} {
			_, err := resolveOrder(ok)
			So(err, ShouldBeNil)
		}

		Convey("A typo suggests the closest key", func() {
			_, err := resolveOrder("lkes")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "likes")
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("parseValue", t, func() {
		v, err := parseValue(key.SearchPageSize, "25")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, 25)

		v, err = parseValue(key.LogsJson, "true")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, true)

		_, err = parseValue(key.SearchPageSize, "-1")
		So(err, ShouldNotBeNil)

		_, err = parseValue(key.SearchSort, "trending")
		So(err, ShouldNotBeNil)

		_, err = parseValue(key.IconsVariant, "ascii")
		So(err, ShouldNotBeNil)

		_, err = parseValue("search.pagesize", "10")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, key.SearchPageSize)
	})
}
