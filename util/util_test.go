package util

import (
	"testing"

	"github.com/clipseek/clipseek/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "video", "videos"), ShouldEqual, "1 video")
		So(Quantify(0, "video", "videos"), ShouldEqual, "0 videos")
		So(Quantify(27, "video", "videos"), ShouldEqual, "27 videos")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("cache"), ShouldEqual, "Cache")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestCompact(t *testing.T) {
	Convey("Compact", t, func() {
		So(Compact(950), ShouldEqual, "950")
		So(Compact(1000), ShouldEqual, "1K")
		So(Compact(12345), ShouldEqual, "12.3K")
		So(Compact(4_100_000), ShouldEqual, "4.1M")
		So(Compact(2_000_000_000), ShouldEqual, "2B")
	})
}

func TestClock(t *testing.T) {
	Convey("Clock", t, func() {
		So(Clock(0), ShouldEqual, "0:00")
		So(Clock(59), ShouldEqual, "0:59")
		So(Clock(61), ShouldEqual, "1:01")
		So(Clock(3725), ShouldEqual, "1:02:05")
		So(Clock(-4), ShouldEqual, "0:00")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		Convey("Removes files and directories", func() {
			So(fs.MkdirAll("/tmp/a", 0o755), ShouldBeNil)
			So(fs.WriteFile("/tmp/a/b.json", []byte("{}"), 0o644), ShouldBeNil)
			So(Delete("/tmp/a/b.json"), ShouldBeNil)
			So(Delete("/tmp/a"), ShouldBeNil)

			exists, _ := fs.Exists("/tmp/a")
			So(exists, ShouldBeFalse)
		})

		Convey("Reports missing paths", func() {
			So(Delete("/nope"), ShouldNotBeNil)
		})
	})
}
