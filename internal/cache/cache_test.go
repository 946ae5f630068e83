package cache

import (
	"testing"
	"time"

	"github.com/huestep/huestep/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCollectGarbage(t *testing.T) {
	Convey("Given a directory with leftover temporary files", t, func() {
		fs := filesystem.API()
		dir := "/cache/exports"
		So(fs.MkdirAll(dir, 0755), ShouldBeNil)

		old := time.Now().Add(-2 * TTL)
		for _, name := range []string{"stale.css.tmp", "sunset.css"} {
			path := dir + "/" + name
			So(fs.WriteFile(path, []byte("x"), 0644), ShouldBeNil)
			So(fs.Chtimes(path, old, old), ShouldBeNil)
		}
		So(fs.WriteFile(dir+"/fresh.json.tmp", []byte("x"), 0644), ShouldBeNil)

		Convey("When garbage is collected", func() {
			removed := CollectGarbage(dir, "/does/not/exist")

			Convey("Then only stale temporary files are removed", func() {
				So(removed, ShouldEqual, 1)

				exists, _ := fs.Exists(dir + "/stale.css.tmp")
				So(exists, ShouldBeFalse)

				exists, _ = fs.Exists(dir + "/sunset.css")
				So(exists, ShouldBeTrue)

				exists, _ = fs.Exists(dir + "/fresh.json.tmp")
				So(exists, ShouldBeTrue)
			})
		})
	})
}
