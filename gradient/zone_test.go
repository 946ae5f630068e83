package gradient

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestInterpolateZone(t *testing.T) {
	black, white := MustParse("#000000"), MustParse("#ffffff")

	Convey("Given a zone from black to white", t, func() {
		Convey("It floors every intermediate channel", func() {
			colors := interpolateZone(nil, black, white, 4)
			So(colors, ShouldResemble, []string{"#3f3f3f", "#7f7f7f", "#bfbfbf", "#ffffff"})
		})

		Convey("It never includes the starting color", func() {
			colors := interpolateZone(nil, black, white, 1)
			So(colors, ShouldResemble, []string{"#ffffff"})
		})

		Convey("It appends to the given slice", func() {
			colors := interpolateZone([]string{"#000000"}, black, white, 2)
			So(colors, ShouldResemble, []string{"#000000", "#7f7f7f", "#ffffff"})
		})

		Convey("It appends nothing for empty zones", func() {
			So(interpolateZone(nil, black, white, 0), ShouldBeEmpty)
		})
	})

	Convey("Given a descending zone", t, func() {
		colors := interpolateZone(nil, white, black, 39)
		So(colors[0], ShouldEqual, "#f8f8f8")
		So(colors[38], ShouldEqual, "#000000")
	})

	Convey("The last color of a zone is exactly the end color", t, func() {
		pairs := [][2]string{
			{"#000000", "#ffffff"},
			{"#0000ff", "#ffff00"},
			{"#123456", "#fedcba"},
			{"#ff0000", "#00ff00"},
		}

		for _, pair := range pairs {
			for _, n := range []int{1, 2, 3, 7, 39, 100, 255, 1000} {
				colors := interpolateZone(nil, MustParse(pair[0]), MustParse(pair[1]), n)
				So(colors, ShouldHaveLength, n)
				So(colors[n-1], ShouldEqual, pair[1])
			}
		}
	})
}
