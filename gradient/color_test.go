package gradient

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should decode six digit colors", func() {
			c, err := Parse("#ff8000")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 0xff, G: 0x80, B: 0x00})
		})

		Convey("Should accept upper case digits", func() {
			c, err := Parse("#ABCDEF")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#abcdef")
		})

		Convey("Should expand shorthand colors", func() {
			c, err := Parse("#abc")
			So(err, ShouldBeNil)
			So(c, ShouldResemble, RGB{R: 0xaa, G: 0xbb, B: 0xcc})
		})

		Convey("Should reject malformed colors", func() {
			for _, bad := range []string{"", "fff", "#ff", "#fffff", "#gggggg", "ffffff0"} {
				_, err := Parse(bad)
				So(errors.Is(err, ErrInvalidColor), ShouldBeTrue)
			}
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		hex, err := Normalize("#F0A")
		So(err, ShouldBeNil)
		So(hex, ShouldEqual, "#ff00aa")

		_, err = Normalize("red")
		So(err, ShouldNotBeNil)
	})
}

func TestRGBHex(t *testing.T) {
	Convey("Hex should zero pad every channel", t, func() {
		So(RGB{R: 1, G: 2, B: 3}.Hex(), ShouldEqual, "#010203")
		So(MustParse("#010203").Colorful().Hex(), ShouldEqual, "#010203")
	})
}
