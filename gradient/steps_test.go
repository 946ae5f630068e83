package gradient

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSteps(t *testing.T) {
	Convey("Balanced", t, func() {
		s := Balanced(40)
		So(s.IsWeighted(), ShouldBeFalse)
		So(s.Count(), ShouldEqual, 40)
		So(s.Weights(), ShouldBeNil)
		So(s.String(), ShouldEqual, "40")

		Convey("Zero selects the default", func() {
			So(Balanced(0).Count(), ShouldEqual, DefaultSteps)
			So(Steps{}.Count(), ShouldEqual, DefaultSteps)
		})
	})

	Convey("Weighted", t, func() {
		weights := []int{20, 40, 60}
		s := Weighted(weights...)
		So(s.IsWeighted(), ShouldBeTrue)
		So(s.Weights(), ShouldResemble, weights)
		So(s.Total(), ShouldEqual, 120)
		So(s.String(), ShouldEqual, "[20,40,60]")

		Convey("It does not alias the caller's slice", func() {
			weights[0] = 1
			So(s.Weights()[0], ShouldEqual, 20)
		})
	})
}

func TestParseSteps(t *testing.T) {
	Convey("ParseSteps", t, func() {
		Convey("A bare integer is balanced", func() {
			s, err := ParseSteps(" 40 ")
			So(err, ShouldBeNil)
			So(s.IsWeighted(), ShouldBeFalse)
			So(s.Count(), ShouldEqual, 40)
		})

		Convey("A list is weighted", func() {
			s, err := ParseSteps("20, 40,60")
			So(err, ShouldBeNil)
			So(s.Weights(), ShouldResemble, []int{20, 40, 60})
		})

		Convey("A bracketed single value is weighted", func() {
			s, err := ParseSteps("[5]")
			So(err, ShouldBeNil)
			So(s.IsWeighted(), ShouldBeTrue)
			So(s.Weights(), ShouldResemble, []int{5})
		})

		Convey("An empty string is the default", func() {
			s, err := ParseSteps("")
			So(err, ShouldBeNil)
			So(s.Count(), ShouldEqual, DefaultSteps)
		})

		Convey("It round trips through text", func() {
			var s Steps
			So(s.UnmarshalText([]byte("[1,2,3]")), ShouldBeNil)
			text, err := s.MarshalText()
			So(err, ShouldBeNil)
			So(string(text), ShouldEqual, "[1,2,3]")
		})

		Convey("It rejects garbage", func() {
			_, err := ParseSteps("lots")
			So(err, ShouldNotBeNil)
			_, err = ParseSteps("1,two")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestZones(t *testing.T) {
	Convey("Balanced zones", t, func() {
		Convey("The last zone absorbs the remainder", func() {
			So(Balanced(10).zones(3), ShouldResemble, []int{4, 5})
			So(Balanced(20).zones(4), ShouldResemble, []int{6, 6, 7})
		})

		Convey("A single zone takes everything but the first anchor", func() {
			So(Balanced(40).zones(2), ShouldResemble, []int{39})
		})

		Convey("Counts below the anchor count are raised", func() {
			So(Balanced(2).zones(3), ShouldResemble, []int{1, 1})
		})

		Convey("There are no zones without a pair of anchors", func() {
			So(Balanced(10).zones(1), ShouldBeNil)
		})
	})

	Convey("Weighted zones are taken verbatim", t, func() {
		So(Weighted(3, 0, 2).zones(4), ShouldResemble, []int{3, 0, 2})
	})
}
