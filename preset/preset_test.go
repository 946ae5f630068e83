package preset

import (
	"errors"
	"testing"

	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.PresetsBuiltins, true)
}

func TestPresets(t *testing.T) {
	Convey("Given a preset", t, func() {
		p := &Preset{
			Name:   "  Candy ",
			Colors: []string{"#ff00aa", "#00aaff", "#ffffff"},
			Steps:  gradient.Weighted(5, 10),
		}

		Convey("When saving it", func() {
			So(Save(p), ShouldBeNil)

			Convey("Then it can be found by its normalized name", func() {
				found, err := Get("CANDY")
				So(err, ShouldBeNil)
				So(found.IsPresent(), ShouldBeTrue)

				saved := found.MustGet()
				So(saved.Name, ShouldEqual, "candy")
				So(saved.Colors, ShouldResemble, p.Colors)
				So(saved.Steps.Weights(), ShouldResemble, []int{5, 10})
				So(saved.SavedAt.IsZero(), ShouldBeFalse)
			})

			Convey("And its gradient generates", func() {
				saved, err := MustGet("candy")
				So(err, ShouldBeNil)

				colors, err := saved.Gradient().GeneratedColors()
				So(err, ShouldBeNil)
				So(colors, ShouldHaveLength, 16)
				So(colors[15], ShouldEqual, "#ffffff")
			})

			Convey("And it is listed alongside the built-ins", func() {
				names := Names()
				So(names, ShouldContain, "candy")
				So(names, ShouldContain, "sunset")
			})

			Convey("And it can be removed", func() {
				So(Remove("candy"), ShouldBeNil)
				found, err := Get("candy")
				So(err, ShouldBeNil)
				So(found.IsAbsent(), ShouldBeTrue)
			})
		})

		Convey("Invalid presets are rejected", func() {
			p.Steps = gradient.Weighted(5)
			So(errors.Is(Save(p), gradient.ErrStepSpecMismatch), ShouldBeTrue)

			p.Name = " "
			So(errors.Is(Save(p), ErrEmptyName), ShouldBeTrue)
		})
	})

	Convey("Built-in presets", t, func() {
		Convey("Always resolve", func() {
			p, err := MustGet("heat")
			So(err, ShouldBeNil)
			So(p.Builtin, ShouldBeTrue)
			So(p.Validate(), ShouldBeNil)
		})

		Convey("Cannot be removed", func() {
			So(errors.Is(Remove("ocean"), ErrBuiltin), ShouldBeTrue)
		})

		Convey("Can be disabled", func() {
			viper.Set(key.PresetsBuiltins, false)
			defer viper.Set(key.PresetsBuiltins, true)

			found, err := Get("ocean")
			So(err, ShouldBeNil)
			So(found.IsAbsent(), ShouldBeTrue)
		})

		Convey("Are all valid", func() {
			for _, p := range builtins() {
				So(p.Validate(), ShouldBeNil)
			}
		})
	})

	Convey("Lookups of unknown presets", t, func() {
		Convey("Suggest the closest name", func() {
			_, err := MustGet("sunsat")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "sunset")
		})

		Convey("Cannot be removed", func() {
			So(errors.Is(Remove("nothing-here"), ErrNotFound), ShouldBeTrue)
		})
	})

	Convey("Find ranks fuzzy matches", t, func() {
		found, err := Find("sn")
		So(err, ShouldBeNil)
		So(len(found), ShouldBeGreaterThanOrEqualTo, 1)
		So(found[0].Name, ShouldEqual, "sunset")
	})
}
