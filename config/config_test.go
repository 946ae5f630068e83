package config

import (
	"encoding/json"
	"testing"

	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should default to a parseable gradient", func() {
			_ = Setup()
			steps, err := gradient.ParseSteps(viper.GetString(key.GradientSteps))
			So(err, ShouldBeNil)

			g := gradient.New(viper.GetStringSlice(key.GradientColors), steps)
			So(g.Validate(), ShouldBeNil)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("render.format")
			So(result, ShouldEqual, "render_format")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.RenderFormat]

		Convey("Env should be prefixed and upper cased", func() {
			So(field.Env(), ShouldEqual, "HUESTEP_RENDER_FORMAT")
		})

		Convey("JSON should carry the type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["type"], ShouldEqual, "string")
			So(decoded["default"], ShouldEqual, "swatch")
		})

		Convey("Pretty should mention the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.RenderFormat)
		})
	})
}
