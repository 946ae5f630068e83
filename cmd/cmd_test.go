package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/huestep/huestep/constant"
	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/key"
	"github.com/huestep/huestep/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetFlags puts every flag of c and its children back to its default,
// since the command tree is shared between executions.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if slice, ok := f.Value.(pflag.SliceValue); ok {
			_ = slice.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}

	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func redirect(c *cobra.Command, out *bytes.Buffer) {
	c.SetOut(out)
	c.SetErr(out)
	for _, child := range c.Commands() {
		redirect(child, out)
	}
}

// execute runs the root command with args and returns what it printed.
func execute(args ...string) (string, error) {
	viper.Set(key.GradientSteps, nil)
	viper.Set(key.RenderFormat, nil)
	resetFlags(rootCmd)

	var out bytes.Buffer
	redirect(rootCmd, &out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	Convey("Given the root command", t, func() {
		Convey("When listing a balanced gradient", func() {
			out, err := execute("#000000", "#ffffff", "--steps", "3", "--format", "list")

			Convey("Then every generated color is printed", func() {
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "#000000\n#7f7f7f\n#ffffff\n")
			})
		})

		Convey("When using the short steps flag", func() {
			out, err := execute("#fff", "#000", "-s", "40", "-f", "list")

			Convey("Then the gradient has that many colors", func() {
				So(err, ShouldBeNil)
				So(bytes.Count([]byte(out), []byte("\n")), ShouldEqual, 40)
				So(out, ShouldStartWith, "#ffffff\n#f8f8f8\n")
			})
		})

		Convey("When writing to a file", func() {
			filesystem.SetMemMapFs()
			path := filepath.Join("/exports", "gray.css")
			_, err := execute("#000000", "#ffffff", "-s", "3", "-f", "css", "--output", path)

			Convey("Then the file holds the rendered gradient", func() {
				So(err, ShouldBeNil)

				data, err := filesystem.API().ReadFile(path)
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, "linear-gradient(90deg, #000000 0%, #7f7f7f 50%, #ffffff 100%)\n")
			})
		})
	})
}

func TestLookupCommands(t *testing.T) {
	Convey("Given the lookup commands", t, func() {
		Convey("When asking for a step", func() {
			out, err := execute("step", "1", "#ffffff", "#000000", "--steps", "40")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#f8f8f8\n")
		})

		Convey("When asking for a negative step after --", func() {
			out, err := execute("step", "--steps", "40", "--", "-1", "#ffffff", "#000000")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#ffffff\n")
		})

		Convey("When asking for a step past the end", func() {
			out, err := execute("step", "41", "#ffffff", "#000000", "-s", "40")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#000000\n")
		})

		Convey("When asking for a percentage of a weighted gradient", func() {
			out, err := execute("percent", "25", "#0000ff", "#ffff00", "#ff0000", "#00ff00", "-s", "20,40,60")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#ffc500\n")
		})

		Convey("When asking for a percentage of a balanced gradient", func() {
			out, err := execute("percent", "25", "#ffffff", "#000000", "-s", "40")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#c4c4c4\n")
		})
	})
}

func TestInfoCommands(t *testing.T) {
	Convey("Given the informational commands", t, func() {
		Convey("When printing the short version", func() {
			out, err := execute("version", "--short")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, constant.Version+"\n")
		})

		Convey("When printing the full version", func() {
			out, err := execute("version")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, constant.Huestep)
			So(out, ShouldContainSubstring, constant.Version)
		})

		Convey("When listing environment variables", func() {
			out, err := execute("env")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, where.EnvConfigPath)
			So(out, ShouldContainSubstring, "HUESTEP_RENDER_FORMAT")
		})

		Convey("When asking where presets live", func() {
			out, err := execute("where", "--presets")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, where.Presets()+"\n")
		})

		Convey("When asking for every location", func() {
			out, err := execute("where")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, where.Exports())
			So(out, ShouldContainSubstring, "--presets")
		})
	})
}
