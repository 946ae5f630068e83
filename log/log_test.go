package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		Convey("Should stay silent when logs are disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeFalse)
		})

		Convey("Should open a log file when enabled", func() {
			viper.Set(key.LogsWrite, true)
			defer viper.Set(key.LogsWrite, false)

			So(Setup(), ShouldBeNil)
			So(enabled, ShouldBeTrue)
			enabled = false
		})
	})
}

func TestEmit(t *testing.T) {
	Convey("Given a json logger at debug level", t, func() {
		var buf bytes.Buffer
		configure(&buf, true, "debug")
		enabled = true
		defer func() { enabled = false }()

		Convey("Structured fields are written", func() {
			WithFields(Fields{"steps": 40}, "generated")

			var entry map[string]any
			So(json.Unmarshal(buf.Bytes(), &entry), ShouldBeNil)
			So(entry["msg"], ShouldEqual, "generated")
			So(entry["steps"], ShouldEqual, float64(40))
		})

		Convey("Nothing is written while disabled", func() {
			enabled = false
			Infof("hidden %d", 1)
			So(buf.Len(), ShouldEqual, 0)
		})
	})

	Convey("Unknown levels fall back to info", t, func() {
		var buf bytes.Buffer
		configure(&buf, false, "loud")
		enabled = true
		defer func() { enabled = false }()

		Debug("dropped")
		Info("kept")
		So(buf.String(), ShouldNotContainSubstring, "dropped")
		So(buf.String(), ShouldContainSubstring, "kept")
	})
}
