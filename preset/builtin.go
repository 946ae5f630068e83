package preset

import (
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/key"
	"github.com/spf13/viper"
)

// builtins returns the presets shipped with the application, keyed by name.
// It returns an empty map when built-ins are disabled in the configuration.
func builtins() map[string]*Preset {
	if !viper.GetBool(key.PresetsBuiltins) {
		return map[string]*Preset{}
	}

	return map[string]*Preset{
		"sunset": {
			Name:    "sunset",
			Colors:  []string{"#0b1d51", "#8c1c75", "#f46036", "#ffd166"},
			Steps:   gradient.Balanced(40),
			Builtin: true,
		},
		"ocean": {
			Name:    "ocean",
			Colors:  []string{"#001219", "#005f73", "#0a9396", "#94d2bd"},
			Steps:   gradient.Balanced(30),
			Builtin: true,
		},
		"heat": {
			Name:    "heat",
			Colors:  []string{"#000000", "#ff0000", "#ffff00", "#ffffff"},
			Steps:   gradient.Weighted(10, 20, 30),
			Builtin: true,
		},
		"mono": {
			Name:    "mono",
			Colors:  []string{gradient.DefaultFrom, gradient.DefaultTo},
			Steps:   gradient.Balanced(gradient.DefaultSteps),
			Builtin: true,
		},
	}
}
