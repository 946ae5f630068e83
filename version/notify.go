// Package version checks for newer huestep releases.
package version

import (
	"fmt"

	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/constant"
	"github.com/huestep/huestep/icon"
	"github.com/huestep/huestep/key"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/spf13/viper"
)

// Notify displays a terminal alert if a more recent stable application version is available.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/huestep/huestep/releases/tag/v"+version),
	)

}
