// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"fmt"

	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/icon"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/huestep/huestep/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"exports directory", "exports", mo.Some("e"), where.Exports},
	{"saved presets", "presets", mo.None[string](), where.Presets},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes cached data, exported files or saved presets.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, exported gradients or saved presets",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := filesystem.API().RemoveAll(target.location())
			erase()
			handleErr(err)

			fmt.Printf(
				"%s %s cleared\n",
				style.Fg(color.Green)(icon.Get(icon.Success)),
				util.Capitalize(target.name),
			)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
