// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/icon"
	"github.com/huestep/huestep/key"
	"github.com/huestep/huestep/preset"
	"github.com/huestep/huestep/render"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionPresetNames(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return preset.Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.SetOut(os.Stdout)
}

// presetCmd groups the commands that manage named gradients.
var presetCmd = &cobra.Command{
	Use:     "preset",
	Aliases: []string{"presets"},
	Short:   "Manage saved gradients",
}

func init() {
	presetCmd.AddCommand(presetSaveCmd)
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name> [colors...]",
	Short: "Save a gradient under a name",
	Long: `Save a gradient under a name.
Colors and steps follow the same rules as the root command, so an existing preset can be copied with --preset.`,
	Example: "  huestep preset save warm '#ff0000' '#ffff00' --steps 30",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		g, _, err := resolveGradient(cmd, args[1:])
		handleErr(err)

		p := &preset.Preset{
			Name:   args[0],
			Colors: g.Colors(),
			Steps:  g.Steps(),
		}
		handleErr(preset.Save(p))

		fmt.Printf(
			"%s saved preset %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(strings.ToLower(strings.TrimSpace(p.Name))),
		)
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
	presetListCmd.Flags().BoolP("json", "j", false, "Print presets as JSON")
	presetListCmd.Flags().StringP("find", "F", "", "Only list presets whose names fuzzily match the query")
}

var presetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved and built-in presets",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			presets []*preset.Preset
			err     error
		)

		if query := lo.Must(cmd.Flags().GetString("find")); query != "" {
			presets, err = preset.Find(query)
		} else {
			presets, err = preset.All()
		}
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(presets))
			return
		}

		if len(presets) == 0 {
			cmd.Println(style.Faint("no presets found"))
			return
		}

		width := lo.Max(lo.Map(presets, func(p *preset.Preset, _ int) int { return len(p.Name) }))
		for _, p := range presets {
			swatches := lo.Map(p.Colors, func(c string, _ int) string {
				return style.Swatch(c)("  ")
			})

			name := style.Fg(color.Purple)(fmt.Sprintf("%-*s", width, p.Name))
			steps := style.Faint(p.Steps.String())
			if p.Builtin {
				steps += " " + style.Tag(style.Surface, color.Yellow)("built-in")
			}

			cmd.Printf("%s %s %s %s\n", icon.Get(icon.Preset), name, strings.Join(swatches, ""), steps)
		}
	},
}

func init() {
	presetCmd.AddCommand(presetShowCmd)
	presetShowCmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(render.Formats(), ", "))
}

var presetShowCmd = &cobra.Command{
	Use:               "show <name>",
	Short:             "Render a preset",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPresetNames,
	Run: func(cmd *cobra.Command, args []string) {
		p, err := preset.MustGet(args[0])
		handleErr(err)

		formatName := lo.Must(cmd.Flags().GetString("format"))
		if formatName == "" {
			formatName = viper.GetString(key.RenderFormat)
		}

		format, err := render.ParseFormat(formatName)
		handleErr(err)

		handleErr(render.Render(cmd.OutOrStdout(), format, p.Gradient(), render.Options{
			Width:  viper.GetInt(key.RenderWidth),
			Labels: viper.GetBool(key.RenderLabels),
		}))
	},
}

func init() {
	presetCmd.AddCommand(presetRemoveCmd)
	presetRemoveCmd.Flags().BoolP("yes", "y", false, "Remove without asking for confirmation")
}

var presetRemoveCmd = &cobra.Command{
	Use:               "remove <name>",
	Aliases:           []string{"rm"},
	Short:             "Remove a saved preset",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionPresetNames,
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		if !lo.Must(cmd.Flags().GetBool("yes")) {
			confirm := survey.Confirm{
				Message: fmt.Sprintf("Remove preset %s?", name),
				Default: false,
			}

			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Removing %s...", icon.Get(icon.Progress), name))
		err := preset.Remove(name)
		erase()
		handleErr(err)

		fmt.Printf(
			"%s removed preset %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(name),
		)
	},
}
