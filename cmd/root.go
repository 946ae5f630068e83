// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/constant"
	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/icon"
	"github.com/huestep/huestep/key"
	"github.com/huestep/huestep/log"
	"github.com/huestep/huestep/open"
	"github.com/huestep/huestep/preset"
	"github.com/huestep/huestep/render"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/huestep/huestep/version"
	"github.com/huestep/huestep/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionPresets(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return preset.Names(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("steps", "s", "", "Steps to generate: a total such as 40 or per-zone steps such as 20,40,60")
	lo.Must0(viper.BindPFlag(key.GradientSteps, rootCmd.PersistentFlags().Lookup("steps")))

	rootCmd.PersistentFlags().StringP("preset", "p", "", "Start from a saved or built-in preset")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("preset", completionPresets))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, square)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("format", "f", "", "Output format: "+strings.Join(render.Formats(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return render.Formats(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.RenderFormat, rootCmd.Flags().Lookup("format")))

	rootCmd.Flags().IntP("width", "w", 0, "Maximum swatch width in cells (0 uses the terminal width)")
	lo.Must0(viper.BindPFlag(key.RenderWidth, rootCmd.Flags().Lookup("width")))

	rootCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	rootCmd.Flags().Bool("save", false, "Write the output to the exports directory")
	rootCmd.MarkFlagsMutuallyExclusive("output", "save")
	rootCmd.Flags().Bool("open", false, "Open the written file with the configured application")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd generates a gradient and writes it in the configured format.
var rootCmd = &cobra.Command{
	Use:   constant.Huestep + " [colors...]",
	Args:  cobra.ArbitraryArgs,
	Short: "Generate color gradients between anchor colors",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Generate color gradients between anchor colors"),
	Example: `  huestep '#ff0000' '#0000ff' --steps 20
  huestep '#0000ff' '#ffff00' '#ff0000' '#00ff00' --steps 20,40,60 --format table
  huestep --preset sunset --format css`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		g, name, err := resolveGradient(cmd, args)
		handleErr(err)

		format, err := render.ParseFormat(viper.GetString(key.RenderFormat))
		handleErr(err)

		options := render.Options{
			Width:  viper.GetInt(key.RenderWidth),
			Labels: viper.GetBool(key.RenderLabels),
		}

		var path string
		switch {
		case cmd.Flags().Changed("output"):
			path = lo.Must(cmd.Flags().GetString("output"))
		case lo.Must(cmd.Flags().GetBool("save")):
			path = filepath.Join(where.Exports(), fmt.Sprintf("%s.%s", name, format.Extension()))
		}

		if path == "" {
			handleErr(render.Render(cmd.OutOrStdout(), format, g, options))
			return
		}

		var b strings.Builder
		handleErr(render.Render(&b, format, g, options))
		handleErr(filesystem.WriteAtomic(path, []byte(b.String())))

		log.Infof("wrote %s gradient to %s", format, path)
		fmt.Printf(
			"%s wrote %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(name),
			path,
		)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(path, viper.GetString(key.RenderOpener)))
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

// exportName derives a filesystem friendly name for a gradient.
func exportName(presetName string, colors []string) string {
	if presetName != "" {
		return util.SanitizeFilename(presetName)
	}
	return util.SanitizeFilename(strings.Join(lo.Map(colors, func(c string, _ int) string {
		return strings.TrimPrefix(c, "#")
	}), "-"))
}
