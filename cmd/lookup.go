// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/huestep/huestep/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stepCmd)
	stepCmd.SetOut(os.Stdout)
	stepCmd.Flags().BoolP("swatch", "w", false, "Print a swatch of the color before its hex value")

	rootCmd.AddCommand(percentCmd)
	percentCmd.SetOut(os.Stdout)
	percentCmd.Flags().BoolP("swatch", "w", false, "Print a swatch of the color before its hex value")
}

// stepCmd resolves a single generated color by its step index.
var stepCmd = &cobra.Command{
	Use:   "step <n> [colors...]",
	Short: "Print the color at a step of the gradient",
	Long: `Print the color at a step of the gradient.
Steps below zero resolve to the first color and steps past the end resolve to the last.
Negative steps must follow "--" so they are not read as flags.`,
	Example: `  huestep step 1 '#ffffff' '#000000' --steps 40
  huestep step --steps 40 -- -1 '#ffffff' '#000000'`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		step, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(fmt.Errorf("invalid step %q: %w", args[0], err))
		}

		g, _, err := resolveGradient(cmd, args[1:])
		handleErr(err)

		c, err := g.ColorByStep(step)
		handleErr(err)

		printColor(cmd, c)
	},
}

// percentCmd resolves a single generated color by its position in percent.
var percentCmd = &cobra.Command{
	Use:   "percent <p> [colors...]",
	Short: "Print the color at a percentage of the gradient",
	Long: `Print the color at a percentage of the gradient.
Percentages at or below 0 resolve to the first color and at or above 100 to the last.`,
	Example: "  huestep percent 25 '#0000ff' '#ffff00' '#ff0000' '#00ff00' --steps 20,40,60",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		percent, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			handleErr(fmt.Errorf("invalid percent %q: %w", args[0], err))
		}

		g, _, err := resolveGradient(cmd, args[1:])
		handleErr(err)

		c, err := g.ColorByPercent(percent)
		handleErr(err)

		printColor(cmd, c)
	},
}

func printColor(cmd *cobra.Command, hex string) {
	if lo.Must(cmd.Flags().GetBool("swatch")) {
		cmd.Println(style.Swatch(hex)("    ") + " " + hex)
		return
	}
	cmd.Println(hex)
}
