// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/key"
	"github.com/huestep/huestep/preset"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resolveGradient builds the gradient described by the command line.
// A --preset seeds anchors and steps; positional colors and --steps override them.
// Without a preset the configured defaults fill whatever the command line omits.
// The returned name identifies the gradient in messages and export file names.
func resolveGradient(cmd *cobra.Command, colors []string) (*gradient.Gradient, string, error) {
	var (
		presetName = lo.Must(cmd.Flags().GetString("preset"))
		anchors    = viper.GetStringSlice(key.GradientColors)
		stepsText  = viper.GetString(key.GradientSteps)
	)

	steps, err := gradient.ParseSteps(stepsText)
	if err != nil {
		return nil, "", err
	}

	if presetName != "" {
		p, err := preset.MustGet(presetName)
		if err != nil {
			return nil, "", err
		}

		anchors = p.Colors
		if !cmd.Flags().Changed("steps") {
			steps = p.Steps
		}
	}

	if len(colors) > 0 {
		anchors = colors
	}

	if len(anchors) == 0 {
		anchors = nil
	}

	g := gradient.New(anchors, steps)
	if err := g.Validate(); err != nil {
		return nil, "", err
	}

	return g, exportName(presetName, anchors), nil
}
