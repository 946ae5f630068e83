// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"github.com/huestep/huestep/explore"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// exploreCmd steps through a gradient interactively.
var exploreCmd = &cobra.Command{
	Use:   "explore [colors...]",
	Short: "Step through a gradient interactively",
	Long:  `Open a terminal viewer that moves through the generated colors of a gradient one step at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		g, _, err := resolveGradient(cmd, args)
		handleErr(err)

		handleErr(explore.Run(g))
	},
}
