// Package cmd implements the command-line interface for huestep.
package cmd

import (
	"encoding/json"

	"github.com/huestep/huestep/preset"
	"github.com/huestep/huestep/render"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().Bool("presets", false, "Generate the JSON Schema of the preset list output instead")
}

// schemaCmd generates JSON schemas for structured outputs.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for structured outputs",
	Run: func(cmd *cobra.Command, args []string) {
		var schema *jsonschema.Schema

		switch {
		case lo.Must(cmd.Flags().GetBool("presets")):
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			schema = reflector.Reflect([]*preset.Preset{})
		default:
			schema = render.Schema()
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(schema))
	},
}
