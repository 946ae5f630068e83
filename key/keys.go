// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Gradient Defaults - these keys seed the gradient used when the command line omits anchors or steps.
const (
	GradientColors = "gradient.colors"
	GradientSteps  = "gradient.steps"
)

// Rendering - these keys govern how generated colors are written to the terminal.
const (
	RenderFormat = "render.format"
	RenderWidth  = "render.width"
	RenderLabels = "render.labels"
	RenderOpener = "render.opener"
)

// Presets - these keys manage saved gradients.
const (
	PresetsBuiltins = "presets.builtins"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
