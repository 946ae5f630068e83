// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Mark
	Preset
	Gradient
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Mark: {
		emoji:   "📍",
		nerd:    "",
		plain:   "▲",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "🟨",
	},
	Preset: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "●",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟪",
	},
	Gradient: {
		emoji:   "🌈",
		nerd:    "",
		plain:   "▇",
		kaomoji: "☆ﾟ.*･｡",
		squares: "🟧",
	},
}
