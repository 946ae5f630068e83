package explore

import "github.com/charmbracelet/bubbles/key"

// keymap defines the keyboard interactions of the explorer.
type keymap struct {
	left, right,
	first, last,
	decile,
	mark, back,
	showHelp, quit key.Binding
}

func newKeymap() keymap {
	return keymap{
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous step"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next step"),
		),
		first: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first step"),
		),
		last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last step"),
		),
		decile: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump to 0%-90%"),
		),
		mark: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark"),
		),
		back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to mark"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.left, k.right, k.decile, k.showHelp, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.left, k.right, k.first, k.last},
		{k.decile, k.mark, k.back},
		{k.showHelp, k.quit},
	}
}
