// Package explore provides an interactive terminal viewer for stepping through a gradient.
package explore

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/icon"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/muesli/reflow/wrap"
)

const defaultWidth = 80

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// Model is the Bubble Tea model of the explorer.
type Model struct {
	gradient *gradient.Gradient
	colors   []string

	cursor int
	marks  util.Stack[int]

	keys  keymap
	help  help.Model
	width int
}

// New generates g and positions the cursor on its first step.
func New(g *gradient.Gradient) (*Model, error) {
	colors, err := g.GeneratedColors()
	if err != nil {
		return nil, err
	}

	return &Model{
		gradient: g,
		colors:   colors,
		keys:     newKeymap(),
		help:     help.New(),
		width:    defaultWidth,
	}, nil
}

// Run starts the explorer on the alternate screen and blocks until it exits.
func Run(g *gradient.Gradient) error {
	m, err := New(g)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Cursor returns the step under the cursor.
func (m *Model) Cursor() int {
	return m.cursor
}

// Color returns the color under the cursor.
func (m *Model) Color() string {
	return m.colors[m.cursor]
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.left):
			m.moveTo(m.cursor - 1)
		case key.Matches(msg, m.keys.right):
			m.moveTo(m.cursor + 1)
		case key.Matches(msg, m.keys.first):
			m.moveTo(0)
		case key.Matches(msg, m.keys.last):
			m.moveTo(len(m.colors) - 1)
		case key.Matches(msg, m.keys.decile):
			decile := int(msg.String()[0] - '0')
			if step, err := m.gradient.StepByPercent(float64(decile * 10)); err == nil {
				m.moveTo(step)
			}
		case key.Matches(msg, m.keys.mark):
			m.marks.Push(m.cursor)
		case key.Matches(msg, m.keys.back):
			if m.marks.Len() > 0 {
				m.moveTo(m.marks.Pop())
			}
		case key.Matches(msg, m.keys.showHelp):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *Model) moveTo(step int) {
	m.cursor = util.Max(0, util.Min(step, len(m.colors)-1))
}

func (m *Model) View() string {
	current := m.Color()
	inner := util.Max(m.width-4, 10)

	header := fmt.Sprintf(
		"%s %s",
		style.Title("Gradient"),
		style.Faint(strings.Join(m.gradient.Colors(), " → ")+"  "+m.gradient.Steps().String()),
	)

	info := fmt.Sprintf(
		"%s %s  %s %d/%d  %s %.1f%%",
		icon.Get(icon.Gradient),
		style.Bold(current),
		style.Fg(style.SecondaryColor)("step"),
		m.cursor,
		len(m.colors)-1,
		style.Fg(style.SecondaryColor)("position"),
		m.position(),
	)
	if n := m.marks.Len(); n > 0 {
		info += "  " + style.Fg(style.AccentColor)(fmt.Sprintf("%s %s", icon.Get(icon.Mark), util.Quantify(n, "mark", "marks")))
	}

	block := style.Colored(color.Contrast(current), color.New(current)).
		Width(inner).
		Padding(1, 0).
		Align(lipgloss.Center).
		Render(current)

	return paddingStyle.Render(strings.Join([]string{
		wrap.String(header, inner),
		"",
		m.strip(inner),
		"",
		block,
		"",
		info,
		"",
		m.help.View(m.keys),
	}, "\n"))
}

// position returns how far along the gradient the cursor is, in percent.
func (m *Model) position() float64 {
	if len(m.colors) < 2 {
		return 0
	}
	return float64(m.cursor) / float64(len(m.colors)-1) * 100
}

// strip renders a one-row window of the gradient around the cursor with a marker beneath it.
func (m *Model) strip(width int) string {
	visible := util.Max(width, 1)
	start := util.Max(0, util.Min(m.cursor-visible/2, len(m.colors)-visible))
	end := util.Min(start+visible, len(m.colors))

	var cells, marker strings.Builder
	for i := start; i < end; i++ {
		cells.WriteString(style.Fg(color.New(m.colors[i]))("█"))
		if i == m.cursor {
			marker.WriteString(style.Fg(style.ActiveBorderColor)("▲"))
		} else {
			marker.WriteByte(' ')
		}
	}

	return cells.String() + "\n" + marker.String()
}
