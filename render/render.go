// Package render writes generated gradients in the formats supported by the command line.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/huestep/huestep/color"
	"github.com/huestep/huestep/gradient"
	"github.com/huestep/huestep/style"
	"github.com/huestep/huestep/util"
	"github.com/invopop/jsonschema"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
)

// Format names an output representation.
type Format string

// Supported output formats.
const (
	FormatList   Format = "list"
	FormatSwatch Format = "swatch"
	FormatTable  Format = "table"
	FormatCSS    Format = "css"
	FormatJSON   Format = "json"
)

var formats = []Format{FormatList, FormatSwatch, FormatTable, FormatCSS, FormatJSON}

// Formats returns the names of all supported formats.
func Formats() []string {
	return lo.Map(formats, func(f Format, _ int) string { return string(f) })
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(formats, f) {
		return "", fmt.Errorf("unknown format %q, available formats are: %s", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Extension returns the file extension used when saving output in format f.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSS:
		return "css"
	default:
		return "txt"
	}
}

// Options tunes the terminal oriented formats.
type Options struct {
	// Width limits swatch rows in terminal cells. Zero uses the terminal width.
	Width int
	// Labels prints hex values inside table swatches.
	Labels bool
}

// Output is the structured form of a generated gradient.
type Output struct {
	Colors        []string `json:"colors" jsonschema:"description=Anchor colors the gradient passes through."`
	Steps         string   `json:"steps" jsonschema:"description=Balanced count such as 40 or per-zone weights such as [20,40,60]."`
	Weighted      bool     `json:"weighted" jsonschema:"description=Whether steps are given per zone."`
	NumberOfSteps int      `json:"number_of_steps" jsonschema:"description=Balanced count or sum of the zone weights."`
	Generated     []string `json:"generated" jsonschema:"description=Every generated color from the first anchor to the last."`
}

// NewOutput generates g and captures it as an Output.
func NewOutput(g *gradient.Gradient) (*Output, error) {
	generated, err := g.GeneratedColors()
	if err != nil {
		return nil, err
	}

	return &Output{
		Colors:        g.Colors(),
		Steps:         g.Steps().String(),
		Weighted:      g.IsWeighted(),
		NumberOfSteps: g.NumberOfSteps(),
		Generated:     generated,
	}, nil
}

// Schema returns the JSON schema of Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&Output{})
}

// Render generates g and writes it to w in the given format.
func Render(w io.Writer, format Format, g *gradient.Gradient, options Options) error {
	out, err := NewOutput(g)
	if err != nil {
		return err
	}

	switch format {
	case FormatList:
		return List(w, out.Generated)
	case FormatSwatch:
		_, err = fmt.Fprintln(w, Swatch(out.Generated, options.Width))
	case FormatTable:
		_, err = fmt.Fprint(w, Table(out.Generated, options.Labels))
	case FormatCSS:
		_, err = fmt.Fprintln(w, CSS(out.Generated))
	case FormatJSON:
		err = JSON(w, out)
	default:
		_, err = ParseFormat(string(format))
	}

	return err
}

// List writes one color per line.
func List(w io.Writer, colors []string) error {
	for _, c := range colors {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

// swatchCell is the width of one color in a swatch strip.
const swatchCell = 2

// Swatch renders colors as a strip of background blocks, wrapped so no row is wider than width.
func Swatch(colors []string, width int) string {
	if width <= 0 {
		width = util.TerminalWidth(80)
	}
	width = util.Max(width-width%swatchCell, swatchCell)

	cells := lo.Map(colors, func(c string, _ int) string {
		return style.Fg(color.New(c))(strings.Repeat("█", swatchCell))
	})

	return wrap.String(strings.Join(cells, ""), width)
}

// Table renders one row per color: index, swatch and hex value.
func Table(colors []string, labels bool) string {
	var b strings.Builder
	digits := len(strconv.Itoa(util.Max(len(colors)-1, 0)))

	for i, c := range colors {
		index := style.Faint(fmt.Sprintf("%*d", digits, i))
		if labels {
			fmt.Fprintf(&b, "%s %s\n", index, style.Swatch(c)(" "+c+" "))
		} else {
			fmt.Fprintf(&b, "%s %s %s\n", index, style.Swatch(c)(strings.Repeat(" ", 9)), c)
		}
	}

	return b.String()
}

// CSS renders colors as a CSS linear-gradient with evenly spaced stops.
func CSS(colors []string) string {
	if len(colors) == 1 {
		return fmt.Sprintf("linear-gradient(90deg, %s, %s)", colors[0], colors[0])
	}

	stops := lo.Map(colors, func(c string, i int) string {
		pos := math.Round(float64(i)/float64(len(colors)-1)*10000) / 100
		return c + " " + strconv.FormatFloat(pos, 'f', -1, 64) + "%"
	})

	return "linear-gradient(90deg, " + strings.Join(stops, ", ") + ")"
}

// JSON writes out as a single line of JSON.
func JSON(w io.Writer, out *Output) error {
	return json.NewEncoder(w).Encode(out)
}
