package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color decomposed into its 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as a lower-case, zero padded #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colorful converts the color into a go-colorful value.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Parse decodes a #rrggbb or #rgb hex string.
// Shorthand nibbles are duplicated, so #abc parses as #aabbcc.
func Parse(hex string) (RGB, error) {
	if len(hex) != 4 && len(hex) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Normalize returns the canonical #rrggbb form of a hex color.
func Normalize(hex string) (string, error) {
	c, err := Parse(hex)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(hex string) RGB {
	c, err := Parse(hex)
	if err != nil {
		panic(err)
	}
	return c
}
