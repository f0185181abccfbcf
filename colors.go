package plottools

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color in "#RRGGBB" hex notation.
type Color string

// Common anchor colors used by Lighter and Darker.
var (
	white = mustColor("#FFFFFF")
	black = mustColor("#000000")
)

// ParseColor parses a hex color string into a Color.
// Accepts "#RRGGBB" and "#RGB" notation, case insensitive.
// Returns ErrInvalidColor if the string cannot be parsed.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		// expand #RGB to #RRGGBB
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(strings.ToUpper(c.Hex())), nil
}

// rgb converts the color for blending. Invalid colors fall back to black
// so that style generation never fails mid-way; validation happens in
// ParseColor and LoadPalette.
func (c Color) rgb() colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return black
	}
	return col
}

func mustColor(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the hex notation of the color.
func (c Color) String() string { return string(c) }

// Lighter returns the color blended towards white or black.
// A factor of 0 gives white, 1 the color itself, and 2 black.
// Factors between 1 and 2 darken instead of lighten, so a single knob
// covers the full edge-color range used by point and fill styles.
func (c Color) Lighter(factor float64) Color {
	switch {
	case factor <= 0:
		return Color(strings.ToUpper(white.Hex()))
	case factor <= 1:
		return Color(strings.ToUpper(white.BlendRgb(c.rgb(), factor).Hex()))
	case factor < 2:
		return Color(strings.ToUpper(c.rgb().BlendRgb(black, factor-1).Hex()))
	default:
		return Color(strings.ToUpper(black.Hex()))
	}
}

// Darker returns the color blended towards black.
// A factor of 0 gives black and 1 the color itself.
func (c Color) Darker(factor float64) Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return Color(strings.ToUpper(black.BlendRgb(c.rgb(), factor).Hex()))
}

// Gradient interpolates between c and other in RGB space.
// A fraction of 0 gives c and 1 gives other.
func (c Color) Gradient(other Color, fraction float64) Color {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return Color(strings.ToUpper(c.rgb().BlendRgb(other.rgb(), fraction).Hex()))
}
