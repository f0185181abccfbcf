package plottools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Palette maps color names to colors.
type Palette map[string]Color

// PaletteVivid holds saturated colors optimized for display on a screen.
var PaletteVivid = Palette{
	"red":        "#D71000",
	"orange":     "#FF9000",
	"yellow":     "#FFF700",
	"lightgreen": "#B0FF00",
	"green":      "#30D700",
	"darkgreen":  "#008020",
	"cyan":       "#00F0B0",
	"lightblue":  "#00B0C7",
	"blue":       "#0020C0",
	"purple":     "#8000C0",
	"magenta":    "#B000B0",
	"pink":       "#F00080",
	"white":      "#FFFFFF",
	"gray":       "#A7A7A7",
	"black":      "#000000",
}

// PaletteMuted holds desaturated colors optimized for print.
var PaletteMuted = Palette{
	"red":        "#C02717",
	"orange":     "#F78017",
	"yellow":     "#F0D730",
	"lightgreen": "#AAB71B",
	"green":      "#478010",
	"darkgreen":  "#007030",
	"cyan":       "#40A787",
	"lightblue":  "#577BC7",
	"blue":       "#2040A0",
	"purple":     "#6040A0",
	"magenta":    "#A04080",
	"pink":       "#E0729A",
	"white":      "#FFFFFF",
	"gray":       "#A0A0A0",
	"black":      "#000000",
}

// Color looks up a named color.
// Returns ErrUnknownColor if the name is not in the palette.
func (p Palette) Color(name string) (Color, error) {
	c, ok := p[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// Names returns all color names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pick returns the named color, falling back to black for missing names.
// Presets use it so a trimmed custom palette cannot break style generation.
func (p Palette) pick(name string) Color {
	if c, ok := p[name]; ok {
		return c
	}
	return "#000000"
}

// LoadPalette reads a palette from a JSON file mapping color names to
// hex strings. All colors are validated with ParseColor.
// Returns ErrInvalidPalette if the file is malformed.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrStorageError, path, err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPalette, path, err)
	}
	p := make(Palette, len(raw))
	for name, hex := range raw {
		c, err := ParseColor(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: color %q: %v", ErrInvalidPalette, path, name, err)
		}
		p[name] = c
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: %s: no colors", ErrInvalidPalette, path)
	}
	return p, nil
}

// DefaultPalettePath returns the platform path where a custom palette
// is looked up, e.g. ~/.config/<appName>/palette.json on Linux.
func DefaultPalettePath(appName string) (string, error) {
	dir, err := getDefaultConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "palette.json"), nil
}
