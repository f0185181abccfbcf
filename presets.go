package plottools

import "fmt"

// PlotParams are the layout settings a style preset applies beyond the
// plot styles themselves. They map onto matplotlib rc settings when
// exported with WriteStyleSheet.
type PlotParams struct {
	// FontSize is the base font size in points.
	FontSize float64

	// FontFamily is the font family ("sans-serif", "serif"). Empty
	// keeps the renderer's default.
	FontFamily string

	// LabelSize and LegendSize are relative font sizes
	// ("small", "x-small", "medium").
	LabelSize  string
	LegendSize string

	// TickDir is the tick mark direction: "in", "out", or "inout".
	TickDir string

	// TickSize is the major tick length in points. Minor ticks are
	// drawn at 0.6 times this length.
	TickSize float64

	// FigColor and AxesColor are background colors. Empty means
	// transparent.
	FigColor  Color
	AxesColor Color

	// Grid and Spine style the axes grid and frame.
	Grid  LineStyle
	Spine LineStyle

	// ColorCycle is the sequence of colors assigned to unstyled plots.
	ColorCycle []Color

	// FigureFormat is the file format figures are saved as
	// ("png", "pdf", "svg").
	FigureFormat string

	// LabelFormat places the unit in axis labels, e.g.
	// "{label} [{unit}]".
	LabelFormat string

	// Latex enables LaTeX text rendering, with the given preamble
	// lines. Preamble lines starting with "p:xxx" are shorthand for
	// "\usepackage{xxx}".
	Latex    bool
	Preamble []string

	// XKCD enables the hand-drawn sketch look.
	XKCD bool
}

// Style bundles a generated style set with its layout parameters.
type Style struct {
	// Name identifies the preset: "screen", "paper", or "sketch".
	Name string

	// Palette is the palette the styles were generated from.
	Palette Palette

	// Set holds the generated line, point, linepoint, and fill styles.
	Set *StyleSet

	// Params are the layout settings of the preset.
	Params PlotParams
}

// Series names shared by all presets. Each letter group is a hue
// family, plus the two semantic series used in behavioral data sets.
var presetNames = []string{
	"A1", "A2", "A3",
	"B1", "B2", "B3", "B4",
	"C1", "C2", "C3", "C4",
	"Male", "Female",
}

// presetColors assigns a palette color to each preset series.
func presetColors(p Palette) []Color {
	return []Color{
		p.pick("red"), p.pick("orange"), p.pick("yellow"),
		p.pick("blue"), p.pick("purple"), p.pick("magenta"), p.pick("lightblue"),
		p.pick("lightgreen"), p.pick("green"), p.pick("darkgreen"), p.pick("cyan"),
		p.pick("blue"), p.pick("pink"),
	}
}

// presetMarkers assigns a marker to each preset series: round-ish
// glyphs for the A group, rotated triangles for B, angular glyphs for
// C, and circles for the semantic series.
var presetMarkers = []Marker{
	MarkerCircle, MarkerPentagon, MarkerHexagon,
	PolygonMarker(3, 1, 60, 1.25), PolygonMarker(3, 1, 0, 1.25),
	PolygonMarker(3, 1, 90, 1.25), PolygonMarker(3, 1, 30, 1.25),
	MarkerSquare, MarkerDiamond, MarkerStar, PolygonMarker(4, 1, 45, 1.4),
	MarkerCircle, MarkerCircle,
}

// cycleNames is the palette order of the default color cycle.
var cycleNames = []string{
	"blue", "red", "orange", "lightgreen", "magenta", "yellow", "cyan", "pink",
}

// ColorCycle resolves named palette colors into a color cycle,
// skipping names the palette does not define.
func ColorCycle(p Palette, names []string) []Color {
	var cycle []Color
	for _, name := range names {
		if c, ok := p[name]; ok {
			cycle = append(cycle, c)
		}
	}
	return cycle
}

// buildPreset generates the common style grid and helper styles of all
// presets. lwSpines is the width of the Spine and axis frame lines.
func buildPreset(p Palette, opt StyleOptions, lwSpines float64) *StyleSet {
	set := NewStyleSet()
	set.PlotStyles(presetNames, presetColors(p), []Dash{DashSolid},
		presetMarkers, opt)

	noClip := func(ls *LineStyle) { ls.NoClip = true }
	set.AddLineStyles([]string{"Spine"}, Plain, []Color{p.pick("black")},
		[]Dash{DashSolid}, []float64{lwSpines}, noClip)
	set.AddLineStyles([]string{"Grid"}, Plain, []Color{p.pick("gray")},
		[]Dash{DashDashed}, []float64{opt.LWThin})
	set.AddLineStyles([]string{"Marker"}, Plain, []Color{p.pick("black")},
		[]Dash{DashSolid}, []float64{opt.LWThick}, noClip)
	return set
}

// ScreenStyle returns layout and plot styles optimized for display on
// a screen: the vivid palette, thick lines, large markers, and a gray
// figure background that makes the plot extent visible.
func ScreenStyle() *Style { return screenStyle(PaletteVivid) }

func screenStyle(p Palette) *Style {
	opt := StyleOptions{
		LWThick:         2.5,
		LWThin:          1.5,
		MarkerLarge:     10.0,
		MarkerSmall:     6.5,
		MarkerEdge:      0.0,
		MarkerEdgeWidth: 1.5,
		FillAlpha:       0.4,
	}
	set := buildPreset(p, opt, 1.0)
	return &Style{
		Name:    "screen",
		Palette: p,
		Set:     set,
		Params: PlotParams{
			FontSize:     10.0,
			FontFamily:   "sans-serif",
			LabelSize:    "small",
			LegendSize:   "x-small",
			TickDir:      "out",
			TickSize:     4.0,
			FigColor:     p.pick("gray"),
			AxesColor:    p.pick("white"),
			Grid:         set.Line["Grid"],
			Spine:        set.Line["Spine"],
			ColorCycle:   ColorCycle(p, cycleNames),
			FigureFormat: "png",
			LabelFormat:  "{label} [{unit}]",
		},
	}
}

// PaperStyle returns layout and plot styles optimized for inclusion
// into a paper: the muted palette, thin lines, and transparent
// backgrounds.
func PaperStyle() *Style { return paperStyle(PaletteMuted) }

func paperStyle(p Palette) *Style {
	opt := StyleOptions{
		LWThick:         1.7,
		LWThin:          0.8,
		MarkerLarge:     6.5,
		MarkerSmall:     4.0,
		MarkerEdge:      0.0,
		MarkerEdgeWidth: 0.8,
		FillAlpha:       0.4,
	}
	set := buildPreset(p, opt, 0.8)
	return &Style{
		Name:    "paper",
		Palette: p,
		Set:     set,
		Params: PlotParams{
			FontSize:     10.0,
			FontFamily:   "sans-serif",
			LabelSize:    "small",
			LegendSize:   "x-small",
			TickDir:      "out",
			TickSize:     2.5,
			Grid:         set.Line["Grid"],
			Spine:        set.Line["Spine"],
			ColorCycle:   ColorCycle(p, cycleNames),
			FigureFormat: "pdf",
			LabelFormat:  "{label} [{unit}]",
		},
	}
}

// SketchStyle returns layout and plot styles with the hand-drawn xkcd
// look activated: the vivid palette, extra thick lines, and larger
// fonts.
func SketchStyle() *Style { return sketchStyle(PaletteVivid) }

func sketchStyle(p Palette) *Style {
	opt := StyleOptions{
		LWThick:         3.0,
		LWThin:          1.8,
		MarkerLarge:     6.5,
		MarkerSmall:     4.0,
		MarkerEdge:      0.0,
		MarkerEdgeWidth: 0.8,
		FillAlpha:       0.4,
	}
	set := buildPreset(p, opt, 1.8)
	return &Style{
		Name:    "sketch",
		Palette: p,
		Set:     set,
		Params: PlotParams{
			FontSize:     14.0,
			LabelSize:    "medium",
			LegendSize:   "medium",
			TickDir:      "out",
			TickSize:     6.0,
			FigColor:     p.pick("white"),
			Grid:         set.Line["Grid"],
			Spine:        set.Line["Spine"],
			ColorCycle:   ColorCycle(p, cycleNames),
			FigureFormat: "pdf",
			LabelFormat:  "{label} ({unit})",
			XKCD:         true,
		},
	}
}

// StyleByName returns the named preset.
// Returns ErrUnknownStyle for anything but "screen", "paper", and
// "sketch".
func StyleByName(name string) (*Style, error) {
	switch name {
	case "screen":
		return ScreenStyle(), nil
	case "paper":
		return PaperStyle(), nil
	case "sketch":
		return SketchStyle(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// StyleWithPalette builds the named preset from a custom palette
// instead of the preset's built-in one. Colors missing from the
// palette fall back to black.
func StyleWithPalette(name string, p Palette) (*Style, error) {
	switch name {
	case "screen":
		return screenStyle(p), nil
	case "paper":
		return paperStyle(p), nil
	case "sketch":
		return sketchStyle(p), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// StyleNames lists the available preset names.
func StyleNames() []string {
	return []string{"screen", "paper", "sketch"}
}
