package plottools

import (
	"fmt"
	"strings"
)

// Dash describes how a line is dashed, using matplotlib notation.
type Dash string

// Dash patterns for line, point, and linepoint styles.
const (
	DashSolid   Dash = "-"
	DashDashed  Dash = "--"
	DashDotted  Dash = ":"
	DashDashDot Dash = "-."
	DashNone    Dash = "none"
)

// Marker is a plot marker. Either Symbol is a single-character glyph
// (o, p, h, s, D, *), or Symbol is empty and Sides/Style/Angle describe
// a polygon (style 0), star (style 1), or asterisk (style 2) marker.
// EdgeScale scales the marker size relative to the style's base size,
// compensating for the different visual weight of the glyphs.
type Marker struct {
	Symbol    string
	Sides     int
	Style     int
	Angle     float64
	EdgeScale float64
}

// Glyph markers. The edge scale factors keep all markers at a similar
// visual weight.
var (
	MarkerCircle   = Marker{Symbol: "o", EdgeScale: 1.0}
	MarkerPentagon = Marker{Symbol: "p", EdgeScale: 1.1}
	MarkerHexagon  = Marker{Symbol: "h", EdgeScale: 1.1}
	MarkerSquare   = Marker{Symbol: "s", EdgeScale: 0.9}
	MarkerDiamond  = Marker{Symbol: "D", EdgeScale: 0.85}
	MarkerStar     = Marker{Symbol: "*", EdgeScale: 1.6}
)

// PolygonMarker returns a rotated polygon or star marker.
func PolygonMarker(sides, style int, angle, edgeScale float64) Marker {
	return Marker{Sides: sides, Style: style, Angle: angle, EdgeScale: edgeScale}
}

// String returns the matplotlib notation of the marker, either the
// glyph itself or a "(sides, style, angle)" tuple.
func (m Marker) String() string {
	if m.Symbol != "" {
		return m.Symbol
	}
	if m.Angle == float64(int(m.Angle)) {
		return fmt.Sprintf("(%d, %d, %d)", m.Sides, m.Style, int(m.Angle))
	}
	return fmt.Sprintf("(%d, %d, %g)", m.Sides, m.Style, m.Angle)
}

// LineStyle describes a plotted line.
type LineStyle struct {
	Color Color   `json:"color"`
	Dash  Dash    `json:"linestyle"`
	Width float64 `json:"linewidth"`

	// Alpha is the opacity, 0 transparent to 1 opaque. 0 means unset.
	Alpha float64 `json:"alpha,omitempty"`

	// NoClip disables clipping at the axes, used for spines and markers
	// drawn outside the data range.
	NoClip bool `json:"noclip,omitempty"`
}

// PointStyle describes plotted markers, optionally connected by a line.
// For plain point styles Dash is "none" and Width is 0.
type PointStyle struct {
	Color     Color   `json:"color"`
	Dash      Dash    `json:"linestyle"`
	Width     float64 `json:"linewidth"`
	Marker    Marker  `json:"-"`
	MarkerSym string  `json:"marker"`
	Size      float64 `json:"markersize"`
	EdgeColor Color   `json:"markeredgecolor"`
	EdgeWidth float64 `json:"markeredgewidth"`
	Alpha     float64 `json:"alpha,omitempty"`
}

// FillStyle describes a filled region.
// An empty EdgeColor means the fill has no edge.
type FillStyle struct {
	FaceColor Color   `json:"facecolor"`
	EdgeColor Color   `json:"edgecolor,omitempty"`
	EdgeWidth float64 `json:"linewidth,omitempty"`
	Alpha     float64 `json:"alpha,omitempty"`
}

// Variant selects a substyle of a series.
type Variant int

// Substyle variants. Lines have Plain and Minor; points and linepoints
// have Plain, Circ, and Minor; fills have Plain, Solid, and Alpha.
const (
	Plain Variant = iota
	Circ          // circular markers
	Minor         // thinner lines, smaller markers
	Solid         // fill without edge
	Alphaed       // transparent fill without edge
)

// suffix returns the style-name suffix of the variant ("", "c", "m",
// "s", or "a").
func (v Variant) suffix() string {
	switch v {
	case Circ:
		return "c"
	case Minor:
		return "m"
	case Solid:
		return "s"
	case Alphaed:
		return "a"
	default:
		return ""
	}
}

// StyleSet is a collection of named plot styles. Each series name (e.g.
// "A1" or "Female") can have line, point, linepoint, and fill styles in
// several variants. The zero value is not usable; use NewStyleSet.
type StyleSet struct {
	// Names lists all series names in the order they were added.
	Names []string

	Line      map[string]LineStyle
	LineMinor map[string]LineStyle

	Point      map[string]PointStyle
	PointCirc  map[string]PointStyle
	PointMinor map[string]PointStyle

	LinePoint      map[string]PointStyle
	LinePointCirc  map[string]PointStyle
	LinePointMinor map[string]PointStyle

	Fill      map[string]FillStyle
	FillSolid map[string]FillStyle
	FillAlpha map[string]FillStyle
}

// NewStyleSet returns an empty style set.
func NewStyleSet() *StyleSet {
	return &StyleSet{
		Line:           make(map[string]LineStyle),
		LineMinor:      make(map[string]LineStyle),
		Point:          make(map[string]PointStyle),
		PointCirc:      make(map[string]PointStyle),
		PointMinor:     make(map[string]PointStyle),
		LinePoint:      make(map[string]PointStyle),
		LinePointCirc:  make(map[string]PointStyle),
		LinePointMinor: make(map[string]PointStyle),
		Fill:           make(map[string]FillStyle),
		FillSolid:      make(map[string]FillStyle),
		FillAlpha:      make(map[string]FillStyle),
	}
}

// SeriesNames expands a pattern containing a "%d" verb into n numbered
// names, starting at 1. SeriesNames("Reds%d", 3) returns
// ["Reds1", "Reds2", "Reds3"]. Without a "%" the pattern is repeated.
func SeriesNames(pattern string, n int) []string {
	names := make([]string, n)
	for k := range names {
		if strings.Contains(pattern, "%") {
			names[k] = fmt.Sprintf(pattern, k+1)
		} else {
			names[k] = pattern
		}
	}
	return names
}

// pick indexes a broadcastable argument slice: a single element applies
// to every generated style, otherwise element k is used. Slices shorter
// than the series count repeat their last element.
func pick[T any](xs []T, k int) T {
	var zero T
	switch {
	case len(xs) == 0:
		return zero
	case k < len(xs):
		return xs[k]
	default:
		return xs[len(xs)-1]
	}
}

// seriesCount returns the number of styles to generate, the longest of
// the argument slices.
func seriesCount(lens ...int) int {
	n := 1
	for _, l := range lens {
		if l > n {
			n = l
		}
	}
	return n
}

// addName registers a series name, keeping Names free of duplicates.
func (s *StyleSet) addName(name string) {
	for _, n := range s.Names {
		if n == name {
			return
		}
	}
	s.Names = append(s.Names, name)
}

// AddLineStyles generates line styles for the given series names.
// colors, dashes, and widths broadcast: a single element applies to all
// names. Valid variants are Plain and Minor. The optional mods are
// applied to each generated style, e.g. to set Alpha or NoClip.
func (s *StyleSet) AddLineStyles(names []string, v Variant, colors []Color,
	dashes []Dash, widths []float64, mods ...func(*LineStyle)) {
	dest := s.Line
	if v == Minor {
		dest = s.LineMinor
	}
	n := seriesCount(len(names), len(colors), len(dashes), len(widths))
	for k := 0; k < n; k++ {
		name := pick(names, k)
		s.addName(name)
		ls := LineStyle{
			Color: pick(colors, k),
			Dash:  pick(dashes, k),
			Width: pick(widths, k),
		}
		for _, mod := range mods {
			mod(&ls)
		}
		dest[name] = ls
	}
}

// PointDest selects where AddPointStyles stores generated styles.
type PointDest int

// Destinations for point styles: markers alone, or markers connected
// by lines.
const (
	Points PointDest = iota
	LinePoints
)

// AddPointStyles generates point or linepoint styles for the given
// series names. The marker edge color is derived from the face color
// with Lighter(edgeLight): 0 gives a white edge, 1 the face color, and
// 2 a black edge. All slice arguments broadcast. Valid variants are
// Plain, Circ, and Minor.
func (s *StyleSet) AddPointStyles(dest PointDest, names []string, v Variant,
	colors []Color, dashes []Dash, widths []float64, markers []Marker,
	sizes, edgeLight, edgeWidths []float64, mods ...func(*PointStyle)) {
	var m map[string]PointStyle
	switch {
	case dest == Points && v == Circ:
		m = s.PointCirc
	case dest == Points && v == Minor:
		m = s.PointMinor
	case dest == Points:
		m = s.Point
	case v == Circ:
		m = s.LinePointCirc
	case v == Minor:
		m = s.LinePointMinor
	default:
		m = s.LinePoint
	}
	n := seriesCount(len(names), len(colors), len(dashes), len(widths),
		len(markers), len(sizes), len(edgeLight), len(edgeWidths))
	for k := 0; k < n; k++ {
		name := pick(names, k)
		s.addName(name)
		c := pick(colors, k)
		mk := pick(markers, k)
		ps := PointStyle{
			Color:     c,
			Dash:      pick(dashes, k),
			Width:     pick(widths, k),
			Marker:    mk,
			MarkerSym: mk.String(),
			Size:      mk.EdgeScale * pick(sizes, k),
			EdgeColor: c.Lighter(pick(edgeLight, k)),
			EdgeWidth: pick(edgeWidths, k),
		}
		for _, mod := range mods {
			mod(&ps)
		}
		m[name] = ps
	}
}

// AddLinePointStyles generates linepoint styles, markers connected by
// lines, for the given series names. Shorthand for AddPointStyles with
// the LinePoints destination.
func (s *StyleSet) AddLinePointStyles(names []string, v Variant,
	colors []Color, dashes []Dash, widths []float64, markers []Marker,
	sizes, edgeLight, edgeWidths []float64, mods ...func(*PointStyle)) {
	s.AddPointStyles(LinePoints, names, v, colors, dashes, widths,
		markers, sizes, edgeLight, edgeWidths, mods...)
}

// AddFillStyles generates the three fill variants for the given series
// names: plain with an edge, solid without edge, and a transparent fill
// without edge. The edge color of the plain variant is derived from the
// face color with Lighter(edgeLight). All slice arguments broadcast.
func (s *StyleSet) AddFillStyles(names []string, colors []Color,
	edgeLight, edgeWidths, alphas []float64) {
	n := seriesCount(len(names), len(colors), len(edgeLight),
		len(edgeWidths), len(alphas))
	for k := 0; k < n; k++ {
		name := pick(names, k)
		s.addName(name)
		c := pick(colors, k)
		s.Fill[name] = FillStyle{
			FaceColor: c,
			EdgeColor: c.Lighter(pick(edgeLight, k)),
			EdgeWidth: pick(edgeWidths, k),
		}
		s.FillSolid[name] = FillStyle{FaceColor: c}
		s.FillAlpha[name] = FillStyle{FaceColor: c, Alpha: pick(alphas, k)}
	}
}

// StyleOptions tune the styles generated by PlotStyles.
type StyleOptions struct {
	// LWThick is the line width for major line and linepoint styles.
	LWThick float64

	// LWThin is the line width for minor styles.
	LWThin float64

	// MarkerLarge is the marker size for major point styles.
	MarkerLarge float64

	// MarkerSmall is the marker size for minor point styles.
	MarkerSmall float64

	// MarkerEdge sets marker and fill edge colors via Lighter:
	// 0 white, 1 face color, 2 black.
	MarkerEdge float64

	// MarkerEdgeWidth is the line width of marker and fill edges.
	MarkerEdgeWidth float64

	// FillAlpha is the opacity of the transparent fill variant.
	FillAlpha float64
}

// DefaultStyleOptions returns the options used when a zero StyleOptions
// is passed to PlotStyles.
func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		LWThick:         2.0,
		LWThin:          1.0,
		MarkerLarge:     7.5,
		MarkerSmall:     5.5,
		MarkerEdge:      0.5,
		MarkerEdgeWidth: 1.0,
		FillAlpha:       0.4,
	}
}

// PlotStyles generates the full style grid for the given series: major
// and minor line styles, major, circular, and minor point and linepoint
// styles, and the three fill variants. colors, dashes, and markers
// broadcast against names.
func (s *StyleSet) PlotStyles(names []string, colors []Color, dashes []Dash,
	markers []Marker, opt StyleOptions) {
	if opt == (StyleOptions{}) {
		opt = DefaultStyleOptions()
	}
	circ := []Marker{MarkerCircle}

	// major line, point and linepoint styles
	s.AddLineStyles(names, Plain, colors, dashes, []float64{opt.LWThick})
	s.AddPointStyles(Points, names, Plain, colors, []Dash{DashNone},
		[]float64{0}, markers, []float64{opt.MarkerLarge},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})
	s.AddLinePointStyles(names, Plain, colors, dashes,
		[]float64{opt.LWThick}, markers, []float64{opt.MarkerLarge},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})

	// circular point and linepoint styles
	s.AddPointStyles(Points, names, Circ, colors, []Dash{DashNone},
		[]float64{0}, circ, []float64{opt.MarkerLarge},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})
	s.AddLinePointStyles(names, Circ, colors, dashes,
		[]float64{opt.LWThick}, circ, []float64{opt.MarkerLarge},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})

	// minor line, point and linepoint styles
	s.AddLineStyles(names, Minor, colors, dashes, []float64{opt.LWThin})
	s.AddPointStyles(Points, names, Minor, colors, []Dash{DashNone},
		[]float64{0}, circ, []float64{opt.MarkerSmall},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})
	s.AddLinePointStyles(names, Minor, colors, dashes,
		[]float64{opt.LWThin}, circ, []float64{opt.MarkerSmall},
		[]float64{opt.MarkerEdge}, []float64{opt.MarkerEdgeWidth})

	// fill styles
	s.AddFillStyles(names, colors, []float64{opt.MarkerEdge},
		[]float64{opt.MarkerEdgeWidth}, []float64{opt.FillAlpha})
}

// HasSeries reports whether any style exists under the given series name.
func (s *StyleSet) HasSeries(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}
