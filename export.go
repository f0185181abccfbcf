package plottools

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// mplColor formats a color for a matplotlib rc file. The '#' would
// start a comment there, so hex colors are written bare; an empty
// color becomes "none".
func mplColor(c Color) string {
	if c == "" {
		return "none"
	}
	return strings.TrimPrefix(string(c), "#")
}

// mplFloat formats a float without trailing zeros.
func mplFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", f), "0"), ".")
}

// LatexPreamble expands preamble shorthand: lines of the form "p:xxx"
// become "\usepackage{xxx}", all other lines pass through.
func LatexPreamble(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "p:") {
			out[i] = `\usepackage{` + line[2:] + `}`
		} else {
			out[i] = line
		}
	}
	return out
}

// WriteStyleSheet writes the layout parameters as a matplotlib style
// sheet (.mplstyle). Figure scripts load it with
// plt.style.use("paper.mplstyle") so all layout settings stay in this
// one central place.
func WriteStyleSheet(w io.Writer, name string, p PlotParams) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s style, generated by plottools\n", name)

	fmt.Fprintf(&b, "figure.facecolor: %s\n", mplColor(p.FigColor))
	if p.FontFamily != "" {
		fmt.Fprintf(&b, "font.family: %s\n", p.FontFamily)
	}
	fmt.Fprintf(&b, "font.size: %s\n", mplFloat(p.FontSize))
	fmt.Fprintf(&b, "xtick.labelsize: %s\n", p.LabelSize)
	fmt.Fprintf(&b, "ytick.labelsize: %s\n", p.LabelSize)
	fmt.Fprintf(&b, "xtick.direction: %s\n", p.TickDir)
	fmt.Fprintf(&b, "ytick.direction: %s\n", p.TickDir)
	fmt.Fprintf(&b, "xtick.major.size: %s\n", mplFloat(p.TickSize))
	fmt.Fprintf(&b, "ytick.major.size: %s\n", mplFloat(p.TickSize))
	fmt.Fprintf(&b, "xtick.minor.size: %s\n", mplFloat(0.6*p.TickSize))
	fmt.Fprintf(&b, "ytick.minor.size: %s\n", mplFloat(0.6*p.TickSize))
	fmt.Fprintf(&b, "legend.fontsize: %s\n", p.LegendSize)

	if p.Grid.Color != "" {
		fmt.Fprintf(&b, "grid.color: %s\n", mplColor(p.Grid.Color))
		fmt.Fprintf(&b, "grid.linestyle: %s\n", p.Grid.Dash)
		fmt.Fprintf(&b, "grid.linewidth: %s\n", mplFloat(p.Grid.Width))
	}
	fmt.Fprintf(&b, "axes.facecolor: %s\n", mplColor(p.AxesColor))
	if p.Spine.Color != "" {
		fmt.Fprintf(&b, "axes.edgecolor: %s\n", mplColor(p.Spine.Color))
		fmt.Fprintf(&b, "axes.linewidth: %s\n", mplFloat(p.Spine.Width))
	}

	if len(p.ColorCycle) > 0 {
		quoted := make([]string, len(p.ColorCycle))
		for i, c := range p.ColorCycle {
			quoted[i] = "'" + mplColor(c) + "'"
		}
		fmt.Fprintf(&b, "axes.prop_cycle: cycler('color', [%s])\n",
			strings.Join(quoted, ", "))
	}

	if p.FigureFormat != "" {
		fmt.Fprintf(&b, "savefig.format: %s\n", p.FigureFormat)
	}
	if p.Latex {
		fmt.Fprintf(&b, "text.usetex: True\n")
		if len(p.Preamble) > 0 {
			fmt.Fprintf(&b, "text.latex.preamble: %s\n",
				strings.Join(LatexPreamble(p.Preamble), " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// styleKeys flattens a style set into the classic style names: "ls" +
// series + variant suffix for lines, "ps" / "lps" for point and
// linepoint styles, and "fs" for fills. A figure script does
// plt.plot(x, y, **styles["lsA1"]).
func styleKeys(s *StyleSet) map[string]any {
	keys := make(map[string]any)
	for name, st := range s.Line {
		keys["ls"+name] = st
	}
	for name, st := range s.LineMinor {
		keys["ls"+name+"m"] = st
	}
	for name, st := range s.Point {
		keys["ps"+name] = st
	}
	for name, st := range s.PointCirc {
		keys["ps"+name+"c"] = st
	}
	for name, st := range s.PointMinor {
		keys["ps"+name+"m"] = st
	}
	for name, st := range s.LinePoint {
		keys["lps"+name] = st
	}
	for name, st := range s.LinePointCirc {
		keys["lps"+name+"c"] = st
	}
	for name, st := range s.LinePointMinor {
		keys["lps"+name+"m"] = st
	}
	for name, st := range s.Fill {
		keys["fs"+name] = st
	}
	for name, st := range s.FillSolid {
		keys["fs"+name+"s"] = st
	}
	for name, st := range s.FillAlpha {
		keys["fs"+name+"a"] = st
	}
	return keys
}

// WriteStylesJSON writes all styles of the set as a JSON object keyed
// by the classic style names (lsA1, psB2c, fsC3a, ...). Keys are
// emitted in sorted order.
func WriteStylesJSON(w io.Writer, s *StyleSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(styleKeys(s))
}

// Lookup resolves a classic style name like "lsA1m" or "psFemale" to
// its style value. The second return is false if no such style exists.
func (s *StyleSet) Lookup(key string) (any, bool) {
	v, ok := styleKeys(s)[key]
	return v, ok
}
