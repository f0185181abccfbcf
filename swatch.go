package plottools

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// swatch block shown for each series color.
const swatchBlock = "██████"

// RenderSwatches renders all style series of a preset as colored
// terminal swatches: name, color block, hex value, and marker glyph.
// It replaces plotting demo figures when only a quick look at the
// palette is needed.
func RenderSwatches(st *Style) string {
	var b strings.Builder
	title := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)
	b.WriteString(title.Render(st.Name+" style") + "\n")
	for _, name := range st.Set.Names {
		ls, ok := st.Set.Line[name]
		if !ok {
			continue
		}
		block := lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(ls.Color))).
			Render(swatchBlock)
		marker := ""
		if ps, ok := st.Set.Point[name]; ok {
			marker = ps.MarkerSym
		}
		fmt.Fprintf(&b, "%-8s %s %s  %s\n",
			name, block, faint.Render(string(ls.Color)), marker)
	}
	return b.String()
}

// RenderPalette renders the named colors of a palette as terminal
// swatches in sorted name order.
func RenderPalette(p Palette) string {
	var b strings.Builder
	faint := lipgloss.NewStyle().Faint(true)
	for _, name := range p.Names() {
		c := p[name]
		block := lipgloss.NewStyle().
			Foreground(lipgloss.Color(string(c))).
			Render(swatchBlock)
		fmt.Fprintf(&b, "%-12s %s %s\n", name, block, faint.Render(string(c)))
	}
	return b.String()
}
