package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rescue/internal/core"
)

// cellStyles holds one lipgloss style per palette colour.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		styles[c] = st
	}
	return styles
}()

func cellStyle(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns the screen buffer into styled terminal text. Each row
// is split into spans of one colour, so every span costs one escape
// sequence instead of one per cell.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			out.WriteByte('\n')
		}
		span.Reset()
		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				out.WriteString(cellStyle(color).Render(span.String()))
				span.Reset()
				color = cell.Color
			}
			span.WriteRune(cell.Rune)
		}
		if span.Len() > 0 {
			out.WriteString(cellStyle(color).Render(span.String()))
		}
	}
	return out.String()
}
