package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:         lipgloss.Color("1"),
	core.ColorGreen:       lipgloss.Color("2"),
	core.ColorYellow:      lipgloss.Color("3"),
	core.ColorCyan:        lipgloss.Color("6"),
	core.ColorBrightRed:   lipgloss.Color("9"),
	core.ColorBrightGreen: lipgloss.Color("10"),
	core.ColorGray:        lipgloss.Color("245"),
}

// cellStyle identifies a style run: foreground and background color.
type cellStyle struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a color pair.
func styleFor(cs cellStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if code, ok := colorCodes[cs.fg]; ok {
		style = style.Foreground(code)
	}
	if code, ok := colorCodes[cs.bg]; ok {
		style = style.Background(code)
	}
	if cs.fg == core.ColorBrightRed {
		style = style.Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			start := cellStyle{fg: first.Color, bg: first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if (cellStyle{fg: cell.Color, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = styleFor(start)
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
