package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps colour pairs to lipgloss styles.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if style, ok := c[key]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[key] = style
	return style
}

var styles = styleCache{}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			start := s.Cell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Cell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.FG, start.BG).Render(run.String()))
		}
	}
	return sb.String()
}
