package core

import (
	"strings"
)

// Cell is one character of a Screen with its colours.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: the Raster renderer draws
// into a Screen while the platform handles actual display.
type Screen struct {
	width  int
	height int
	bg     Color
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions and
// background colour.
func NewScreen(width, height int, bg Color) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		bg:     bg,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Background returns the colour blank cells are painted with.
func (s *Screen) Background() Color {
	return s.bg
}

// Clear fills the entire screen with blank background cells.
func (s *Screen) Clear() {
	blank := Cell{Rune: ' ', FG: s.bg, BG: s.bg}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places a rune at the given position, keeping the cell's colours.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// Cell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: s.bg, BG: s.bg}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.Cell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground colour. Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, FG: fg, BG: s.bg})
		i++
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
