package core

import (
	"strings"
	"testing"
)

func TestRasterDrawRect(t *testing.T) {
	r := NewRaster(ColorWhite)
	red := ColorRed
	r.Bind(Pipeline{FillColor: &red})
	r.DrawRect(CellPos(4, 6), CellSize, CellSize)

	if c, ok := r.Filled(4, 6); !ok || c != ColorRed {
		t.Errorf("Filled(4, 6) = (%v, %v), expected (%v, true)", c, ok, ColorRed)
	}
	if _, ok := r.Filled(5, 6); ok {
		t.Error("DrawRect should not spill into the next column")
	}
	if _, ok := r.Filled(4, 7); ok {
		t.Error("DrawRect should not spill into the next row")
	}

	// Off-grid rectangles are clipped.
	r.DrawRect(Pos{X: -20, Y: 590}, 40, 40)
	if _, ok := r.Filled(0, 59); !ok {
		t.Error("clipped rectangle should still cover (0, 59)")
	}
}

func TestRasterBindIsSticky(t *testing.T) {
	r := NewRaster(ColorWhite)
	gray := ColorGray
	font := Monospace(20)

	r.Bind(Pipeline{FillColor: &gray})
	r.Bind(Pipeline{Font: &font})

	st := r.State()
	if st.Fill != ColorGray {
		t.Errorf("Fill = %v, expected %v to survive a font-only bind", st.Fill, ColorGray)
	}
	if st.Font != font {
		t.Errorf("Font = %+v, expected %+v", st.Font, font)
	}
}

func TestRasterFlushHalfBlocks(t *testing.T) {
	r := NewRaster(ColorWhite)
	black := ColorBlack
	red := ColorRed

	r.Bind(Pipeline{FillColor: &black})
	r.DrawRect(CellPos(0, 0), CellSize, CellSize) // top half of row 0
	r.DrawRect(CellPos(1, 1), CellSize, CellSize) // bottom half of row 0
	r.DrawRect(CellPos(2, 0), CellSize, 2*CellSize)
	r.DrawRect(CellPos(3, 0), CellSize, CellSize)
	r.Bind(Pipeline{FillColor: &red})
	r.DrawRect(CellPos(3, 1), CellSize, CellSize)

	dst := NewScreen(RasterW, RasterH, ColorWhite)
	r.Flush(dst)

	tests := []struct {
		x    int
		want Cell
	}{
		{0, Cell{Rune: '▀', FG: ColorBlack, BG: ColorWhite}},
		{1, Cell{Rune: '▄', FG: ColorBlack, BG: ColorWhite}},
		{2, Cell{Rune: '█', FG: ColorBlack, BG: ColorWhite}},
		{3, Cell{Rune: '▀', FG: ColorBlack, BG: ColorRed}},
		{4, Cell{Rune: ' ', FG: ColorWhite, BG: ColorWhite}},
	}
	for _, tc := range tests {
		if got := dst.Cell(tc.x, 0); got != tc.want {
			t.Errorf("Cell(%d, 0) = %+v, expected %+v", tc.x, got, tc.want)
		}
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(ColorWhite)
	blue := ColorBlue
	r.Bind(Pipeline{FillColor: &blue})
	r.DrawText("Score: 5", Pos{X: 600, Y: 20})

	dst := NewScreen(RasterW, RasterH, ColorWhite)
	r.Flush(dst)

	if row := dst.Row(0); !strings.Contains(row[60:], "Score: 5") {
		t.Errorf("Row(0) = %q, expected score text at column 60", row)
	}
	if dst.Cell(60, 0).FG != ColorBlue {
		t.Errorf("text colour = %v, expected %v", dst.Cell(60, 0).FG, ColorBlue)
	}

	r.Clear()
	r.Flush(dst)
	if strings.TrimSpace(dst.String()) != "" {
		t.Error("Clear should remove text")
	}
}
