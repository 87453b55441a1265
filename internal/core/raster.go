package core

import "math"

// Raster sizes: every terminal cell covers one grid column and two grid rows,
// drawn with half-block glyphs.
const (
	RasterW = GridW
	RasterH = GridH / 2
)

type rasterText struct {
	col, row int
	text     string
	fg       Color
}

// Raster is a Renderer that rasterises screen-unit draw calls onto the
// virtual grid and then flushes them into a terminal Screen.
type Raster struct {
	state PipelineState
	bg    Color
	grid  [GridH][GridW]*Color
	texts []rasterText
}

// NewRaster creates a raster with the given background colour.
func NewRaster(bg Color) *Raster {
	return &Raster{state: DefaultPipelineState(), bg: bg}
}

// State returns the currently bound pipeline state.
func (r *Raster) State() PipelineState {
	return r.state
}

// Clear wipes all filled cells and text.
func (r *Raster) Clear() {
	r.grid = [GridH][GridW]*Color{}
	r.texts = r.texts[:0]
}

// Bind applies a pipeline to subsequent draw calls.
func (r *Raster) Bind(p Pipeline) {
	r.state.Bind(p)
}

// DrawRect fills every grid cell the rectangle overlaps.
func (r *Raster) DrawRect(pos Pos, w, h float64) {
	x0 := int(math.Floor(pos.X / CellSize))
	y0 := int(math.Floor(pos.Y / CellSize))
	x1 := int(math.Ceil((pos.X + w) / CellSize))
	y1 := int(math.Ceil((pos.Y + h) / CellSize))

	fill := r.state.Fill
	for y := Max(y0, 0); y < Min(y1, GridH); y++ {
		for x := Max(x0, 0); x < Min(x1, GridW); x++ {
			r.grid[y][x] = &fill
		}
	}
}

// DrawText places text on the terminal row containing its baseline.
func (r *Raster) DrawText(text string, pos Pos) {
	row := (int(pos.Y) - 1) / (2 * CellSize)
	r.texts = append(r.texts, rasterText{
		col:  int(pos.X) / CellSize,
		row:  Clamp(row, 0, RasterH-1),
		text: text,
		fg:   r.state.Fill,
	})
}

// Filled reports the colour of a grid cell, if any draw call covered it.
func (r *Raster) Filled(x, y int) (Color, bool) {
	if x < 0 || x >= GridW || y < 0 || y >= GridH || r.grid[y][x] == nil {
		return Color{}, false
	}
	return *r.grid[y][x], true
}

// Flush writes the rasterised frame into dst, which should be at least
// RasterW x RasterH. Text is drawn over the blocks.
func (r *Raster) Flush(dst *Screen) {
	dst.Clear()
	for row := 0; row < RasterH; row++ {
		for col := 0; col < RasterW; col++ {
			dst.SetCell(col, row, r.halfBlock(r.grid[2*row][col], r.grid[2*row+1][col]))
		}
	}
	for _, t := range r.texts {
		dst.DrawText(t.col, t.row, t.text, t.fg)
	}
}

func (r *Raster) halfBlock(top, bottom *Color) Cell {
	switch {
	case top != nil && bottom != nil && *top == *bottom:
		return Cell{Rune: '█', FG: *top, BG: r.bg}
	case top != nil && bottom != nil:
		return Cell{Rune: '▀', FG: *top, BG: *bottom}
	case top != nil:
		return Cell{Rune: '▀', FG: *top, BG: r.bg}
	case bottom != nil:
		return Cell{Rune: '▄', FG: *bottom, BG: r.bg}
	default:
		return Cell{Rune: ' ', FG: r.bg, BG: r.bg}
	}
}
