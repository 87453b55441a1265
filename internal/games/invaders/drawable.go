package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Pixel is a cell offset relative to an entity's anchor.
type Pixel struct {
	X, Y int
}

// RenderData is everything a renderer needs to draw one entity.
type RenderData struct {
	Pipeline *core.Pipeline // Bound before drawing; nil for batched entities
	Cells    []Pixel        // Absolute grid cells to fill
	Text     string
	TextPos  core.Pos
}

// Drawable is implemented by the closed set of entities the game draws:
// Projectile, Enemy, Explosion, Player, FpsCounter and Score.
type Drawable interface {
	RenderData() RenderData
	drawable()
}

func (Projectile) drawable()  {}
func (Enemy) drawable()       {}
func (Explosion) drawable()   {}
func (*Player) drawable()     {}
func (*FpsCounter) drawable() {}
func (*Score) drawable()      {}

// Draw renders a single drawable.
func Draw(r core.Renderer, d Drawable) {
	data := d.RenderData()
	if data.Pipeline != nil {
		r.Bind(*data.Pipeline)
	}
	for _, c := range data.Cells {
		r.DrawRect(core.CellPos(c.X, c.Y), core.CellSize, core.CellSize)
	}
	if data.Text != "" {
		r.DrawText(data.Text, data.TextPos)
	}
}

// DrawBatch binds p once and draws every item with it.
func DrawBatch[T Drawable](r core.Renderer, p core.Pipeline, items []T) {
	r.Bind(p)
	for _, it := range items {
		Draw(r, it)
	}
}

// offset translates sprite pixels to absolute cells.
func offset(pixels []Pixel, x, y int) []Pixel {
	cells := make([]Pixel, len(pixels))
	for i, p := range pixels {
		cells[i] = Pixel{X: x + p.X, Y: y + p.Y}
	}
	return cells
}

func fillPipeline(c core.Color) core.Pipeline {
	return core.Pipeline{FillColor: &c}
}

func textPipeline(c core.Color, f core.Font) core.Pipeline {
	return core.Pipeline{FillColor: &c, Font: &f}
}
