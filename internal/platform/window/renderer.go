package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	// ScreenW and ScreenH are the logical surface size in pixels.
	ScreenW = core.GridW * core.CellSize
	ScreenH = core.GridH * core.CellSize

	// debug font glyph metrics
	glyphW = 6
	glyphH = 16
)

// Renderer draws onto an Ebitengine image. The target is swapped in on
// every Draw call.
type Renderer struct {
	target  *ebiten.Image
	bg      color.RGBA
	state   core.PipelineState
	scratch *ebiten.Image
}

// NewRenderer creates a renderer clearing to bg.
func NewRenderer(bg core.Color) *Renderer {
	return &Renderer{
		bg:    rgba(bg),
		state: core.DefaultPipelineState(),
	}
}

// SetTarget sets the image subsequent draw calls paint onto.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Clear fills the whole target with the background color.
func (r *Renderer) Clear() {
	if r.target == nil {
		return
	}
	r.target.Fill(r.bg)
}

// Bind applies a pipeline to subsequent draw calls.
func (r *Renderer) Bind(p core.Pipeline) {
	r.state.Bind(p)
}

// DrawRect fills a rectangle with the bound fill color.
func (r *Renderer) DrawRect(pos core.Pos, w, h float64) {
	if r.target == nil {
		return
	}
	vector.FillRect(r.target, float32(pos.X), float32(pos.Y), float32(w), float32(h), rgba(r.state.Fill), false)
}

// DrawText draws text with its baseline at pos using the debug font,
// scaled to the bound font size and tinted with the bound fill color.
func (r *Renderer) DrawText(text string, pos core.Pos) {
	if r.target == nil || text == "" {
		return
	}
	if r.scratch == nil {
		r.scratch = ebiten.NewImage(ScreenW, glyphH)
	}
	r.scratch.Clear()
	ebitenutil.DebugPrintAt(r.scratch, text, 0, 0)

	w := min(len(text)*glyphW, ScreenW)
	src := r.scratch.SubImage(image.Rect(0, 0, w, glyphH)).(*ebiten.Image)

	scale := float64(r.state.Font.Size) / glyphH
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(pos.X, pos.Y-float64(r.state.Font.Size)*0.8)
	op.ColorScale.ScaleWithColor(rgba(r.state.Fill))
	r.target.DrawImage(src, op)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
