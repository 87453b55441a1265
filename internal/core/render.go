package core

// Pos is a position in screen units (virtual cell coordinate * CellSize).
type Pos struct {
	X, Y float64
}

// CellPos converts a grid cell coordinate into its screen position.
func CellPos(x, y int) Pos {
	return Pos{X: float64(x * CellSize), Y: float64(y * CellSize)}
}

// Font describes the text face used by DrawText.
type Font struct {
	Size   int    // Height in screen units
	Family string // Preferred family; renderers may substitute
}

// Monospace returns the monospace font used for on-screen labels.
func Monospace(size int) Font {
	return Font{Size: size, Family: "Courier New"}
}

// Pipeline is a batch configuration bound before a group of draw calls.
// Nil fields leave the renderer's current setting untouched.
type Pipeline struct {
	FillColor *Color
	Font      *Font
}

// PipelineState is the effective, fully resolved renderer state.
type PipelineState struct {
	Fill Color
	Font Font
}

// DefaultPipelineState is the state a renderer starts with.
func DefaultPipelineState() PipelineState {
	return PipelineState{Fill: ColorBlack, Font: Monospace(16)}
}

// Bind merges p into the state. Unset fields are sticky.
func (s *PipelineState) Bind(p Pipeline) {
	if p.FillColor != nil {
		s.Fill = *p.FillColor
	}
	if p.Font != nil {
		s.Font = *p.Font
	}
}

// Renderer is the drawing surface the game renders into. Frontends provide
// implementations; the game never touches a real display.
type Renderer interface {
	// Clear wipes the surface to its background.
	Clear()
	// DrawRect fills a rectangle with the bound fill colour.
	DrawRect(pos Pos, w, h float64)
	// DrawText draws text with its baseline at pos using the bound font and fill colour.
	DrawText(text string, pos Pos)
	// Bind applies a pipeline to subsequent draw calls.
	Bind(p Pipeline)
}
