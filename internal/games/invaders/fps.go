package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// FpsInterval is how often the FPS label is refreshed, in ms.
const FpsInterval = 500

// FpsPos is where the FPS label is drawn.
var FpsPos = core.Pos{X: 0, Y: 20}

// FpsCounter shows the frame rate measured from consecutive update timestamps.
type FpsCounter struct {
	last     uint64
	timer    *core.Timer
	label    string
	pipeline core.Pipeline
}

// NewFpsCounter creates a counter with an empty label.
func NewFpsCounter(color core.Color) *FpsCounter {
	return &FpsCounter{
		timer:    core.Interval(0, FpsInterval),
		pipeline: textPipeline(color, core.Monospace(20)),
	}
}

// Update records a frame at ts, refreshing the label when the timer fires.
func (f *FpsCounter) Update(ts uint64) {
	if _, fired := f.timer.Fire(ts); fired && ts > f.last {
		f.label = fmt.Sprintf("FPS: %.2f", 1000/float64(ts-f.last))
	}
	f.last = ts
}

// Label returns the current label.
func (f *FpsCounter) Label() string {
	return f.label
}

// RenderData implements Drawable.
func (f *FpsCounter) RenderData() RenderData {
	return RenderData{Pipeline: &f.pipeline, Text: f.label, TextPos: FpsPos}
}
