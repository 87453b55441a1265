package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ScorePos is where the score label is drawn.
var ScorePos = core.Pos{X: 600, Y: 20}

// Score is a signed running total with a cached label.
type Score struct {
	value  int
	name   string
	label  string
	pos    core.Pos
	normal core.Pipeline
	bad    core.Pipeline
}

// NewScore creates a zero score labelled with name. The bad colour is used
// while the value is negative.
func NewScore(name string, color, badColor core.Color) *Score {
	font := core.Monospace(20)
	s := &Score{
		name:   name,
		pos:    ScorePos,
		normal: textPipeline(color, font),
		bad:    textPipeline(badColor, font),
	}
	s.refresh()
	return s
}

// Add adds delta (possibly negative) to the score.
func (s *Score) Add(delta int) {
	s.value += delta
	s.refresh()
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// Label returns the display string "{name}: {value}".
func (s *Score) Label() string {
	return s.label
}

func (s *Score) refresh() {
	s.label = fmt.Sprintf("%s: %d", s.name, s.value)
}

// RenderData implements Drawable.
func (s *Score) RenderData() RenderData {
	p := &s.normal
	if s.value < 0 {
		p = &s.bad
	}
	return RenderData{Pipeline: p, Text: s.label, TextPos: s.pos}
}
