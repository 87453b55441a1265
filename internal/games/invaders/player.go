package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Player limits and layout.
const (
	PlayerMaxX = core.GridW - 3 // Leaves room for the 3-wide sprite
	PlayerY    = 57
)

var playerSprite = []Pixel{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}}

// Player moves along the bottom row and fires projectiles. Movement and
// shooting are each rate limited by their own timer: with no timer armed,
// input acts immediately and arms one; while armed, input acts only when
// the timer fires, and the timer is dropped once input stops.
type Player struct {
	X int

	movePeriod  uint64
	shootPeriod uint64
	moveTimer   *core.Timer
	shootTimer  *core.Timer
	pipeline    core.Pipeline
}

// NewPlayer creates a player at the left edge.
func NewPlayer(movePeriod, shootPeriod uint64, color core.Color) *Player {
	return &Player{
		movePeriod:  movePeriod,
		shootPeriod: shootPeriod,
		pipeline:    fillPipeline(color),
	}
}

// Moving reports whether the movement timer is armed.
func (p *Player) Moving() bool {
	return p.moveTimer != nil
}

// Shooting reports whether the shoot timer is armed.
func (p *Player) Shooting() bool {
	return p.shootTimer != nil
}

// Update applies input at ts and returns projectiles with any newly fired
// ones appended.
func (p *Player) Update(ts uint64, in core.InputState, projectiles []Projectile) []Projectile {
	p.updateMovement(ts, in)
	return p.updateShooting(ts, in, projectiles)
}

func (p *Player) updateMovement(ts uint64, in core.InputState) {
	if p.moveTimer == nil {
		if p.move(in) {
			p.moveTimer = core.Interval(ts, p.movePeriod)
		}
		return
	}

	idle, fired := core.Check(p.moveTimer, ts, func(dev uint64) bool {
		moved := false
		for range core.Catchup(dev, p.movePeriod) {
			moved = p.move(in)
		}
		return !moved
	})
	if fired && idle {
		p.moveTimer = nil
	}
}

func (p *Player) updateShooting(ts uint64, in core.InputState, projectiles []Projectile) []Projectile {
	if p.shootTimer == nil {
		if in.Shoot() {
			projectiles = append(projectiles, NewProjectile(p.X+1))
			p.shootTimer = core.Interval(ts, p.shootPeriod)
		}
		return projectiles
	}

	released, fired := core.Check(p.shootTimer, ts, func(uint64) bool {
		if in.Shoot() {
			projectiles = append(projectiles, NewProjectile(p.X+1))
			return false
		}
		return true
	})
	if fired && released {
		p.shootTimer = nil
	}
	return projectiles
}

// move steps one column toward the requested side and reports whether it
// did. Opposing requests cancel out.
func (p *Player) move(in core.InputState) bool {
	switch {
	case in.Left() && in.Right():
		return false
	case in.Left() && p.X > 0:
		p.X--
		return true
	case in.Right() && p.X < PlayerMaxX:
		p.X++
		return true
	default:
		return false
	}
}

// RenderData implements Drawable.
func (p *Player) RenderData() RenderData {
	return RenderData{
		Pipeline: &p.pipeline,
		Cells:    offset(playerSprite, p.X, PlayerY),
	}
}
