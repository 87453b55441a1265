package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// ProjectileSpawnY is the row projectiles start on, just above the player.
const ProjectileSpawnY = 56

// Projectile travels straight up one cell per game tick.
type Projectile struct {
	X, Y   int
	DX, DY int
}

// NewProjectile fires a projectile from column x.
func NewProjectile(x int) Projectile {
	return Projectile{X: x, Y: ProjectileSpawnY, DX: 0, DY: -1}
}

// Tick moves the projectile, clamped to the grid.
func (p *Projectile) Tick() {
	p.X = core.ClampX(p.X + p.DX)
	p.Y = core.ClampY(p.Y + p.DY)
}

// NeedsRemoval reports whether the projectile reached the top row.
func (p Projectile) NeedsRemoval() bool {
	return p.Y == 0
}

// RenderData implements Drawable.
func (p Projectile) RenderData() RenderData {
	return RenderData{Cells: []Pixel{{p.X, p.Y}}}
}
