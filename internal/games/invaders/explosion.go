package invaders

// ExplosionLifetime is the last progress value an explosion is shown with.
const ExplosionLifetime = 5

var explosionFrames = [2][]Pixel{
	{{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
	{{1, 0}, {0, 1}, {2, 1}, {1, 2}},
}

// Explosion is the short animation left behind by a kill.
type Explosion struct {
	X, Y     int
	Progress int
}

// NewExplosion creates an explosion at the given cell.
func NewExplosion(x, y int) Explosion {
	return Explosion{X: x, Y: y}
}

// Tick advances the animation.
func (x *Explosion) Tick() {
	x.Progress++
}

// NeedsRemoval reports whether the animation has finished.
func (x Explosion) NeedsRemoval() bool {
	return x.Progress > ExplosionLifetime
}

// Frame returns the current animation frame, alternating by progress parity.
func (x Explosion) Frame() []Pixel {
	return explosionFrames[x.Progress%2]
}

// RenderData implements Drawable.
func (x Explosion) RenderData() RenderData {
	return RenderData{Cells: offset(x.Frame(), x.X, x.Y)}
}
