package invaders

import (
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// EnemyKind selects an enemy's sprite and bounding box.
type EnemyKind int

const (
	Star EnemyKind = iota
	Thin
	Arrow
)

var enemyKinds = [...]EnemyKind{Star, Thin, Arrow}

// Sprite pixels per kind.
var enemySprites = map[EnemyKind][]Pixel{
	Star:  {{0, 0}, {2, 0}, {1, 1}, {0, 2}, {2, 2}},
	Thin:  {{0, 0}, {0, 1}},
	Arrow: {{0, 0}, {2, 0}, {1, 1}},
}

// String returns the kind's name.
func (k EnemyKind) String() string {
	switch k {
	case Star:
		return "star"
	case Thin:
		return "thin"
	case Arrow:
		return "arrow"
	default:
		return "unknown"
	}
}

// Box returns the bounding box used for collision and removal.
func (k EnemyKind) Box() (w, h int) {
	switch k {
	case Thin:
		return 1, 2
	case Arrow:
		return 3, 2
	default:
		return 3, 3
	}
}

// Pixels returns the sprite pixel offsets.
func (k EnemyKind) Pixels() []Pixel {
	return enemySprites[k]
}

// RandomKind picks a kind uniformly.
func RandomKind(rng *rand.Rand) EnemyKind {
	return enemyKinds[rng.Intn(len(enemyKinds))]
}

// Enemy descends one row per enemy tick until it is shot or breaches the bottom.
type Enemy struct {
	X, Y int
	Kind EnemyKind
}

// NewEnemy creates an enemy at the top of column x.
func NewEnemy(x int, kind EnemyKind) Enemy {
	return Enemy{X: x, Kind: kind}
}

// SpawnEnemy creates an enemy at a random column that keeps its box inside
// the grid. Single-column enemies keep a one-cell margin on both edges.
func SpawnEnemy(rng *rand.Rand, kind EnemyKind) Enemy {
	w, _ := kind.Box()
	if w == 1 {
		return NewEnemy(1+rng.Intn(core.GridW-2), kind)
	}
	return NewEnemy(rng.Intn(core.GridW-w+1), kind)
}

// Tick moves the enemy one row down.
func (e *Enemy) Tick() {
	e.Y++
}

// Rect returns the enemy's bounding box on the grid.
func (e Enemy) Rect() core.Rect {
	w, h := e.Kind.Box()
	return core.NewRect(e.X, e.Y, w, h)
}

// NeedsRemoval reports whether the enemy has breached the bottom of the grid.
func (e Enemy) NeedsRemoval() bool {
	return e.Rect().Bottom() > core.GridH
}

// IntersectsWith tests a grid point against the bounding box, not the sprite.
func (e Enemy) IntersectsWith(x, y int) bool {
	return e.Rect().Contains(x, y)
}

// RenderData implements Drawable.
func (e Enemy) RenderData() RenderData {
	return RenderData{Cells: offset(e.Kind.Pixels(), e.X, e.Y)}
}
