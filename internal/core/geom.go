// Package core provides fundamental types and utilities for the invaders game.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

// Virtual grid dimensions. Entities live on an 80x60 grid of cells; every
// cell is drawn as a CellSize x CellSize block of screen units.
const (
	GridW    = 80
	GridH    = 60
	CellSize = 10
)

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampX restricts x to the horizontal extent of the grid.
func ClampX(x int) int {
	return Clamp(x, 0, GridW-1)
}

// ClampY restricts y to the vertical extent of the grid.
func ClampY(y int) int {
	return Clamp(y, 0, GridH-1)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
