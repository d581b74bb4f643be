package core

// Rect is an axis-aligned box in world pixels
// As an entity's bounds it is an offset and size relative to the entity position
type Rect struct {
	X, Y float64
	W, H float64
}

// At returns the box translated by the given position
func (r Rect) At(x, y float64) Rect {
	return Rect{X: r.X + x, Y: r.Y + y, W: r.W, H: r.H}
}

// Center returns the box midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Empty reports whether the box has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
