package vmath

import "github.com/lixenwraith/ferris-fighter/core"

// Overlap tests two world-space boxes for intersection
// Boxes are closed-open: touching edges do not overlap, empty boxes never overlap
func Overlap(a, b core.Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// ClampInto returns the position shift that keeps box inside area on both axes
// A box larger than the area is aligned to the area's origin
func ClampInto(box, area core.Rect) (dx, dy float64) {
	if box.X+box.W > area.X+area.W {
		dx = area.X + area.W - (box.X + box.W)
	}
	if box.X+dx < area.X {
		dx = area.X - box.X
	}
	if box.Y+box.H > area.Y+area.H {
		dy = area.Y + area.H - (box.Y + box.H)
	}
	if box.Y+dy < area.Y {
		dy = area.Y - box.Y
	}
	return dx, dy
}
