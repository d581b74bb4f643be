package components

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/core"
)

// Lifetime is either unbounded or a countdown
// Remaining may go negative within a frame; expiry is observed by culling
type Lifetime struct {
	Bounded   bool
	Remaining time.Duration
	Total     time.Duration
}

// Unbounded returns a lifetime that never expires
func Unbounded() Lifetime {
	return Lifetime{}
}

// BoundedFor returns a countdown lifetime of d
func BoundedFor(d time.Duration) Lifetime {
	return Lifetime{Bounded: true, Remaining: d, Total: d}
}

// Expired reports whether a bounded countdown reached zero
func (l Lifetime) Expired() bool {
	return l.Bounded && l.Remaining <= 0
}

// Expire forces the countdown to zero, turning an unbounded lifetime bounded
func (l *Lifetime) Expire() {
	l.Bounded = true
	l.Remaining = 0
}

// Fraction returns the remaining share of the lifetime in [0, 1]; unbounded is 1
func (l Lifetime) Fraction() float64 {
	if !l.Bounded || l.Total <= 0 {
		if l.Bounded && l.Remaining <= 0 {
			return 0
		}
		return 1
	}
	f := float64(l.Remaining) / float64(l.Total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// Entity is the single simulation unit
// Kind and Bounds are fixed at construction
type Entity struct {
	ID   core.EntityID
	Kind core.Kind
	Name string

	X, Y   float64
	Bounds core.Rect

	HP     int
	Damage int

	Velocity float64 // Speed factor: player px/s, projectile px/s
	Movement Movement
	Lifetime Lifetime

	FireCooldown time.Duration
	Age          time.Duration
	Angle        float64
	Seed         float64
}

// Box returns the collision box in world space
func (e *Entity) Box() core.Rect {
	return e.Bounds.At(e.X, e.Y)
}

// Translate moves the entity by the given offset
func (e *Entity) Translate(dx, dy float64) {
	e.X += dx
	e.Y += dy
}

// Alive reports whether the entity still takes part in collisions
func (e *Entity) Alive() bool {
	return e.HP > 0 && !e.Lifetime.Expired()
}
