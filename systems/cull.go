package systems

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
)

// CullSystem removes dying entities at the end of the frame
// It runs last so every earlier system sees this frame's damage and expiry
type CullSystem struct {
	dying []dyingEntity
}

type dyingEntity struct {
	entity *components.Entity
	killed bool // hp reached zero, as opposed to expiry or leaving the playfield
}

// NewCullSystem creates a new cull system
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCull
}

// Update marks, rewards and removes dying entities
func (s *CullSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	field := ctx.Playfield()

	// Mark: force hp to zero so removal below catches every dying entity
	s.dying = s.dying[:0]
	for _, e := range ctx.World.Entities() {
		killed := e.HP <= 0
		if !killed && !e.Lifetime.Expired() && !offscreen(e, field) {
			continue
		}
		e.HP = 0
		s.dying = append(s.dying, dyingEntity{entity: e, killed: killed})
	}

	// Effects are appended with positive hp and survive removal
	kills := ctx.Metrics.Ints.Get(constants.MetricKills)
	for _, d := range s.dying {
		e := d.entity
		if fx := NewDeathEffect(e); fx != nil {
			ctx.Spawn(fx)
		}
		if !d.killed || !e.Kind.IsHostile() {
			continue
		}
		points := ScoreValue(e.Kind)
		ctx.State.AddScore(points)
		ctx.State.Kills++
		kills.Add(1)
		ctx.PushEvent(events.EventEntityExploded, &events.EntityExplodedPayload{
			ID:     e.ID,
			Kind:   e.Kind,
			X:      e.X,
			Y:      e.Y,
			Points: points,
		})
	}

	ctx.World.RemoveIf(func(e *components.Entity) bool { return e.HP <= 0 })

	for i := range s.dying {
		s.dying[i] = dyingEntity{}
	}
}

// offscreen reports entities that scrolled past the bottom, and player shots past the top
func offscreen(e *components.Entity, field core.Rect) bool {
	box := e.Box()
	if box.Y > field.Y+field.H {
		return true
	}
	return e.Kind == core.KindPlayerProjectile && box.Y+box.H < field.Y
}
