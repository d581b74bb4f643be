package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/status"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// GameContext is everything a system touches during one frame
// It is owned by the session and never shared across goroutines
type GameContext struct {
	World    *World
	State    *GameState
	Events   *events.EventQueue
	Rng      *vmath.FastRand
	Metrics  *status.Registry
	Settings Settings

	// Input is the snapshot read at the top of the current frame
	Input core.Input

	// Cached metric pointers
	entitiesMetric *atomic.Int64
	peakMetric     *atomic.Int64
}

// NewGameContext wires a context from settings; rng and metrics may be shared by tests
func NewGameContext(settings Settings, rng *vmath.FastRand, metrics *status.Registry) *GameContext {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	if rng == nil {
		seed := settings.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = vmath.NewFastRand(seed)
	}
	return &GameContext{
		World:          NewWorld(),
		State:          NewGameState(),
		Events:         events.NewEventQueue(),
		Rng:            rng,
		Metrics:        metrics,
		Settings:       settings,
		entitiesMetric: metrics.Ints.Get(constants.MetricEntities),
		peakMetric:     metrics.Ints.Get(constants.MetricPeakEntities),
	}
}

// PushEvent queues an event stamped with the current frame
func (c *GameContext) PushEvent(t events.EventType, payload any) {
	c.Events.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Frame:     c.State.Frame,
		Timestamp: time.Now(),
	})
}

// Playfield returns the world rectangle entities are clamped to and culled against
func (c *GameContext) Playfield() core.Rect {
	return core.Rect{W: c.Settings.Width, H: c.Settings.Height}
}

// Player returns the live player entity, if any
func (c *GameContext) Player() (*components.Entity, bool) {
	if c.State.PlayerID == 0 {
		return nil, false
	}
	return c.World.Get(c.State.PlayerID)
}

// Spawn appends an entity to the world
func (c *GameContext) Spawn(e *components.Entity) core.EntityID {
	return c.World.Add(e)
}

// RecordEntityCount publishes the entity count and, when tracking is on, the running peak
func (c *GameContext) RecordEntityCount() {
	n := int64(c.World.Len())
	c.entitiesMetric.Store(n)
	if c.Settings.Debug.TrackPeakEntities {
		status.StoreMax(c.peakMetric, n)
	}
}
