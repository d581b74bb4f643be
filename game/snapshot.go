package game

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
)

// EntityView is the read-only presentation of one entity
type EntityView struct {
	ID           core.EntityID `msgpack:"id"`
	Kind         core.Kind     `msgpack:"kind"`
	Name         string        `msgpack:"name,omitempty"`
	X            float64       `msgpack:"x"`
	Y            float64       `msgpack:"y"`
	Bounds       core.Rect     `msgpack:"bounds"`
	Angle        float64       `msgpack:"angle"`
	HP           int           `msgpack:"hp"`
	LifeFraction float64       `msgpack:"life"`
}

// Box returns the collision box in world coordinates
func (v EntityView) Box() core.Rect {
	return v.Bounds.At(v.X, v.Y)
}

// Snapshot is everything a frontend needs to draw one frame
// Entities are in world order, which is also draw order
type Snapshot struct {
	Phase     engine.GamePhase `msgpack:"phase"`
	Paused    bool             `msgpack:"paused"`
	Frame     int64            `msgpack:"frame"`
	Score     int              `msgpack:"score"`
	HP        int              `msgpack:"hp"`
	GunLevel  int              `msgpack:"gun"`
	Shield    bool             `msgpack:"shield"`
	Kills     int              `msgpack:"kills"`
	Elapsed   time.Duration    `msgpack:"elapsed"`
	Remaining time.Duration    `msgpack:"remaining"`
	Width     float64          `msgpack:"w"`
	Height    float64          `msgpack:"h"`
	Entities  []EntityView     `msgpack:"entities"`
}

// Snapshot copies the current match into a presentation view
func (s *Session) Snapshot() Snapshot {
	ctx := s.ctx
	st := ctx.State

	remaining := ctx.Settings.MatchDuration - st.Elapsed
	if remaining < 0 {
		remaining = 0
	}

	snap := Snapshot{
		Phase:     st.Phase,
		Paused:    s.clock.IsPaused(),
		Frame:     st.Frame,
		Score:     st.Score,
		HP:        s.playerHP,
		GunLevel:  st.GunLevel,
		Shield:    st.ShieldActive,
		Kills:     st.Kills,
		Elapsed:   st.Elapsed,
		Remaining: remaining,
		Width:     ctx.Settings.Width,
		Height:    ctx.Settings.Height,
		Entities:  make([]EntityView, 0, ctx.World.Len()),
	}
	if p, ok := ctx.Player(); ok {
		snap.HP = p.HP
	}

	for _, e := range ctx.World.Entities() {
		snap.Entities = append(snap.Entities, EntityView{
			ID:           e.ID,
			Kind:         e.Kind,
			Name:         e.Name,
			X:            e.X,
			Y:            e.Y,
			Bounds:       e.Bounds,
			Angle:        e.Angle,
			HP:           e.HP,
			LifeFraction: e.Lifetime.Fraction(),
		})
	}
	return snap
}
