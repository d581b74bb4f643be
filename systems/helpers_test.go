package systems

import (
	"testing"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/status"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// newTestContext returns a context with spawning disabled and a fixed seed
func newTestContext(t *testing.T) *engine.GameContext {
	t.Helper()
	settings := engine.DefaultSettings()
	settings.Spawn = engine.SpawnConfig{SecondsUntilMaxDifficulty: 180}
	return engine.NewGameContext(settings, vmath.NewFastRand(1), status.NewRegistry())
}

// addPlayer spawns the player and registers its handle
func addPlayer(ctx *engine.GameContext) *components.Entity {
	p := NewPlayer(ctx.Playfield())
	ctx.State.PlayerID = ctx.Spawn(p)
	return p
}

// overlapWith positions e so its collision box sits on target's box
func overlapWith(e, target *components.Entity) {
	tx, ty := target.Box().Center()
	e.X = tx - e.Bounds.X - e.Bounds.W/2
	e.Y = ty - e.Bounds.Y - e.Bounds.H/2
}

// testEnemy builds an enemy with deterministic stats
func testEnemy(ctx *engine.GameContext, hp, damage int) *components.Entity {
	e := NewEnemy(ctx.Rng, ctx.Playfield())
	e.HP = hp
	e.Damage = damage
	e.Movement = components.Static{}
	return e
}

func eventsOfType(evs []events.GameEvent, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range evs {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func countKind(ctx *engine.GameContext, k core.Kind) int {
	return ctx.World.CountKind(k)
}
