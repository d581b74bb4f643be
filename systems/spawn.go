package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// spawnOrder is the fixed enumeration order used to pick among expired timers
var spawnOrder = [...]core.Kind{
	core.KindEnemy,
	core.KindEnemyVariant,
	core.KindBoss,
	core.KindPowerBomb,
	core.KindPowerGunUpgrade,
	core.KindPowerShield,
}

// SpawnTimers holds one countdown per spawnable kind
type SpawnTimers struct {
	Enemy        time.Duration
	EnemyVariant time.Duration
	Boss         time.Duration
	PowerBomb    time.Duration
	GunUpgrade   time.Duration
	Shield       time.Duration
}

// slot returns the timer for kind k
func (t *SpawnTimers) slot(k core.Kind) *time.Duration {
	switch k {
	case core.KindEnemy:
		return &t.Enemy
	case core.KindEnemyVariant:
		return &t.EnemyVariant
	case core.KindBoss:
		return &t.Boss
	case core.KindPowerBomb:
		return &t.PowerBomb
	case core.KindPowerGunUpgrade:
		return &t.GunUpgrade
	case core.KindPowerShield:
		return &t.Shield
	}
	return nil
}

// DifficultyFactor returns the spawn interval multiplier for the elapsed match time
// It falls linearly from 1 to the floor at secondsUntilMax and holds there
func DifficultyFactor(elapsed time.Duration, secondsUntilMax float64) float64 {
	if secondsUntilMax <= 0 {
		return constants.MinDifficultyFactor
	}
	return math.Max(constants.MinDifficultyFactor, (secondsUntilMax-elapsed.Seconds())/secondsUntilMax)
}

// Spawner owns the spawn schedule and constructs spawned entities
type Spawner struct {
	cfg    engine.SpawnConfig
	Timers SpawnTimers
}

// NewSpawner creates a spawner with every timer at its base interval
func NewSpawner(cfg engine.SpawnConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.Reset()
	return s
}

// Reset restarts every timer at its base interval
func (s *Spawner) Reset() {
	for _, k := range spawnOrder {
		*s.Timers.slot(k) = s.baseInterval(k)
	}
}

func (s *Spawner) baseInterval(k core.Kind) time.Duration {
	switch k {
	case core.KindEnemy:
		return s.cfg.Enemy
	case core.KindEnemyVariant:
		return s.cfg.EnemyVariant
	case core.KindBoss:
		return s.cfg.Boss
	case core.KindPowerBomb:
		return s.cfg.PowerBomb
	case core.KindPowerGunUpgrade:
		return s.cfg.GunUpgrade
	case core.KindPowerShield:
		return s.cfg.Shield
	}
	return 0
}

// ResetInterval returns the interval a timer of kind k restarts at
// Only hostile kinds are scaled by difficulty
func (s *Spawner) ResetInterval(k core.Kind, elapsed time.Duration) time.Duration {
	base := s.baseInterval(k)
	if !k.IsHostile() {
		return base
	}
	return time.Duration(float64(base) * DifficultyFactor(elapsed, s.cfg.SecondsUntilMaxDifficulty))
}

// Due advances every enabled timer by dt and returns the kinds to spawn this frame
// Expired timers are reset; under SpawnOnePerFrame the others stay expired for later frames
func (s *Spawner) Due(dt, elapsed time.Duration) []core.Kind {
	var due []core.Kind
	for _, k := range spawnOrder {
		if s.baseInterval(k) <= 0 {
			continue
		}
		*s.Timers.slot(k) -= dt
	}

	for _, k := range spawnOrder {
		if s.baseInterval(k) <= 0 {
			continue
		}
		timer := s.Timers.slot(k)
		if *timer > 0 {
			continue
		}
		*timer = s.ResetInterval(k, elapsed)
		due = append(due, k)
		if s.cfg.Policy == engine.SpawnOnePerFrame {
			break
		}
	}
	return due
}

// Update advances the schedule and builds the entities due this frame
func (s *Spawner) Update(dt, elapsed time.Duration, rng *vmath.FastRand, field core.Rect) []*components.Entity {
	kinds := s.Due(dt, elapsed)
	if len(kinds) == 0 {
		return nil
	}
	out := make([]*components.Entity, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, Build(k, rng, field))
	}
	return out
}

// Build constructs a freshly spawned entity of a spawnable kind
func Build(k core.Kind, rng *vmath.FastRand, field core.Rect) *components.Entity {
	switch k {
	case core.KindEnemy:
		return NewEnemy(rng, field)
	case core.KindEnemyVariant:
		return NewEnemyVariant(rng, field)
	case core.KindBoss:
		return NewBoss(rng, field)
	}
	return NewPowerup(k, rng, field)
}

// SpawnSystem appends the spawner's output to the world each frame
type SpawnSystem struct {
	spawner *Spawner
}

// NewSpawnSystem creates a spawn system for the given schedule
func NewSpawnSystem(cfg engine.SpawnConfig) *SpawnSystem {
	return &SpawnSystem{spawner: NewSpawner(cfg)}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Spawner exposes the schedule for inspection
func (s *SpawnSystem) Spawner() *Spawner {
	return s.spawner
}

// Reset restarts the schedule for a new match
func (s *SpawnSystem) Reset() {
	s.spawner.Reset()
}

// Update runs the schedule and appends spawned entities
func (s *SpawnSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	spawned := s.spawner.Update(dt, ctx.State.Elapsed, ctx.Rng, ctx.Playfield())
	if len(spawned) == 0 {
		return
	}
	counter := ctx.Metrics.Ints.Get(constants.MetricSpawned)
	for _, e := range spawned {
		id := ctx.Spawn(e)
		counter.Add(1)
		ctx.PushEvent(events.EventEntitySpawned, &events.EntitySpawnedPayload{ID: id, Kind: e.Kind})
	}
}
