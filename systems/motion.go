package systems

import (
	"math"
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/physics"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// MotionSystem advances every entity by one frame: age, lifetime, cooldown,
// movement, then kind-specific behavior. Entities appended during the pass
// (enemy fire) are first updated next frame
type MotionSystem struct{}

// NewMotionSystem creates a new motion system
func NewMotionSystem() *MotionSystem {
	return &MotionSystem{}
}

// Priority returns the system's priority
func (s *MotionSystem) Priority() int {
	return constants.PriorityMotion
}

// Update runs the per-entity update in collection order
func (s *MotionSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	n := ctx.World.Len()
	for i := 0; i < n; i++ {
		e := ctx.World.At(i)
		// Entities killed by this frame's collisions do not act again
		if !e.Alive() {
			continue
		}
		s.updateEntity(ctx, e, dt)
	}
}

func (s *MotionSystem) updateEntity(ctx *engine.GameContext, e *components.Entity, dt time.Duration) {
	e.Age += dt
	if e.Lifetime.Bounded {
		e.Lifetime.Remaining -= dt
	}
	e.FireCooldown -= dt
	if e.FireCooldown < 0 {
		e.FireCooldown = 0
	}

	physics.Displace(e, dt, ctx.Rng)

	ms := float64(dt) / float64(time.Millisecond)

	switch e.Kind {
	case core.KindPlayer:
		s.steerPlayer(ctx, e, dt)

	case core.KindEnemy:
		if e.FireCooldown <= 0 {
			e.FireCooldown = constants.EnemyFireCooldown
			x, y := muzzle(e)
			ctx.Spawn(NewEnemyProjectile(x, y, constants.AngleDown))
			s.shotFired(ctx, e.Kind, 1)
		}

	case core.KindEnemyVariant:
		if e.FireCooldown <= 0 {
			e.FireCooldown = constants.EnemyFireCooldown
			x, y := muzzle(e)
			for _, a := range [...]float64{constants.AngleDownLeft, constants.AngleDown, constants.AngleDownRight} {
				ctx.Spawn(NewEnemyProjectile(x, y, a))
			}
			s.shotFired(ctx, e.Kind, 3)
		}

	case core.KindBoss:
		if e.FireCooldown <= 0 {
			e.FireCooldown = constants.BossFireCooldown
			s.fireRing(ctx, e)
		}
		e.Angle += ms * constants.BossSpinRate

	case core.KindPlayerProjectile:
		e.Angle += ms * constants.PlayerProjectileSpinRate
	}
}

// steerPlayer translates the player by its input direction and clamps it to the playfield
func (s *MotionSystem) steerPlayer(ctx *engine.GameContext, e *components.Entity, dt time.Duration) {
	dx, dy := core.DirectionFrom(ctx.Input).Vector()
	step := e.Velocity * dt.Seconds()
	e.Translate(dx*step, dy*step)

	cx, cy := vmath.ClampInto(e.Box(), ctx.Playfield())
	e.Translate(cx, cy)
}

// muzzle returns the spawn point of enemy shots, below the sprite
func muzzle(e *components.Entity) (float64, float64) {
	return e.X + constants.EnemySpriteWidth/2 - constants.EnemyMuzzleOffset, e.Y + constants.EnemySpriteHeight
}

// fireRing spawns the boss volley evenly around its aim, on a circle derived from its bounds
func (s *MotionSystem) fireRing(ctx *engine.GameContext, e *components.Entity) {
	cx, cy := e.Box().Center()
	radius := (e.Bounds.X*2 + e.Bounds.W) / 2
	step := 2 * math.Pi / float64(constants.BossBulletCount)

	for i := 0; i < constants.BossBulletCount; i++ {
		a := e.Angle + step*float64(i)
		x, y := vmath.RingPoint(cx, cy, radius, a)
		ctx.Spawn(NewEnemyProjectile(x, y, a))
	}
	s.shotFired(ctx, e.Kind, constants.BossBulletCount)
}

func (s *MotionSystem) shotFired(ctx *engine.GameContext, shooter core.Kind, count int) {
	ctx.PushEvent(events.EventShotFired, &events.ShotFiredPayload{Shooter: shooter, Count: count, Hostile: true})
}
