package systems

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// CollisionSystem tests every ordered pair of live entities and applies the
// resolution rule for (subject, threat). Entities whose hp or lifetime reached
// zero earlier in the pass are skipped, so destructive effects land once
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update runs one resolution pass over the world
func (s *CollisionSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	entities := ctx.World.Entities()

	for _, subject := range entities {
		if !subject.Alive() || !isSubject(subject.Kind) {
			continue
		}
		for _, threat := range entities {
			if !subject.Alive() {
				break
			}
			if threat == subject || !threat.Alive() {
				continue
			}
			if !vmath.Overlap(subject.Box(), threat.Box()) {
				continue
			}
			s.resolve(ctx, subject, threat)
		}
	}
}

// isSubject filters kinds that appear in the subject column of the table
func isSubject(k core.Kind) bool {
	return k == core.KindPlayer || k.IsHostile()
}

func (s *CollisionSystem) resolve(ctx *engine.GameContext, subject, threat *components.Entity) {
	switch subject.Kind {
	case core.KindPlayer:
		switch threat.Kind {
		case core.KindEnemy, core.KindEnemyVariant:
			s.hurtPlayer(ctx, subject, threat)
			threat.Lifetime.Expire()
		case core.KindBoss:
			s.hurtPlayer(ctx, subject, threat)
		case core.KindEnemyProjectile:
			s.hurtPlayer(ctx, subject, threat)
			threat.Lifetime.Expire()
		case core.KindPowerBomb:
			s.detonate(ctx)
			threat.Lifetime.Expire()
		case core.KindPowerGunUpgrade:
			level := ctx.State.UpgradeGun()
			threat.Lifetime.Expire()
			ctx.PushEvent(events.EventPowerupCollected, &events.PowerupCollectedPayload{Kind: threat.Kind, GunLevel: level})
		case core.KindPowerShield:
			ctx.State.ShieldActive = true
			threat.Lifetime.Expire()
			ctx.PushEvent(events.EventPowerupCollected, &events.PowerupCollectedPayload{Kind: threat.Kind, GunLevel: ctx.State.GunLevel})
		}

	case core.KindEnemy, core.KindEnemyVariant, core.KindBoss:
		if threat.Kind != core.KindPlayerProjectile {
			return
		}
		before := subject.HP
		subject.HP -= threat.Damage
		threat.Lifetime.Expire()
		ctx.PushEvent(events.EventHit, &events.HitPayload{
			Target:   subject.ID,
			Kind:     subject.Kind,
			Damage:   threat.Damage,
			HPBefore: before,
		})
	}
}

// hurtPlayer applies the shield-or-damage rule; hp is not clamped here
func (s *CollisionSystem) hurtPlayer(ctx *engine.GameContext, player, threat *components.Entity) {
	if ctx.Settings.Debug.GodMode {
		return
	}
	if ctx.State.ConsumeShield() {
		ctx.PushEvent(events.EventShieldBroken, nil)
		return
	}
	before := player.HP
	player.HP -= threat.Damage
	ctx.Metrics.Ints.Get(constants.MetricPlayerHits).Add(1)
	ctx.PushEvent(events.EventHit, &events.HitPayload{
		Target:   player.ID,
		Kind:     player.Kind,
		Damage:   threat.Damage,
		HPBefore: before,
	})
}

// detonate destroys every live Enemy, EnemyVariant and EnemyProjectile
// Hit points are zeroed, so destroyed hostiles count as kills during culling
func (s *CollisionSystem) detonate(ctx *engine.GameContext) {
	destroyed := 0
	for _, e := range ctx.World.Entities() {
		if !e.Alive() {
			continue
		}
		switch e.Kind {
		case core.KindEnemy, core.KindEnemyVariant, core.KindEnemyProjectile:
			e.HP = 0
			e.Lifetime.Expire()
			destroyed++
		}
	}
	ctx.PushEvent(events.EventBombDetonated, &events.BombDetonatedPayload{Destroyed: destroyed})
}
