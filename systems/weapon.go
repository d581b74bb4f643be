package systems

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// WeaponSystem fires the player gun while fire is held and the cooldown has run out
// The volley is GunLevel projectiles fanned evenly around straight up
type WeaponSystem struct{}

// NewWeaponSystem creates a new weapon system
func NewWeaponSystem() *WeaponSystem {
	return &WeaponSystem{}
}

// Priority returns the system's priority
func (s *WeaponSystem) Priority() int {
	return constants.PriorityWeapon
}

// Update spawns a volley when the player may fire
func (s *WeaponSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	if !ctx.Input.Fire {
		return
	}
	player, ok := ctx.Player()
	if !ok || !player.Alive() || player.FireCooldown > 0 {
		return
	}

	player.FireCooldown = constants.PlayerFireCooldown

	cx, _ := player.Box().Center()
	y := player.Y + player.Bounds.Y
	angles := vmath.Fan(constants.AngleUp, constants.PlayerFanSpread, ctx.State.GunLevel)
	for _, a := range angles {
		ctx.Spawn(NewPlayerProjectile(cx, y, a))
	}

	ctx.Metrics.Ints.Get(constants.MetricShotsFired).Add(int64(len(angles)))
	ctx.PushEvent(events.EventShotFired, &events.ShotFiredPayload{
		Shooter: core.KindPlayer,
		Count:   len(angles),
	})
}
