package systems

import (
	"github.com/lixenwraith/ferris-fighter/components"
	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/vmath"
)

// NewPlayer builds the player centred near the bottom of the playfield
func NewPlayer(field core.Rect) *components.Entity {
	return &components.Entity{
		Kind: core.KindPlayer,
		X:    field.X + field.W/2 - constants.PlayerWidth/2,
		Y:    field.Y + field.H - constants.PlayerHeight - constants.PlayerStartMarginY,
		Bounds: core.Rect{
			X: constants.PlayerBoundsX,
			Y: constants.PlayerBoundsY,
			W: constants.PlayerBoundsW,
			H: constants.PlayerBoundsH,
		},
		HP:       constants.PlayerHP,
		Damage:   constants.PlayerDamage,
		Velocity: constants.PlayerSpeed,
		Movement: components.Static{},
		Lifetime: components.Unbounded(),
	}
}

func randomEnemyName(rng *vmath.FastRand) string {
	return constants.EnemyNames[rng.Intn(len(constants.EnemyNames))]
}

func enemyBounds() core.Rect {
	return core.Rect{
		X: constants.EnemyBoundsX,
		Y: constants.EnemyBoundsY,
		W: constants.EnemyBoundsW,
		H: constants.EnemyBoundsH,
	}
}

// NewEnemy builds a plain enemy at a random column above the playfield
func NewEnemy(rng *vmath.FastRand, field core.Rect) *components.Entity {
	return &components.Entity{
		Kind:   core.KindEnemy,
		Name:   randomEnemyName(rng),
		X:      field.X + rng.Range(0, field.W),
		Y:      field.Y + constants.SpawnOffsetY,
		Bounds: enemyBounds(),
		HP:     constants.EnemyHP,
		Damage: constants.EnemyDamage,
		Movement: components.DriftingSine{
			Amplitude:     constants.EnemyDriftAmplitude,
			LateralPeriod: constants.EnemyDriftLateralPeriod,
			Jitter:        constants.EnemyDriftJitter,
			Descent:       constants.EnemyDriftDescent,
			DescentPeriod: constants.EnemyDriftDescentPeriod,
		},
		Lifetime:     components.BoundedFor(constants.EnemyLifetime),
		FireCooldown: constants.EnemyFireCooldown,
		Seed:         rng.Range(-1, 1),
	}
}

// NewEnemyVariant builds the tougher spread-firing enemy
func NewEnemyVariant(rng *vmath.FastRand, field core.Rect) *components.Entity {
	return &components.Entity{
		Kind:   core.KindEnemyVariant,
		Name:   randomEnemyName(rng),
		X:      field.X + rng.Range(0, field.W),
		Y:      field.Y + constants.SpawnOffsetY,
		Bounds: enemyBounds(),
		HP:     constants.EnemyVariantHP,
		Damage: constants.EnemyVariantDamage,
		Movement: components.ZigZag{
			Amplitude: constants.EnemyVariantZigZagAmplitude,
			Period:    constants.EnemyVariantZigZagPeriod,
			Descent:   constants.EnemyVariantDescent,
		},
		Lifetime:     components.BoundedFor(constants.EnemyVariantLifetime),
		FireCooldown: constants.EnemyFireCooldown,
		Seed:         rng.Range(-1, 1),
	}
}

// NewBoss builds the boss horizontally centred above the playfield
func NewBoss(rng *vmath.FastRand, field core.Rect) *components.Entity {
	bounds := core.Rect{
		X: constants.BossBoundsX,
		Y: constants.BossBoundsY,
		W: constants.BossBoundsW,
		H: constants.BossBoundsH,
	}
	width := bounds.X*2 + bounds.W
	return &components.Entity{
		Kind:   core.KindBoss,
		Name:   constants.BossName,
		X:      field.X + field.W/2 - width/2,
		Y:      field.Y + constants.BossSpawnOffsetY,
		Bounds: bounds,
		HP:     constants.BossHP,
		Damage: constants.BossDamage,
		Movement: components.Hover{
			Descent: constants.BossDescent,
			Settle:  float64(constants.BossSettleTime.Milliseconds()),
			Sway:    constants.BossSway,
			Period:  constants.BossSwayPeriod,
		},
		Lifetime:     components.BoundedFor(constants.BossLifetime),
		FireCooldown: constants.BossSettleTime,
		Seed:         rng.Range(-1, 1),
	}
}

// NewPowerup builds a falling collectible of the given powerup kind
func NewPowerup(kind core.Kind, rng *vmath.FastRand, field core.Rect) *components.Entity {
	return &components.Entity{
		Kind:     kind,
		X:        field.X + rng.Range(0, field.W-constants.PowerupSize),
		Y:        field.Y + constants.SpawnOffsetY,
		Bounds:   core.Rect{W: constants.PowerupSize, H: constants.PowerupSize},
		HP:       1,
		Movement: components.Linear{DY: constants.PowerupFallSpeed},
		Lifetime: components.BoundedFor(constants.PowerupLifetime),
		Seed:     rng.Range(-1, 1),
	}
}

// NewEnemyProjectile builds a hostile bullet centred on (x, y) travelling along angle
func NewEnemyProjectile(x, y, angle float64) *components.Entity {
	const size = constants.EnemyProjectileSize
	vx, vy := vmath.Polar(angle, constants.EnemyProjectileSpeed)
	return &components.Entity{
		Kind:     core.KindEnemyProjectile,
		X:        x - size/2,
		Y:        y - size/2,
		Bounds:   core.Rect{W: size, H: size},
		HP:       1,
		Damage:   constants.EnemyProjectileDamage,
		Velocity: constants.EnemyProjectileSpeed,
		Movement: components.Linear{DX: vx, DY: vy},
		Lifetime: components.BoundedFor(constants.EnemyProjectileLifetime),
		Angle:    angle,
	}
}

// NewPlayerProjectile builds a player bullet centred on (x, y) travelling along angle
func NewPlayerProjectile(x, y, angle float64) *components.Entity {
	const size = constants.PlayerProjectileSize
	vx, vy := vmath.Polar(angle, constants.PlayerProjectileSpeed)
	return &components.Entity{
		Kind:     core.KindPlayerProjectile,
		X:        x - size/2,
		Y:        y - size/2,
		Bounds:   core.Rect{W: size, H: size},
		HP:       1,
		Damage:   constants.PlayerProjectileDamage,
		Velocity: constants.PlayerProjectileSpeed,
		Movement: components.Linear{DX: vx, DY: vy},
		Lifetime: components.BoundedFor(constants.PlayerProjectileLifetime),
		Angle:    angle,
	}
}

// NewDeathEffect builds the visual left behind by a destroyed hostile
// Returns nil for kinds without an effect
func NewDeathEffect(source *components.Entity) *components.Entity {
	var kind core.Kind
	var life = constants.DeathSplatLifetime
	switch source.Kind {
	case core.KindEnemy, core.KindBoss:
		kind = core.KindDeathSplat
	case core.KindEnemyVariant:
		kind = core.KindDeathShutoff
		life = constants.DeathShutoffLifetime
	default:
		return nil
	}
	return &components.Entity{
		Kind:     kind,
		Name:     source.Name,
		X:        source.X,
		Y:        source.Y,
		Bounds:   source.Bounds,
		HP:       1,
		Movement: components.Static{},
		Lifetime: components.BoundedFor(life),
		Seed:     source.Seed,
	}
}

// ScoreValue returns the points awarded for destroying a kind by damage
func ScoreValue(k core.Kind) int {
	switch k {
	case core.KindEnemy:
		return constants.ScoreEnemy
	case core.KindEnemyVariant:
		return constants.ScoreEnemyVariant
	case core.KindBoss:
		return constants.ScoreBoss
	}
	return 0
}
