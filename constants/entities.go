package constants

import (
	"math"
	"time"
)

// Player
const (
	PlayerHP     = 5
	PlayerDamage = 1

	// PlayerSpeed is the player translation speed in px/s
	PlayerSpeed = 400.0

	PlayerWidth  = 48.0
	PlayerHeight = 48.0

	// Collision box is inset from the sprite
	PlayerBoundsX = 10.0
	PlayerBoundsY = 8.0
	PlayerBoundsW = 28.0
	PlayerBoundsH = 32.0

	// PlayerStartMarginY is the distance between the player sprite and the playfield bottom at spawn
	PlayerStartMarginY = 40.0

	// MaxGunLevel caps the projectile fan size
	MaxGunLevel = 5
)

// Player Projectile
const (
	PlayerFireCooldown       = 200 * time.Millisecond
	PlayerProjectileSpeed    = 800.0
	PlayerProjectileDamage   = 1
	PlayerProjectileLifetime = 3 * time.Second
	PlayerProjectileSize     = 8.0

	// PlayerFanSpread is the angle between neighbouring projectiles of a fan
	PlayerFanSpread = math.Pi / 18

	// PlayerProjectileSpinRate is radians per millisecond of visual spin
	PlayerProjectileSpinRate = 1.0 / 100
)

// Enemy
const (
	EnemyHP       = 3
	EnemyDamage   = 1
	EnemyLifetime = 100 * time.Second

	EnemyBoundsX = 18.0
	EnemyBoundsY = 5.0
	EnemyBoundsW = 44.0
	EnemyBoundsH = 60.0

	// EnemySpriteWidth and EnemySpriteHeight place the muzzle below the sprite
	EnemySpriteWidth  = 80.0
	EnemySpriteHeight = 70.0

	// EnemyMuzzleOffset shifts the muzzle left of the sprite centre
	EnemyMuzzleOffset = 18.0

	// EnemyFireCooldown applies to Enemy and EnemyVariant
	EnemyFireCooldown = 2000 * time.Millisecond

	// Drifting sine motion, time in ms
	EnemyDriftAmplitude     = 60.0
	EnemyDriftLateralPeriod = 1000.0
	EnemyDriftJitter        = 3.0
	EnemyDriftDescent       = 60.0
	EnemyDriftDescentPeriod = 900.0
)

// Enemy Variant
const (
	EnemyVariantHP       = 6
	EnemyVariantDamage   = 2
	EnemyVariantLifetime = 100 * time.Second

	EnemyVariantZigZagAmplitude = 140.0
	EnemyVariantZigZagPeriod    = 700.0
	EnemyVariantDescent         = 45.0
)

// Boss
const (
	BossHP       = 100
	BossDamage   = 3
	BossLifetime = 120 * time.Second

	BossBoundsX = 20.0
	BossBoundsY = 20.0
	BossBoundsW = 160.0
	BossBoundsH = 120.0

	BossFireCooldown = 1000 * time.Millisecond
	BossBulletCount  = 12

	// BossSpinRate is radians per millisecond added to the ring aim
	BossSpinRate = 1.0 / 600

	BossDescent    = 40.0
	BossSettleTime = 4 * time.Second
	BossSway       = 90.0
	BossSwayPeriod = 1500.0
)

// Enemy Projectile
const (
	EnemyProjectileSpeed    = 200.0
	EnemyProjectileDamage   = 1
	EnemyProjectileLifetime = 8 * time.Second
	EnemyProjectileSize     = 10.0
)

// Powerups
const (
	PowerupSize      = 32.0
	PowerupFallSpeed = 100.0
	PowerupLifetime  = 30 * time.Second
)

// Death Effects
const (
	DeathSplatLifetime   = 500 * time.Millisecond
	DeathShutoffLifetime = 800 * time.Millisecond
)

// Spawn Placement
const (
	// SpawnOffsetY is the vertical spawn position above the visible playfield
	SpawnOffsetY = -30.0

	// BossSpawnOffsetY keeps the larger boss sprite hidden at spawn
	BossSpawnOffsetY = -140.0
)

// Projectile Angles (radians, counter-clockwise from +x with y up)
const (
	AngleUp   = math.Pi / 2
	AngleDown = 3 * math.Pi / 2

	// Variant spread
	AngleDownLeft  = 5 * math.Pi / 4
	AngleDownRight = 7 * math.Pi / 4
)
