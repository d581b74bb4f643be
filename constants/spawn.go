package constants

import "time"

// Spawn Base Intervals
// Enemy, EnemyVariant and Boss intervals are multiplied by the difficulty factor
const (
	EnemySpawnInterval        = 1000 * time.Millisecond
	EnemyVariantSpawnInterval = 5000 * time.Millisecond
	BossSpawnInterval         = 60 * time.Second
	PowerBombSpawnInterval    = 45 * time.Second
	GunUpgradeSpawnInterval   = 20 * time.Second
	ShieldSpawnInterval       = 30 * time.Second
)
