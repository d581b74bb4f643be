package core

// Kind classifies an entity's behavior and collision role
// The set is closed; KindEmpty exists only as the zero value
type Kind uint8

const (
	KindEmpty Kind = iota
	KindPlayer
	KindEnemy
	KindEnemyVariant // Tougher "blue screen" mutation with spread fire
	KindBoss
	KindEnemyProjectile
	KindPlayerProjectile
	KindPowerGunUpgrade
	KindPowerShield
	KindPowerBomb
	KindDeathSplat   // Effect left by Enemy and Boss
	KindDeathShutoff // Effect left by EnemyVariant
	KindCount
)

var kindNames = [KindCount]string{
	KindEmpty:            "empty",
	KindPlayer:           "player",
	KindEnemy:            "enemy",
	KindEnemyVariant:     "enemy_variant",
	KindBoss:             "boss",
	KindEnemyProjectile:  "enemy_projectile",
	KindPlayerProjectile: "player_projectile",
	KindPowerGunUpgrade:  "power_gun_upgrade",
	KindPowerShield:      "power_shield",
	KindPowerBomb:        "power_bomb",
	KindDeathSplat:       "death_splat",
	KindDeathShutoff:     "death_shutoff",
}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// IsHostile reports whether the kind is a ship that can be shot down for score
func (k Kind) IsHostile() bool {
	return k == KindEnemy || k == KindEnemyVariant || k == KindBoss
}

// IsPowerup reports whether the kind is a collectible
func (k Kind) IsPowerup() bool {
	return k == KindPowerGunUpgrade || k == KindPowerShield || k == KindPowerBomb
}

// IsEffect reports whether the kind is a purely visual death effect
func (k Kind) IsEffect() bool {
	return k == KindDeathSplat || k == KindDeathShutoff
}

// IsProjectile reports whether the kind is a bullet of either side
func (k Kind) IsProjectile() bool {
	return k == KindEnemyProjectile || k == KindPlayerProjectile
}
