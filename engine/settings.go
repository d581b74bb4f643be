package engine

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
)

// DebugConfig holds developer toggles injected into the simulation
type DebugConfig struct {
	// GodMode ignores all damage to the player
	GodMode bool

	// ShowBounds asks frontends to outline collision boxes
	ShowBounds bool

	// TrackPeakEntities records the running maximum entity count as a metric
	TrackPeakEntities bool
}

// SpawnPolicy decides what happens when several spawn timers expire in one frame
type SpawnPolicy uint8

const (
	// SpawnOnePerFrame emits only the first expired kind in enumeration order;
	// the rest stay expired and fire on following frames
	SpawnOnePerFrame SpawnPolicy = iota

	// SpawnDrainAll emits one entity for every expired timer
	SpawnDrainAll
)

func (p SpawnPolicy) String() string {
	if p == SpawnDrainAll {
		return "drain_all"
	}
	return "one_per_frame"
}

// SpawnConfig holds base spawn intervals; a non-positive interval disables the kind
type SpawnConfig struct {
	Policy SpawnPolicy

	Enemy        time.Duration
	EnemyVariant time.Duration
	Boss         time.Duration
	PowerBomb    time.Duration
	GunUpgrade   time.Duration
	Shield       time.Duration

	// SecondsUntilMaxDifficulty is when the difficulty factor reaches its floor
	SecondsUntilMaxDifficulty float64
}

// DefaultSpawnConfig returns the standard spawn schedule
func DefaultSpawnConfig() SpawnConfig {
	return SpawnConfig{
		Policy:                    SpawnOnePerFrame,
		Enemy:                     constants.EnemySpawnInterval,
		EnemyVariant:              constants.EnemyVariantSpawnInterval,
		Boss:                      constants.BossSpawnInterval,
		PowerBomb:                 constants.PowerBombSpawnInterval,
		GunUpgrade:                constants.GunUpgradeSpawnInterval,
		Shield:                    constants.ShieldSpawnInterval,
		SecondsUntilMaxDifficulty: constants.SecondsUntilMaxDifficulty,
	}
}

// Settings is the read-only startup configuration of a session
type Settings struct {
	Width, Height float64
	PlayerName    string
	Seed          uint64 // Zero seeds from the wall clock

	MatchDuration time.Duration
	MaxFrameDelta time.Duration // Zero disables the stall cap

	Debug DebugConfig
	Spawn SpawnConfig
}

// DefaultSettings returns the standard game configuration
func DefaultSettings() Settings {
	return Settings{
		Width:         constants.DefaultWorldWidth,
		Height:        constants.DefaultWorldHeight,
		PlayerName:    constants.DefaultPlayerName,
		MatchDuration: constants.MatchDuration,
		MaxFrameDelta: constants.MaxFrameDelta,
		Spawn:         DefaultSpawnConfig(),
	}
}
