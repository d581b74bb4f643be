package events

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/core"
)

// ShotFiredPayload describes one volley
type ShotFiredPayload struct {
	Shooter core.Kind
	Count   int
	Hostile bool
}

// HitPayload describes damage applied by the collision pass
type HitPayload struct {
	Target   core.EntityID
	Kind     core.Kind
	Damage   int
	HPBefore int
}

// EntityExplodedPayload describes a hostile killed by damage
type EntityExplodedPayload struct {
	ID     core.EntityID
	Kind   core.Kind
	X, Y   float64
	Points int
}

// PowerupCollectedPayload names the collected powerup
type PowerupCollectedPayload struct {
	Kind     core.Kind
	GunLevel int
}

// BombDetonatedPayload counts what the bomb destroyed
type BombDetonatedPayload struct {
	Destroyed int
}

// EntitySpawnedPayload names the spawned entity
type EntitySpawnedPayload struct {
	ID   core.EntityID
	Kind core.Kind
}

// MatchEndedPayload is the score record of a finished match
type MatchEndedPayload struct {
	Won     bool
	Score   int
	Name    string
	Elapsed time.Duration
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
