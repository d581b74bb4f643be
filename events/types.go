package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventMatchStarted signals a fresh match with a new player
	// Trigger: Session.NewGame | Payload: nil
	EventMatchStarted EventType = iota

	// EventShotFired signals projectiles leaving a gun
	// Trigger: WeaponSystem (player), MotionSystem (hostiles)
	// Consumer: audio | Payload: *ShotFiredPayload
	EventShotFired

	// EventHit signals damage landing on the player or a hostile
	// Trigger: CollisionSystem | Payload: *HitPayload
	EventHit

	// EventShieldBroken signals a shield absorbing a hit
	// Trigger: CollisionSystem | Payload: nil
	EventShieldBroken

	// EventEntityExploded signals a hostile destroyed by damage
	// Trigger: CullSystem | Payload: *EntityExplodedPayload
	EventEntityExploded

	// EventPowerupCollected signals the player picking up a powerup
	// Trigger: CollisionSystem | Payload: *PowerupCollectedPayload
	EventPowerupCollected

	// EventBombDetonated signals a power bomb clearing the field
	// Trigger: CollisionSystem | Payload: *BombDetonatedPayload
	EventBombDetonated

	// EventEntitySpawned signals the spawner emitting an entity
	// Trigger: SpawnSystem | Payload: *EntitySpawnedPayload
	EventEntitySpawned

	// EventMatchEnded carries the score record of a finished match
	// Trigger: OutcomeSystem on loss or win
	// Consumer: score recorder, audio | Payload: *MatchEndedPayload
	EventMatchEnded

	// EventPauseToggled signals the clock being paused or resumed
	// Trigger: Session | Payload: *PausePayload
	EventPauseToggled

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
