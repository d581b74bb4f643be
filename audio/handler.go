package audio

import (
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
)

// Player plays one-shot sounds
type Player interface {
	Play(t core.SoundType)
}

// EventHandler maps game events to sounds
type EventHandler struct {
	player Player
}

// NewEventHandler creates a handler playing through p
func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

// EventTypes returns the events that have a sound
func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventShotFired,
		events.EventHit,
		events.EventShieldBroken,
		events.EventEntityExploded,
		events.EventPowerupCollected,
		events.EventBombDetonated,
		events.EventMatchEnded,
	}
}

// HandleEvent plays the sound for one event
func (h *EventHandler) HandleEvent(_ *engine.GameContext, ev events.GameEvent) {
	if t, ok := SoundFor(ev); ok {
		h.player.Play(t)
	}
}

// SoundFor returns the sound an event triggers
func SoundFor(ev events.GameEvent) (core.SoundType, bool) {
	switch ev.Type {
	case events.EventShotFired:
		if p, ok := ev.Payload.(*events.ShotFiredPayload); ok && p.Hostile {
			return core.SoundEnemyShot, true
		}
		return core.SoundPlayerShot, true
	case events.EventHit:
		return core.SoundHit, true
	case events.EventShieldBroken:
		return core.SoundShieldBreak, true
	case events.EventEntityExploded:
		return core.SoundExplosion, true
	case events.EventPowerupCollected:
		return core.SoundPowerup, true
	case events.EventBombDetonated:
		return core.SoundBomb, true
	case events.EventMatchEnded:
		if p, ok := ev.Payload.(*events.MatchEndedPayload); ok && p.Won {
			return core.SoundVictory, true
		}
		return core.SoundGameOver, true
	}
	return 0, false
}
