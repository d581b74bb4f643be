package events

import "strings"

var typeNames = [eventTypeCount]string{
	EventMatchStarted:     "MatchStarted",
	EventShotFired:        "ShotFired",
	EventHit:              "Hit",
	EventShieldBroken:     "ShieldBroken",
	EventEntityExploded:   "EntityExploded",
	EventPowerupCollected: "PowerupCollected",
	EventBombDetonated:    "BombDetonated",
	EventEntitySpawned:    "EntitySpawned",
	EventMatchEnded:       "MatchEnded",
	EventPauseToggled:     "PauseToggled",
}

// String returns the event name used in logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return EventType(i), true
		}
	}
	return 0, false
}
