package constants

import "time"

// Terminal Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report presses and auto-repeats but never releases
	KeyHoldWindow = 180 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 64
)

// Terminal Layout
const (
	// HUDRows is the number of terminal rows reserved for the status line
	HUDRows = 1
)

// Spectator Feed
const (
	// SpectateEveryNFrames throttles snapshot broadcasts
	SpectateEveryNFrames = 2

	// SpectateClientBuffer is the per-client outgoing message buffer
	SpectateClientBuffer = 64

	// SpectateWriteTimeout bounds a single websocket write
	SpectateWriteTimeout = 2 * time.Second
)
