package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap is the minimum gap between two plays of the same sound
	MinSoundGap = 50 * time.Millisecond

	// DefaultVolume is the master gain applied to all effects
	DefaultVolume = 0.6
)

// Effect Durations
const (
	PlayerShotDuration  = 60 * time.Millisecond
	EnemyShotDuration   = 90 * time.Millisecond
	HitDuration         = 120 * time.Millisecond
	ExplosionDuration   = 350 * time.Millisecond
	PowerupDuration     = 250 * time.Millisecond
	ShieldBreakDuration = 200 * time.Millisecond
	BombDuration        = 800 * time.Millisecond
	JingleDuration      = 900 * time.Millisecond
)
