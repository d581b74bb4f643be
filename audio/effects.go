package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
)

const (
	shortAttack = 5 * time.Millisecond
	softAttack  = 20 * time.Millisecond
)

// tone is one shaped oscillator
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, shortAttack, d/2, rate)
}

// NewSoundEffect builds the streamer for one sound at the given master volume
// Returns nil for unknown sound types
func NewSoundEffect(t core.SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch t {
	case core.SoundPlayerShot:
		s = newVolume(tone(1400, 700, constants.PlayerShotDuration, WaveSquare, rate), 0.25)

	case core.SoundEnemyShot:
		s = newVolume(tone(500, 300, constants.EnemyShotDuration, WaveSaw, rate), 0.25)

	case core.SoundHit:
		s = beep.Mix(
			newVolume(tone(180, 90, constants.HitDuration, WaveSquare, rate), 0.4),
			newVolume(tone(0, 0, constants.HitDuration, WaveNoise, rate), 0.2),
		)

	case core.SoundExplosion:
		s = beep.Mix(
			newVolume(tone(0, 0, constants.ExplosionDuration, WaveNoise, rate), 0.5),
			newVolume(tone(120, 40, constants.ExplosionDuration, WaveSine, rate), 0.5),
		)

	case core.SoundPowerup:
		half := constants.PowerupDuration / 2
		s = newVolume(beep.Seq(
			tone(660, 660, half, WaveSine, rate),
			tone(990, 1320, half, WaveSine, rate),
		), 0.5)

	case core.SoundShieldBreak:
		s = newVolume(tone(2000, 400, constants.ShieldBreakDuration, WaveSaw, rate), 0.35)

	case core.SoundBomb:
		d := constants.BombDuration
		s = beep.Mix(
			newVolume(NewEnvelope(NewSweep(0, 0, d, WaveNoise, rate), d, softAttack, d*3/4, rate), 0.6),
			newVolume(NewEnvelope(NewSweep(90, 30, d, WaveSine, rate), d, softAttack, d*3/4, rate), 0.6),
		)

	case core.SoundGameOver:
		s = newVolume(jingle([]float64{523.25, 392.00, 329.63, 261.63}, rate), 0.4)

	case core.SoundVictory:
		s = newVolume(jingle([]float64{523.25, 659.25, 783.99, 1046.50}, rate), 0.4)

	default:
		return nil
	}
	return newVolume(s, volume)
}

// jingle plays notes back to back across the jingle duration
func jingle(notes []float64, rate beep.SampleRate) beep.Streamer {
	step := constants.JingleDuration / time.Duration(len(notes))
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, tone(f, f, step, WaveSquare, rate))
	}
	return beep.Seq(parts...)
}
