package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager mixes one-shot effects into the speaker
// Without an initialized device every call is a silent no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	volume      float64
	initialized bool
	muted       bool

	// lastPlayed throttles repeats of the same sound
	lastPlayed [core.SoundTypeCount]time.Time
	now        func() time.Time
}

// NewSoundManager creates a new sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		volume: clampVolume(volume),
		now:    time.Now,
	}
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Clear()
	sm.initialized = false
}

// Play starts a one-shot effect
func (sm *SoundManager) Play(t core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.accept(t) || !sm.initialized {
		return
	}

	s := NewSoundEffect(t, sampleRate, sm.volume)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// accept applies mute, range and repeat throttling; caller holds the lock
func (sm *SoundManager) accept(t core.SoundType) bool {
	if sm.muted || t < 0 || t >= core.SoundTypeCount {
		return false
	}
	now := sm.now()
	if last := sm.lastPlayed[t]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[t] = now
	return true
}

// SetMuted silences or restores effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if sm.initialized {
		speaker.Lock()
		sm.ctrl.Paused = muted
		speaker.Unlock()
	}
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()
	sm.SetMuted(muted)
	return muted
}

// Muted reports whether effects are silenced
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume changes the master volume for effects started afterwards
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = clampVolume(v)
}

// Volume returns the master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// Initialized reports whether an audio device is attached
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Start initializes the device and logs instead of failing when none is present
func Start(volume float64) *SoundManager {
	sm := NewSoundManager(volume)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	return sm
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
