package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrClockSkew reports a wall clock reading earlier than the previous frame's
var ErrClockSkew = errors.New("wall clock moved backwards")

// FrameClock derives per-frame delta and match elapsed time from wall-clock samples
// The first tick after Reset yields a zero delta; paused time is excluded from elapsed
type FrameClock struct {
	provider TimeProvider

	// MaxDelta caps a single frame's delta after a stall; zero disables the cap
	MaxDelta time.Duration

	started bool
	start   time.Time // Match start (real time)
	last    time.Time // Previous sample
	elapsed time.Duration

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewFrameClock creates a clock reading from the given provider
func NewFrameClock(provider TimeProvider) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{provider: provider}
}

// Reset starts a new match timeline; the next Tick captures the start time
func (c *FrameClock) Reset() {
	c.started = false
	c.elapsed = 0
	c.paused = false
	c.totalPaused = 0
	c.start = time.Time{}
	c.last = time.Time{}
	c.pauseStart = time.Time{}
}

// Tick samples the wall clock once and returns match elapsed time and frame delta
func (c *FrameClock) Tick() (elapsed, delta time.Duration, err error) {
	now := c.provider.Now()

	if !c.started {
		c.started = true
		c.start = now
		c.last = now
		return c.elapsed, 0, nil
	}

	if now.Before(c.last) {
		return c.elapsed, 0, fmt.Errorf("%w: %v before %v", ErrClockSkew, now, c.last)
	}

	delta = now.Sub(c.last)
	c.last = now

	if c.paused {
		return c.elapsed, 0, nil
	}

	if c.MaxDelta > 0 && delta > c.MaxDelta {
		delta = c.MaxDelta
	}
	c.elapsed += delta
	return c.elapsed, delta, nil
}

// Pause stops elapsed time from advancing
func (c *FrameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues elapsed time; the pause interval is never counted
func (c *FrameClock) Resume() {
	if !c.paused {
		return
	}
	now := c.provider.Now()
	c.paused = false
	if !c.pauseStart.IsZero() && now.After(c.pauseStart) {
		c.totalPaused += now.Sub(c.pauseStart)
	}
	c.pauseStart = time.Time{}
	if c.started && now.After(c.last) {
		c.last = now
	}
}

// IsPaused returns current pause state
func (c *FrameClock) IsPaused() bool {
	return c.paused
}

// Elapsed returns match time as of the last tick
func (c *FrameClock) Elapsed() time.Duration {
	return c.elapsed
}

// TotalPauseDuration returns cumulative pause time, including a pause in progress
func (c *FrameClock) TotalPauseDuration() time.Duration {
	total := c.totalPaused
	if c.paused && !c.pauseStart.IsZero() {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}

// StartTime returns the wall-clock reading captured by the first tick
func (c *FrameClock) StartTime() time.Time {
	return c.start
}
