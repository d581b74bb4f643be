package engine

import (
	"errors"
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	if now := mock.Now(); !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	mock.Advance(90 * time.Minute)
	mock.Rewind(30 * time.Minute)
	if want := startTime.Add(time.Hour); !mock.Now().Equal(want) {
		t.Errorf("Expected time to be %v, got %v", want, mock.Now())
	}
}

func TestFrameClock_FirstDeltaZero(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)

	elapsed, delta, err := clock.Tick()
	if err != nil || elapsed != 0 || delta != 0 {
		t.Fatalf("first tick = (%v, %v, %v), want zeros", elapsed, delta, err)
	}

	mock.Advance(16 * time.Millisecond)
	elapsed, delta, err = clock.Tick()
	if err != nil || delta != 16*time.Millisecond || elapsed != 16*time.Millisecond {
		t.Errorf("second tick = (%v, %v, %v)", elapsed, delta, err)
	}

	// Reset starts a fresh timeline with a zero first delta again
	clock.Reset()
	mock.Advance(time.Hour)
	if elapsed, delta, _ := clock.Tick(); elapsed != 0 || delta != 0 {
		t.Errorf("tick after reset = (%v, %v), want zeros", elapsed, delta)
	}
}

func TestFrameClock_ClockSkew(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	clock.Tick()

	mock.Advance(50 * time.Millisecond)
	clock.Tick()

	mock.Rewind(time.Second)
	_, delta, err := clock.Tick()
	if !errors.Is(err, ErrClockSkew) {
		t.Fatalf("err = %v, want ErrClockSkew", err)
	}
	if delta != 0 {
		t.Errorf("delta on skew = %v, want 0", delta)
	}
}

func TestFrameClock_PauseExcludesTime(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	clock.Tick()

	mock.Advance(100 * time.Millisecond)
	clock.Tick()

	clock.Pause()
	for i := 0; i < 5; i++ {
		mock.Advance(time.Second)
		if _, delta, _ := clock.Tick(); delta != 0 {
			t.Fatalf("paused delta = %v, want 0", delta)
		}
	}
	if !clock.IsPaused() {
		t.Fatal("clock should be paused")
	}
	clock.Resume()

	mock.Advance(100 * time.Millisecond)
	elapsed, delta, _ := clock.Tick()
	if delta != 100*time.Millisecond {
		t.Errorf("delta after resume = %v, want 100ms", delta)
	}
	if elapsed != 200*time.Millisecond {
		t.Errorf("elapsed = %v, want 200ms", elapsed)
	}
	if clock.TotalPauseDuration() != 5*time.Second {
		t.Errorf("total pause = %v, want 5s", clock.TotalPauseDuration())
	}
}

func TestFrameClock_MaxDelta(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewFrameClock(mock)
	clock.MaxDelta = 250 * time.Millisecond
	clock.Tick()

	mock.Advance(3 * time.Second)
	elapsed, delta, _ := clock.Tick()
	if delta != 250*time.Millisecond || elapsed != 250*time.Millisecond {
		t.Errorf("stalled tick = (%v, %v), want capped 250ms", elapsed, delta)
	}
}
