// Package input turns terminal key events into per-frame game input
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
)

// action is a key that counts as held for a short window after each press
type action uint8

const (
	actUp action = iota
	actRight
	actDown
	actLeft
	actFire
	actionCount
)

// opposite returns the direction a press cancels
var opposite = [actionCount]action{
	actUp:    actDown,
	actDown:  actUp,
	actLeft:  actRight,
	actRight: actLeft,
	actFire:  actionCount,
}

// Tracker converts key presses into held state
// Terminals report presses and auto-repeats but never releases, so a key stays
// held for constants.KeyHoldWindow after its last press. Toggle keys latch until read.
// HandleEvent runs on the poller goroutine, Input on the frame goroutine.
type Tracker struct {
	mu  sync.Mutex
	now func() time.Time

	pressed  [actionCount]time.Time
	autofire bool

	quit, pause, restart, mute bool
}

// NewTracker creates a tracker; nil now uses the wall clock
func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// HandleEvent records one terminal event
func (t *Tracker) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch key.Key() {
	case tcell.KeyUp:
		t.press(actUp)
	case tcell.KeyDown:
		t.press(actDown)
	case tcell.KeyLeft:
		t.press(actLeft)
	case tcell.KeyRight:
		t.press(actRight)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.quit = true
	case tcell.KeyEnter:
		t.restart = true
	case tcell.KeyRune:
		t.handleRune(key.Rune())
	}
}

func (t *Tracker) handleRune(r rune) {
	switch r {
	case 'w', 'k':
		t.press(actUp)
	case 's', 'j':
		t.press(actDown)
	case 'a', 'h':
		t.press(actLeft)
	case 'd', 'l':
		t.press(actRight)
	case ' ', 'x':
		t.press(actFire)
	case 'f':
		t.autofire = !t.autofire
	case 'p':
		t.pause = true
	case 'r':
		t.restart = true
	case 'm':
		t.mute = true
	case 'q':
		t.quit = true
	}
}

func (t *Tracker) press(a action) {
	t.pressed[a] = t.now()
	if o := opposite[a]; o < actionCount {
		t.pressed[o] = time.Time{}
	}
}

func (t *Tracker) held(a action, now time.Time) bool {
	last := t.pressed[a]
	return !last.IsZero() && now.Sub(last) < constants.KeyHoldWindow
}

// Input returns this frame's input and clears latched toggles
func (t *Tracker) Input() core.Input {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	in := core.Input{
		Up:      t.held(actUp, now),
		Right:   t.held(actRight, now),
		Down:    t.held(actDown, now),
		Left:    t.held(actLeft, now),
		Fire:    t.autofire || t.held(actFire, now),
		Quit:    t.quit,
		Pause:   t.pause,
		Restart: t.restart,
	}
	t.pause, t.restart = false, false
	return in
}

// Autofire reports whether the gun fires without holding a key
func (t *Tracker) Autofire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.autofire
}

// TakeMuteToggle reports and clears a pending mute request
func (t *Tracker) TakeMuteToggle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	m := t.mute
	t.mute = false
	return m
}

// Poll feeds screen events into the tracker until the screen is finalized
// Events other than keys are forwarded to other, which may be nil
func Poll(screen tcell.Screen, t *Tracker, other chan<- tcell.Event) {
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventKey); ok {
				t.HandleEvent(ev)
				continue
			}
			if other != nil {
				select {
				case other <- ev:
				default:
				}
			}
		}
	})
}
