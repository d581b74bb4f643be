package game

import (
	"errors"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
	"github.com/lixenwraith/ferris-fighter/status"
	"github.com/lixenwraith/ferris-fighter/systems"
)

// ErrQuit is returned by Update when the player asked to leave
var ErrQuit = errors.New("quit requested")

// Session owns one running game: the world, the systems pipeline, the frame clock and the event router
// All methods must be called from the frame goroutine
type Session struct {
	ctx    *engine.GameContext
	clock  *engine.FrameClock
	router *events.Router[*engine.GameContext]
	spawn  *systems.SpawnSystem

	frames *atomic.Int64

	// Edge detection for toggle inputs delivered as held state
	pauseHeld   bool
	restartHeld bool

	// playerHP survives the world clear at match end for the final HUD
	playerHP int
}

// NewSession creates a session and starts the first match
// A nil time provider uses the monotonic wall clock
func NewSession(settings engine.Settings, tp engine.TimeProvider, metrics *status.Registry) *Session {
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	ctx := engine.NewGameContext(settings, nil, metrics)

	clock := engine.NewFrameClock(tp)
	clock.MaxDelta = settings.MaxFrameDelta

	s := &Session{
		ctx:    ctx,
		clock:  clock,
		router: events.NewRouter[*engine.GameContext](ctx.Events),
		spawn:  systems.NewSpawnSystem(settings.Spawn),
		frames: metrics.Ints.Get(constants.MetricFrames),
	}

	ctx.World.AddSystem(systems.NewCollisionSystem())
	ctx.World.AddSystem(systems.NewOutcomeSystem())
	ctx.World.AddSystem(s.spawn)
	ctx.World.AddSystem(systems.NewMotionSystem())
	ctx.World.AddSystem(systems.NewWeaponSystem())
	ctx.World.AddSystem(systems.NewCullSystem())

	s.NewGame()
	return s
}

// Context exposes the game context for frontends and tests
func (s *Session) Context() *engine.GameContext {
	return s.ctx
}

// Router returns the event router; handlers run on the frame goroutine
func (s *Session) Router() *events.Router[*engine.GameContext] {
	return s.router
}

// Register adds an event handler
func (s *Session) Register(h events.Handler[*engine.GameContext]) {
	s.router.Register(h)
}

// Paused reports whether the match clock is paused
func (s *Session) Paused() bool {
	return s.clock.IsPaused()
}

// Metrics returns the session's metrics registry
func (s *Session) Metrics() *status.Registry {
	return s.ctx.Metrics
}

// NewGame discards the current match and starts a fresh one
// Entity handles keep increasing across matches
func (s *Session) NewGame() {
	ctx := s.ctx
	ctx.World.Clear()
	ctx.State.Reset()
	ctx.Events.Consume()
	s.spawn.Reset()
	s.clock.Reset()

	player := systems.NewPlayer(ctx.Playfield())
	ctx.State.PlayerID = ctx.Spawn(player)
	s.playerHP = player.HP

	log.Printf("match started: player=%q seed=%d spawn=%s", ctx.Settings.PlayerName, ctx.Settings.Seed, ctx.Settings.Spawn.Policy)
	ctx.PushEvent(events.EventMatchStarted, nil)
	s.router.DispatchAll(ctx)
}

// Update advances the game by one frame
// Returns ErrQuit on quit and a wrapped engine.ErrClockSkew when the wall clock runs backwards
func (s *Session) Update(in core.Input) error {
	if in.Quit {
		return ErrQuit
	}
	ctx := s.ctx

	restart := in.Restart && !s.restartHeld
	s.restartHeld = in.Restart
	togglePause := in.Pause && !s.pauseHeld
	s.pauseHeld = in.Pause

	if restart && ctx.State.Ended() {
		s.NewGame()
		return nil
	}
	if ctx.State.Ended() {
		return nil
	}

	elapsed, dt, err := s.clock.Tick()
	if err != nil {
		return fmt.Errorf("frame %d: %w", ctx.State.Frame, err)
	}

	if togglePause {
		s.setPaused(!s.clock.IsPaused())
	}

	if s.clock.IsPaused() {
		s.router.DispatchAll(ctx)
		return nil
	}

	ctx.Input = in
	ctx.State.Frame++
	ctx.State.Elapsed = elapsed
	s.frames.Add(1)

	for _, sys := range ctx.World.Systems() {
		sys.Update(ctx, dt)
		if ctx.State.Ended() {
			break
		}
	}

	if p, ok := ctx.Player(); ok {
		s.playerHP = max(p.HP, 0)
	} else {
		s.playerHP = 0
	}

	if ctx.State.Ended() {
		ctx.World.Clear()
	}
	ctx.RecordEntityCount()
	s.router.DispatchAll(ctx)
	return nil
}

func (s *Session) setPaused(paused bool) {
	if paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
	s.ctx.PushEvent(events.EventPauseToggled, &events.PausePayload{Paused: paused})
}
