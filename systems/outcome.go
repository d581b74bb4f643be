package systems

import (
	"log"
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
)

// OutcomeSystem ends the match when the player is gone or the time limit passes
// The ended phase holds until the session starts a new game
type OutcomeSystem struct{}

// NewOutcomeSystem creates a new outcome system
func NewOutcomeSystem() *OutcomeSystem {
	return &OutcomeSystem{}
}

// Priority returns the system's priority
func (s *OutcomeSystem) Priority() int {
	return constants.PriorityOutcome
}

// Update checks the loss condition before the win condition
func (s *OutcomeSystem) Update(ctx *engine.GameContext, _ time.Duration) {
	if ctx.State.Ended() {
		return
	}

	if player, ok := ctx.Player(); !ok || !player.Alive() {
		s.end(ctx, engine.PhaseGameOver)
		return
	}

	if ctx.State.Elapsed > ctx.Settings.MatchDuration {
		s.end(ctx, engine.PhaseWon)
	}
}

func (s *OutcomeSystem) end(ctx *engine.GameContext, phase engine.GamePhase) {
	ctx.State.Phase = phase
	record := &events.MatchEndedPayload{
		Won:     phase == engine.PhaseWon,
		Score:   ctx.State.Score,
		Name:    ctx.Settings.PlayerName,
		Elapsed: ctx.State.Elapsed,
	}
	log.Printf("match ended: phase=%s score=%d elapsed=%v kills=%d", phase, record.Score, record.Elapsed, ctx.State.Kills)
	ctx.PushEvent(events.EventMatchEnded, record)
}
