package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/events"
)

func TestOutcome_GameOverWhenPlayerDies(t *testing.T) {
	ctx := newTestContext(t)
	player := addPlayer(ctx)
	ctx.State.Score = 120
	sys := NewOutcomeSystem()

	sys.Update(ctx, 0)
	if ctx.State.Ended() {
		t.Fatal("match ended with a live player")
	}

	player.HP = 0
	sys.Update(ctx, 0)
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Fatalf("phase = %v, want game_over", ctx.State.Phase)
	}

	ended := eventsOfType(ctx.Events.Consume(), events.EventMatchEnded)
	if len(ended) != 1 {
		t.Fatalf("match ended events = %d, want 1", len(ended))
	}
	p := ended[0].Payload.(*events.MatchEndedPayload)
	if p.Won || p.Score != 120 || p.Name != ctx.Settings.PlayerName {
		t.Errorf("payload = %+v", p)
	}

	// Terminal phase is sticky
	sys.Update(ctx, 0)
	if ctx.Events.Len() != 0 {
		t.Error("ended match emitted a second record")
	}
}

func TestOutcome_MissingPlayerIsGameOver(t *testing.T) {
	ctx := newTestContext(t)
	NewOutcomeSystem().Update(ctx, 0)
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Errorf("phase = %v, want game_over", ctx.State.Phase)
	}
}

func TestOutcome_WinAfterTimeLimit(t *testing.T) {
	ctx := newTestContext(t)
	addPlayer(ctx)
	ctx.Settings.MatchDuration = time.Minute
	sys := NewOutcomeSystem()

	ctx.State.Elapsed = time.Minute
	sys.Update(ctx, 0)
	if ctx.State.Ended() {
		t.Fatal("match ended exactly at the limit")
	}

	ctx.State.Elapsed = time.Minute + time.Millisecond
	sys.Update(ctx, 0)
	if ctx.State.Phase != engine.PhaseWon {
		t.Fatalf("phase = %v, want won", ctx.State.Phase)
	}
	ended := eventsOfType(ctx.Events.Consume(), events.EventMatchEnded)
	if len(ended) != 1 || !ended[0].Payload.(*events.MatchEndedPayload).Won {
		t.Errorf("match ended events = %+v", ended)
	}
}

func TestOutcome_LossCheckedBeforeWin(t *testing.T) {
	ctx := newTestContext(t)
	player := addPlayer(ctx)
	player.HP = 0
	ctx.State.Elapsed = ctx.Settings.MatchDuration + time.Second

	NewOutcomeSystem().Update(ctx, 0)
	if ctx.State.Phase != engine.PhaseGameOver {
		t.Errorf("phase = %v, want game_over", ctx.State.Phase)
	}
}
