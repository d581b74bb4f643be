package engine

import (
	"time"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
)

// GamePhase is the match state machine
type GamePhase uint8

const (
	// PhasePlaying is an active match
	PhasePlaying GamePhase = iota

	// PhaseGameOver is reached when no live player remains
	PhaseGameOver

	// PhaseWon is reached when the match time limit passes with the player alive
	PhaseWon
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	}
	return "unknown"
}

// GameState is per-match progress outside the entity collection
// Owned by the frame goroutine; frontends read it through session snapshots
type GameState struct {
	Phase GamePhase

	// PlayerID is the handle of the player entity; zero when none was spawned
	PlayerID core.EntityID

	Score        int
	GunLevel     int
	ShieldActive bool

	Elapsed time.Duration
	Frame   int64

	// Kills counts hostiles destroyed by damage
	Kills int
}

// NewGameState returns the state of a fresh match
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reset returns the state to a fresh match
func (s *GameState) Reset() {
	*s = GameState{GunLevel: 1}
}

// AddScore adds points to the match score
func (s *GameState) AddScore(points int) {
	s.Score += points
}

// UpgradeGun raises the gun level up to the cap and returns the new level
func (s *GameState) UpgradeGun() int {
	if s.GunLevel < constants.MaxGunLevel {
		s.GunLevel++
	}
	return s.GunLevel
}

// ConsumeShield clears an active shield and reports whether one was active
func (s *GameState) ConsumeShield() bool {
	if !s.ShieldActive {
		return false
	}
	s.ShieldActive = false
	return true
}

// Ended reports whether the match reached a terminal phase
func (s *GameState) Ended() bool {
	return s.Phase != PhasePlaying
}
