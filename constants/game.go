package constants

import "time"

// Playfield
const (
	// DefaultWorldWidth is the playfield width in world pixels
	DefaultWorldWidth = 600

	// DefaultWorldHeight is the playfield height in world pixels
	DefaultWorldHeight = 800

	// DefaultTitle is the window or terminal title
	DefaultTitle = "Ferris Fighter"

	// DefaultPlayerName is recorded with scores when none is configured
	DefaultPlayerName = "FERRIS"
)

// Match Timing
const (
	// MatchDuration is how long the player must survive to win
	MatchDuration = 5 * time.Minute

	// SecondsUntilMaxDifficulty is when the difficulty factor reaches its floor
	SecondsUntilMaxDifficulty = 180.0

	// MinDifficultyFactor is the floor of the spawn interval multiplier
	MinDifficultyFactor = 0.1
)

// Frame Timing
const (
	// FrameRate is the target host refresh rate for the terminal frontend
	FrameRate = 60

	// FrameUpdateInterval is the duration of one host frame
	FrameUpdateInterval = time.Second / FrameRate

	// MaxFrameDelta caps the delta fed to the simulation after a stall
	MaxFrameDelta = 250 * time.Millisecond
)

// Scores
const (
	// MaxScores is the size of the high score table
	MaxScores = 10

	// ScoreEnemy is awarded when an Enemy is shot down
	ScoreEnemy = 10

	// ScoreEnemyVariant is awarded when an EnemyVariant is shot down
	ScoreEnemyVariant = 25

	// ScoreBoss is awarded when a Boss is shot down
	ScoreBoss = 500
)

// EnemyNames are the display names hostile ships pick from
var EnemyNames = [...]string{
	"NULL POINTER",
	"DANGLING REF",
	"SEGFAULT",
	"DOUBLE FREE",
}

// BossName is the display name of every boss
const BossName = "KERNEL PANIC"
