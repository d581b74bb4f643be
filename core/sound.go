package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPlayerShot  SoundType = iota // Player gun fired
	SoundEnemyShot                    // Enemy, variant or boss fired
	SoundHit                          // Damage landed on the player or a hostile
	SoundExplosion                    // Hostile destroyed by damage
	SoundPowerup                      // Powerup collected
	SoundShieldBreak                  // Shield absorbed a hit
	SoundBomb                         // Power bomb detonated
	SoundGameOver                     // Match lost
	SoundVictory                      // Match won
	SoundTypeCount
)
