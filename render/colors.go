package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ferris-fighter/core"
)

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUDDim     = tcell.NewRGBColor(140, 140, 160)
	RgbBounds     = tcell.NewRGBColor(60, 60, 80)

	RgbPlayer       = tcell.NewRGBColor(255, 140, 40)  // Ferris orange
	RgbShield       = tcell.NewRGBColor(100, 200, 255) // Player tint while shielded
	RgbEnemy        = tcell.NewRGBColor(255, 80, 80)
	RgbEnemyVariant = tcell.NewRGBColor(100, 150, 255) // Blue screen
	RgbBoss         = tcell.NewRGBColor(220, 60, 220)
	RgbEnemyShot    = tcell.NewRGBColor(255, 220, 120)
	RgbPlayerShot   = tcell.NewRGBColor(255, 255, 255)
	RgbPowerGun     = tcell.NewRGBColor(255, 255, 0)
	RgbPowerShield  = tcell.NewRGBColor(0, 200, 200)
	RgbPowerBomb    = tcell.NewRGBColor(255, 100, 0)
	RgbSplat        = tcell.NewRGBColor(180, 50, 50)
	RgbShutoff      = tcell.NewRGBColor(60, 100, 200)

	RgbLost = tcell.NewRGBColor(255, 80, 80)
	RgbWon  = tcell.NewRGBColor(50, 255, 50)
)

// sprite is how one kind is drawn in a single cell
type sprite struct {
	glyph rune
	color tcell.Color
	fill  bool // paint the whole collision box instead of one cell
}

var sprites = [core.KindCount]sprite{
	core.KindPlayer:           {'A', RgbPlayer, false},
	core.KindEnemy:            {'V', RgbEnemy, false},
	core.KindEnemyVariant:     {'W', RgbEnemyVariant, false},
	core.KindBoss:             {'█', RgbBoss, true},
	core.KindEnemyProjectile:  {'•', RgbEnemyShot, false},
	core.KindPlayerProjectile: {'|', RgbPlayerShot, false},
	core.KindPowerGunUpgrade:  {'G', RgbPowerGun, false},
	core.KindPowerShield:      {'S', RgbPowerShield, false},
	core.KindPowerBomb:        {'B', RgbPowerBomb, false},
	core.KindDeathSplat:       {'*', RgbSplat, false},
	core.KindDeathShutoff:     {'#', RgbShutoff, false},
}

// fade scales a color toward the background by the remaining life fraction
func fade(c tcell.Color, life float64) tcell.Color {
	if life >= 1 {
		return c
	}
	if life < 0 {
		life = 0
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(a, base int32) int32 { return base + int32(float64(a-base)*life) }
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}
