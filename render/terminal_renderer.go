// Package render draws game snapshots into a tcell screen
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ferris-fighter/constants"
	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/game"
	"github.com/lixenwraith/ferris-fighter/scores"
)

// HUD carries frontend state that is not part of the simulation
type HUD struct {
	Title    string
	Best     int
	Autofire bool
	Muted    bool
}

// TerminalRenderer scales world coordinates onto the terminal grid
type TerminalRenderer struct {
	screen     tcell.Screen
	showBounds bool

	// Per-frame layout
	cols, rows int
	sx, sy     float64
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, showBounds bool) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, showBounds: showBounds}
}

// RenderFrame draws one snapshot and shows it
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot, hud HUD) {
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(base)
	r.screen.Clear()

	r.cols, r.rows = r.screen.Size()
	field := r.rows - constants.HUDRows
	if r.cols <= 0 || field <= 0 || snap.Width <= 0 || snap.Height <= 0 {
		r.screen.Show()
		return
	}
	r.sx = float64(r.cols) / snap.Width
	r.sy = float64(field) / snap.Height

	if r.showBounds {
		for _, e := range snap.Entities {
			r.drawBounds(e.Box(), base)
		}
	}
	for _, e := range snap.Entities {
		r.drawEntity(e, snap.Shield, base)
	}

	r.drawHUD(snap, hud, base)

	switch {
	case snap.Phase == engine.PhaseGameOver:
		r.drawOverlay(snap, "GAME OVER", RgbLost, base)
	case snap.Phase == engine.PhaseWon:
		r.drawOverlay(snap, "YOU SURVIVED", RgbWon, base)
	case snap.Paused:
		r.drawCentered(r.rows/2, "PAUSED", base.Foreground(RgbStatusBar).Bold(true))
	}

	r.screen.Show()
}

// cell maps a world point to a terminal cell; ok is false off the playfield
func (r *TerminalRenderer) cell(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x * r.sx)
	row = int(y*r.sy) + constants.HUDRows
	return col, row, col < r.cols && row >= constants.HUDRows && row < r.rows
}

func (r *TerminalRenderer) drawEntity(e game.EntityView, shield bool, base tcell.Style) {
	if e.Kind >= core.KindCount || e.Kind == core.KindEmpty {
		return
	}
	sp := sprites[e.Kind]
	color := sp.color
	if e.Kind.IsEffect() {
		color = fade(color, e.LifeFraction)
	}
	if e.Kind == core.KindPlayer && shield {
		color = RgbShield
	}
	style := base.Foreground(color)

	box := e.Box()
	if sp.fill {
		c0, r0 := int(box.X*r.sx), int(box.Y*r.sy)+constants.HUDRows
		c1, r1 := int((box.X+box.W)*r.sx), int((box.Y+box.H)*r.sy)+constants.HUDRows
		for row := max(r0, constants.HUDRows); row <= r1 && row < r.rows; row++ {
			for col := max(c0, 0); col <= c1 && col < r.cols; col++ {
				r.screen.SetContent(col, row, sp.glyph, nil, style)
			}
		}
	} else if col, row, ok := r.cell(box.Center()); ok {
		r.screen.SetContent(col, row, sp.glyph, nil, style)
	}

	if e.Name != "" && (e.Kind == core.KindEnemy || e.Kind == core.KindEnemyVariant || e.Kind == core.KindBoss) {
		cx, _ := box.Center()
		if col, row, ok := r.cell(cx, box.Y); ok && row-1 >= constants.HUDRows {
			r.drawText(col-len(e.Name)/2, row-1, e.Name, base.Foreground(color).Dim(true))
		}
	}
}

func (r *TerminalRenderer) drawBounds(box core.Rect, base tcell.Style) {
	style := base.Foreground(RgbBounds)
	for _, p := range [][2]float64{
		{box.X, box.Y},
		{box.X + box.W, box.Y},
		{box.X, box.Y + box.H},
		{box.X + box.W, box.Y + box.H},
	} {
		if col, row, ok := r.cell(p[0], p[1]); ok {
			r.screen.SetContent(col, row, '+', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawHUD(snap game.Snapshot, hud HUD, base tcell.Style) {
	style := base.Foreground(RgbStatusBar)
	dim := base.Foreground(RgbHUDDim)

	for col := 0; col < r.cols; col++ {
		r.screen.SetContent(col, 0, ' ', nil, base)
	}

	parts := []string{
		strings.ToUpper(hud.Title),
		fmt.Sprintf("SCORE %05d", snap.Score),
		fmt.Sprintf("HP %s", strings.Repeat("♥", max(snap.HP, 0))),
		fmt.Sprintf("GUN %d", snap.GunLevel),
		"TIME " + scores.FormatElapsed(snap.Remaining),
	}
	if snap.Shield {
		parts = append(parts, "SHIELD")
	}
	x := r.drawText(0, 0, strings.Join(parts, "  "), style)

	var flags []string
	if hud.Best > 0 {
		flags = append(flags, fmt.Sprintf("BEST %d", hud.Best))
	}
	if hud.Autofire {
		flags = append(flags, "[AUTO]")
	}
	if hud.Muted {
		flags = append(flags, "[MUTE]")
	}
	if len(flags) > 0 {
		r.drawText(x+2, 0, strings.Join(flags, " "), dim)
	}
}

func (r *TerminalRenderer) drawOverlay(snap game.Snapshot, title string, color tcell.Color, base tcell.Style) {
	mid := r.rows / 2
	r.drawCentered(mid-1, title, base.Foreground(color).Bold(true))
	r.drawCentered(mid+1, fmt.Sprintf("SCORE %d  KILLS %d", snap.Score, snap.Kills), base.Foreground(RgbStatusBar))
	r.drawCentered(mid+2, "r restart  q quit", base.Foreground(RgbHUDDim))
}

func (r *TerminalRenderer) drawCentered(row int, s string, style tcell.Style) {
	r.drawText((r.cols-len([]rune(s)))/2, row, s, style)
}

// drawText writes s clipped to the screen and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.rows {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < r.cols {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
