// Package gui is the windowed frontend drawn with ebiten
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/ferris-fighter/core"
	"github.com/lixenwraith/ferris-fighter/engine"
	"github.com/lixenwraith/ferris-fighter/game"
	"github.com/lixenwraith/ferris-fighter/scores"
)

// Options configures the window frontend
type Options struct {
	Title      string
	ShowBounds bool
	Best       int

	// OnFrame receives every simulated snapshot; used by the spectator feed
	OnFrame func(game.Snapshot)

	// Mute toggles effect audio; nil hides the key
	Mute func() bool
}

// Game adapts a session to ebiten's Update/Draw loop
type Game struct {
	session *game.Session
	opts    Options
	face    font.Face

	autofire bool
	muted    bool
	snap     game.Snapshot
}

// New creates the frontend for a running session
func New(session *game.Session, opts Options) *Game {
	return &Game{
		session: session,
		opts:    opts,
		face:    basicfont.Face7x13,
		snap:    session.Snapshot(),
	}
}

// Run opens the window and blocks until the player quits
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(int(g.snap.Width), int(g.snap.Height))
	ebiten.SetTPS(ebiten.DefaultTPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update advances the session by one frame
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.autofire = !g.autofire
	}
	if g.opts.Mute != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.muted = g.opts.Mute()
	}

	err := g.session.Update(g.readInput())
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	g.snap = g.session.Snapshot()
	if g.snap.Score > g.opts.Best && g.snap.Phase != engine.PhasePlaying {
		g.opts.Best = g.snap.Score
	}
	if g.opts.OnFrame != nil {
		g.opts.OnFrame(g.snap)
	}
	return nil
}

func (g *Game) readInput() core.Input {
	anyKey := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return core.Input{
		Up:      anyKey(ebiten.KeyArrowUp, ebiten.KeyW),
		Right:   anyKey(ebiten.KeyArrowRight, ebiten.KeyD),
		Down:    anyKey(ebiten.KeyArrowDown, ebiten.KeyS),
		Left:    anyKey(ebiten.KeyArrowLeft, ebiten.KeyA),
		Fire:    g.autofire || anyKey(ebiten.KeySpace, ebiten.KeyX),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}

// Layout keeps the logical screen at the playfield size
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.snap.Width), int(g.snap.Height)
}

// Draw renders the last snapshot
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)

	for _, e := range g.snap.Entities {
		g.drawEntity(screen, e)
		if g.opts.ShowBounds {
			b := e.Box()
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, colornames.Lime, false)
		}
	}

	g.drawHUD(screen)

	switch {
	case g.snap.Phase == engine.PhaseGameOver:
		g.drawOverlay(screen, "GAME OVER", colornames.Red)
	case g.snap.Phase == engine.PhaseWon:
		g.drawOverlay(screen, "YOU SURVIVED", colornames.Lime)
	case g.snap.Paused:
		g.drawCentered(screen, "PAUSED", int(g.snap.Height/2), colornames.White)
	}

	if g.opts.ShowBounds {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  ENT %d", ebiten.ActualTPS(), ebiten.ActualFPS(), len(g.snap.Entities)), 4, int(g.snap.Height)-16)
	}
}

func (g *Game) drawEntity(screen *ebiten.Image, e game.EntityView) {
	b := e.Box()
	cx, cy := b.Center()
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	switch e.Kind {
	case core.KindPlayer:
		body := color.Color(colornames.Orangered)
		if g.snap.Shield {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(math.Max(b.W, b.H)), 2, colornames.Deepskyblue, true)
		}
		vector.DrawFilledRect(screen, x, y+h/3, w, h*2/3, body, true)
		vector.DrawFilledCircle(screen, x+w*0.25, y+h/4, w/8, colornames.White, true)
		vector.DrawFilledCircle(screen, x+w*0.75, y+h/4, w/8, colornames.White, true)

	case core.KindEnemy:
		vector.DrawFilledRect(screen, x, y, w, h, colornames.Firebrick, true)
		g.drawName(screen, e.Name, cx, b.Y)

	case core.KindEnemyVariant:
		vector.DrawFilledRect(screen, x, y, w, h, colornames.Royalblue, true)
		vector.StrokeRect(screen, x, y, w, h, 2, colornames.White, true)
		g.drawName(screen, e.Name, cx, b.Y)

	case core.KindBoss:
		vector.DrawFilledRect(screen, x, y, w, h, colornames.Darkmagenta, true)
		vector.StrokeRect(screen, x, y, w, h, 3, colornames.Violet, true)
		g.drawName(screen, e.Name, cx, b.Y)

	case core.KindEnemyProjectile:
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), w/2, colornames.Gold, true)

	case core.KindPlayerProjectile:
		dx, dy := math.Cos(e.Angle)*b.W/2, -math.Sin(e.Angle)*b.H/2
		vector.StrokeLine(screen, float32(cx-dx), float32(cy-dy), float32(cx+dx), float32(cy+dy), 3, colornames.Orange, true)

	case core.KindPowerGunUpgrade:
		g.drawPowerup(screen, b, "G", colornames.Yellow)
	case core.KindPowerShield:
		g.drawPowerup(screen, b, "S", colornames.Cyan)
	case core.KindPowerBomb:
		g.drawPowerup(screen, b, "B", colornames.Orangered)

	case core.KindDeathSplat, core.KindDeathShutoff:
		base := colornames.Darkred
		if e.Kind == core.KindDeathShutoff {
			base = colornames.Navy
		}
		c := color.RGBA{R: base.R, G: base.G, B: base.B, A: uint8(255 * math.Max(0, math.Min(1, e.LifeFraction)))}
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(b.W/2*(2-e.LifeFraction)), c, true)
	}
}

func (g *Game) drawPowerup(screen *ebiten.Image, b core.Rect, label string, c color.Color) {
	cx, cy := b.Center()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(b.W/2), c, true)
	bounds := text.BoundString(g.face, label)
	text.Draw(screen, label, g.face, int(cx)-bounds.Dx()/2, int(cy)+bounds.Dy()/2, colornames.Black)
}

func (g *Game) drawName(screen *ebiten.Image, name string, cx, top float64) {
	if name == "" {
		return
	}
	bounds := text.BoundString(g.face, name)
	text.Draw(screen, name, g.face, int(cx)-bounds.Dx()/2, int(top)-4, colornames.Lightgray)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.snap.Width), 20, color.RGBA{A: 160}, false)
	parts := []string{
		fmt.Sprintf("SCORE %05d", g.snap.Score),
		"HP " + strings.Repeat("*", max(g.snap.HP, 0)),
		fmt.Sprintf("GUN %d", g.snap.GunLevel),
		"TIME " + scores.FormatElapsed(g.snap.Remaining),
	}
	if g.snap.Shield {
		parts = append(parts, "SHIELD")
	}
	if g.opts.Best > 0 {
		parts = append(parts, fmt.Sprintf("BEST %d", g.opts.Best))
	}
	if g.autofire {
		parts = append(parts, "[AUTO]")
	}
	if g.muted {
		parts = append(parts, "[MUTE]")
	}
	text.Draw(screen, strings.Join(parts, "  "), g.face, 6, 14, colornames.White)
}

func (g *Game) drawOverlay(screen *ebiten.Image, title string, c color.Color) {
	mid := int(g.snap.Height / 2)
	vector.DrawFilledRect(screen, 0, float32(mid-40), float32(g.snap.Width), 80, color.RGBA{A: 190}, false)
	g.drawCentered(screen, title, mid-12, c)
	g.drawCentered(screen, fmt.Sprintf("SCORE %d  KILLS %d", g.snap.Score, g.snap.Kills), mid+8, colornames.White)
	g.drawCentered(screen, "R restart  Q quit", mid+26, colornames.Gray)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	bounds := text.BoundString(g.face, s)
	text.Draw(screen, s, g.face, (int(g.snap.Width)-bounds.Dx())/2, y, c)
}
