//go:build ebiten

package app

import (
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	palette render.Palette
	repeat  *core.KeyRepeat

	scale    int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	sim := session.Sim()
	size := sim.Size()
	g := &Game{
		session: session,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		palette: render.DefaultPalette(),
		repeat:  core.NewKeyRepeat(cfg.RepeatDelay, cfg.RepeatInterval),
		scale:   cfg.Scale,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(sim, session, hudWidth)
		g.hudWidth = hudWidth
	}
	return g
}

// Update polls input and hands the tick to the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	in := Input{
		Step:    g.repeat.Fire(inpututil.KeyPressDuration(ebiten.KeySpace)) || inpututil.IsKeyJustPressed(ebiten.KeyN),
		Clear:   inpututil.IsKeyJustPressed(ebiten.KeyC),
		Reset:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		Pointer: g.pointer(),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(time.Now().UnixNano())
		in.Reset = true
	}

	g.overlay.Update()
	if err := g.session.Apply(in); err != nil {
		return err
	}
	g.hud.Update()
	return nil
}

func (g *Game) pointer() Pointer {
	brush := BrushNone
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		brush = BrushAlive
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		brush = BrushDead
	}
	if brush == BrushNone {
		return Pointer{}
	}
	mx, my := ebiten.CursorPosition()
	x, y, ok := PixelToCell(mx, my, g.scale)
	if !ok {
		return Pointer{}
	}
	return Pointer{X: x, Y: y, Brush: brush}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.session.Sim().Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
