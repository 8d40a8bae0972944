// Package term runs a session inside a terminal. Each cell is drawn as two
// columns so it looks roughly square; a status line sits below the grid.
package term

import (
	"context"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"life-ca/internal/app"
	"life-ca/internal/render"
)

// cellColumns is the number of terminal columns per grid cell.
const cellColumns = 2

const helpText = "space step  c clear  r random  q quit"

// Terminal draws a session on a tcell screen and feeds it terminal input.
type Terminal struct {
	screen  tcell.Screen
	session *app.Session
	on, off tcell.Style
}

// New wraps an initialized screen.
func New(screen tcell.Screen, session *app.Session, p render.Palette) *Terminal {
	return &Terminal{
		screen:  screen,
		session: session,
		on:      tcell.StyleDefault.Background(toTcell(p.On)),
		off:     tcell.StyleDefault.Background(toTcell(p.Off)),
	}
}

// Run pumps events into the session until the user quits, ctx is cancelled
// or the session reports an error. The screen is finalized on return.
func (t *Terminal) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	events := make(chan app.Input)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				t.screen.Sync()
			}
			in, quit, ok := Translate(ev)
			if !ok {
				continue
			}
			if quit {
				cancel()
				return nil
			}
			select {
			case events <- in:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Fini unblocks PollEvent in the pump goroutine.
		defer t.screen.Fini()
		defer cancel()
		t.Draw()
		for {
			select {
			case <-ctx.Done():
				return nil
			case in := <-events:
				if err := t.session.Apply(in); err != nil {
					return err
				}
				t.Draw()
			}
		}
	})

	return g.Wait()
}

// Translate maps a terminal event onto one tick of session input. ok is
// false for events the session does not care about.
func Translate(ev tcell.Event) (in app.Input, quit bool, ok bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return in, true, true
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ', 'n', 'N':
				in.Step = true
			case 'c', 'C':
				in.Clear = true
			case 'r', 'R':
				in.Reset = true
			case 'q', 'Q':
				return in, true, true
			default:
				return in, false, false
			}
			return in, false, true
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		in.Pointer = app.Pointer{X: x / cellColumns, Y: y}
		switch {
		case ev.Buttons()&tcell.ButtonSecondary != 0:
			in.Pointer.Brush = app.BrushDead
		case ev.Buttons()&tcell.ButtonPrimary != 0:
			in.Pointer.Brush = app.BrushAlive
		default:
			return in, false, false
		}
		return in, false, true
	case *tcell.EventResize:
		return in, false, true
	}
	return in, false, false
}

// Draw paints the grid and status line and shows the result.
func (t *Terminal) Draw() {
	sim := t.session.Sim()
	size := sim.Size()
	cells := sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := t.off
			if cells[y*size.W+x] != 0 {
				style = t.on
			}
			for c := 0; c < cellColumns; c++ {
				t.screen.SetContent(x*cellColumns+c, y, ' ', nil, style)
			}
		}
	}
	status := fmt.Sprintf("gen %d  alive %d  %s", t.session.Generation(), sim.Population(), helpText)
	t.drawLine(size.H, status)
	t.screen.Show()
}

func (t *Terminal) drawLine(y int, s string) {
	w, _ := t.screen.Size()
	x := 0
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
	for ; x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
