package term

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/app"
	"life-ca/internal/render"
)

func newSession(t *testing.T, w, h int) *app.Session {
	t.Helper()
	cfg := app.NewConfig()
	cfg.Width = w
	cfg.Height = h
	s, err := app.NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	return screen
}

func TestTranslateKeys(t *testing.T) {
	cases := []struct {
		ev   tcell.Event
		want app.Input
		quit bool
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.Input{Step: true}, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), app.Input{Step: true}, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), app.Input{Clear: true}, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), app.Input{Reset: true}, false, true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.Input{}, true, true},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.Input{}, true, true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.Input{}, true, true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), app.Input{}, false, false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), app.Input{}, false, false},
	}
	for i, tc := range cases {
		in, quit, ok := Translate(tc.ev)
		if in != tc.want || quit != tc.quit || ok != tc.ok {
			t.Fatalf("case %d: got (%+v, %v, %v), expected (%+v, %v, %v)", i, in, quit, ok, tc.want, tc.quit, tc.ok)
		}
	}
}

func TestTranslateMouse(t *testing.T) {
	in, _, ok := Translate(tcell.NewEventMouse(7, 3, tcell.ButtonPrimary, tcell.ModNone))
	if !ok || in.Pointer != (app.Pointer{X: 3, Y: 3, Brush: app.BrushAlive}) {
		t.Fatalf("primary button: got %+v ok=%v", in.Pointer, ok)
	}
	in, _, ok = Translate(tcell.NewEventMouse(4, 0, tcell.ButtonPrimary|tcell.ButtonSecondary, tcell.ModNone))
	if !ok || in.Pointer != (app.Pointer{X: 2, Y: 0, Brush: app.BrushDead}) {
		t.Fatalf("both buttons: got %+v ok=%v", in.Pointer, ok)
	}
	if _, _, ok = Translate(tcell.NewEventMouse(4, 0, tcell.ButtonNone, tcell.ModNone)); ok {
		t.Fatal("motion without buttons should be ignored")
	}
}

func TestDrawPaintsCellsAndStatus(t *testing.T) {
	session := newSession(t, 3, 2)
	if err := session.Apply(app.Input{Pointer: app.Pointer{X: 1, Y: 1, Brush: app.BrushAlive}}); err != nil {
		t.Fatal(err)
	}
	screen := newScreen(t, 40, 4)
	defer screen.Fini()

	p := render.DefaultPalette()
	term := New(screen, session, p)
	term.Draw()

	_, _, live, _ := screen.GetContent(2, 1)
	_, liveBg, _ := live.Decompose()
	if liveBg != toTcell(p.On) {
		t.Fatalf("live cell background = %v, expected %v", liveBg, toTcell(p.On))
	}
	_, _, live2, _ := screen.GetContent(3, 1)
	if _, bg, _ := live2.Decompose(); bg != toTcell(p.On) {
		t.Fatal("second column of a live cell should share its color")
	}
	_, _, dead, _ := screen.GetContent(0, 0)
	if _, bg, _ := dead.Decompose(); bg != toTcell(p.Off) {
		t.Fatalf("dead cell background = %v, expected %v", bg, toTcell(p.Off))
	}

	want := "gen 0  alive 1"
	for i, r := range want {
		got, _, _, _ := screen.GetContent(i, 2)
		if got != r {
			t.Fatalf("status line column %d = %q, expected %q", i, got, r)
		}
	}
}

func TestRunAppliesEventsInOrder(t *testing.T) {
	session := newSession(t, 3, 3)
	screen := newScreen(t, 40, 5)

	for x := 0; x < 3; x++ {
		screen.InjectMouse(x*cellColumns, 1, tcell.ButtonPrimary, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := New(screen, session, render.DefaultPalette()).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if session.Generation() != 1 {
		t.Fatalf("expected one generation, got %d", session.Generation())
	}
	sim := session.Sim()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := x == 1
			if sim.Alive(x, y) != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, sim.Alive(x, y), want)
			}
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	session := newSession(t, 2, 2)
	screen := newScreen(t, 10, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(screen, session, render.DefaultPalette()).Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
