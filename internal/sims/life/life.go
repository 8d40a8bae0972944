package life

import (
	"github.com/pkg/errors"

	"life-ca/internal/core"
)

// defaultDensity is the share of live cells produced by Reset.
const defaultDensity = 0.25

// Life implements Conway's Game of Life on a bounded grid. Cells outside the
// grid are treated as permanently dead; there is no wrapping.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Life simulation with every cell dead.
func New(w, h int) (*Life, error) {
	cur, err := core.NewByteGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "life: allocate grid")
	}
	nxt, err := core.NewByteGrid(w, h)
	if err != nil {
		return nil, errors.Wrap(err, "life: allocate staging grid")
	}
	return &Life{cur: cur, nxt: nxt}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid exposes the current generation for read-only neighbor queries.
func (l *Life) Grid() *core.ByteGrid { return l.cur }

// Alive reports whether the cell at (x, y) is alive.
func (l *Life) Alive(x, y int) bool { return l.cur.At(x, y) == Alive }

// Step advances the simulation by one generation. Every next state is
// computed from the current buffer before the buffers are swapped, so scan
// order never leaks into the result.
func (l *Life) Step() {
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	w, h := l.cur.W, l.cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = NextState(cur[idx], CountLiveNeighbors(l.cur, x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// SetAlive marks the cell at (x, y) alive without running the rule.
func (l *Life) SetAlive(x, y int) error {
	return errors.Wrap(l.cur.Set(x, y, Alive), "life: set alive")
}

// SetDead marks the cell at (x, y) dead without running the rule.
func (l *Life) SetDead(x, y int) error {
	return errors.Wrap(l.cur.Set(x, y, Dead), "life: set dead")
}

// Clear kills every cell.
func (l *Life) Clear() {
	l.cur.Clear()
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	core.NewRNG(seed).FillBinary(l.cur.Cells(), defaultDensity)
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	count := 0
	for _, c := range l.cur.Cells() {
		if c == Alive {
			count++
		}
	}
	return count
}
