package core

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Its dimensions are fixed at construction.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) (*ByteGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", w, h)
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Contains reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) Contains(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-range coordinates read as zero.
func (g *ByteGrid) At(x, y int) uint8 {
	if !g.Contains(x, y) {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Set stores v at (x, y). Coordinates are never wrapped or clamped.
func (g *ByteGrid) Set(x, y int, v uint8) error {
	if !g.Contains(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) outside %dx%d", x, y, g.W, g.H)
	}
	g.data[g.Index(x, y)] = v
	return nil
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
