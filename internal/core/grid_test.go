package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewByteGridRejectsNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-4, 4}, {4, -4}} {
		g, err := NewByteGrid(dims[0], dims[1])
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewByteGrid(%d, %d) error = %v, expected ErrInvalidSize", dims[0], dims[1], err)
		}
		if g != nil {
			t.Fatalf("NewByteGrid(%d, %d) returned a grid alongside an error", dims[0], dims[1])
		}
	}
}

func TestByteGridIndexing(t *testing.T) {
	g, err := NewByteGrid(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	if got := g.Index(3, 2); got != 11 {
		t.Fatalf("Index(3,2) = %d, expected 11", got)
	}
	if err := g.Set(1, 2, 1); err != nil {
		t.Fatal(err)
	}
	if g.Cells()[9] != 1 || g.At(1, 2) != 1 {
		t.Fatal("Set did not land on the row-major index")
	}
	if g.Size() != (Size{W: 4, H: 3}) {
		t.Fatalf("unexpected size %+v", g.Size())
	}
}

func TestByteGridBounds(t *testing.T) {
	g, err := NewByteGrid(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {2, 2}} {
		if g.Contains(c[0], c[1]) {
			t.Fatalf("Contains(%d,%d) should be false", c[0], c[1])
		}
		if g.At(c[0], c[1]) != 0 {
			t.Fatalf("At(%d,%d) should read as zero", c[0], c[1])
		}
		if err := g.Set(c[0], c[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) error = %v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d modified by rejected Set", i)
		}
	}
}

func TestByteGridClear(t *testing.T) {
	g, err := NewByteGrid(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	NewRNG(1).FillBinary(g.Cells(), 1)
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}
