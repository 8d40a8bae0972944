package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract the drivers need from a cellular automaton.
type Sim interface {
	Name() string
	Size() Size
	Step()
	Cells() []uint8
}

