package app

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"life-ca/internal/core"
	"life-ca/internal/sims/life"
)

// Brush selects what a held pointer does to the cell under it.
type Brush int

const (
	BrushNone Brush = iota
	BrushAlive
	BrushDead
)

// Pointer is a pointer position already translated into grid coordinates.
type Pointer struct {
	X, Y  int
	Brush Brush
}

// Input is everything a front end observed during one tick.
type Input struct {
	Step    bool
	Clear   bool
	Reset   bool
	Pointer Pointer
}

// Session owns the simulation and serializes all changes to it. Front ends
// call Apply once per tick; nothing else mutates the grid.
type Session struct {
	sim        *life.Life
	scale      int
	seed       int64
	generation int
}

// NewSession allocates the grid described by cfg. Every cell starts dead.
func NewSession(cfg *Config) (*Session, error) {
	sim, err := life.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, errors.Wrap(err, "new session")
	}
	return &Session{sim: sim, scale: cfg.Scale, seed: cfg.Seed}, nil
}

// Sim exposes the simulation for read-only presentation.
func (s *Session) Sim() *life.Life { return s.sim }

// Generation returns the number of steps since the last clear or reset.
func (s *Session) Generation() int { return s.generation }

// Reseed replaces the seed used by subsequent resets.
func (s *Session) Reseed(seed int64) { s.seed = seed }

// Apply processes one tick of input. Pointer edits land first, then
// clear/reset, then the step, so an edit made on the same tick as a step is
// part of the generation that step reads.
func (s *Session) Apply(in Input) error {
	if err := s.paint(in.Pointer); err != nil {
		return err
	}
	switch {
	case in.Clear:
		s.sim.Clear()
		s.generation = 0
	case in.Reset:
		s.sim.Reset(s.seed)
		s.generation = 0
	}
	if in.Step {
		s.sim.Step()
		s.generation++
	}
	return nil
}

func (s *Session) paint(p Pointer) error {
	var err error
	switch p.Brush {
	case BrushAlive:
		err = s.sim.SetAlive(p.X, p.Y)
	case BrushDead:
		err = s.sim.SetDead(p.X, p.Y)
	default:
		return nil
	}
	// Pointers drift off the grid routinely; those edits are dropped.
	if errors.Is(err, core.ErrOutOfBounds) {
		return nil
	}
	return err
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	size := s.sim.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				textParam("size", "Size", fmt.Sprintf("%dx%d", size.W, size.H)),
				intParam("scale", "Cell px", s.scale),
				textParam("seed", "Seed", strconv.FormatInt(s.seed, 10)),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.sim.Population()),
			},
		},
	}}
}

// PixelToCell converts a pointer position in screen pixels into grid
// coordinates. ok is false for negative positions, which integer division
// would otherwise fold onto row or column zero.
func PixelToCell(px, py, scale int) (x, y int, ok bool) {
	if px < 0 || py < 0 || scale <= 0 {
		return 0, 0, false
	}
	return px / scale, py / scale, true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
