package briansbrain

import (
	"image/color"
	"strconv"

	"sphere-ca/internal/core"
	"sphere-ca/pkg/sphere"
)

const (
	stateReady  = 0
	stateFiring = 1
	stateDying  = 2
)

// Rule is Brian's Brain: a firing cell starts dying, a dying cell goes
// ready, and a ready cell fires when exactly two neighbors are firing.
func Rule(neighbors [8]uint8, current uint8) uint8 {
	switch current {
	case stateFiring:
		return stateDying
	case stateDying:
		return stateReady
	}
	firing := 0
	for _, v := range neighbors {
		if v == stateFiring {
			firing++
		}
	}
	if firing == 2 {
		return stateFiring
	}
	return stateReady
}

// Brain runs Brian's Brain on the cube-sphere surface.
type Brain struct {
	side int
	cur  *sphere.Grid[uint8]
	nxt  *sphere.Grid[uint8]
}

// New creates a Brain simulation with the provided face side.
func New(side int) *Brain {
	return &Brain{
		side: side,
		cur:  sphere.New[uint8](side),
		nxt:  sphere.New[uint8](side),
	}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Side returns the cube face side length.
func (b *Brain) Side() int { return b.side }

// At returns the current state of the cell at p.
func (b *Brain) At(p sphere.Point) uint8 { return b.cur.At(p) }

// Palette maps the three states to display colors.
func (b *Brain) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
		{R: 64, G: 96, B: 255, A: 255},
	}
}

// Reset seeds a sparse scattering of firing cells.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed)
	b.cur.ForEach(func(p sphere.Point) {
		var v uint8
		if rng.IntN(8) == 0 {
			v = stateFiring
		}
		b.cur.Set(p, v)
	})
}

// Step advances the automaton by one tick and swaps the buffers.
func (b *Brain) Step() {
	b.nxt.StepFrom(b.cur, Rule)
	b.cur, b.nxt = b.nxt, b.cur
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		side := 256
		if cfg != nil {
			if v, ok := cfg["side"]; ok {
				if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
					side = parsed
				}
			}
		}
		return New(side)
	})
}
