package life

import (
	"image/color"
	"strconv"

	"sphere-ca/internal/core"
	"sphere-ca/pkg/sphere"
)

// Config holds parameters for the spherical Game of Life.
type Config struct {
	Side    int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Side: 256, Density: 0.5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["side"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Side = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Rule is Conway's transition: a live cell survives with 2 or 3 live
// neighbors, a dead cell is born with exactly 3.
func Rule(neighbors [8]uint8, current uint8) uint8 {
	count := 0
	for _, v := range neighbors {
		if v != 0 {
			count++
		}
	}
	if count == 3 || (count == 2 && current != 0) {
		return 1
	}
	return 0
}

// Life runs Conway's Game of Life on the cube-sphere surface.
type Life struct {
	side    int
	density float64
	cur     *sphere.Grid[uint8]
	nxt     *sphere.Grid[uint8]
}

// New returns a Life simulation on a cube-sphere of the given face side.
func New(side int, density float64) *Life {
	return &Life{
		side:    side,
		density: density,
		cur:     sphere.New[uint8](side),
		nxt:     sphere.New[uint8](side),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Side returns the cube face side length.
func (l *Life) Side() int { return l.side }

// At returns the current value of the cell at p.
func (l *Life) At(p sphere.Point) uint8 { return l.cur.At(p) }

// Palette maps dead and live cells to display colors.
func (l *Life) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}
}

// Reset randomizes the sphere using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed)
	l.cur.ForEach(func(p sphere.Point) {
		var v uint8
		if rng.Chance(l.density) {
			v = 1
		}
		l.cur.Set(p, v)
	})
}

// Step advances the simulation by one generation and swaps the buffers.
func (l *Life) Step() {
	l.nxt.StepFrom(l.cur, Rule)
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Side, c.Density)
	})
}
