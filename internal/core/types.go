package core

import (
	"image/color"

	"sphere-ca/pkg/sphere"
)

// Sim defines the minimal contract a spherical cellular automaton must
// implement for the drivers and renderers.
type Sim interface {
	Name() string
	Side() int
	Reset(seed int64)
	Step()
	At(p sphere.Point) uint8
	Palette() []color.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
