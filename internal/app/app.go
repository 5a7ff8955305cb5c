//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sphere-ca/internal/core"
	"sphere-ca/internal/render"
)

// Game adapts a spherical simulation to the ebiten.Game interface.
type Game struct {
	sim  core.Sim
	view *render.SphereView

	w, h     int
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game drawing the provided simulation through a w*h
// equirectangular projection.
func New(sim core.Sim, w, h, scale int, seed int64) *Game {
	return &Game{
		sim:   sim,
		view:  render.NewSphereView(w, h),
		w:     w,
		h:     h,
		scale: scale,
		seed:  seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current projection of the sphere.
func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Blit(screen, g.sim, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h * g.scale
}
