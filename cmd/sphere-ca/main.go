//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sphere-ca/internal/app"
	"sphere-ca/internal/core"
	_ "sphere-ca/internal/sims/briansbrain"
	_ "sphere-ca/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(nil)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Width, cfg.Height, cfg.Scale, cfg.Seed)

	ebiten.SetWindowTitle("sphere-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
