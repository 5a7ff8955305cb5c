package app

import "flag"

// Config represents the command-line parameters for the GUI build.
type Config struct {
	Sim    string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
}

// NewConfig returns a Config populated with sensible defaults. The default
// projection size matches a 2:1 equirectangular frame.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 720, Height: 360, Scale: 1, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "projection width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "projection height in pixels")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}
