package render

import (
	"math"

	"sphere-ca/internal/core"
	"sphere-ca/pkg/sphere"
)

// Equirect samples a spherical simulation into an RGBA byte buffer using an
// equirectangular projection: x maps to longitude over [0, 2π) and y maps to
// latitude over [-π/2, π/2]. buf must hold 4*w*h bytes. Cell values index
// the sim's palette, clamped to its last entry; an empty palette clears the
// buffer to transparent black.
func Equirect(buf []byte, w, h int, sim core.Sim) {
	if len(buf) < 4*w*h {
		return
	}
	palette := sim.Palette()
	side := sim.Side()
	last := len(palette) - 1

	for y := 0; y < h; y++ {
		lat := (float64(y)+0.5)/float64(h)*math.Pi - math.Pi/2
		for x := 0; x < w; x++ {
			lon := (float64(x) + 0.5) / float64(w) * 2 * math.Pi
			base := (y*w + x) * 4
			if last < 0 {
				buf[base+0] = 0
				buf[base+1] = 0
				buf[base+2] = 0
				buf[base+3] = 0
				continue
			}
			p, err := sphere.FromGeographic(side, lat, lon)
			if err != nil {
				continue
			}
			idx := int(sim.At(p))
			if idx > last {
				idx = last
			}
			col := palette[idx]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
