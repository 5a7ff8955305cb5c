//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"sphere-ca/internal/core"
)

// SphereView projects a spherical simulation into a single equirectangular
// image and draws it scaled onto a destination.
type SphereView struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewSphereView allocates a view with the given projection size in pixels.
func NewSphereView(w, h int) *SphereView {
	v := &SphereView{w: w, h: h, buf: make([]byte, 4*w*h)}
	v.img = ebiten.NewImage(w, h)
	return v
}

// Blit resamples the simulation into the view image and draws it.
func (v *SphereView) Blit(dst *ebiten.Image, sim core.Sim, scale int) {
	Equirect(v.buf, v.w, v.h, sim)
	v.img.WritePixels(v.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(v.img, op)
}

// Size returns the dimensions of the underlying image.
func (v *SphereView) Size() (int, int) { return v.w, v.h }
