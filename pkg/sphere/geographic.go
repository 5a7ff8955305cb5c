package sphere

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

func floatVec(v ivec) r3.Vec {
	return r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// FromGeographic converts a direction on the unit sphere, given as latitude
// in [-π/2, π/2] and longitude in [0, 2π) radians, to the cell address it
// falls on for a grid of the given side. The face is the one whose outward
// normal has the largest dot product with the direction, ties broken by the
// fixed face priority order; the direction is then projected onto the face
// plane and quantized to the containing cell. Inputs outside the documented
// ranges are rejected with an error rather than wrapped.
func FromGeographic(side int, lat, lon float64) (Point, error) {
	if side < 1 {
		panic(fmt.Sprintf("sphere: invalid side %d", side))
	}
	if math.IsNaN(lat) || lat < -math.Pi/2 || lat > math.Pi/2 {
		return Point{}, fmt.Errorf("sphere: latitude %v outside [-π/2, π/2]", lat)
	}
	if math.IsNaN(lon) || lon < 0 || lon >= 2*math.Pi {
		return Point{}, fmt.Errorf("sphere: longitude %v outside [0, 2π)", lon)
	}

	dir := r3.Vec{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}

	face := FacePosX
	best := math.Inf(-1)
	for f := FacePosX; f < numFaces; f++ {
		if d := r3.Dot(dir, floatVec(faceFrames[f].normal)); d > best {
			face, best = f, d
		}
	}

	// Gnomonic projection onto the face plane: scale the direction so its
	// normal component is 1, then read off the in-face coordinates.
	fr := faceFrames[face]
	u := r3.Dot(dir, floatVec(fr.u)) / best
	v := r3.Dot(dir, floatVec(fr.v)) / best

	quantize := func(x float64) int {
		i := int(math.Floor((x + 1) / 2 * float64(side)))
		if i < 0 {
			return 0
		}
		if i >= side {
			return side - 1
		}
		return i
	}
	return Point{Face: face, Row: quantize(v), Col: quantize(u)}, nil
}

// AtGeographic samples the grid at a latitude/longitude direction.
func (g *Grid[T]) AtGeographic(lat, lon float64) (T, error) {
	p, err := FromGeographic(g.side, lat, lon)
	if err != nil {
		var zero T
		return zero, err
	}
	return g.At(p), nil
}
