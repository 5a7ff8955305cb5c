package sphere

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGeographicTotality(t *testing.T) {
	t.Parallel()

	const side = 256
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		lat := rng.Float64()*math.Pi - math.Pi/2
		lon := rng.Float64() * 2 * math.Pi
		p, err := FromGeographic(side, lat, lon)
		require.NoError(t, err, "lat=%v lon=%v", lat, lon)
		require.Less(t, p.Face, numFaces)
		require.GreaterOrEqual(t, p.Row, 0)
		require.Less(t, p.Row, side)
		require.GreaterOrEqual(t, p.Col, 0)
		require.Less(t, p.Col, side)
	}
}

func TestFromGeographicRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"latitude too high", math.Pi, 0},
		{"latitude too low", -math.Pi, 0},
		{"negative longitude", 0, -0.1},
		{"longitude at 2π", 0, 2 * math.Pi},
		{"NaN latitude", math.NaN(), 0},
		{"NaN longitude", 0, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := FromGeographic(16, tc.lat, tc.lon)
			assert.Error(t, err)
		})
	}
}

func TestFromGeographicAxisDirections(t *testing.T) {
	t.Parallel()

	const side = 8
	cases := []struct {
		lat, lon float64
		face     FaceIndex
	}{
		{0, 0, FacePosX},
		{0, math.Pi / 2, FacePosY},
		{0, math.Pi, FaceNegX},
		{0, 3 * math.Pi / 2, FaceNegY},
		{math.Pi / 2, 0, FacePosZ},
		{-math.Pi / 2, 0, FaceNegZ},
	}
	for _, tc := range cases {
		p, err := FromGeographic(side, tc.lat, tc.lon)
		require.NoError(t, err)
		assert.Equal(t, tc.face, p.Face, "lat=%v lon=%v", tc.lat, tc.lon)
	}

	// A face-center direction lands on the center cell.
	p, err := FromGeographic(side, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, Point{Face: FacePosX, Row: side / 2, Col: side / 2}, p)
}

func TestFromGeographicAgreesWithCellCenters(t *testing.T) {
	t.Parallel()

	// Converting every cell center's direction back through the geographic
	// mapping must return the original address; this pins the float
	// projection to the integer frames.
	const side = 4
	for f := FacePosX; f < numFaces; f++ {
		for row := 0; row < side; row++ {
			for col := 0; col < side; col++ {
				v := cellVec(f, row, col, side)
				x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
				r := math.Sqrt(x*x + y*y + z*z)
				lat := math.Asin(z / r)
				lon := math.Atan2(y, x)
				if lon < 0 {
					lon += 2 * math.Pi
				}
				p, err := FromGeographic(side, lat, lon)
				require.NoError(t, err)
				assert.Equal(t, Point{Face: f, Row: row, Col: col}, p,
					"cell center %v(%d,%d) maps elsewhere", f, row, col)
			}
		}
	}
}

func TestAtGeographic(t *testing.T) {
	t.Parallel()

	g := New[uint8](8)
	p, err := FromGeographic(8, 0.4, 1.3)
	require.NoError(t, err)
	g.Set(p, 9)

	got, err := g.AtGeographic(0.4, 1.3)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), got)

	_, err = g.AtGeographic(4, 0)
	assert.Error(t, err)
}
