package sphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEdgeAdjacencyReciprocal(t *testing.T) {
	t.Parallel()

	for f := FacePosX; f < numFaces; f++ {
		for e := EdgeNorth; e <= EdgeWest; e++ {
			link := EdgeAdjacency(f, e)
			assert.NotEqual(t, f, link.Face, "%v/%v links to its own face", f, e)

			back := EdgeAdjacency(link.Face, link.Edge)
			assert.Equal(t, f, back.Face, "link %v/%v -> %v/%v does not point back", f, e, link.Face, link.Edge)
			assert.Equal(t, e, back.Edge, "link %v/%v -> %v/%v returns to the wrong edge", f, e, link.Face, link.Edge)
			assert.Equal(t, link.Reversed, back.Reversed, "reversal flag differs across seam %v/%v", f, e)
		}
	}
}

func TestEdgeAdjacencyCoversTwelveCubeEdges(t *testing.T) {
	t.Parallel()

	type edgeID struct {
		f FaceIndex
		e Edge
	}
	type seam struct{ a, b edgeID }
	seams := map[seam]int{}
	for f := FacePosX; f < numFaces; f++ {
		for e := EdgeNorth; e <= EdgeWest; e++ {
			link := EdgeAdjacency(f, e)
			s := seam{a: edgeID{f, e}, b: edgeID{link.Face, link.Edge}}
			if s.b.f < s.a.f {
				s.a, s.b = s.b, s.a
			}
			seams[s]++
		}
	}
	require.Len(t, seams, 12, "a cube has exactly 12 edges")
	for s, n := range seams {
		assert.Equal(t, 2, n, "seam %v seen from %d sides", s, n)
	}
}

func TestCornerAdjacency(t *testing.T) {
	t.Parallel()

	for f := FacePosX; f < numFaces; f++ {
		for c := CornerNW; c <= CornerSE; c++ {
			refs := CornerAdjacency(f, c)
			require.NotEqual(t, refs[0], refs[1])
			for _, ref := range refs {
				assert.NotEqual(t, f, ref.Face, "%v/%v lists its own face", f, c)

				// The matching corner must list us among its meeting faces.
				back := CornerAdjacency(ref.Face, ref.Corner)
				assert.Contains(t, back[:], CornerRef{Face: f, Corner: c},
					"corner %v/%v not reciprocated by %v/%v", f, c, ref.Face, ref.Corner)
			}
		}
	}
}

func TestCornerVerticesMeetInThrees(t *testing.T) {
	t.Parallel()

	byVertex := map[ivec]int{}
	for f := FacePosX; f < numFaces; f++ {
		for c := CornerNW; c <= CornerSE; c++ {
			byVertex[cornerVertex(f, c, 2)]++
		}
	}
	require.Len(t, byVertex, 8, "a cube has exactly 8 vertices")
	for v, n := range byVertex {
		assert.Equal(t, 3, n, "vertex %v shared by %d faces", v, n)
	}
}

func TestProjectRoundTripsOnFaceCells(t *testing.T) {
	t.Parallel()

	const n = 6
	for f := FacePosX; f < numFaces; f++ {
		for row := 0; row < n; row++ {
			for col := 0; col < n; col++ {
				p, ok := project(cellVec(f, row, col, n), n)
				require.True(t, ok)
				assert.Equal(t, Point{Face: f, Row: row, Col: col}, p)
			}
		}
	}
}

func TestEdgeStrip(t *testing.T) {
	t.Parallel()

	g := New[uint8](4)
	face := g.Face(FaceNegY)

	north := face.EdgeStrip(EdgeNorth)
	require.Len(t, north, 4)
	for i, p := range north {
		assert.Equal(t, Point{Face: FaceNegY, Row: 0, Col: i}, p)
	}

	east := face.EdgeStrip(EdgeEast)
	require.Len(t, east, 4)
	for i, p := range east {
		assert.Equal(t, Point{Face: FaceNegY, Row: i, Col: 3}, p)
	}
}

func TestEdgeStripsTouchAcrossSeams(t *testing.T) {
	t.Parallel()

	// Every cell on an edge strip must have its across-seam orthogonal
	// neighbor on the strip of the linked edge.
	g := New[uint8](5)
	outward := [4]Direction{EdgeNorth: North, EdgeEast: East, EdgeSouth: South, EdgeWest: West}
	for f := FacePosX; f < numFaces; f++ {
		for e := EdgeNorth; e <= EdgeWest; e++ {
			link := EdgeAdjacency(f, e)
			strip := g.Face(f).EdgeStrip(e)
			farStrip := g.Face(link.Face).EdgeStrip(link.Edge)
			for i, p := range strip {
				q := g.Neighbors(p)[outward[e]]
				j := i
				if link.Reversed {
					j = len(strip) - 1 - i
				}
				assert.Equal(t, farStrip[j], q, "seam %v/%v position %d", f, e, i)
			}
		}
	}
}
