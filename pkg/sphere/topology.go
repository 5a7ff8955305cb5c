package sphere

import "fmt"

// Edge identifies one of a face's four edges. North is row 0, South is row
// side-1, West is column 0, East is column side-1.
type Edge uint8

const (
	EdgeNorth Edge = iota
	EdgeEast
	EdgeSouth
	EdgeWest
)

func (e Edge) String() string {
	return [4]string{"north", "east", "south", "west"}[e]
}

// Corner identifies one of a face's four corners.
type Corner uint8

const (
	CornerNW Corner = iota
	CornerNE
	CornerSW
	CornerSE
)

func (c Corner) String() string {
	return [4]string{"NW", "NE", "SW", "SE"}[c]
}

// EdgeLink records what lies across one edge of one face: the neighboring
// face, which of its edges meets the seam, and whether traversal direction
// reverses when crossing.
type EdgeLink struct {
	Face     FaceIndex
	Edge     Edge
	Reversed bool
}

// CornerRef names a corner of a specific face.
type CornerRef struct {
	Face   FaceIndex
	Corner Corner
}

// ivec is an exact integer vector in cube coordinates. All seam stitching is
// derived from integer arithmetic so that the singular corner case is an
// exact two-axis tie rather than a float comparison.
type ivec [3]int

type frame struct {
	normal ivec // outward face normal
	u      ivec // column axis
	v      ivec // row axis
}

// faceFrames fixes each face's local coordinate system. Every other piece of
// geometry (neighbor stitching, corner matching, geographic projection)
// derives from these six frames, so they are the single source of truth for
// orientation.
var faceFrames = [6]frame{
	FacePosX: {normal: ivec{1, 0, 0}, u: ivec{0, 0, -1}, v: ivec{0, -1, 0}},
	FaceNegX: {normal: ivec{-1, 0, 0}, u: ivec{0, 0, 1}, v: ivec{0, -1, 0}},
	FacePosY: {normal: ivec{0, 1, 0}, u: ivec{1, 0, 0}, v: ivec{0, 0, 1}},
	FaceNegY: {normal: ivec{0, -1, 0}, u: ivec{1, 0, 0}, v: ivec{0, 0, -1}},
	FacePosZ: {normal: ivec{0, 0, 1}, u: ivec{1, 0, 0}, v: ivec{0, -1, 0}},
	FaceNegZ: {normal: ivec{0, 0, -1}, u: ivec{-1, 0, 0}, v: ivec{0, -1, 0}},
}

func dot(a, b ivec) int { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cellVec returns the cube coordinates of the center of cell (row, col) on
// face f, scaled by 2n so everything stays integral: the normal component is
// ±n and the in-face components are odd values in [-(n-1), n-1].
func cellVec(f FaceIndex, row, col, n int) ivec {
	fr := faceFrames[f]
	uc := 2*col + 1 - n
	vc := 2*row + 1 - n
	var p ivec
	for a := 0; a < 3; a++ {
		p[a] = n*fr.normal[a] + uc*fr.u[a] + vc*fr.v[a]
	}
	return p
}

func axisFace(axis int, positive bool) FaceIndex {
	f := FaceIndex(2 * axis)
	if !positive {
		f++
	}
	return f
}

// project maps cube coordinates back to the canonical cell address on the
// dominant face. It reports ok=false when two axes tie for dominance, which
// happens exactly when a diagonal step leaves the grid through a cube corner
// where only three faces meet.
func project(p ivec, n int) (Point, bool) {
	best, bestAbs, tie := 0, iabs(p[0]), false
	for a := 1; a < 3; a++ {
		switch v := iabs(p[a]); {
		case v > bestAbs:
			best, bestAbs, tie = a, v, false
		case v == bestAbs:
			tie = true
		}
	}
	if tie {
		return Point{}, false
	}
	f := axisFace(best, p[best] > 0)
	fr := faceFrames[f]
	u := dot(p, fr.u)
	v := dot(p, fr.v)
	// A ±n component comes from the source face's normal; fold it one
	// half-cell inward so it lands on the first ring of the new face.
	switch u {
	case n:
		u = n - 1
	case -n:
		u = 1 - n
	}
	switch v {
	case n:
		v = n - 1
	case -n:
		v = 1 - n
	}
	return Point{Face: f, Row: (v + n - 1) / 2, Col: (u + n - 1) / 2}, true
}

// edgeCell returns the coordinates of the i-th cell along an edge, i counted
// in the direction of the edge's increasing varying coordinate.
func edgeCell(e Edge, i, n int) (row, col int) {
	switch e {
	case EdgeNorth:
		return 0, i
	case EdgeEast:
		return i, n - 1
	case EdgeSouth:
		return n - 1, i
	default:
		return i, 0
	}
}

// edgeOut returns the outward (row, col) step that leaves the face through
// the given edge.
func edgeOut(e Edge) (dr, dc int) {
	switch e {
	case EdgeNorth:
		return -1, 0
	case EdgeEast:
		return 0, 1
	case EdgeSouth:
		return 1, 0
	default:
		return 0, -1
	}
}

type topology struct {
	edges   [6][4]EdgeLink
	corners [6][4][2]CornerRef
}

// cubeTopology is the static stitching table. It is built exactly once; all
// per-lookup seam crossings are table reads.
var cubeTopology = buildTopology()

// EdgeAdjacency answers which face and edge lie across the given edge, and
// whether traversal direction reverses at the seam.
func EdgeAdjacency(f FaceIndex, e Edge) EdgeLink {
	return cubeTopology.edges[f][e]
}

// CornerAdjacency returns the corners of the two other faces that meet the
// given face corner at a cube vertex.
func CornerAdjacency(f FaceIndex, c Corner) [2]CornerRef {
	return cubeTopology.corners[f][c]
}

// buildTopology derives the adjacency table from the face frames by probing
// the integer projection. The table is side-independent: only face identity,
// meeting edge and traversal sense are recorded.
func buildTopology() topology {
	var t topology
	// Probe positions 3 and 4 keep the landing cells clear of the face
	// corners so the meeting edge is unambiguous.
	const n = 8
	for f := FacePosX; f < numFaces; f++ {
		for e := EdgeNorth; e <= EdgeWest; e++ {
			la := probeEdge(f, e, 3, n)
			lb := probeEdge(f, e, 4, n)
			if la.Face != lb.Face {
				panic(fmt.Sprintf("sphere: edge probe for %v/%v split across faces", f, e))
			}
			ne := landingEdge(la, n)
			ja := edgePos(la, ne)
			jb := edgePos(lb, ne)
			if jb != ja+1 && jb != ja-1 {
				panic(fmt.Sprintf("sphere: edge probe for %v/%v is not contiguous", f, e))
			}
			t.edges[f][e] = EdgeLink{Face: la.Face, Edge: ne, Reversed: jb < ja}
		}
	}

	// Corners are matched through their shared cube vertex.
	const m = 2
	byVertex := map[ivec][]CornerRef{}
	for f := FacePosX; f < numFaces; f++ {
		for c := CornerNW; c <= CornerSE; c++ {
			v := cornerVertex(f, c, m)
			byVertex[v] = append(byVertex[v], CornerRef{Face: f, Corner: c})
		}
	}
	for v, refs := range byVertex {
		if len(refs) != 3 {
			panic(fmt.Sprintf("sphere: cube vertex %v shared by %d corners", v, len(refs)))
		}
		for i, ref := range refs {
			others := &t.corners[ref.Face][ref.Corner]
			others[0] = refs[(i+1)%3]
			others[1] = refs[(i+2)%3]
		}
	}
	return t
}

func probeEdge(f FaceIndex, e Edge, i, n int) Point {
	r, c := edgeCell(e, i, n)
	dr, dc := edgeOut(e)
	p, ok := project(cellVec(f, r+dr, c+dc, n), n)
	if !ok {
		panic(fmt.Sprintf("sphere: edge probe for %v/%v hit a corner", f, e))
	}
	return p
}

// landingEdge identifies which edge of the landing face a first-ring cell
// sits against.
func landingEdge(p Point, n int) Edge {
	switch {
	case p.Row == 0:
		return EdgeNorth
	case p.Row == n-1:
		return EdgeSouth
	case p.Col == 0:
		return EdgeWest
	case p.Col == n-1:
		return EdgeEast
	}
	panic(fmt.Sprintf("sphere: landing cell %v touches no edge", p))
}

func edgePos(p Point, e Edge) int {
	if e == EdgeNorth || e == EdgeSouth {
		return p.Col
	}
	return p.Row
}

// cornerVertex returns the cube vertex at one corner of a face, using a
// fixed probe scale.
func cornerVertex(f FaceIndex, c Corner, n int) ivec {
	fr := faceFrames[f]
	su, sv := -1, -1
	if c == CornerNE || c == CornerSE {
		su = 1
	}
	if c == CornerSW || c == CornerSE {
		sv = 1
	}
	var p ivec
	for a := 0; a < 3; a++ {
		p[a] = n * (fr.normal[a] + su*fr.u[a] + sv*fr.v[a])
	}
	return p
}

// crossEdge resolves a single off-face step through the adjacency table.
// (row, col) is out of range on exactly one axis; the in-range coordinate is
// the position along the crossed edge.
func crossEdge(f FaceIndex, row, col, n int) Point {
	var e Edge
	var i int
	switch {
	case row < 0:
		e, i = EdgeNorth, col
	case row >= n:
		e, i = EdgeSouth, col
	case col < 0:
		e, i = EdgeWest, row
	default:
		e, i = EdgeEast, row
	}
	link := cubeTopology.edges[f][e]
	j := i
	if link.Reversed {
		j = n - 1 - i
	}
	nr, nc := edgeCell(link.Edge, j, n)
	return Point{Face: link.Face, Row: nr, Col: nc}
}
