// Package sphere discretizes the surface of a sphere into six square faces
// stitched into a seamless cube topology, suitable for running
// local-neighborhood cellular automata without seams or distorted adjacency.
package sphere

import "fmt"

// Grid is a cube-sphere of cells: six faces of identical side length, fixed
// at construction. Cells are addressed by Point and the eight compass
// neighbors of any cell are well defined across face seams.
type Grid[T any] struct {
	side  int
	faces [6]Face[T]
}

// New returns a grid with every cell set to T's zero value.
func New[T any](side int) *Grid[T] {
	if side < 1 {
		panic(fmt.Sprintf("sphere: invalid side %d", side))
	}
	g := &Grid[T]{side: side}
	for f := FacePosX; f < numFaces; f++ {
		g.faces[f] = newFace[T](f, side)
	}
	return g
}

// FromFunc returns a grid with every cell set to the generator's result for
// that cell's address.
func FromFunc[T any](side int, gen func(Point) T) *Grid[T] {
	g := New[T](side)
	g.ForEach(func(p Point) {
		g.faces[p.Face].cells[p.Row*side+p.Col] = gen(p)
	})
	return g
}

// Side returns the face edge length in cells.
func (g *Grid[T]) Side() int { return g.side }

// Face returns one of the six faces for direct local access.
func (g *Grid[T]) Face(f FaceIndex) *Face[T] {
	if f >= numFaces {
		panic(fmt.Sprintf("sphere: invalid face %v", f))
	}
	return &g.faces[f]
}

// At returns the value at p.
func (g *Grid[T]) At(p Point) T {
	g.check(p)
	return g.faces[p.Face].cells[p.Row*g.side+p.Col]
}

// Set stores a value at p.
func (g *Grid[T]) Set(p Point, v T) {
	g.check(p)
	g.faces[p.Face].cells[p.Row*g.side+p.Col] = v
}

// ForEach invokes fn for each of the 6·side² cell addresses, face by face in
// row-major order.
func (g *Grid[T]) ForEach(fn func(Point)) {
	for f := FacePosX; f < numFaces; f++ {
		for row := 0; row < g.side; row++ {
			for col := 0; col < g.side; col++ {
				fn(Point{Face: f, Row: row, Col: col})
			}
		}
	}
}

// Neighbors returns the eight neighbors of p in the order N, NE, E, SE, S,
// SW, W, NW. Off-face steps are resolved through the cube adjacency table.
// The outward diagonal of a corner cell crosses a cube vertex where only
// three faces meet, so no fourth cell exists there; that slot repeats the
// orthogonal neighbor immediately preceding it in the order (NE repeats N,
// SE repeats E, SW repeats S, NW repeats W).
func (g *Grid[T]) Neighbors(p Point) [8]Point {
	g.check(p)
	n := g.side
	var out [8]Point
	for d := North; d <= NorthWest; d++ {
		dr, dc := d.Offset()
		row, col := p.Row+dr, p.Col+dc
		rowOut := row < 0 || row >= n
		colOut := col < 0 || col >= n
		switch {
		case !rowOut && !colOut:
			out[d] = Point{Face: p.Face, Row: row, Col: col}
		case rowOut && colOut:
			// Singular cube corner; the preceding orthogonal slot is
			// already resolved.
			out[d] = out[d-1]
		default:
			out[d] = crossEdge(p.Face, row, col, n)
		}
	}
	return out
}

func (g *Grid[T]) check(p Point) {
	if p.Face >= numFaces || p.Row < 0 || p.Row >= g.side || p.Col < 0 || p.Col >= g.side {
		panic(fmt.Sprintf("sphere: point %v out of range for side %d", p, g.side))
	}
}
