package sphere

import "fmt"

// Face stores one square side of the cube-sphere as a flat row-major buffer.
// A face performs no wraparound of its own: crossing a seam is the grid's
// job, so out-of-range coordinates here are a contract violation.
type Face[T any] struct {
	index FaceIndex
	side  int
	cells []T
}

func newFace[T any](index FaceIndex, side int) Face[T] {
	return Face[T]{index: index, side: side, cells: make([]T, side*side)}
}

// Index returns which of the six cube faces this is.
func (f *Face[T]) Index() FaceIndex { return f.index }

// Side returns the face's edge length in cells.
func (f *Face[T]) Side() int { return f.side }

// At returns the value stored at (row, col).
func (f *Face[T]) At(row, col int) T {
	f.check(row, col)
	return f.cells[row*f.side+col]
}

// Set stores a value at (row, col).
func (f *Face[T]) Set(row, col int, v T) {
	f.check(row, col)
	f.cells[row*f.side+col] = v
}

// EdgeStrip returns the addresses of the cells along one edge, ordered by
// increasing varying coordinate: North and South strips vary the column,
// West and East strips vary the row.
func (f *Face[T]) EdgeStrip(e Edge) []Point {
	strip := make([]Point, f.side)
	for i := range strip {
		r, c := edgeCell(e, i, f.side)
		strip[i] = Point{Face: f.index, Row: r, Col: c}
	}
	return strip
}

func (f *Face[T]) check(row, col int) {
	if row < 0 || row >= f.side || col < 0 || col >= f.side {
		panic(fmt.Sprintf("sphere: cell (%d,%d) out of range on face %v with side %d", row, col, f.index, f.side))
	}
}
