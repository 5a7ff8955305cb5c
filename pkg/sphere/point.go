package sphere

import "fmt"

// FaceIndex identifies one of the six faces of the cube-sphere. The constant
// order doubles as the fixed priority order used to break ties when a
// direction points exactly at a cube edge.
type FaceIndex uint8

const (
	FacePosX FaceIndex = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

const numFaces FaceIndex = 6

func (f FaceIndex) String() string {
	switch f {
	case FacePosX:
		return "+X"
	case FaceNegX:
		return "-X"
	case FacePosY:
		return "+Y"
	case FaceNegY:
		return "-Y"
	case FacePosZ:
		return "+Z"
	case FaceNegZ:
		return "-Z"
	}
	return fmt.Sprintf("FaceIndex(%d)", uint8(f))
}

// Point is the canonical discrete address of one cell: a face plus a
// 0-indexed row and column on that face. Two Points are equal iff all three
// components match.
type Point struct {
	Face FaceIndex
	Row  int
	Col  int
}

func (p Point) String() string {
	return fmt.Sprintf("%v(%d,%d)", p.Face, p.Row, p.Col)
}

// Direction enumerates the eight compass neighbors in the fixed order used
// by Grid.Neighbors and by transition functions.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionOffsets = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

func (d Direction) String() string { return directionNames[d] }

// Offset returns the same-face (row, col) delta for the direction.
func (d Direction) Offset() (dr, dc int) {
	o := directionOffsets[d]
	return o[0], o[1]
}

// Opposite returns the compass-opposite direction.
func (d Direction) Opposite() Direction { return (d + 4) % 8 }

// IsDiagonal reports whether the direction steps on both axes.
func (d Direction) IsDiagonal() bool { return d%2 == 1 }
