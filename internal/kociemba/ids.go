// Package kociemba implements Herbert Kociemba's two-phase algorithm for
// the 3x3x3 Rubik's cube: coordinate encodings of the cube group,
// precomputed move/pruning tables, and a nested IDA* search that lands a
// phase-1 prefix in the subgroup H = <U, D, R2, L2, F2, B2> before a
// phase-2 completion restricted to the moves of H.
package kociemba

// Corner identifies one of the 8 corner cubie slots, in solved position.
type Corner int

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

const numCorners = 8

// Edge identifies one of the 12 edge cubie slots, in solved position.
type Edge int

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

const numEdges = 12

// Color identifies a cube face by the letter of the face it belongs to
// once centers are used to fix the U/R/F/D/L/B role of each color.
type Color int

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

func (c Color) String() string {
	return "URFDLB"[c : c+1]
}

// Face names a quarter-turnable face, indexed the same way as Color:
// U=0, R=1, F=2, D=3, L=4, B=5.
type Face int

const (
	FaceU Face = iota
	FaceR
	FaceF
	FaceD
	FaceL
	FaceB
)

func (f Face) String() string {
	return "URFDLB"[f : f+1]
}

const numFaces = 6
const numFacelets = 54

// facelet returns the flat index of (face, row, col) in the 54-entry
// sticker array; faces are ordered U, R, F, D, L, B.
func facelet(face Face, row, col int) int {
	return 9*int(face) + 3*row + col
}
