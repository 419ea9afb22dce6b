package kociemba

import "fmt"

// FaceCube is the 54-sticker representation of a cube, ordered U, R, F,
// D, L, B with nine facelets per face in row-major order.
type FaceCube struct {
	f [numFacelets]Color
}

// cornerFacelet lists, for each corner slot, the three facelet indices
// read in the fixed cyclic order whose first entry is the slot's
// solved U/D-facing sticker.
var cornerFacelet = [numCorners][3]int{
	URF: {facelet(FaceU, 2, 2), facelet(FaceR, 0, 0), facelet(FaceF, 0, 2)},
	UFL: {facelet(FaceU, 2, 0), facelet(FaceF, 0, 0), facelet(FaceL, 0, 2)},
	ULB: {facelet(FaceU, 0, 0), facelet(FaceL, 0, 0), facelet(FaceB, 0, 2)},
	UBR: {facelet(FaceU, 0, 2), facelet(FaceB, 0, 0), facelet(FaceR, 0, 2)},
	DFR: {facelet(FaceD, 0, 2), facelet(FaceF, 2, 2), facelet(FaceR, 2, 0)},
	DLF: {facelet(FaceD, 0, 0), facelet(FaceL, 2, 2), facelet(FaceF, 2, 0)},
	DBL: {facelet(FaceD, 2, 0), facelet(FaceB, 2, 2), facelet(FaceL, 2, 0)},
	DRB: {facelet(FaceD, 2, 2), facelet(FaceR, 2, 2), facelet(FaceB, 2, 0)},
}

// edgeFacelet analogously lists each edge slot's two facelet indices.
var edgeFacelet = [numEdges][2]int{
	UR: {facelet(FaceU, 1, 2), facelet(FaceR, 0, 1)},
	UF: {facelet(FaceU, 2, 1), facelet(FaceF, 0, 1)},
	UL: {facelet(FaceU, 1, 0), facelet(FaceL, 0, 1)},
	UB: {facelet(FaceU, 0, 1), facelet(FaceB, 0, 1)},
	DR: {facelet(FaceD, 1, 2), facelet(FaceR, 2, 1)},
	DF: {facelet(FaceD, 0, 1), facelet(FaceF, 2, 1)},
	DL: {facelet(FaceD, 1, 0), facelet(FaceL, 2, 1)},
	DB: {facelet(FaceD, 2, 1), facelet(FaceB, 2, 1)},
	FR: {facelet(FaceF, 1, 2), facelet(FaceR, 1, 0)},
	FL: {facelet(FaceF, 1, 0), facelet(FaceL, 1, 2)},
	BL: {facelet(FaceB, 1, 2), facelet(FaceL, 1, 0)},
	BR: {facelet(FaceB, 1, 0), facelet(FaceR, 1, 2)},
}

// cornerColor is the ordered color triple of each solved corner piece,
// always starting with its U or D color; this is the same cyclic
// convention cornerFacelet uses, so matching a read triple (after
// rotating to put the U/D sticker first) against this table identifies
// both the piece and its orientation.
var cornerColor = [numCorners][3]Color{
	URF: {ColorU, ColorR, ColorF},
	UFL: {ColorU, ColorF, ColorL},
	ULB: {ColorU, ColorL, ColorB},
	UBR: {ColorU, ColorB, ColorR},
	DFR: {ColorD, ColorF, ColorR},
	DLF: {ColorD, ColorL, ColorF},
	DBL: {ColorD, ColorB, ColorL},
	DRB: {ColorD, ColorR, ColorB},
}

// edgeColor is the ordered color pair of each solved edge piece.
var edgeColor = [numEdges][2]Color{
	UR: {ColorU, ColorR},
	UF: {ColorU, ColorF},
	UL: {ColorU, ColorL},
	UB: {ColorU, ColorB},
	DR: {ColorD, ColorR},
	DF: {ColorD, ColorF},
	DL: {ColorD, ColorL},
	DB: {ColorD, ColorB},
	FR: {ColorF, ColorR},
	FL: {ColorF, ColorL},
	BL: {ColorB, ColorL},
	BR: {ColorB, ColorR},
}

// ToCubieCube reduces a 54-sticker facelet array into a cubie state by
// matching, for each slot, the rotation of its fixed facelet positions
// against the known color tuple of every piece. Returns an error if any
// slot's colors don't match exactly one piece at exactly one rotation.
func (fc *FaceCube) ToCubieCube() (CubieCube, error) {
	var c CubieCube

	for slot := Corner(0); slot < numCorners; slot++ {
		positions := cornerFacelet[slot]
		found := false
		for k := 0; k < 3 && !found; k++ {
			tuple := [3]Color{
				fc.f[positions[(0+k)%3]],
				fc.f[positions[(1+k)%3]],
				fc.f[positions[(2+k)%3]],
			}
			for piece := Corner(0); piece < numCorners; piece++ {
				if cornerColor[piece] == tuple {
					c.cp[slot] = int(piece)
					c.co[slot] = k
					found = true
					break
				}
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("kociemba: corner slot %d does not match any corner piece", slot)
		}
	}

	for slot := Edge(0); slot < numEdges; slot++ {
		positions := edgeFacelet[slot]
		c1, c2 := fc.f[positions[0]], fc.f[positions[1]]
		found := false
		for piece := Edge(0); piece < numEdges && !found; piece++ {
			pair := edgeColor[piece]
			if pair[0] == c1 && pair[1] == c2 {
				c.ep[slot] = int(piece)
				c.eo[slot] = 0
				found = true
			} else if pair[0] == c2 && pair[1] == c1 {
				c.ep[slot] = int(piece)
				c.eo[slot] = 1
				found = true
			}
		}
		if !found {
			return CubieCube{}, fmt.Errorf("kociemba: edge slot %d does not match any edge piece", slot)
		}
	}

	return c, nil
}

// FaceletsFromColors wraps a raw 54-Color array (already in U,R,F,D,L,B
// row-major order) as a FaceCube. It does not validate the colors;
// ToCubieCube reports stickers that match no piece.
func FaceletsFromColors(colors [numFacelets]Color) *FaceCube {
	fc := &FaceCube{f: colors}
	return fc
}
