package kociemba

// CubieCube is the permutation+orientation representation of a cube
// state: cp[i] = j means the corner originally at slot j now occupies
// slot i (ep analogous for edges); co/eo hold orientations.
type CubieCube struct {
	cp [numCorners]int
	co [numCorners]int
	ep [numEdges]int
	eo [numEdges]int
}

// solvedCubieCube returns the identity cube.
func solvedCubieCube() CubieCube {
	var c CubieCube
	for i := range c.cp {
		c.cp[i] = i
	}
	for i := range c.ep {
		c.ep[i] = i
	}
	return c
}

// Multiply composes the receiver with move cube b, corners and edges
// independently: (a*b).cp[i] = a.cp[b.cp[i]], (a*b).co[i] = (a.co[b.cp[i]] + b.co[i]) mod 3.
func (a CubieCube) Multiply(b CubieCube) CubieCube {
	var r CubieCube
	for i := 0; i < numCorners; i++ {
		r.cp[i] = a.cp[b.cp[i]]
		r.co[i] = (a.co[b.cp[i]] + b.co[i]) % 3
	}
	for i := 0; i < numEdges; i++ {
		r.ep[i] = a.ep[b.ep[i]]
		r.eo[i] = (a.eo[b.ep[i]] + b.eo[i]) % 2
	}
	return r
}

// permutationParity reports the parity (0 even, 1 odd) of a permutation
// of 0..n-1, counted by inversions.
func permutationParity(perm []int) int {
	parity := 0
	for i := 0; i < len(perm); i++ {
		for j := i + 1; j < len(perm); j++ {
			if perm[i] > perm[j] {
				parity ^= 1
			}
		}
	}
	return parity
}

// cornerParity is the permutation parity of cp.
func (c CubieCube) cornerParity() int {
	return permutationParity(c.cp[:])
}

// edgeParity is the permutation parity of ep.
func (c CubieCube) edgeParity() int {
	return permutationParity(c.ep[:])
}

// verify tags identifying why a cubie state is illegal.
const (
	verifyOK                  = 0
	verifyBadEdgePermutation  = -2
	verifyBadEdgeOrientation  = -3
	verifyBadCornerPermutation = -4
	verifyBadCornerOrientation = -5
	verifyParityMismatch      = -6
)

// Verify checks the four legality invariants of a cubie state and
// returns 0 if legal, or a distinct negative tag otherwise.
func (c CubieCube) Verify() int {
	var seenEdge [numEdges]bool
	edgeSum := 0
	for i := 0; i < numEdges; i++ {
		if c.ep[i] < 0 || c.ep[i] >= numEdges || seenEdge[c.ep[i]] {
			return verifyBadEdgePermutation
		}
		seenEdge[c.ep[i]] = true
		edgeSum += c.eo[i]
	}
	if edgeSum%2 != 0 {
		return verifyBadEdgeOrientation
	}

	var seenCorner [numCorners]bool
	cornerSum := 0
	for i := 0; i < numCorners; i++ {
		if c.cp[i] < 0 || c.cp[i] >= numCorners || seenCorner[c.cp[i]] {
			return verifyBadCornerPermutation
		}
		seenCorner[c.cp[i]] = true
		cornerSum += c.co[i]
	}
	if cornerSum%3 != 0 {
		return verifyBadCornerOrientation
	}

	if c.cornerParity() != c.edgeParity() {
		return verifyParityMismatch
	}
	return verifyOK
}

// basic move cubes for the clockwise quarter turn of each face, in
// Kociemba's standard cubie convention. Half turns and counter-clockwise
// quarter turns are derived from these at table-build time only.
var basicMoveCube = [numFaces]CubieCube{
	FaceU: {
		cp: [8]int{int(UBR), int(URF), int(UFL), int(ULB), int(DFR), int(DLF), int(DBL), int(DRB)},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{int(UB), int(UR), int(UF), int(UL), int(DR), int(DF), int(DL), int(DB), int(FR), int(FL), int(BL), int(BR)},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceR: {
		cp: [8]int{int(DFR), int(UFL), int(ULB), int(URF), int(DRB), int(DLF), int(DBL), int(UBR)},
		co: [8]int{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [12]int{int(FR), int(UF), int(UL), int(UB), int(BR), int(DF), int(DL), int(DB), int(DR), int(FL), int(BL), int(UR)},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceF: {
		cp: [8]int{int(UFL), int(DLF), int(ULB), int(UBR), int(URF), int(DFR), int(DBL), int(DRB)},
		co: [8]int{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [12]int{int(UR), int(FL), int(UL), int(UB), int(DR), int(FR), int(DL), int(DB), int(UF), int(DF), int(BL), int(BR)},
		eo: [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	FaceD: {
		cp: [8]int{int(URF), int(UFL), int(ULB), int(UBR), int(DLF), int(DBL), int(DRB), int(DFR)},
		co: [8]int{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [12]int{int(UR), int(UF), int(UL), int(UB), int(DF), int(DL), int(DB), int(DR), int(FR), int(FL), int(BL), int(BR)},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceL: {
		cp: [8]int{int(URF), int(ULB), int(DBL), int(UBR), int(DFR), int(UFL), int(DLF), int(DRB)},
		co: [8]int{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [12]int{int(UR), int(UF), int(BL), int(UB), int(DR), int(DF), int(FL), int(DB), int(FR), int(UL), int(DL), int(BR)},
		eo: [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	FaceB: {
		cp: [8]int{int(URF), int(UFL), int(UBR), int(DRB), int(DFR), int(DLF), int(ULB), int(DBL)},
		co: [8]int{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [12]int{int(UR), int(UF), int(UL), int(BR), int(DR), int(DF), int(DL), int(BL), int(FR), int(FL), int(UB), int(DB)},
		eo: [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// faceMoveCube returns the cubie state for a clockwise-quarter-turn
// multiple (power 1, 2 or 3) of the given face.
func faceMoveCube(face Face, power int) CubieCube {
	result := solvedCubieCube()
	base := basicMoveCube[face]
	for i := 0; i < power; i++ {
		result = result.Multiply(base)
	}
	return result
}
