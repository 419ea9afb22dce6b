package kociemba

import "testing"

func TestSolvedCubieCubeVerifies(t *testing.T) {
	c := solvedCubieCube()
	if tag := c.Verify(); tag != verifyOK {
		t.Errorf("solvedCubieCube().Verify() = %d, want %d", tag, verifyOK)
	}
}

func TestBasicMoveCubesVerify(t *testing.T) {
	for face := Face(0); face < numFaces; face++ {
		c := basicMoveCube[face]
		if tag := c.Verify(); tag != verifyOK {
			t.Errorf("basicMoveCube[%v].Verify() = %d, want %d", face, tag, verifyOK)
		}
	}
}

func TestFaceMoveCubeOrderFour(t *testing.T) {
	// Four quarter-turns of any face is the identity.
	for face := Face(0); face < numFaces; face++ {
		result := solvedCubieCube()
		for i := 0; i < 4; i++ {
			result = result.Multiply(basicMoveCube[face])
		}
		solved := solvedCubieCube()
		if result.cp != solved.cp || result.co != solved.co || result.ep != solved.ep || result.eo != solved.eo {
			t.Errorf("four quarter-turns of %v did not return to solved state: %+v", face, result)
		}
	}
}

func TestFaceMoveCubePowers(t *testing.T) {
	for face := Face(0); face < numFaces; face++ {
		single := faceMoveCube(face, 1)
		double := faceMoveCube(face, 2)
		triple := faceMoveCube(face, 3)

		wantDouble := single.Multiply(single)
		if double.cp != wantDouble.cp || double.co != wantDouble.co {
			t.Errorf("faceMoveCube(%v, 2) corners != single*single", face)
		}
		wantTriple := wantDouble.Multiply(single)
		if triple.cp != wantTriple.cp || triple.co != wantTriple.co {
			t.Errorf("faceMoveCube(%v, 3) corners != single*single*single", face)
		}

		// A quarter turn toggles permutation parity, a half turn preserves it.
		if single.cornerParity() == solvedCubieCube().cornerParity() {
			t.Errorf("faceMoveCube(%v, 1) corner parity unchanged, want toggled", face)
		}
		if double.cornerParity() != solvedCubieCube().cornerParity() {
			t.Errorf("faceMoveCube(%v, 2) corner parity changed, want unchanged", face)
		}
	}
}

func TestVerifyDetectsIllegalStates(t *testing.T) {
	t.Run("bad edge permutation", func(t *testing.T) {
		c := solvedCubieCube()
		c.ep[1] = c.ep[0] // duplicate
		if tag := c.Verify(); tag != verifyBadEdgePermutation {
			t.Errorf("Verify() = %d, want %d", tag, verifyBadEdgePermutation)
		}
	})

	t.Run("bad edge orientation", func(t *testing.T) {
		c := solvedCubieCube()
		c.eo[0] = 1 // sum becomes odd
		if tag := c.Verify(); tag != verifyBadEdgeOrientation {
			t.Errorf("Verify() = %d, want %d", tag, verifyBadEdgeOrientation)
		}
	})

	t.Run("bad corner permutation", func(t *testing.T) {
		c := solvedCubieCube()
		c.cp[1] = c.cp[0] // duplicate
		if tag := c.Verify(); tag != verifyBadCornerPermutation {
			t.Errorf("Verify() = %d, want %d", tag, verifyBadCornerPermutation)
		}
	})

	t.Run("bad corner orientation", func(t *testing.T) {
		c := solvedCubieCube()
		c.co[0] = 1 // sum becomes 1, not a multiple of 3
		if tag := c.Verify(); tag != verifyBadCornerOrientation {
			t.Errorf("Verify() = %d, want %d", tag, verifyBadCornerOrientation)
		}
	})

	t.Run("parity mismatch", func(t *testing.T) {
		c := solvedCubieCube()
		c.cp[0], c.cp[1] = c.cp[1], c.cp[0] // odd corner permutation, even edge permutation
		if tag := c.Verify(); tag != verifyParityMismatch {
			t.Errorf("Verify() = %d, want %d", tag, verifyParityMismatch)
		}
	})
}

func TestPermutationParity(t *testing.T) {
	if got := permutationParity([]int{0, 1, 2, 3}); got != 0 {
		t.Errorf("permutationParity(identity) = %d, want 0", got)
	}
	if got := permutationParity([]int{1, 0, 2, 3}); got != 1 {
		t.Errorf("permutationParity(one swap) = %d, want 1", got)
	}
	if got := permutationParity([]int{1, 0, 3, 2}); got != 0 {
		t.Errorf("permutationParity(two swaps) = %d, want 0", got)
	}
}
