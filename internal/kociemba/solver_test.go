package kociemba

import (
	"testing"
	"time"
)

func TestSolveAlreadySolved(t *testing.T) {
	colors := facesFromCubie(solvedCubieCube())
	solution, err := Solve(colors, DefaultMaxDepth, DefaultTimeout)
	if err != nil {
		t.Fatalf("Solve(solved) returned error: %v", err)
	}
	if solution != "" {
		t.Errorf("Solve(solved) = %q, want empty string", solution)
	}
}

func TestSolveSingleQuarterTurn(t *testing.T) {
	scrambled := faceMoveCube(FaceR, 1)
	colors := facesFromCubie(scrambled)
	solution, err := Solve(colors, DefaultMaxDepth, DefaultTimeout)
	if err != nil {
		t.Fatalf("Solve(R) returned error: %v", err)
	}
	if solution != "RRR" {
		t.Errorf("Solve(R) = %q, want %q (R' expressed as three repeated letters)", solution, "RRR")
	}
}

func TestSolveRejectsIllegalOrientation(t *testing.T) {
	c := solvedCubieCube()
	c.co[0] = 1 // corner orientation sum no longer a multiple of 3
	colors := facesFromCubie(c)

	_, err := Solve(colors, DefaultMaxDepth, DefaultTimeout)
	if err == nil {
		t.Fatal("Solve with illegal corner orientation should fail")
	}
	if err.Code != ErrBadCornerOrientation {
		t.Errorf("Solve error code = %v, want %v", err.Code, ErrBadCornerOrientation)
	}
}

func TestSolveRejectsIllegalParity(t *testing.T) {
	c := solvedCubieCube()
	c.cp[0], c.cp[1] = c.cp[1], c.cp[0]
	colors := facesFromCubie(c)

	_, err := Solve(colors, DefaultMaxDepth, DefaultTimeout)
	if err == nil {
		t.Fatal("Solve with a parity mismatch should fail")
	}
	if err.Code != ErrParityMismatch {
		t.Errorf("Solve error code = %v, want %v", err.Code, ErrParityMismatch)
	}
}

func TestSolveRejectsMalformedFacelets(t *testing.T) {
	colors := facesFromCubie(solvedCubieCube())
	colors[0] = Color(99)

	_, err := Solve(colors, DefaultMaxDepth, DefaultTimeout)
	if err == nil {
		t.Fatal("Solve with a corrupted facelet should fail")
	}
	if err.Code != ErrMalformedInput {
		t.Errorf("Solve error code = %v, want %v", err.Code, ErrMalformedInput)
	}
}

func TestSolveTimeout(t *testing.T) {
	scrambled := solvedCubieCube()
	for _, m := range []int{moveIndex(FaceR, 1), moveIndex(FaceU, 1), moveIndex(FaceF, 2), moveIndex(FaceL, 3), moveIndex(FaceB, 1), moveIndex(FaceD, 2)} {
		scrambled = scrambled.Multiply(moveCubes[m])
	}
	colors := facesFromCubie(scrambled)

	_, err := Solve(colors, DefaultMaxDepth, 1*time.Nanosecond)
	if err == nil {
		t.Fatal("Solve with an effectively-zero timeout should fail")
	}
	if err.Code != ErrTimeout && err.Code != ErrSearchExhausted {
		t.Errorf("Solve error code = %v, want %v or %v", err.Code, ErrTimeout, ErrSearchExhausted)
	}
}
