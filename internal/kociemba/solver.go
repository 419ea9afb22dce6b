package kociemba

import (
	"fmt"
	"time"
)

// ErrorCode enumerates the recoverable failure categories a solve can
// report, surfaced to callers as "Error N" tokens.
type ErrorCode int

const (
	ErrMalformedInput ErrorCode = iota + 1
	ErrBadEdgePermutation
	ErrBadEdgeOrientation
	ErrBadCornerPermutation
	ErrBadCornerOrientation
	ErrParityMismatch
	ErrSearchExhausted
	ErrTimeout
)

func (e ErrorCode) String() string {
	return fmt.Sprintf("Error %d", int(e))
}

// SolveError pairs an ErrorCode with the detail that produced it.
type SolveError struct {
	Code ErrorCode
	Err  error
}

func (e *SolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code.String()
}

// verifyCodes maps CubieCube.Verify's negative tags to their Error N
// equivalent.
var verifyCodes = map[int]ErrorCode{
	verifyBadEdgePermutation:   ErrBadEdgePermutation,
	verifyBadEdgeOrientation:   ErrBadEdgeOrientation,
	verifyBadCornerPermutation: ErrBadCornerPermutation,
	verifyBadCornerOrientation: ErrBadCornerOrientation,
	verifyParityMismatch:       ErrParityMismatch,
}

// DefaultMaxDepth and DefaultTimeout match the CLI's documented flag
// defaults.
const (
	DefaultMaxDepth = 25
	DefaultTimeout  = 10 * time.Second
)

// Solve reduces a facelet cube to cubie state, verifies it, and runs the
// two-phase search bounded by maxDepth moves and the given timeout. On
// success it returns the solution as a quarter-turn move string (empty
// for an already-solved cube). On failure it returns a *SolveError whose
// Code identifies the failure category.
func Solve(colors [numFacelets]Color, maxDepth int, timeout time.Duration) (string, *SolveError) {
	fc := FaceletsFromColors(colors)

	cube, err := fc.ToCubieCube()
	if err != nil {
		return "", &SolveError{Code: ErrMalformedInput, Err: err}
	}

	if tag := cube.Verify(); tag != verifyOK {
		code, ok := verifyCodes[tag]
		if !ok {
			code = ErrMalformedInput
		}
		return "", &SolveError{Code: code, Err: fmt.Errorf("kociemba: cube failed verification (tag %d)", tag)}
	}

	t := getTables()
	s := &search{
		t:        t,
		root:     cube,
		urf0:     getURFtoDLF(cube),
		ur2ul0:   getURtoUL(cube),
		ub2df0:   getUBtoDF(cube),
		frbr0:    getFRtoBR(cube),
		parity0:  getParity(cube),
		maxDepth: maxDepth,
		deadline: time.Now().Add(timeout),
	}

	total, ok := s.solve()
	if !ok {
		if s.timedOut {
			return "", &SolveError{Code: ErrTimeout, Err: fmt.Errorf("kociemba: no solution found within %s", timeout)}
		}
		return "", &SolveError{Code: ErrSearchExhausted, Err: fmt.Errorf("kociemba: no solution within %d moves", maxDepth)}
	}
	_ = total

	faces := make([]Face, 0, s.solvedPhase1Len+s.phase2Len)
	powers := make([]int, 0, s.solvedPhase1Len+s.phase2Len)
	for i := 0; i < s.solvedPhase1Len; i++ {
		faces = append(faces, Face(s.axis[i]))
		powers = append(powers, s.power[i])
	}
	for i := 0; i < s.phase2Len; i++ {
		faces = append(faces, Face(s.axis2[i]))
		powers = append(powers, s.power2[i])
	}

	return encodeSolution(faces, powers), nil
}
