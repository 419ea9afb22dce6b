package kociemba

import "strings"

const numMoves = 18

// moveIndex packs a face turn into the 18-move alphabet: 3*face + (power-1),
// power 1 = clockwise quarter turn, 2 = half turn, 3 = counter-clockwise.
func moveIndex(face Face, power int) int {
	return 3*int(face) + (power - 1)
}

// moveFace and movePower invert moveIndex.
func moveFace(m int) Face { return Face(m / 3) }
func movePower(m int) int { return m%3 + 1 }

// moveCubes holds the cubie-level effect of each of the 18 moves, built
// once from the six basic clockwise quarter turns.
var moveCubes [numMoves]CubieCube

func init() {
	for face := Face(0); face < numFaces; face++ {
		for power := 1; power <= 3; power++ {
			moveCubes[moveIndex(face, power)] = faceMoveCube(face, power)
		}
	}
}

// phase2Moves lists the 10 moves legal in phase 2: U/D at any power,
// R/F/L/B only as half turns.
var phase2Moves = buildPhase2Moves()

func buildPhase2Moves() []int {
	var moves []int
	for face := Face(0); face < numFaces; face++ {
		if face == FaceU || face == FaceD {
			for power := 1; power <= 3; power++ {
				moves = append(moves, moveIndex(face, power))
			}
		} else {
			moves = append(moves, moveIndex(face, 2))
		}
	}
	return moves
}

// encodeSolution renders a sequence of (face, power) moves as the
// canonical quarter-turn string: a face letter repeated `power` times,
// e.g. U·U·U = "UUU".
func encodeSolution(faces []Face, powers []int) string {
	var sb strings.Builder
	for i, f := range faces {
		letter := f.String()
		for k := 0; k < powers[i]; k++ {
			sb.WriteString(letter)
		}
	}
	return sb.String()
}
