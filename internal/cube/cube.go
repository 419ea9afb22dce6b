// Package cube implements the naive 3x3x3 sticker-array cube: the
// external representation the Kociemba engine's input and output are
// checked against. It holds no solving logic of its own; its only job
// is to apply quarter turns to a flat array of face colors so a
// solution string can be replayed and the result checked for the
// solved coloring.
package cube

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Up
	Down
)

func (f Face) String() string {
	return []string{"F", "B", "L", "R", "U", "D"}[f]
}

// Color identifies a sticker's physical color.
type Color int

const (
	White Color = iota
	Yellow
	Red
	Orange
	Blue
	Green
)

func (c Color) String() string {
	return []string{"W", "Y", "R", "O", "B", "G"}[c]
}

// Cube is a 3x3x3 cube as six 3x3 grids of stickers.
type Cube struct {
	Faces [6][3][3]Color
}

// NewCube returns a solved 3x3x3 cube: each face a solid color.
func NewCube() *Cube {
	faceColors := [6]Color{White, Yellow, Red, Orange, Blue, Green}
	c := &Cube{}
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c.Faces[face][row][col] = faceColors[face]
			}
		}
	}
	return c
}

// IsSolved reports whether every face is a single uniform color.
func (c *Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		first := c.Faces[face][0][0]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if c.Faces[face][row][col] != first {
					return false
				}
			}
		}
	}
	return true
}

func (c *Cube) String() string {
	return fmt.Sprintf("%v", c.Faces)
}
