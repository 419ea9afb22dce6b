package kociemba

import "fmt"

// physicalToFace is the fixed physical-color-to-face mapping of the
// sticker file format: O->U, B->R, W->F, R->D, G->L, Y->B. This assumes
// the scrambled file is read with white centered on the front face, not
// the up face.
var physicalToFace = map[byte]Color{
	'O': ColorU,
	'B': ColorR,
	'W': ColorF,
	'R': ColorD,
	'G': ColorL,
	'Y': ColorB,
}

// ParseStickerGrid parses a 9-line, 54-sticker physical-color grid into
// a facelet array in U,R,F,D,L,B order. Lines 1-3 hold the U face
// at columns 4-6; lines 4-6 hold L/F/R/B at columns 1-3/4-6/7-9/10-12;
// lines 7-9 hold the D face at columns 4-6.
func ParseStickerGrid(lines []string) ([numFacelets]Color, error) {
	var colors [numFacelets]Color

	if len(lines) != 9 {
		return colors, fmt.Errorf("kociemba: sticker grid must have 9 lines, got %d", len(lines))
	}

	readAt := func(line string, col int) (byte, error) {
		if col >= len(line) {
			return 0, fmt.Errorf("kociemba: line too short for column %d: %q", col+1, line)
		}
		return line[col], nil
	}

	set := func(face Face, row, col int, ch byte) error {
		c, ok := physicalToFace[ch]
		if !ok {
			return fmt.Errorf("kociemba: unrecognized sticker character %q", string(ch))
		}
		colors[facelet(face, row, col)] = c
		return nil
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			ch, err := readAt(lines[row], 3+col)
			if err != nil {
				return colors, err
			}
			if err := set(FaceU, row, col, ch); err != nil {
				return colors, err
			}
		}
	}

	midFaces := [4]Face{FaceL, FaceF, FaceR, FaceB}
	for row := 0; row < 3; row++ {
		line := lines[3+row]
		for block, face := range midFaces {
			for col := 0; col < 3; col++ {
				ch, err := readAt(line, block*3+col)
				if err != nil {
					return colors, err
				}
				if err := set(face, row, col, ch); err != nil {
					return colors, err
				}
			}
		}
	}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			ch, err := readAt(lines[6+row], 3+col)
			if err != nil {
				return colors, err
			}
			if err := set(FaceD, row, col, ch); err != nil {
				return colors, err
			}
		}
	}

	if err := validateCenters(colors); err != nil {
		return colors, err
	}

	return colors, nil
}

// validateCenters checks that the six center stickers contain each
// recognized color exactly once.
func validateCenters(colors [numFacelets]Color) error {
	var seen [numFaces]bool
	for face := Face(0); face < numFaces; face++ {
		center := colors[facelet(face, 1, 1)]
		if seen[center] {
			return fmt.Errorf("kociemba: duplicate center color %v", center)
		}
		seen[center] = true
	}
	return nil
}
