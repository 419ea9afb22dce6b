package cube

// Move is a single quarter-turn-equivalent face turn.
type Move struct {
	Face      Face
	Clockwise bool
	Double    bool
}

// ApplyMove turns one face of the cube by the given move: the face's
// own 8 perimeter stickers rotate in place and the 12 stickers it
// shares with its four neighbors cycle between them.
func (c *Cube) ApplyMove(move Move) {
	quarterTurns := 1
	if move.Double {
		quarterTurns = 2
	} else if !move.Clockwise {
		quarterTurns = 3
	}

	flat := c.flatten()
	newFlat := flat

	rotateRing(&newFlat, flat, neighborRing(move.Face), quarterTurns)
	rotateRing(&newFlat, flat, ownFaceRing(move.Face), quarterTurns)

	c.unflatten(newFlat)
}

// ApplyMoves turns the cube through a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// rotateRing advances every sticker in ring (a cyclic sequence of flat
// indices) by quarterTurns steps: the color at ring[i] moves to
// ring[(i+shift) % len(ring)].
func rotateRing(dst *[54]Color, src [54]Color, ring []int, quarterTurns int) {
	n := len(ring)
	shift := (quarterTurns * n / 4) % n
	for i, from := range ring {
		dst[ring[(i+shift)%n]] = src[from]
	}
}

func idx(face Face, row, col int) int {
	return int(face)*9 + row*3 + col
}

// neighborRing lists, for the face being turned, the 12 stickers of
// its four neighbors that cycle between them, in the order a single
// clockwise turn advances them.
func neighborRing(face Face) []int {
	switch face {
	case Up:
		return []int{
			idx(Back, 0, 0), idx(Back, 0, 1), idx(Back, 0, 2),
			idx(Right, 0, 0), idx(Right, 0, 1), idx(Right, 0, 2),
			idx(Front, 0, 0), idx(Front, 0, 1), idx(Front, 0, 2),
			idx(Left, 0, 0), idx(Left, 0, 1), idx(Left, 0, 2),
		}
	case Down:
		return []int{
			idx(Front, 2, 0), idx(Front, 2, 1), idx(Front, 2, 2),
			idx(Right, 2, 0), idx(Right, 2, 1), idx(Right, 2, 2),
			idx(Back, 2, 0), idx(Back, 2, 1), idx(Back, 2, 2),
			idx(Left, 2, 0), idx(Left, 2, 1), idx(Left, 2, 2),
		}
	case Right:
		return []int{
			idx(Up, 0, 2), idx(Up, 1, 2), idx(Up, 2, 2),
			idx(Back, 2, 0), idx(Back, 1, 0), idx(Back, 0, 0),
			idx(Down, 0, 2), idx(Down, 1, 2), idx(Down, 2, 2),
			idx(Front, 0, 2), idx(Front, 1, 2), idx(Front, 2, 2),
		}
	case Left:
		return []int{
			idx(Up, 0, 0), idx(Up, 1, 0), idx(Up, 2, 0),
			idx(Front, 0, 0), idx(Front, 1, 0), idx(Front, 2, 0),
			idx(Down, 0, 0), idx(Down, 1, 0), idx(Down, 2, 0),
			idx(Back, 2, 2), idx(Back, 1, 2), idx(Back, 0, 2),
		}
	case Front:
		return []int{
			idx(Up, 2, 0), idx(Up, 2, 1), idx(Up, 2, 2),
			idx(Right, 0, 0), idx(Right, 1, 0), idx(Right, 2, 0),
			idx(Down, 0, 2), idx(Down, 0, 1), idx(Down, 0, 0),
			idx(Left, 2, 2), idx(Left, 1, 2), idx(Left, 0, 2),
		}
	case Back:
		return []int{
			idx(Up, 0, 2), idx(Up, 0, 1), idx(Up, 0, 0),
			idx(Left, 0, 0), idx(Left, 1, 0), idx(Left, 2, 0),
			idx(Down, 2, 0), idx(Down, 2, 1), idx(Down, 2, 2),
			idx(Right, 2, 2), idx(Right, 1, 2), idx(Right, 0, 2),
		}
	}
	return nil
}

// ownFaceRing lists the 8 perimeter stickers of the turning face
// itself, clockwise from the top-left; the center is fixed under any
// turn and is omitted.
func ownFaceRing(face Face) []int {
	return []int{
		idx(face, 0, 0), idx(face, 0, 1), idx(face, 0, 2),
		idx(face, 1, 2),
		idx(face, 2, 2), idx(face, 2, 1), idx(face, 2, 0),
		idx(face, 1, 0),
	}
}

func (c *Cube) flatten() [54]Color {
	var flat [54]Color
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				flat[idx(Face(face), row, col)] = c.Faces[face][row][col]
			}
		}
	}
	return flat
}

func (c *Cube) unflatten(flat [54]Color) {
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c.Faces[face][row][col] = flat[idx(Face(face), row, col)]
			}
		}
	}
}
