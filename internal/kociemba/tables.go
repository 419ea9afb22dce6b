package kociemba

import "sync"

// mergeRange is the size of the small merge lookup: C(8,3)*3! = 56*6 =
// 336, the disjoint region used to accelerate phase-2 coordinate
// seeding. Indices at or past this range fall outside the disjoint
// region and are computed lazily via mergeURtoULandUBtoDF instead.
const mergeRange = 336

// tables holds every move and pruning table. It is built exactly once,
// lazily, behind tablesOnce: the first caller to observe it blocks
// concurrent first-observers until construction completes, after which
// every table is read-only and safe to share across goroutines without
// further synchronization.
type tableSet struct {
	twistMove    [][numMoves]uint16
	flipMove     [][numMoves]uint16
	frToBRMove   [][numMoves]uint16
	urfToDLFMove [][numMoves]uint16
	urToDFMove   [][numMoves]uint16
	urToULMove   [][numMoves]uint16
	ubToDFMove   [][numMoves]uint16
	parityMove   [parityRange][numMoves]uint16

	sliceTwistPrune    *pruneTable
	sliceFlipPrune     *pruneTable
	urfToDLFParityPrune *pruneTable
	urToDFParityPrune   *pruneTable

	mergeTable [mergeRange][mergeRange]int16
}

var (
	tablesOnce sync.Once
	tables     *tableSet
)

// getTables returns the lazily-built, immutable table set, blocking
// until construction completes on first use.
func getTables() *tableSet {
	tablesOnce.Do(func() {
		tables = buildTables()
	})
	return tables
}

func buildTables() *tableSet {
	t := &tableSet{}

	t.twistMove = buildMoveTable(twistRange, getTwist, setTwist)
	t.flipMove = buildMoveTable(flipRange, getFlip, setFlip)
	t.frToBRMove = buildMoveTable(frToBRRange, getFRtoBR, setFRtoBR)
	t.urfToDLFMove = buildMoveTable(urfToDLFRange, getURFtoDLF, setURFtoDLF)
	t.urToDFMove = buildMoveTable(urToDFRange, getURtoDF, setURtoDF)
	t.urToULMove = buildMoveTable(urToULRange, getURtoUL, setURtoUL)
	t.ubToDFMove = buildMoveTable(ubToDFRange, getUBtoDF, setUBtoDF)

	for p := 0; p < parityRange; p++ {
		for m := 0; m < numMoves; m++ {
			if movePower(m) == 2 {
				t.parityMove[p][m] = uint16(p)
			} else {
				t.parityMove[p][m] = uint16(1 - p)
			}
		}
	}

	sliceMove := deriveSliceMove(t.frToBRMove)

	t.sliceTwistPrune = buildPhase1Prune(twistRange, t.twistMove, sliceMove)
	t.sliceFlipPrune = buildPhase1Prune(flipRange, t.flipMove, sliceMove)
	t.urfToDLFParityPrune = buildPhase2ParityPrune(urfToDLFRange, t.urfToDLFMove, t.frToBRMove, t.parityMove)
	t.urToDFParityPrune = buildPhase2ParityPrune(urToDFRange, t.urToDFMove, t.frToBRMove, t.parityMove)

	for a := 0; a < mergeRange; a++ {
		for b := 0; b < mergeRange; b++ {
			t.mergeTable[a][b] = int16(mergeURtoULandUBtoDF(a, b))
		}
	}

	return t
}

// buildMoveTable enumerates every coordinate value, materializes some
// canonical state with that coordinate via `set`, composes with each of
// the 18 move cubes, and reads the resulting coordinate back via `get`.
func buildMoveTable(size int, get func(CubieCube) int, set func(*CubieCube, int)) [][numMoves]uint16 {
	table := make([][numMoves]uint16, size)
	for c := 0; c < size; c++ {
		var cube CubieCube
		set(&cube, c)
		for m := 0; m < numMoves; m++ {
			next := cube.Multiply(moveCubes[m])
			table[c][m] = uint16(get(next))
		}
	}
	return table
}

// deriveSliceMove builds the 495x18 position-only slice transition
// table from the full FRtoBR move table: neighbors are found by
// consulting FRtoBR_move at slice*24 and dividing the result by 24.
func deriveSliceMove(frToBRMove [][numMoves]uint16) [sliceRange][numMoves]uint16 {
	var sliceMove [sliceRange][numMoves]uint16
	for s := 0; s < sliceRange; s++ {
		for m := 0; m < numMoves; m++ {
			sliceMove[s][m] = frToBRMove[s*24][m] / 24
		}
	}
	return sliceMove
}

// pruneTable is a BFS distance table packed at 4 bits per entry, two
// entries per byte, low nibble first. Values 0..14 are real distances;
// 15 means unvisited during the build and unreachable afterward.
type pruneTable struct {
	data []byte
	size int
}

const pruneSentinel = 15

func newPruneTable(size int) *pruneTable {
	t := &pruneTable{data: make([]byte, (size+1)/2), size: size}
	for i := range t.data {
		t.data[i] = 0xFF
	}
	return t
}

func (t *pruneTable) get(i int) int {
	b := t.data[i/2]
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

// phase1Get reads a phase-1 pruning table indexed by (coordinate, slice).
func (t *pruneTable) phase1Get(coord, slice int) int {
	return t.get(coord*sliceRange + slice)
}

// phase2Get reads a phase-2 pruning table indexed by (coordinate, the
// in-H slice permutation 0..23, parity).
func (t *pruneTable) phase2Get(coord, slice24, parity int) int {
	return t.get((coord*24+slice24)*parityRange + parity)
}

func (t *pruneTable) set(i, v int) {
	idx := i / 2
	if i%2 == 0 {
		t.data[idx] = (t.data[idx] & 0xF0) | byte(v&0x0F)
	} else {
		t.data[idx] = (t.data[idx] & 0x0F) | byte((v&0x0F)<<4)
	}
}

// buildPhase1Prune runs a breadth-first admissible-distance search for a
// coordinate paired with the position-only slice coordinate, using all
// 18 moves.
func buildPhase1Prune(coordRange int, coordMove [][numMoves]uint16, sliceMove [sliceRange][numMoves]uint16) *pruneTable {
	size := coordRange * sliceRange
	table := newPruneTable(size)
	table.set(0, 0) // solved coordinate and solved (zero) slice
	filled := 1
	for depth := 0; filled < size; depth++ {
		progressed := false
		for coord := 0; coord < coordRange; coord++ {
			for slice := 0; slice < sliceRange; slice++ {
				idx := coord*sliceRange + slice
				if table.get(idx) != depth {
					continue
				}
				for m := 0; m < numMoves; m++ {
					nc := int(coordMove[coord][m])
					ns := int(sliceMove[slice][m])
					nidx := nc*sliceRange + ns
					if table.get(nidx) == pruneSentinel {
						table.set(nidx, depth+1)
						filled++
						progressed = true
					}
				}
			}
		}
		if !progressed {
			break
		}
	}
	return table
}

// buildPhase2ParityPrune runs the BFS for a phase-2 coordinate paired
// with the 24-valued in-H slice permutation and the parity bit, using
// only the 10 phase-2 moves.
func buildPhase2ParityPrune(coordRange int, coordMove, frToBRMove [][numMoves]uint16, parityMove [parityRange][numMoves]uint16) *pruneTable {
	const sliceH = 24
	size := coordRange * sliceH * parityRange
	table := newPruneTable(size)
	table.set(0, 0)
	filled := 1
	for depth := 0; filled < size; depth++ {
		progressed := false
		for coord := 0; coord < coordRange; coord++ {
			for s := 0; s < sliceH; s++ {
				for p := 0; p < parityRange; p++ {
					idx := (coord*sliceH+s)*parityRange + p
					if table.get(idx) != depth {
						continue
					}
					for _, m := range phase2Moves {
						nc := int(coordMove[coord][m])
						ns := int(frToBRMove[s][m])
						np := int(parityMove[p][m])
						nidx := (nc*sliceH+ns)*parityRange + np
						if table.get(nidx) == pruneSentinel {
							table.set(nidx, depth+1)
							filled++
							progressed = true
						}
					}
				}
			}
		}
		if !progressed {
			break
		}
	}
	return table
}
