package kociemba

import "time"

// maxStackDepth bounds the depth-indexed coordinate stack. The search
// briefly explores a few moves past the eventual solution length before
// backtracking, so this must exceed any maxDepth the caller is allowed
// to request.
const maxStackDepth = 40

// phase1SlackDepth is the tolerance for the trigger "n >= depth1 - 5",
// which lets phase 2 run on a phase-1 prefix that already reaches H
// (twist, flip and slice all 0) up to 5 moves before depth1, not only
// on prefixes of the full depth1 length.
// Tunable, not a correctness condition.
const phase1SlackDepth = 5

// maxPhase2Depth bounds phase 2's own iterative deepening (the
// diameter of H is known to be <= 10 quarter-turn-equivalent moves on
// the phase-2 generators).
const maxPhase2Depth = 10

// search carries one solve's mutable state: a stack of coordinate
// tuples indexed by depth, reused only within this call.
type search struct {
	t    *tableSet
	root CubieCube

	// phase-1 stack: axis/power chosen at depth n, coordinates after
	// applying that move live at n+1.
	axis  [maxStackDepth]int
	power [maxStackDepth]int
	twist [maxStackDepth + 1]int
	flip  [maxStackDepth + 1]int
	slice [maxStackDepth + 1]int

	// phase-1 coordinates needed to reseed phase 2 at any depth.
	urf0, ur2ul0, ub2df0, frbr0, parity0 int

	// phase-2 stack, independent depth index restarting at 0.
	axis2  [maxPhase2Depth]int
	power2 [maxPhase2Depth]int
	p2urf  [maxPhase2Depth + 1]int
	p2frbr [maxPhase2Depth + 1]int
	p2par  [maxPhase2Depth + 1]int
	p2urdf [maxPhase2Depth + 1]int

	depth1          int
	maxDepth        int
	phase2Len       int
	solvedPhase1Len int
	deadline        time.Time
	timedOut        bool
}

// solve runs the full two-phase IDA*: iterative deepening over depth1,
// and within each depth1, over phase 2 whenever phase-1 coordinates
// reach H within the slack window. Returns the total move count and
// true on success.
func (s *search) solve() (int, bool) {
	maxDepth1 := s.maxDepth
	if maxDepth1 > maxStackDepth-1 {
		maxDepth1 = maxStackDepth - 1
	}
	for depth1 := 0; depth1 <= maxDepth1; depth1++ {
		s.depth1 = depth1
		s.twist[0], s.flip[0], s.slice[0] = getTwist(s.root), getFlip(s.root), getSlice(s.root)

		if depth1 == 0 {
			if s.twist[0] == 0 && s.flip[0] == 0 && s.slice[0] == 0 {
				if total, ok := s.tryPhase2(0); ok {
					return total, true
				}
			}
			if s.timedOut {
				return 0, false
			}
			continue
		}

		if total, ok := s.phase1Rec(0, depth1); ok {
			return total, true
		}
		if s.timedOut {
			return 0, false
		}
	}
	return 0, false
}

// phase1Rec explores phase-1 moves at stack depth n with `remaining`
// moves left until depth1 is reached. Axis alternation prunes
// same-face and opposite-face-after-same-axis moves.
func (s *search) phase1Rec(n, remaining int) (int, bool) {
	if remaining == 0 {
		return 0, false
	}
	prevAxis := -1
	if n > 0 {
		prevAxis = s.axis[n-1]
	}
	for axis := 0; axis < numFaces; axis++ {
		if axis == prevAxis || axis == prevAxis-3 {
			continue
		}
		for power := 1; power <= 3; power++ {
			m := moveIndex(Face(axis), power)
			nt := int(s.t.twistMove[s.twist[n]][m])
			nf := int(s.t.flipMove[s.flip[n]][m])
			ns := int(deriveSliceStep(s.t, s.slice[n], m))
			h := maxInt(s.t.sliceTwistPrune.phase1Get(nt, ns), s.t.sliceFlipPrune.phase1Get(nf, ns))
			if h >= remaining {
				continue
			}
			s.axis[n], s.power[n] = axis, power
			s.twist[n+1], s.flip[n+1], s.slice[n+1] = nt, nf, ns

			if nt == 0 && nf == 0 && ns == 0 && n+1 >= s.depth1-phase1SlackDepth {
				if total, ok := s.tryPhase2(n + 1); ok {
					return total, true
				}
				if s.timedOut {
					return 0, false
				}
			}
			if total, ok := s.phase1Rec(n+1, remaining-1); ok {
				return total, true
			}
			if s.timedOut {
				return 0, false
			}
		}
		if time.Now().After(s.deadline) {
			s.timedOut = true
			return 0, false
		}
	}
	return 0, false
}

// tryPhase2 reseeds phase-2 coordinates by replaying the n chosen
// phase-1 moves through the phase-2 move tables, then runs phase 2's
// own iterative deepening.
func (s *search) tryPhase2(n int) (int, bool) {
	urf, ur2ul, ub2df, frbr, par := s.urf0, s.ur2ul0, s.ub2df0, s.frbr0, s.parity0
	for i := 0; i < n; i++ {
		m := moveIndex(Face(s.axis[i]), s.power[i])
		urf = int(s.t.urfToDLFMove[urf][m])
		ur2ul = int(s.t.urToULMove[ur2ul][m])
		ub2df = int(s.t.ubToDFMove[ub2df][m])
		frbr = int(s.t.frToBRMove[frbr][m])
		par = int(s.t.parityMove[par][m])
	}

	var urtodf int
	if ur2ul < mergeRange && ub2df < mergeRange {
		urtodf = int(s.t.mergeTable[ur2ul][ub2df])
	} else {
		urtodf = mergeURtoULandUBtoDF(ur2ul, ub2df)
	}
	if urtodf < 0 {
		return 0, false
	}

	maxDepth2 := s.maxDepth - n
	if maxDepth2 > maxPhase2Depth {
		maxDepth2 = maxPhase2Depth
	}
	if maxDepth2 < 0 {
		return 0, false
	}

	s.p2urf[0], s.p2frbr[0], s.p2par[0], s.p2urdf[0] = urf, frbr, par, urtodf

	for depth2 := 0; depth2 <= maxDepth2; depth2++ {
		if s.phase2Rec(0, depth2) {
			if s.acceptBoundary(n, s.phase2Len) {
				s.solvedPhase1Len = n
				return n + s.phase2Len, true
			}
		}
		if s.timedOut {
			return 0, false
		}
	}
	return 0, false
}

// phase2Rec explores phase-2 moves (the 10 generators of H) at phase-2
// stack depth n with `remaining` moves left.
func (s *search) phase2Rec(n, remaining int) bool {
	if remaining == 0 {
		if s.p2urf[n] == 0 && s.p2frbr[n] == 0 && s.p2par[n] == 0 && s.p2urdf[n] == 0 {
			s.phase2Len = n
			return true
		}
		return false
	}
	prevAxis := -1
	if n > 0 {
		prevAxis = s.axis2[n-1]
	}
	axisExhausted := func(axis int) bool {
		return axis == prevAxis || axis == prevAxis-3
	}
	for _, m := range phase2Moves {
		axis := int(moveFace(m))
		if axisExhausted(axis) {
			continue
		}
		power := movePower(m)
		nurf := int(s.t.urfToDLFMove[s.p2urf[n]][m])
		nfrbr := int(s.t.frToBRMove[s.p2frbr[n]][m])
		npar := int(s.t.parityMove[s.p2par[n]][m])
		nurdf := int(s.t.urToDFMove[s.p2urdf[n]][m])
		h := maxInt(
			s.t.urfToDLFParityPrune.phase2Get(nurf, nfrbr, npar),
			s.t.urToDFParityPrune.phase2Get(nurdf, nfrbr, npar),
		)
		if h >= remaining {
			continue
		}
		s.axis2[n], s.power2[n] = axis, power
		s.p2urf[n+1], s.p2frbr[n+1], s.p2par[n+1], s.p2urdf[n+1] = nurf, nfrbr, npar, nurdf
		if s.phase2Rec(n+1, remaining-1) {
			return true
		}
		if time.Now().After(s.deadline) {
			s.timedOut = true
			return false
		}
	}
	return false
}

// acceptBoundary decides the phase-1/phase-2 boundary tie-break: a
// phase-2 completion may be accepted immediately once the concatenated
// length is no longer than depth1, or once the last phase-1 move and
// first phase-2 move are on different, non-opposite faces (so the
// boundary move isn't redundant and couldn't be shortened by searching
// on).
func (s *search) acceptBoundary(n, len2 int) bool {
	if n+len2 <= s.depth1 {
		return true
	}
	if n == 0 || len2 == 0 {
		return true
	}
	last := s.axis[n-1]
	first := s.axis2[0]
	if first == last {
		return false
	}
	if first == last-3 || first == last+3 {
		return false
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// deriveSliceStep applies one move to a position-only slice coordinate
// by consulting FRtoBR_move at slice*24 and dividing by 24.
func deriveSliceStep(t *tableSet, slice, m int) uint16 {
	return t.frToBRMove[slice*24][m] / 24
}
