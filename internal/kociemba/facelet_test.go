package kociemba

import "testing"

// facesFromCubie is the forward (cubie -> facelet) direction, built from
// the same cornerFacelet/edgeFacelet/cornerColor/edgeColor tables
// ToCubieCube uses, so a round trip through both directions is a
// self-consistency check on the reduction tables rather than an
// assumption about any particular sticker layout.
func facesFromCubie(c CubieCube) [numFacelets]Color {
	var f [numFacelets]Color
	for face := Face(0); face < numFaces; face++ {
		f[facelet(face, 1, 1)] = Color(face)
	}
	for slot := Corner(0); slot < numCorners; slot++ {
		piece := Corner(c.cp[slot])
		o := c.co[slot]
		positions := cornerFacelet[slot]
		triple := cornerColor[piece]
		for j := 0; j < 3; j++ {
			f[positions[j]] = triple[(j-o+3)%3]
		}
	}
	for slot := Edge(0); slot < numEdges; slot++ {
		piece := Edge(c.ep[slot])
		positions := edgeFacelet[slot]
		pair := edgeColor[piece]
		if c.eo[slot] == 0 {
			f[positions[0]], f[positions[1]] = pair[0], pair[1]
		} else {
			f[positions[0]], f[positions[1]] = pair[1], pair[0]
		}
	}
	return f
}

func assertSameCubie(t *testing.T, got, want CubieCube) {
	t.Helper()
	if got.cp != want.cp {
		t.Errorf("cp = %v, want %v", got.cp, want.cp)
	}
	if got.co != want.co {
		t.Errorf("co = %v, want %v", got.co, want.co)
	}
	if got.ep != want.ep {
		t.Errorf("ep = %v, want %v", got.ep, want.ep)
	}
	if got.eo != want.eo {
		t.Errorf("eo = %v, want %v", got.eo, want.eo)
	}
}

func TestFaceletRoundTripSolved(t *testing.T) {
	want := solvedCubieCube()
	fc := FaceletsFromColors(facesFromCubie(want))
	got, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube: %v", err)
	}
	assertSameCubie(t, got, want)
}

func TestFaceletRoundTripAfterMoves(t *testing.T) {
	for face := Face(0); face < numFaces; face++ {
		for power := 1; power <= 3; power++ {
			want := faceMoveCube(face, power)
			fc := FaceletsFromColors(facesFromCubie(want))
			got, err := fc.ToCubieCube()
			if err != nil {
				t.Fatalf("ToCubieCube after %v^%d: %v", face, power, err)
			}
			assertSameCubie(t, got, want)
		}
	}
}

func TestFaceletRoundTripAfterSequence(t *testing.T) {
	want := solvedCubieCube()
	for _, m := range []int{moveIndex(FaceR, 1), moveIndex(FaceU, 1), moveIndex(FaceR, 3), moveIndex(FaceF, 2)} {
		want = want.Multiply(moveCubes[m])
	}
	fc := FaceletsFromColors(facesFromCubie(want))
	got, err := fc.ToCubieCube()
	if err != nil {
		t.Fatalf("ToCubieCube: %v", err)
	}
	assertSameCubie(t, got, want)
}

func TestToCubieCubeRejectsUnknownColors(t *testing.T) {
	fc := FaceletsFromColors(facesFromCubie(solvedCubieCube()))
	fc.f[0] = Color(99) // not a real piece color at this slot
	if _, err := fc.ToCubieCube(); err == nil {
		t.Error("ToCubieCube with a corrupted sticker should return an error")
	}
}
