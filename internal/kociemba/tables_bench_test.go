package kociemba

import "testing"

// BenchmarkBuildTables times the one-time move/pruning table construction
// that getTables() memoizes behind sync.Once.
func BenchmarkBuildTables(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = buildTables()
	}
}

// BenchmarkSolve times a full two-phase search on a short scramble,
// amortizing table construction via getTables()'s cache.
func BenchmarkSolve(b *testing.B) {
	getTables() // warm the cache outside the timed loop

	scrambled := solvedCubieCube()
	for _, m := range []int{moveIndex(FaceR, 1), moveIndex(FaceU, 1), moveIndex(FaceR, 3), moveIndex(FaceU, 3)} {
		scrambled = scrambled.Multiply(moveCubes[m])
	}
	colors := facesFromCubie(scrambled)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(colors, DefaultMaxDepth, DefaultTimeout); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}
