package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/latfill/gridgraph"
)

// randomGrid builds a deterministic n×n grid with values in [0,4].
func randomGrid(n int) [][]int {
	rng := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := 0; y < n; y++ {
		row := make([]int, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(5)
		}
		grid[y] = row
	}
	return grid
}

// BenchmarkConnectedComponents measures performance of ConnectedComponents
// on a randomly generated 1000×1000 grid with values in [0,4].
// Complexity: O(W×H)
func BenchmarkConnectedComponents(b *testing.B) {
	gg, err := gridgraph.From2D(randomGrid(1000))
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkFillToBorder fills an open 1000×1000 grid from its centre and
// undoes the fill on every iteration.
// Complexity: O(W×H)
func BenchmarkFillToBorder(b *testing.B) {
	const n = 1000
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	gg, err := gridgraph.From2D(grid)
	if err != nil {
		b.Fatalf("setup From2D failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gg.FillToBorder(n/2, n/2, 1, 9); err != nil {
			b.Fatal(err)
		}
		gg.Undo()
	}
}
