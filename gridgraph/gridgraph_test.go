package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/latfill/gridgraph"
	"github.com/katalvlaran/latfill/seedfill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	bad := gridgraph.DefaultGridOptions()
	bad.StackCapacity = -1
	cases := []struct {
		name string
		grid [][]int
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"NegativeCapacity", [][]int{{1}}, bad, seedfill.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
	assert.Equal(t, seedfill.Window{X0: 0, Y0: 0, X1: 2, Y1: 1}, gg.Window())
}

// TestNewGridGraph_DeepCopy ensures fills never reach the caller's slice.
func TestNewGridGraph_DeepCopy(t *testing.T) {
	grid := [][]int{{0, 0}, {0, 0}}
	gg, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	_, err = gg.FloodFill(0, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 0}, {0, 0}}, grid)
	assert.Equal(t, [][]int{{4, 4}, {4, 4}}, gg.CellValues)
}

//----------------------------------------------------------------------------//
// Fill Tests
//----------------------------------------------------------------------------//

// TestFloodFill recolours one region of a non-square grid.
func TestFloodFill(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{1, 1, 2, 2, 2},
		{1, 2, 2, 1, 1},
		{1, 1, 1, 1, 2},
	})
	require.NoError(t, err)

	res, err := gg.FloodFill(3, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Filled)
	assert.Equal(t, [][]int{
		{1, 1, 7, 7, 7},
		{1, 7, 7, 1, 1},
		{1, 1, 1, 1, 2},
	}, gg.CellValues)

	_, err = gg.FloodFill(5, 0, 7)
	assert.ErrorIs(t, err, seedfill.ErrOutOfWindow)
}

// TestFillToBorder_Undo fills inside a wall, then undoes it.
func TestFillToBorder_Undo(t *testing.T) {
	orig := [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 9, 9, 9, 9, 0},
		{0, 9, 3, 4, 9, 0},
		{0, 9, 4, 3, 9, 0},
		{0, 9, 9, 9, 9, 0},
	}
	gg, err := gridgraph.From2D(orig)
	require.NoError(t, err)

	res, err := gg.FillToBorder(2, 2, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Filled)
	assert.Equal(t, []int{9, 1, 1, 9}, gg.CellValues[2][1:5])
	assert.Equal(t, []int{9, 1, 1, 9}, gg.CellValues[3][1:5])
	assert.Equal(t, 0, gg.CellValues[0][0])

	assert.Equal(t, 4, gg.Undo())
	assert.Equal(t, orig, gg.CellValues)

	_, err = gg.FillToBorder(1, 1, 1, 9)
	assert.ErrorIs(t, err, seedfill.ErrSeedOnBorder)
}

// TestSites_CallbackVariant fills a GridGraph through the Sites interface
// and checks it agrees with the flat-lattice fill on a copy.
func TestSites_CallbackVariant(t *testing.T) {
	grid := [][]int{
		{2, 2, 0, 2},
		{0, 2, 0, 2},
		{2, 2, 2, 2},
		{2, 0, 0, 0},
	}
	viaSites, err := gridgraph.From2D(grid)
	require.NoError(t, err)
	viaFlat, err := gridgraph.From2D(grid)
	require.NoError(t, err)

	e, err := seedfill.New[int]()
	require.NoError(t, err)
	w := viaSites.Window()
	e.SetWindow(w.X0, w.Y0, w.X1, w.Y1)

	var sites seedfill.Sites[int] = viaSites
	res, err := e.FillToBorderValueSites(0, 0, 6, 0, sites)
	require.NoError(t, err)

	want, err := viaFlat.FillToBorder(0, 0, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, want.Filled, res.Filled)
	assert.Equal(t, viaFlat.CellValues, viaSites.CellValues)
	assert.Equal(t, 10, res.Filled)
}

// TestRelabel keeps one value and collapses the rest.
func TestRelabel(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{
		{0, 3, 4},
		{5, 0, 3},
	})
	require.NoError(t, err)

	replaced, err := gg.Relabel(1, 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{3, 4, 5}, replaced)
	assert.Equal(t, [][]int{{0, 1, 1}, {1, 0, 1}}, gg.CellValues)
}
