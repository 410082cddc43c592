// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a lattice of 4-connected sites. It supports:
//
//   - Flood fill of equal-valued regions and fill up to a border value
//   - Undo of the last border fill
//   - Identification of connected components of “land” cells
//
// Cells with value < LandThreshold are considered “water”; cells with value ≥ LandThreshold are “land”.
package gridgraph

import (
	"github.com/katalvlaran/latfill/seedfill"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so fills never touch the caller's slice.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, or seedfill.ErrOptionViolation
// for a negative StackCapacity.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Rows are windows onto one backing slice.
	cells := make([]int, w*h)
	rows := make([][]int, h)
	for y := 0; y < h; y++ {
		rows[y] = cells[y*w : (y+1)*w : (y+1)*w]
		copy(rows[y], values[y])
	}

	e, err := newEngine(cells, w, h, opts)
	if err != nil {
		return nil, err
	}
	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    rows,
		LandThreshold: opts.LandThreshold,
		cells:         cells,
		fill:          e,
		opts:          opts,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions.
func From2D(values [][]int) (*GridGraph, error) {
	return NewGridGraph(values, DefaultGridOptions())
}

// newEngine binds a fill engine to a row-major w×h buffer. The engine's x
// axis runs over rows (stride w), its y axis over columns.
func newEngine(buf []int, w, h int, opts GridOptions) (*seedfill.Engine[int], error) {
	e, err := seedfill.New[int](
		seedfill.WithStackCapacity(opts.StackCapacity),
		seedfill.WithTimer(false),
	)
	if err != nil {
		return nil, err
	}
	e.SetLattice(buf)
	e.SetStride(w)
	e.SetWindow(0, 0, h-1, w-1)
	return e, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Read returns the value at (x,y). Together with Write it makes a
// GridGraph a seedfill.Sites[int].
func (gg *GridGraph) Read(x, y int) int { return gg.CellValues[y][x] }

// Write stores v at (x,y).
func (gg *GridGraph) Write(x, y, v int) { gg.CellValues[y][x] = v }

// Window returns the whole grid as a seedfill window in (x,y) coordinates.
func (gg *GridGraph) Window() seedfill.Window {
	return seedfill.Window{X0: 0, Y0: 0, X1: gg.Width - 1, Y1: gg.Height - 1}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
