// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/latfill.
package gridgraph

import (
	"errors"

	"github.com/katalvlaran/latfill/seedfill"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// StackCapacity bounds the fill engine's segment stack; 0 is unbounded.
	StackCapacity int
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), StackCapacity=0 (unbounded).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		StackCapacity: 0,
	}
}

// GridGraph is a mutable 2D integer grid with 4-connected fills.
// CellValues[y][x] holds the value at (x,y); all rows share one row-major
// backing slice so the seedfill engine can address it as a flat lattice.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int

	cells []int                  // backing store, cells[y*Width+x]
	fill  *seedfill.Engine[int] // bound to cells, rows as engine x
	opts  GridOptions
}
