// Package latfill is a toolkit for 4-connected seed fills over 2D lattices:
// images, label maps, simulation grids, anything addressable as (x,y).
//
// What is latfill?
//
//	A small, allocation-conscious library built around one scanline engine:
//		• Seed fill by value: recolour a region of equal values
//		• Seed fill to a border: fill everything not yet border or new value
//		• Undo: every border fill can be rolled back exactly
//		• Bulk replace: overwrite all sites except a protected value
//		• Bounded segment stack with explicit overflow policy
//		• Split timer and slog-based diagnostics
//
// Why choose latfill?
//
//   - Window-bounded: fills never leave the rectangle you give them
//   - Generic: any comparable site type (uint8, int, color.RGBA, ...)
//   - Two access paths: a flat strided buffer, or your own Read/Write
//   - Quiet by default: nothing is logged until you install a logger
//
// Packages:
//
//	seedfill/     — the engine: windows, fills, undo log, stack, timer, errors
//	imagelattice/ — draw.Image and *image.Gray adapters, checkpoint/rollback
//	gridgraph/    — [][]int grids: flood fill, undo, relabel, islands
//	examples/     — a paint-bucket program tying the three together
//
// Lattice layout:
//
//	site (x,y) lives at buf[x*L + y], so y is the contiguous axis.
//	A fill scans runs along x at a fixed y and steps y by ±1 between runs.
//
//	go get github.com/katalvlaran/latfill
package latfill
