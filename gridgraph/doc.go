// Package gridgraph treats a 2D grid of cells as a 4-connected lattice,
// enabling region fills and component analysis on top of seedfill.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - FloodFill recolours a region of equal values; FillToBorder fills up to
//     a border value and can be undone with Undo.
//   - Relabel overwrites everything except one protected value.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold.
//   - A GridGraph is itself a seedfill.Sites[int], so any seedfill engine can
//     fill it through FillToBorderValueSites.
//
// Why:
//
//   - Game maps: contiguous land detection, paint-bucket edits with undo.
//   - Percolation: cluster labelling and cluster size distributions.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - FloodFill, FillToBorder: O(W×H), Memory: O(frontier) + O(writes) undo log.
//   - ConnectedComponents:     O(W×H), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.StackCapacity: fill segment stack bound (0 = unbounded).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - seedfill errors (ErrOutOfWindow, ErrSeedOnBorder, ErrStackOverflow) from fills.
package gridgraph
