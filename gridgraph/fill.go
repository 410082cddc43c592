package gridgraph

import "github.com/katalvlaran/latfill/seedfill"

// FloodFill replaces the 4-connected region of cells equal to the value at
// (x,y) with v. Filling with the value already there is a no-op.
// Returns seedfill.ErrOutOfWindow when (x,y) is off the grid.
// Complexity: O(W×H).
func (gg *GridGraph) FloodFill(x, y, v int) (seedfill.Result, error) {
	return gg.fill.FillOneValue(y, x, v)
}

// FillToBorder sets v on every cell reachable from (x,y) through cells
// holding neither border nor v. The writes are logged; Undo reverts them
// until the next fill.
// Returns seedfill.ErrOutOfWindow or seedfill.ErrSeedOnBorder.
// Complexity: O(W×H).
func (gg *GridGraph) FillToBorder(x, y, v, border int) (seedfill.Result, error) {
	return gg.fill.FillToBorderValue(y, x, v, border)
}

// Undo reverts the last FillToBorder and returns the number of writes undone.
func (gg *GridGraph) Undo() int {
	return gg.fill.Restore()
}

// Relabel sets every cell not equal to keep to v and returns the distinct
// values it replaced, in row-major order of first appearance.
// Complexity: O(W×H).
func (gg *GridGraph) Relabel(v, keep int) ([]int, error) {
	return gg.fill.SetAllButMagicValueCollect(v, keep)
}
