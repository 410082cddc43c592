package gridgraph

// ConnectedComponents finds all 4-connected regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold).
// Returns a slice of components ordered by their first cell in row-major
// order; each component lists its row‐major cell indices in ascending order.
//
// Land cells are copied into a scratch lattice (land = 0, water = -1) and
// each unlabelled land cell seeds a one-value fill with the next label.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for the label lattice and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	labels := make([]int, len(gg.cells))
	for i, v := range gg.cells {
		if v < gg.LandThreshold {
			labels[i] = -1 // water
		}
	}
	opts := gg.opts
	opts.StackCapacity = 0 // labelling must be complete
	e, err := newEngine(labels, gg.Width, gg.Height, opts)
	if err != nil {
		return nil
	}

	n := 0
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if labels[gg.index(x, y)] != 0 {
				continue
			}
			n++
			if _, err := e.FillOneValue(y, x, n); err != nil {
				return nil
			}
		}
	}

	comps := make([][]int, n)
	for i, l := range labels {
		if l > 0 {
			comps[l-1] = append(comps[l-1], i)
		}
	}
	return comps
}

// ComponentSizes returns len of each component from ConnectedComponents,
// in the same order.
func (gg *GridGraph) ComponentSizes() []int {
	comps := gg.ConnectedComponents()
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	return sizes
}
