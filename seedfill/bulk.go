package seedfill

import "log/slog"

// SetAllButMagicValue sets every window site that is not magic to
// newValue. It returns the number of sites whose value changed.
// Returns ErrNoLattice or ErrLatticeBounds for a bad lattice. The undo
// log is cleared on entry.
//
// Complexity: O(W·H).
func (e *Engine[T]) SetAllButMagicValue(newValue, magic T) (int, error) {
	changed, _, err := e.setAllBut("set all but magic value", newValue, magic, false)
	return changed, err
}

// SetAllButMagicValueCollect is SetAllButMagicValue that also returns the
// distinct values it overwrote, excluding magic and newValue, in the order
// first met scanning the window row by row.
func (e *Engine[T]) SetAllButMagicValueCollect(newValue, magic T) ([]T, error) {
	_, vals, err := e.setAllBut("set all but magic value (collect)", newValue, magic, true)
	return vals, err
}

func (e *Engine[T]) setAllBut(op string, newValue, magic T, collect bool) (int, []T, error) {
	w := e.win
	e.undo.reset()
	if err := e.checkLattice(op, w.X0, w.Y0); err != nil {
		return 0, nil, err
	}
	e.timer.Mark()

	var (
		seen    map[T]struct{}
		vals    []T
		changed int
	)
	if collect {
		seen = make(map[T]struct{})
		vals = []T{}
	}
	buf, l := e.flat.Buf, e.flat.Stride
	for x := w.X0; x <= w.X1; x++ {
		for y := w.Y0; y <= w.Y1; y++ {
			i := x*l + y
			old := buf[i]
			if old == magic || old == newValue {
				continue
			}
			buf[i] = newValue
			changed++
			if collect {
				if _, ok := seen[old]; !ok {
					seen[old] = struct{}{}
					vals = append(vals, old)
				}
			}
		}
	}

	e.timer.Save(op)
	e.logger().Debug("seedfill: "+op,
		slog.String("window", w.String()),
		slog.Int("changed", changed),
		slog.Int("distinct", len(vals)),
	)
	return changed, vals, nil
}
