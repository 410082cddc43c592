package seedfill

import (
	"log/slog"
	"time"
)

// FillOneValue replaces every site 4-connected to (x,y) that holds the
// seed's current value with newValue.
//
// A seed already equal to newValue is a no-op: zero Result, nil error.
// The undo log is cleared on entry.
// Returns ErrOutOfWindow if the seed lies outside the window, ErrNoLattice
// or ErrLatticeBounds for a bad lattice, ErrStackOverflow under
// OverflowError. No undo log is kept.
//
// Complexity: O(W·H) time, O(StackCapacity) memory.
func (e *Engine[T]) FillOneValue(x, y int, newValue T) (Result, error) {
	const op = "fill one value"
	e.undo.reset()
	if err := e.checkLattice(op, x, y); err != nil {
		return Result{}, err
	}
	if !e.win.Contains(x, y) {
		return Result{}, &SeedError{Op: op, X: x, Y: y, Window: e.win, Err: ErrOutOfWindow}
	}
	buf, l := e.flat.Buf, e.flat.Stride
	old := buf[x*l+y]
	if old == newValue {
		return Result{}, nil
	}

	e.timer.Mark()
	res, err := e.scan(x, y,
		func(x, y int) bool { return buf[x*l+y] == old },
		func(x, y int) { buf[x*l+y] = newValue },
	)
	e.timer.Save(op)
	e.report(op, x, y, res, err)
	if err != nil {
		return res, &SeedError{Op: op, X: x, Y: y, Window: e.win, Value: old, Err: err}
	}
	return res, nil
}

// FillToBorderValue replaces every site reachable from (x,y) through
// 4-connected sites that hold neither border nor newValue. Border sites and
// sites already equal to newValue stop the fill.
//
// Writes go through the undo log unless WithUndoLog(false); Restore rolls
// the fill back; the log is cleared on entry, even when a precondition
// fails. A seed already equal to newValue is rewritten (and counted) once
// and the fill continues from it into the surrounding region.
// Returns ErrOutOfWindow, ErrSeedOnBorder, ErrNoLattice, ErrLatticeBounds,
// or ErrStackOverflow under OverflowError (the partial fill stays logged).
func (e *Engine[T]) FillToBorderValue(x, y int, newValue, border T) (Result, error) {
	const op = "fill to border value"
	e.undo.reset()
	if err := e.checkLattice(op, x, y); err != nil {
		return Result{}, err
	}
	buf, l := e.flat.Buf, e.flat.Stride
	write := func(x, y int) { buf[x*l+y] = newValue }
	if e.opts.UndoLog {
		write = func(x, y int) { e.sitewrite(x, y, newValue) }
	}
	return e.fillToBorder(op, x, y, newValue, border, &e.flat, write)
}

// FillToBorderValueSites is FillToBorderValue over caller-supplied site
// access, for lattices that are not a flat buffer. Writes go directly to
// sites.Write; no undo log is kept.
// Returns ErrNilSites when sites is nil.
func (e *Engine[T]) FillToBorderValueSites(x, y int, newValue, border T, sites Sites[T]) (Result, error) {
	const op = "fill to border value (sites)"
	e.undo.reset()
	if sites == nil {
		return Result{}, &SeedError{Op: op, X: x, Y: y, Window: e.win, Err: ErrNilSites}
	}
	return e.fillToBorder(op, x, y, newValue, border, sites, func(x, y int) { sites.Write(x, y, newValue) })
}

func (e *Engine[T]) fillToBorder(op string, x, y int, newValue, border T, sites Sites[T], write func(x, y int)) (Result, error) {
	if !e.win.Contains(x, y) {
		return Result{}, &SeedError{Op: op, X: x, Y: y, Window: e.win, Border: border, Err: ErrOutOfWindow}
	}
	old := sites.Read(x, y)
	if old == border {
		return Result{}, &SeedError{Op: op, X: x, Y: y, Window: e.win, Value: old, Border: border, Err: ErrSeedOnBorder}
	}
	fillable := func(x, y int) bool {
		v := sites.Read(x, y)
		return v != border && v != newValue
	}
	if old == newValue {
		// The seed lets the scan through once, so the region around an
		// already painted seed is still filled.
		pending := true
		strict := fillable
		fillable = func(cx, cy int) bool {
			if pending && cx == x && cy == y {
				pending = false
				return true
			}
			return strict(cx, cy)
		}
	}

	e.timer.Mark()
	res, err := e.scan(x, y, fillable, write)
	e.timer.Save(op)
	e.report(op, x, y, res, err)
	if err != nil {
		return res, &SeedError{Op: op, X: x, Y: y, Window: e.win, Value: old, Border: border, Err: err}
	}
	return res, nil
}

// sitewrite logs the value at (x,y) and then overwrites it.
func (e *Engine[T]) sitewrite(x, y int, v T) {
	i := e.flat.Index(x, y)
	e.undo.record(i, e.flat.Buf[i])
	e.flat.Buf[i] = v
}

// scan is the 4-connected scanline fill with span coalescing. fillable is
// the stopping condition, write paints one site. The seed must be inside
// the window.
//
// Each popped segment says: row y-dy was filled over [x1,x2]; explore row
// y. The run found on row y is pushed onward in direction dy, and any part
// of it that leaks past [x1,x2] is pushed back in direction -dy.
func (e *Engine[T]) scan(x, y int, fillable func(x, y int) bool, write func(x, y int)) (Result, error) {
	start := time.Now()
	w := e.win
	st := e.stack
	st.reset(w.Y0, w.Y1)
	strict := e.opts.Overflow == OverflowError

	var res Result
	overflow := false
	push := func(y, xl, xr, dy int) {
		if st.push(y, xl, xr, dy) == pushDropped {
			overflow = true
		}
	}

	push(y, x, x, 1)
	push(y+1, x, x, -1) // seed segment, popped first

	for !(strict && overflow) {
		seg, ok := st.pop()
		if !ok {
			break
		}
		row, x1, x2, dy := seg.Y, seg.XL, seg.XR, seg.DY

		cx := x1
		for cx >= w.X0 && fillable(cx, row) {
			write(cx, row)
			res.Filled++
			cx--
		}

		var left int
		skip := cx >= x1
		if !skip {
			left = cx + 1
			if left < x1 {
				push(row, left, x1-1, -dy) // leak on left
			}
			cx = x1 + 1
		}

		for {
			if !skip {
				for cx <= w.X1 && fillable(cx, row) {
					write(cx, row)
					res.Filled++
					cx++
				}
				push(row, left, cx-1, dy)
				if cx > x2+1 {
					push(row, x2+1, cx-1, -dy) // leak on right
				}
			}
			skip = false
			for cx++; cx <= x2 && !fillable(cx, row); cx++ {
			}
			left = cx
			if cx > x2 {
				break
			}
		}
	}

	res.Dropped = st.dropped
	res.MaxDepth = st.maxDepth
	res.Elapsed = time.Since(start)
	if strict && overflow {
		return res, ErrStackOverflow
	}
	return res, nil
}

// report logs the outcome of one fill.
func (e *Engine[T]) report(op string, x, y int, res Result, err error) {
	log := e.logger()
	if res.Dropped > 0 && err == nil {
		log.Warn("seedfill: segments dropped, fill may be incomplete",
			slog.String("op", op),
			slog.Int("dropped", res.Dropped),
			slog.Int("capacity", e.opts.StackCapacity),
		)
	}
	log.Debug("seedfill: fill done",
		slog.String("op", op),
		slog.Int("x", x),
		slog.Int("y", y),
		slog.String("window", e.win.String()),
		slog.Int("filled", res.Filled),
		slog.Int("max_depth", res.MaxDepth),
		slog.Duration("elapsed", res.Elapsed),
		slog.Any("err", err),
	)
}

// Fill runs FillOneValue once over buf with row stride l inside win, using
// a throwaway Engine configured by opts.
func Fill[T comparable](buf []T, l int, win Window, x, y int, newValue T, opts ...Option) (Result, error) {
	e, err := New[T](opts...)
	if err != nil {
		return Result{}, err
	}
	e.SetLattice(buf)
	e.SetStride(l)
	e.SetWindow(win.X0, win.Y0, win.X1, win.Y1)
	return e.FillOneValue(x, y, newValue)
}
