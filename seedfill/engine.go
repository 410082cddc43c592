package seedfill

import "log/slog"

// Engine flood-fills a window of a 2D lattice from a seed point.
//
// The lattice (SetLattice, SetStride) and the window (SetWindow) are set
// independently; both are read at the start of each fill. Stack, undo log
// and counters are reset by every fill call. An Engine must not be used
// from several goroutines at once. Engines working on disjoint windows of
// one lattice need no synchronisation.
type Engine[T comparable] struct {
	flat  Flat[T]
	win   Window
	opts  Options
	stack *segmentStack
	undo  undoLog[T]
	timer *Timer
}

// New builds an Engine from DefaultOptions and opts.
// Returns ErrOptionViolation (wrapped with detail) for an invalid option.
func New[T comparable](opts ...Option) (*Engine[T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	e := &Engine[T]{
		opts:  o,
		stack: newSegmentStack(o.StackCapacity),
		timer: NewTimer("SeedFill"),
	}
	if !o.Timing {
		e.timer.Disable()
	}
	return e, nil
}

// SetLattice sets the flat buffer the engine reads and writes. The buffer
// stays owned by the caller.
func (e *Engine[T]) SetLattice(buf []T) { e.flat.Buf = buf }

// SetStride sets the row stride L used by SiteIndex.
func (e *Engine[T]) SetStride(l int) { e.flat.Stride = l }

// Lattice returns the configured buffer and stride.
func (e *Engine[T]) Lattice() ([]T, int) { return e.flat.Buf, e.flat.Stride }

// SetWindow stores the inclusive bounds [x0,x1] x [y0,y1]. No validation
// is performed here; fills validate the seed against the window.
func (e *Engine[T]) SetWindow(x0, y0, x1, y1 int) {
	e.win = Window{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Window returns the current window.
func (e *Engine[T]) Window() Window { return e.win }

func (e *Engine[T]) X0() int { return e.win.X0 }
func (e *Engine[T]) Y0() int { return e.win.Y0 }
func (e *Engine[T]) X1() int { return e.win.X1 }
func (e *Engine[T]) Y1() int { return e.win.Y1 }

// SiteIndex maps (x,y) to x*L + y.
func (e *Engine[T]) SiteIndex(x, y int) int { return e.flat.Index(x, y) }

// Options returns the engine configuration.
func (e *Engine[T]) Options() Options { return e.opts }

// Timer returns the engine's split timer.
func (e *Engine[T]) Timer() *Timer { return e.timer }

// Restore undoes the writes logged by the last FillToBorderValue, newest
// first, and clears the log. It returns the number of writes undone.
// The lattice must be the one that was filled.
func (e *Engine[T]) Restore() int {
	e.timer.Mark()
	n := e.undo.replay(e.flat.Buf)
	e.timer.Save("restore")
	e.logger().Debug("seedfill: restore", slog.Int("values", n))
	return n
}

// Changes returns a copy of the undo log in write order.
func (e *Engine[T]) Changes() []Change[T] { return e.undo.changes() }

// UndoLen returns the number of logged writes.
func (e *Engine[T]) UndoLen() int { return e.undo.len() }

func (e *Engine[T]) logger() *slog.Logger {
	if e.opts.Logger != nil {
		return e.opts.Logger
	}
	return Logger()
}

// checkLattice validates the flat lattice against the window.
func (e *Engine[T]) checkLattice(op string, x, y int) error {
	if e.flat.Buf == nil {
		return &SeedError{Op: op, X: x, Y: y, Window: e.win, Err: ErrNoLattice}
	}
	if e.win.Width() > 0 && e.win.Height() > 0 && !e.flat.covers(e.win) {
		return &SeedError{Op: op, X: x, Y: y, Window: e.win, Err: ErrLatticeBounds}
	}
	return nil
}
