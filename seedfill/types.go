// Package seedfill defines the window, segment, result and option types
// and the sentinel errors shared by all fill entry points.
package seedfill

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Sentinel errors for seed-fill operations.
var (
	// ErrOutOfWindow indicates the seed point lies outside the configured window.
	ErrOutOfWindow = errors.New("seedfill: seed point outside window")

	// ErrSeedOnBorder indicates the seed site already holds the border value.
	ErrSeedOnBorder = errors.New("seedfill: seed value equals border value")

	// ErrStackOverflow indicates a segment push was lost because the stack was full.
	ErrStackOverflow = errors.New("seedfill: segment stack capacity exceeded")

	// ErrNoLattice indicates a flat-lattice operation ran before SetLattice.
	ErrNoLattice = errors.New("seedfill: lattice not set")

	// ErrLatticeBounds indicates the window addresses sites outside the lattice buffer.
	ErrLatticeBounds = errors.New("seedfill: window exceeds lattice bounds")

	// ErrNilSites indicates a nil Sites implementation was supplied.
	ErrNilSites = errors.New("seedfill: sites is nil")

	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("seedfill: invalid option supplied")
)

// SeedError reports a failed fill together with the state at the time of
// failure. Err is one of the package sentinels; match it with errors.Is.
type SeedError struct {
	Op     string // operation name, e.g. "fill to border value"
	X, Y   int    // seed coordinates
	Window Window // window at the time of the call
	Value  any    // seed site value, nil if it was not read
	Border any    // border value, nil for FillOneValue
	Err    error
}

func (e *SeedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.Err.Error())
	fmt.Fprintf(&b, " (%s: seed (%d,%d)", e.Op, e.X, e.Y)
	if e.Value != nil {
		fmt.Fprintf(&b, ", value %v", e.Value)
	}
	if e.Border != nil {
		fmt.Fprintf(&b, ", border %v", e.Border)
	}
	fmt.Fprintf(&b, ", %s)", e.Window)
	return b.String()
}

func (e *SeedError) Unwrap() error { return e.Err }

// Window is an inclusive, axis-aligned rectangle [X0,X1] x [Y0,Y1]
// restricting every fill. A well-formed window has X0<=X1 and Y0<=Y1;
// this is not enforced.
type Window struct {
	X0, Y0 int // minimum corner
	X1, Y1 int // maximum corner (inclusive)
}

// Contains reports whether (x,y) lies inside the window.
func (w Window) Contains(x, y int) bool {
	return x >= w.X0 && x <= w.X1 && y >= w.Y0 && y <= w.Y1
}

// Width is the number of columns in [X0,X1]; zero for a malformed window.
func (w Window) Width() int { return max(w.X1-w.X0+1, 0) }

// Height is the number of rows in [Y0,Y1]; zero for a malformed window.
func (w Window) Height() int { return max(w.Y1-w.Y0+1, 0) }

// Area is Width*Height.
func (w Window) Area() int { return w.Width() * w.Height() }

func (w Window) String() string {
	return fmt.Sprintf("Window (%d,%d,%d,%d)", w.X0, w.Y0, w.X1, w.Y1)
}

// Segment is a scanline span awaiting exploration. As stored, the run
// [XL,XR] was filled on row Y and row Y+DY is explored next; pop returns
// the segment with Y already advanced by DY. DY is +1 or -1.
type Segment struct {
	Y, XL, XR, DY int
}

// Result summarises one fill call.
type Result struct {
	// Filled is the number of site writes performed.
	Filled int
	// Dropped counts segment pushes lost to stack capacity.
	Dropped int
	// MaxDepth is the peak segment stack depth.
	MaxDepth int
	// Elapsed is the wall-clock duration of the scan.
	Elapsed time.Duration
}

// Change is one undo-log entry: the value held at Index just before a write.
type Change[T comparable] struct {
	Index int
	Old   T
}

// DefaultStackCapacity is the segment stack depth used when none is configured.
const DefaultStackCapacity = 10000

// OverflowPolicy selects what happens when a segment push exceeds the stack capacity.
type OverflowPolicy int

const (
	// OverflowError stops the fill at the first lost push and returns ErrStackOverflow
	// together with the partial Result.
	OverflowError OverflowPolicy = iota

	// OverflowDrop silently drops the push and keeps scanning. The fill may be
	// incomplete; Result.Dropped reports how many pushes were lost.
	OverflowDrop
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowError:
		return "error"
	case OverflowDrop:
		return "drop"
	default:
		return fmt.Sprintf("OverflowPolicy(%d)", int(p))
	}
}

// Option configures an Engine via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the tunable parameters of an Engine.
type Options struct {
	// StackCapacity bounds the segment stack. Zero means unbounded.
	StackCapacity int

	// Overflow selects the behaviour when StackCapacity is exceeded.
	Overflow OverflowPolicy

	// UndoLog enables recording of old values by FillToBorderValue.
	UndoLog bool

	// Timing enables the split timer.
	Timing bool

	// Logger overrides the package logger for this engine when non-nil.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - StackCapacity = DefaultStackCapacity
//   - Overflow = OverflowError
//   - UndoLog and Timing enabled
//   - the package logger
func DefaultOptions() Options {
	return Options{
		StackCapacity: DefaultStackCapacity,
		Overflow:      OverflowError,
		UndoLog:       true,
		Timing:        true,
	}
}

// WithStackCapacity bounds the segment stack.
//
//	n > 0: at most n pending segments
//	n == 0: unbounded
//	n < 0: invalid option → ErrOptionViolation
func WithStackCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StackCapacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StackCapacity = n
	}
}

// WithOverflowPolicy selects how a full stack is handled.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *Options) {
		if p != OverflowError && p != OverflowDrop {
			o.err = fmt.Errorf("%w: unknown overflow policy %v", ErrOptionViolation, p)
			return
		}
		o.Overflow = p
	}
}

// WithUndoLog enables or disables old-value recording in FillToBorderValue.
func WithUndoLog(enabled bool) Option {
	return func(o *Options) {
		o.UndoLog = enabled
	}
}

// WithTimer enables or disables the split timer.
func WithTimer(enabled bool) Option {
	return func(o *Options) {
		o.Timing = enabled
	}
}

// WithLogger sets a per-engine logger. A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
