package seedfill

// Sites is read/write access to a 2D lattice of site values.
// Fills only address coordinates inside the engine's window.
type Sites[T comparable] interface {
	Read(x, y int) T
	Write(x, y int, v T)
}

// Flat is a caller-owned flat lattice with row stride Stride.
// Site (x,y) lives at Buf[x*Stride+y].
type Flat[T comparable] struct {
	Buf    []T
	Stride int
}

// NewFlat wraps buf as a lattice with row stride stride. The buffer is not copied.
func NewFlat[T comparable](buf []T, stride int) *Flat[T] {
	return &Flat[T]{Buf: buf, Stride: stride}
}

// Index maps (x,y) to x*Stride + y.
// Complexity: O(1).
func (f *Flat[T]) Index(x, y int) int { return x*f.Stride + y }

// Read returns the value at (x,y).
func (f *Flat[T]) Read(x, y int) T { return f.Buf[f.Index(x, y)] }

// Write stores v at (x,y).
func (f *Flat[T]) Write(x, y int, v T) { f.Buf[f.Index(x, y)] = v }

// covers reports whether every site of w addresses inside Buf.
func (f *Flat[T]) covers(w Window) bool {
	if f.Stride <= 0 || w.X0 < 0 || w.Y0 < 0 || w.Y1 >= f.Stride {
		return false
	}
	return f.Index(w.X1, w.Y1) < len(f.Buf)
}

// SiteFuncs adapts a pair of functions to Sites. Any state the functions
// need (a composed store, a generator) is captured by the closures.
type SiteFuncs[T comparable] struct {
	ReadFn  func(x, y int) T
	WriteFn func(x, y int, v T)
}

// Read calls ReadFn.
func (s SiteFuncs[T]) Read(x, y int) T { return s.ReadFn(x, y) }

// Write calls WriteFn.
func (s SiteFuncs[T]) Write(x, y int, v T) { s.WriteFn(x, y, v) }
