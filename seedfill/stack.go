package seedfill

// pushStatus is the outcome of a segment push.
type pushStatus int

const (
	pushed      pushStatus = iota // stored on the stack
	pushOutside                   // next row leaves the window, nothing to explore
	pushDropped                   // stack full
)

// segmentStack is a LIFO of pending scanline spans. It replaces recursion
// with O(frontier) explicit storage and is reused across fills.
type segmentStack struct {
	segs     []Segment
	capacity int // 0 = unbounded
	y0, y1   int // row bounds of the current window
	maxDepth int
	dropped  int
}

func newSegmentStack(capacity int) *segmentStack {
	n := capacity
	if n == 0 {
		n = 64
	}
	return &segmentStack{segs: make([]Segment, 0, n), capacity: capacity}
}

// reset empties the stack and binds it to the rows [y0,y1].
func (s *segmentStack) reset(y0, y1 int) {
	s.segs = s.segs[:0]
	s.y0, s.y1 = y0, y1
	s.maxDepth = 0
	s.dropped = 0
}

// push stores (y,xl,xr,dy) when row y+dy is inside the window and there is room.
func (s *segmentStack) push(y, xl, xr, dy int) pushStatus {
	if next := y + dy; next < s.y0 || next > s.y1 {
		return pushOutside
	}
	if s.capacity > 0 && len(s.segs) >= s.capacity {
		s.dropped++
		return pushDropped
	}
	s.segs = append(s.segs, Segment{Y: y, XL: xl, XR: xr, DY: dy})
	if len(s.segs) > s.maxDepth {
		s.maxDepth = len(s.segs)
	}
	return pushed
}

// pop removes the top segment and returns it with Y advanced by DY.
// ok is false when the stack is empty.
func (s *segmentStack) pop() (seg Segment, ok bool) {
	n := len(s.segs)
	if n == 0 {
		return Segment{}, false
	}
	seg = s.segs[n-1]
	s.segs = s.segs[:n-1]
	seg.Y += seg.DY
	return seg, true
}

func (s *segmentStack) size() int { return len(s.segs) }
