package seedfill

// undoLog records, in write order, the flat index and prior value of every
// logged write. A site may appear more than once; only replaying newest to
// oldest recovers the original contents.
type undoLog[T comparable] struct {
	indices []int
	old     []T
}

func (u *undoLog[T]) record(i int, old T) {
	u.indices = append(u.indices, i)
	u.old = append(u.old, old)
}

func (u *undoLog[T]) reset() {
	u.indices = u.indices[:0]
	u.old = u.old[:0]
}

func (u *undoLog[T]) len() int { return len(u.indices) }

// replay writes the recorded values back into buf, last write first,
// and empties the log. It returns the number of entries replayed.
func (u *undoLog[T]) replay(buf []T) int {
	n := len(u.indices)
	for i := n - 1; i >= 0; i-- {
		buf[u.indices[i]] = u.old[i]
	}
	u.reset()
	return n
}

func (u *undoLog[T]) changes() []Change[T] {
	out := make([]Change[T], len(u.indices))
	for i, idx := range u.indices {
		out[i] = Change[T]{Index: idx, Old: u.old[i]}
	}
	return out
}
