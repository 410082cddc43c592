package seedfill

import (
	"fmt"
	"strings"
	"time"
)

// Split is one labelled interval recorded by a Timer.
type Split struct {
	Label   string
	Elapsed time.Duration
}

// DefaultSplitLimit is the number of splits a new Timer keeps.
const DefaultSplitLimit = 1024

// Timer records labelled wall-clock splits. Mark starts an interval and
// Save closes it under a label; Save without a preceding Mark measures from
// the previous Save (or from construction).
//
// At most limit splits are kept; once full, each Save discards the oldest.
type Timer struct {
	name     string
	disabled bool
	mark     time.Time
	splits   []Split
	limit    int // 0 = unbounded
	now      func() time.Time
}

// NewTimer returns an enabled timer whose report lines are prefixed by name.
// It keeps the last DefaultSplitLimit splits.
func NewTimer(name string) *Timer {
	t := &Timer{name: name, limit: DefaultSplitLimit, now: time.Now}
	t.mark = t.now()
	return t
}

// Mark starts a new interval without saving a split.
func (t *Timer) Mark() {
	if t.disabled {
		return
	}
	t.mark = t.now()
}

// Save records the time since the last Mark or Save under label and
// starts a new interval. A disabled timer records nothing.
func (t *Timer) Save(label string) Split {
	if t.disabled {
		return Split{}
	}
	now := t.now()
	s := Split{Label: label, Elapsed: now.Sub(t.mark)}
	if t.limit > 0 && len(t.splits) >= t.limit {
		n := copy(t.splits, t.splits[len(t.splits)-t.limit+1:])
		t.splits = t.splits[:n]
	}
	t.splits = append(t.splits, s)
	t.mark = now
	return s
}

// Splits returns a copy of the recorded splits, oldest first.
func (t *Timer) Splits() []Split {
	out := make([]Split, len(t.splits))
	copy(out, t.splits)
	return out
}

// SetLimit bounds the number of kept splits; n <= 0 keeps all of them.
// Excess splits are discarded oldest first.
func (t *Timer) SetLimit(n int) {
	t.limit = max(n, 0)
	if t.limit > 0 && len(t.splits) > t.limit {
		k := copy(t.splits, t.splits[len(t.splits)-t.limit:])
		t.splits = t.splits[:k]
	}
}

// Limit returns the split bound; 0 means unbounded.
func (t *Timer) Limit() int { return t.limit }

// Reset discards all splits and restarts the interval.
func (t *Timer) Reset() {
	t.splits = t.splits[:0]
	t.mark = t.now()
}

// Disable stops recording. Existing splits are kept.
func (t *Timer) Disable() { t.disabled = true }

// Enable resumes recording.
func (t *Timer) Enable() {
	t.disabled = false
	t.mark = t.now()
}

// Enabled reports whether splits are being recorded.
func (t *Timer) Enabled() bool { return !t.disabled }

// String formats one line per split: name, label, elapsed.
func (t *Timer) String() string {
	var b strings.Builder
	for _, s := range t.splits {
		fmt.Fprintf(&b, "%-11s %s %s\n", t.name, s.Label, s.Elapsed)
	}
	return b.String()
}
