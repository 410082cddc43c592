package seedfill_test

import (
	"math/rand"

	"github.com/katalvlaran/latfill/seedfill"
)

// lattice converts rows[y][x] into a flat buffer indexed x*L+y with L = len(rows).
func lattice(rows [][]int) (buf []int, l int) {
	h, w := len(rows), len(rows[0])
	buf = make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf[x*h+y] = rows[y][x]
		}
	}
	return buf, h
}

// rowsOf is the inverse of lattice for a w-column buffer.
func rowsOf(buf []int, l, w int) [][]int {
	rows := make([][]int, l)
	for y := 0; y < l; y++ {
		rows[y] = make([]int, w)
		for x := 0; x < w; x++ {
			rows[y][x] = buf[x*l+y]
		}
	}
	return rows
}

// uniform returns an h×w grid holding v everywhere.
func uniform(w, h, v int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = v
		}
	}
	return rows
}

// randomRows returns an h×w grid of values in [0,k) from a deterministic source.
func randomRows(rng *rand.Rand, w, h, k int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = rng.Intn(k)
		}
	}
	return rows
}

// reachable is a brute-force BFS oracle: every window site 4-connected to
// (sx,sy) through sites satisfying ok, indexed x*l+y.
func reachable(buf []int, l int, w seedfill.Window, sx, sy int, ok func(v int) bool) map[int]bool {
	seen := map[int]bool{}
	if !w.Contains(sx, sy) || !ok(buf[sx*l+sy]) {
		return seen
	}
	queue := [][2]int{{sx, sy}}
	seen[sx*l+sy] = true
	offsets := [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			vx, vy := u[0]+d[0], u[1]+d[1]
			if !w.Contains(vx, vy) {
				continue
			}
			i := vx*l + vy
			if seen[i] || !ok(buf[i]) {
				continue
			}
			seen[i] = true
			queue = append(queue, [2]int{vx, vy})
		}
	}
	return seen
}

// newEngine returns an engine bound to buf/l/w, failing the test on error.
func newEngine(buf []int, l int, w seedfill.Window, opts ...seedfill.Option) *seedfill.Engine[int] {
	e, err := seedfill.New[int](opts...)
	if err != nil {
		panic(err)
	}
	e.SetLattice(buf)
	e.SetStride(l)
	e.SetWindow(w.X0, w.Y0, w.X1, w.Y1)
	return e
}
