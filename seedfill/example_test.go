// File: seedfill/example_test.go
package seedfill_test

import (
	"fmt"

	"github.com/katalvlaran/latfill/seedfill"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FillOneValue
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_FillOneValue flood-fills the zero region around (0,0) in a
// 4×4 lattice stored row-major as x*L+y with L=4.
//
//	x→ 0 1 2 3
//	   0 0 1 0
//	   0 1 1 0
//	   0 0 0 0
//	   1 1 1 1
func ExampleEngine_FillOneValue() {
	const l = 4
	rows := [][]int{
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	}
	buf := make([]int, l*l)
	for y, row := range rows {
		for x, v := range row {
			buf[x*l+y] = v
		}
	}

	e, _ := seedfill.New[int]()
	e.SetLattice(buf)
	e.SetStride(l)
	e.SetWindow(0, 0, l-1, l-1)

	res, _ := e.FillOneValue(0, 0, 7)
	fmt.Println("filled:", res.Filled)
	for y := 0; y < l; y++ {
		row := make([]int, l)
		for x := range row {
			row[x] = buf[x*l+y]
		}
		fmt.Println(row)
	}

	// Output:
	// filled: 9
	// [7 7 1 7]
	// [7 1 1 7]
	// [7 7 7 7]
	// [1 1 1 1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: FillToBorderValue + Restore
////////////////////////////////////////////////////////////////////////////////

// ExampleEngine_Restore tries a fill and rolls it back.
func ExampleEngine_Restore() {
	buf := []int{
		3, 3, 3,
		3, 0, 3,
		3, 3, 3,
	}
	e, _ := seedfill.New[int]()
	e.SetLattice(buf)
	e.SetStride(3)
	e.SetWindow(0, 0, 2, 2)

	res, _ := e.FillToBorderValue(0, 0, 8, 0)
	fmt.Println("filled:", res.Filled, buf)
	fmt.Println("restored:", e.Restore(), buf)

	// Output:
	// filled: 8 [8 8 8 8 0 8 8 8 8]
	// restored: 8 [3 3 3 3 0 3 3 3 3]
}
