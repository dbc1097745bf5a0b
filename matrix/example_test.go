package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/harmonic/matrix"
)

// ExampleTriplets_ToCSR assembles a 2×2 edge Laplacian twice over the same
// edge and shows that duplicate entries are summed.
func ExampleTriplets_ToCSR() {
	t, _ := matrix.NewTriplets(2, 2)
	for k := 0; k < 2; k++ {
		_ = t.Append(0, 1, 1)
		_ = t.Append(1, 0, 1)
		_ = t.Append(0, 0, -1)
		_ = t.Append(1, 1, -1)
	}
	m := t.ToCSR()
	fmt.Print(m)
	fmt.Println(m.NNZ())
	// Output:
	// [0:-2, 1:2]
	// [0:2, 1:-2]
	// 4
}

// ExampleSub forms L − P for a penalty on vertex 0.
func ExampleSub() {
	lt, _ := matrix.NewTriplets(2, 2)
	_ = lt.Append(0, 1, 1)
	_ = lt.Append(1, 0, 1)
	_ = lt.Append(0, 0, -1)
	_ = lt.Append(1, 1, -1)

	pt, _ := matrix.NewTriplets(2, 2)
	_ = pt.Append(0, 0, 100)

	a, _ := matrix.Sub(lt.ToCSR(), pt.ToCSR())
	y, _ := matrix.MulVec(a, []float64{1, 1})
	fmt.Println(a.Diagonal(), y)
	// Output:
	// [-101 -1] [-100 0]
}
