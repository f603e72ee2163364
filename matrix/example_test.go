package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/freivalds/matrix"
)

// ExampleMatVec multiplies a 2×2 matrix by a binary vector.
func ExampleMatVec() {
	m, _ := matrix.NewDenseFromRows([][]int64{
		{2, 3},
		{4, 5},
	})

	r, err := matrix.MatVec(m, matrix.Vector{1, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r)
	fmt.Println(matrix.VecEqual(r, matrix.Vector{5, 9}))

	// Output:
	// [5 9]
	// true
}
