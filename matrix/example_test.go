// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigengame/matrix"
)

// ExampleSecondMoment builds DᵀD for a small tall data matrix.
func ExampleSecondMoment() {
	D, _ := matrix.NewFromRows([][]float64{
		{1, 0},
		{0, 1},
		{1, 1},
		{1, -1},
	})
	M, _ := matrix.SecondMoment(D)
	fmt.Print(M)

	// Output:
	// [3, 0]
	// [0, 3]
}

// ExampleEigenSym shows the descending, one-vector-per-row layout.
func ExampleEigenSym() {
	A, _ := matrix.NewFromRows([][]float64{
		{2, 1},
		{1, 2},
	})
	vals, V, _ := matrix.EigenSym(A)
	top, _ := V.Row(0)
	fmt.Printf("λ = [%.4f %.4f]\n", vals[0], vals[1])
	fmt.Printf("|v0| = [%.4f %.4f]\n", math.Abs(top[0]), math.Abs(top[1]))

	// Output:
	// λ = [3.0000 1.0000]
	// |v0| = [0.7071 0.7071]
}
