// SPDX-License-Identifier: MIT
package eigengame_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigengame/eigengame"
	"github.com/katalvlaran/eigengame/matrix"
)

// ExampleSolve recovers both axes of a matrix whose second moment is diag(6,3).
func ExampleSolve() {
	D, _ := matrix.NewFromRows([][]float64{
		{2, 0},
		{0, 1},
		{1, 1},
		{1, -1},
	})

	res, err := eigengame.Solve(D, 2, 500, 0.1, eigengame.WithSeed(42))
	if err != nil {
		fmt.Println(err)
		return
	}
	for t := 0; t < res.K(); t++ {
		v, _ := res.Vector(t)
		fmt.Printf("v%d=[%.4f %.4f] λ=%.4f\n", t, math.Abs(v[0]), math.Abs(v[1]), res.Eigenvalues[t])
	}
	// Output:
	// v0=[1.0000 0.0000] λ=6.0000
	// v1=[0.0000 1.0000] λ=3.0000
}

// ExampleRayleighQuotient scores an arbitrary direction.
func ExampleRayleighQuotient() {
	D, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 1}, {1, 1}, {1, -1}})
	q, _ := eigengame.RayleighQuotient(D, []float64{1, 1})
	fmt.Printf("%.2f\n", q)
	// Output: 4.50
}
