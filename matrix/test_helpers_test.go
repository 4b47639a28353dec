// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force the non-*Dense materialization path.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c *Dense from a row-major slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c)
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		require.NoError(t, m.SetRow(i, vals[i*c:(i+1)*c]))
	}

	return m
}

// RandFilledDense returns an r×c *Dense with uniform values in [-1,1).
// Deterministic for a fixed seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		row := m.RawRow(i)
		for j := range row {
			row[j] = rng.Float64()*2 - 1
		}
	}

	return m
}

// RandSymmetric returns a random symmetric n×n matrix A = (B + Bᵀ)/2.
func RandSymmetric(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	b := RandFilledDense(t, n, n, seed)
	out := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.RawRow(i)[j] = (b.RawRow(i)[j] + b.RawRow(j)[i]) / 2
		}
	}

	return out
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareExact asserts m equals want element-wise (bitwise on float64).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "(%d,%d)", i, j)
		}
	}
}

// CompareClose asserts AllClose(a, b, rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// ExpectPanic asserts fn panics.
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	require.Panics(t, fn)
}

// dot returns Σ a[i]*b[i].
func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// norm2 returns the Euclidean norm of v.
func norm2(v []float64) float64 { return math.Sqrt(dot(v, v)) }

// quadForm returns vᵀ A v for a square *Dense A.
func quadForm(t testing.TB, A *matrix.Dense, v []float64) float64 {
	t.Helper()
	Av, err := matrix.MatVec(A, v)
	require.NoError(t, err)

	return dot(v, Av)
}

// onesVec returns a length-n slice of ones.
func onesVec(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 1
	}

	return v
}
