// SPDX-License-Identifier: MIT
package eigengame_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/matrix"
)

// spectrum5 gives DᵀD the eigenvalues 25, 9, 4, 1, 0.25.
var spectrum5 = []float64{5, 3, 2, 1, 0.5}

// householder returns H = I − 2uuᵀ/(uᵀu) for u = (1, 2, …, n).
// H is symmetric and orthogonal; every entry of its first column is non-zero.
func householder(n int) [][]float64 {
	u := make([]float64, n)
	var uu float64
	for i := range u {
		u[i] = float64(i + 1)
		uu += u[i] * u[i]
	}
	H := make([][]float64, n)
	for i := range H {
		H[i] = make([]float64, n)
		for j := range H[i] {
			H[i][j] = -2 * u[i] * u[j] / uu
			if i == j {
				H[i][j]++
			}
		}
	}

	return H
}

// rotatedDiag returns D = diag(s)·H, so DᵀD = H·diag(s²)·H and the
// eigenvector for s_t² is row t of H.
func rotatedDiag(t testing.TB, s []float64) (*matrix.Dense, [][]float64) {
	t.Helper()
	n := len(s)
	H := householder(n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = s[i] * H[i][j]
		}
	}
	D, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return D, H
}

// scaledRandom returns an n×d matrix with U[-1,1) entries, column j scaled by scale[j].
func scaledRandom(t testing.TB, n int, scale []float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, len(scale))
		for j := range rows[i] {
			rows[i][j] = (rng.Float64()*2 - 1) * scale[j]
		}
	}
	D, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return D
}

// mustRows builds a *matrix.Dense from literal rows.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	D, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return D
}

// row returns row i of m.
func row(t testing.TB, m *matrix.Dense, i int) []float64 {
	t.Helper()
	r, err := m.Row(i)
	require.NoError(t, err)

	return r
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

// absCos returns |a·b| / (‖a‖‖b‖).
func absCos(a, b []float64) float64 {
	return math.Abs(dot(a, b)) / math.Sqrt(dot(a, a)*dot(b, b))
}

// requireOrthonormalRows asserts unit rows and pairwise |vᵢ·vⱼ| < tol.
func requireOrthonormalRows(t testing.TB, V *matrix.Dense, tol float64) {
	t.Helper()
	k := V.Rows()
	for i := 0; i < k; i++ {
		vi := row(t, V, i)
		require.InDelta(t, 1.0, math.Sqrt(dot(vi, vi)), 1e-12, "‖v%d‖", i)
		for j := i + 1; j < k; j++ {
			require.Less(t, math.Abs(dot(vi, row(t, V, j))), tol, "|v%d·v%d|", i, j)
		}
	}
}
