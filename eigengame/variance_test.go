// SPDX-License-Identifier: MIT
package eigengame_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/eigengame"
)

// TestExplainedVarianceRatio_ExactEigenvectors gives λ/trace for exact eigenvectors.
func TestExplainedVarianceRatio_ExactEigenvectors(t *testing.T) {
	t.Parallel()
	D, H := rotatedDiag(t, spectrum5)
	V := mustRows(t, [][]float64{H[0], H[2]})

	ratios, err := eigengame.ExplainedVarianceRatio(D, V)
	require.NoError(t, err)
	require.InDelta(t, 25/39.25, ratios[0], 1e-12)
	require.InDelta(t, 4/39.25, ratios[1], 1e-12)
}

// TestExplainedVarianceRatio_Degenerate reports zero divisors instead of ±Inf.
func TestExplainedVarianceRatio_Degenerate(t *testing.T) {
	t.Parallel()
	D := mustRows(t, [][]float64{{1, 0}, {0, 1}, {1, 1}, {1, -1}})

	_, err := eigengame.ExplainedVarianceRatio(D, mustRows(t, [][]float64{{0, 1}}))
	require.ErrorIs(t, err, eigengame.ErrNumericDegeneracy)

	zeros := mustRows(t, [][]float64{{0, 0}, {0, 0}})
	_, err = eigengame.ExplainedVarianceRatio(zeros, mustRows(t, [][]float64{{1, 0}}))
	require.ErrorIs(t, err, eigengame.ErrNumericDegeneracy)

	_, err = eigengame.ExplainedVarianceRatio(D, mustRows(t, [][]float64{{1, 0, 0}}))
	require.ErrorIs(t, err, eigengame.ErrInvalidDimension)
	_, err = eigengame.ExplainedVarianceRatio(nil, D)
	require.ErrorIs(t, err, eigengame.ErrInvalidDimension)
}

// TestExplainedVarianceRatio_SmallFirstCoordinate: a tiny but non-zero v[0] is accepted.
func TestExplainedVarianceRatio_SmallFirstCoordinate(t *testing.T) {
	t.Parallel()
	D := mustRows(t, [][]float64{{2, 0}, {0, 1}, {1, 1}, {1, -1}}) // DᵀD = diag(6,3)
	ratios, err := eigengame.ExplainedVarianceRatio(D, mustRows(t, [][]float64{{1e-12, 1}}))
	require.NoError(t, err)
	require.InDelta(t, 6.0/9.0, ratios[0], 1e-9) // (Mv)[0]/v[0] = 6 for any v here
}
