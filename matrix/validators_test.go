// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateSymmetric checks tolerance handling on both the fast path and the hidden path.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	sym := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 1})
	near := NewFilledDense(t, 2, 2, []float64{1, 2, 2 + 1e-12, 1})
	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 1})

	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-9), matrix.ErrAsymmetry)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrNonSquare)
}

// TestValidateVecLenAndFinite covers the remaining validators.
func TestValidateVecLenAndFinite(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))

	loose, err := matrix.NewFromRows([][]float64{{1, math.Inf(1)}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(loose), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{loose}), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite(MustDense(t, 2, 2)))
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
}
