// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/matrix"
)

// 1) TestDefaultOptions_Documented verifies that NewMatrixOptions() equals documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultMaxSweeps, o.MaxSweeps())
}

// 2) TestNewMatrixOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestNewMatrixOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.False(t, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon(), "unrelated field must stay default")

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(1e-3), nil, matrix.WithMaxSweeps(5))
	require.Equal(t, 1e-3, o.Epsilon())
	require.Equal(t, 5, o.MaxSweeps())
}

// 3) TestOptions_PanicOnInvalid documents the programmer-error contract.
func TestOptions_PanicOnInvalid(t *testing.T) {
	ExpectPanic(t, func() { matrix.WithEpsilon(-1) })
	ExpectPanic(t, func() { matrix.WithEpsilon(math.NaN()) })
	ExpectPanic(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	ExpectPanic(t, func() { matrix.WithMaxSweeps(0) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}
