// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigengame/matrix"
)

// TestGonumRoundTrip checks that ToGonum/FromGonum copy without aliasing.
func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()
	d := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := matrix.ToGonum(d)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, [2]int{2, 3}, [2]int{r, c})
	require.Equal(t, 6.0, g.At(1, 2))

	g.Set(0, 0, 100)
	require.Equal(t, 1.0, MustAt(t, d, 0, 0))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{100, 2, 3}, {4, 5, 6}}, back)

	// any mat.Matrix works, including views.
	tv, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	require.Equal(t, 3, tv.Rows())
	require.Equal(t, 6.0, MustAt(t, tv, 2, 1))
}

func TestFromGonum_Policy(t *testing.T) {
	t.Parallel()
	g := mat.NewDense(1, 2, []float64{1, math.NaN()})

	_, err := matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestGonumEigenSym_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := matrix.GonumEigenSym(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, _, err = matrix.GonumEigenSym(NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}
