// SPDX-License-Identifier: MIT
package regress_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigengame/regress"
)

// six participants, two predictors, one outcome, age as covariate.
func fixture() (iv, dv, age *mat.Dense) {
	iv = mat.NewDense(6, 2, []float64{1, 6, 3, 3, 6, 9, 5, 8, 4, 9, 5, 6})
	dv = mat.NewDense(6, 1, []float64{4, 9, 6, 7, 7, 8})
	age = mat.NewDense(6, 1, []float64{22, 24, 25, 22, 26, 21})
	return iv, dv, age
}

func TestLinReg_WithCovariate(t *testing.T) {
	t.Parallel()
	iv, dv, age := fixture()

	rep, err := regress.LinReg(iv, dv, age)
	require.NoError(t, err)
	require.Nil(t, rep.Corr, "correlation is only defined without covariates")

	require.InDelta(t, 0.717737, rep.T.At(0, 0), 1e-6)
	require.InDelta(t, -0.927979, rep.T.At(1, 0), 1e-6)
	require.InDelta(t, 0.524761, rep.P.At(0, 0), 1e-6)
	require.InDelta(t, 0.421867, rep.P.At(1, 0), 1e-6)
	require.InDelta(t, 0.3729189789, rep.Beta.At(0, 0), 1e-9)
	require.InDelta(t, 0.1518412750, rep.R2.At(0, 0), 1e-9)
	require.Len(t, rep.Residuals[1][0], 6)
}

func TestLinReg_Simple(t *testing.T) {
	t.Parallel()
	iv, dv, _ := fixture()

	rep, err := regress.LinReg(iv, dv, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.375, rep.Beta.At(0, 0), 1e-12)
	require.InDelta(t, 0.3894680902, rep.Corr.At(0, 0), 1e-9)
	require.InDelta(t, -0.4093437263, rep.Corr.At(1, 0), 1e-9)
	// simple regression: R² = r².
	r := rep.Corr.At(0, 0)
	require.InDelta(t, r*r, rep.R2.At(0, 0), 1e-12)
	require.InDeltaSlice(t,
		[]float64{-1.7083333333, 2.5416666667, -1.5833333333, -0.2083333333, 0.1666666667, 0.7916666667},
		rep.Residuals[0][0], 1e-9)

	var sum float64
	for _, e := range rep.Residuals[1][0] {
		sum += e
	}
	require.InDelta(t, 0, sum, 1e-12, "residuals of a model with intercept sum to zero")
}

func TestLinReg_Outputs(t *testing.T) {
	t.Parallel()
	iv, dv, _ := fixture()
	rep, err := regress.LinReg(iv, dv, nil, regress.WithOutputs(regress.OutP|regress.OutT))
	require.NoError(t, err)
	require.NotNil(t, rep.P)
	require.NotNil(t, rep.T)
	require.Nil(t, rep.Beta)
	require.Nil(t, rep.R2)
	require.Nil(t, rep.Corr)
	require.Nil(t, rep.Residuals)

	require.Panics(t, func() { regress.WithOutputs(regress.Output(0x80)) })
}

func TestLinReg_Errors(t *testing.T) {
	t.Parallel()
	iv, dv, age := fixture()

	_, err := regress.LinReg(nil, dv, nil)
	require.ErrorIs(t, err, regress.ErrDimension)

	_, err = regress.LinReg(iv, mat.NewDense(5, 1, nil), nil)
	require.ErrorIs(t, err, regress.ErrDimension)

	_, err = regress.LinReg(iv, dv, mat.NewDense(4, 1, nil))
	require.ErrorIs(t, err, regress.ErrDimension)

	wide := mat.NewDense(6, 4, []float64{
		1, 2, 3, 5, 2, 1, 3, 4, 3, 3, 1, 2, 4, 4, 4, 1, 5, 1, 2, 2, 6, 3, 5, 7,
	})
	_, err = regress.LinReg(iv, dv, wide)
	require.ErrorIs(t, err, regress.ErrDegreesOfFreedom)

	constX := mat.NewDense(6, 1, []float64{2, 2, 2, 2, 2, 2})
	_, err = regress.LinReg(constX, dv, nil)
	require.ErrorIs(t, err, regress.ErrSingular)

	_, err = regress.LinReg(iv, mat.NewDense(6, 1, []float64{1, 1, 1, 1, 1, 1}), age)
	require.ErrorIs(t, err, regress.ErrDegenerate)
}

func TestLinReg_PerfectFit(t *testing.T) {
	t.Parallel()
	iv := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	dv := mat.NewDense(4, 1, []float64{3, 5, 7, 9})
	rep, err := regress.LinReg(iv, dv, nil)
	require.NoError(t, err)
	require.InDelta(t, 2, rep.Beta.At(0, 0), 1e-12)
	require.InDelta(t, 1, rep.R2.At(0, 0), 1e-12)
	require.True(t, math.Abs(rep.T.At(0, 0)) > 1e6)
}

func TestLinReg_Logger(t *testing.T) {
	t.Parallel()
	iv, dv, _ := fixture()
	var buf bytes.Buffer
	_, err := regress.LinReg(iv, dv, nil, regress.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "regress: fitting")
	require.Contains(t, buf.String(), `"ivs":2`)
}
