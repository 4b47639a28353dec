// SPDX-License-Identifier: MIT

package regress

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Report holds one entry per (IV column, DV column) pair; matrices are
// (nIV × nDV). Outputs that were not requested are nil.
type Report struct {
	// Corr is the Pearson correlation of x and y; nil when covariates are used.
	Corr *mat.Dense

	// R2 is the coefficient of determination of the full model.
	R2 *mat.Dense

	// Beta is the fitted coefficient of x.
	Beta *mat.Dense

	// T is Beta divided by its standard error.
	T *mat.Dense

	// P is the two-sided p-value of T.
	P *mat.Dense

	// Residuals[i][j] are the n residuals of IV column i against DV column j.
	Residuals [][][]float64
}

// LinReg fits every IV column against every DV column.
//
// Inputs:
//   - iv: (n × a) independent variables.
//   - dv: (n × b) dependent variables.
//   - cov: (n × c) covariates, or nil.
//
// Errors: ErrDimension, ErrDegreesOfFreedom (n ≤ 2 + c), ErrSingular, ErrDegenerate.
// Complexity: O(a·(n·p² + p³ + b·n·p)) with p = 2 + c.
func LinReg(iv, dv, cov *mat.Dense, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	if iv == nil || dv == nil {
		return nil, regErrorf(ErrDimension, "nil input")
	}
	n, nIV := iv.Dims()
	r, nDV := dv.Dims()
	if r != n {
		return nil, regErrorf(ErrDimension, "iv has %d rows, dv has %d", n, r)
	}
	nCov := 0
	if cov != nil {
		r, c := cov.Dims()
		if r != n {
			return nil, regErrorf(ErrDimension, "iv has %d rows, cov has %d", n, r)
		}
		nCov = c
	}
	p := 2 + nCov
	if n <= p {
		return nil, regErrorf(ErrDegreesOfFreedom, "%d samples for %d parameters", n, p)
	}
	df := float64(n - p)

	ys := make([][]float64, nDV)
	sst := make([]float64, nDV)
	for j := range ys {
		ys[j] = mat.Col(nil, j, dv)
		mean := stat.Mean(ys[j], nil)
		for _, v := range ys[j] {
			sst[j] += (v - mean) * (v - mean)
		}
		if sst[j] == 0 {
			return nil, regErrorf(ErrDegenerate, "dv column %d", j)
		}
	}

	rep := newReport(nIV, nDV, cov == nil, o.outputs)
	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	X := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, 1)
		for c := 0; c < nCov; c++ {
			X.Set(i, 2+c, cov.At(i, c))
		}
	}
	var xtx, xtxInv mat.Dense
	beta := mat.NewVecDense(p, nil)
	fitted := mat.NewVecDense(n, nil)
	for a := 0; a < nIV; a++ {
		o.logger.Debug().Int("iv", a).Msg("regress: fitting")
		x := mat.Col(nil, a, iv)
		for i, v := range x {
			X.Set(i, 1, v)
		}
		xtx.Mul(X.T(), X)
		if err := xtxInv.Inverse(&xtx); err != nil {
			return nil, regErrorf(ErrSingular, "iv column %d: %v", a, err)
		}
		// Projection rows of (XᵀX)⁻¹Xᵀ shared by every DV column.
		var pinv mat.Dense
		pinv.Mul(&xtxInv, X.T())

		for j := 0; j < nDV; j++ {
			y := mat.NewVecDense(n, ys[j])
			beta.MulVec(&pinv, y)
			fitted.MulVec(X, beta)
			var sse float64
			res := make([]float64, n)
			for i := 0; i < n; i++ {
				res[i] = ys[j][i] - fitted.AtVec(i)
				sse += res[i] * res[i]
			}
			b := beta.AtVec(1)
			se := math.Sqrt(sse / df * xtxInv.At(1, 1))
			t := b / se
			rep.set(a, j, b, t, 2*tdist.Survival(math.Abs(t)), 1-sse/sst[j], res)
			if rep.Corr != nil {
				rep.Corr.Set(a, j, stat.Correlation(x, ys[j], nil))
			}
		}
	}
	o.logger.Debug().Int("ivs", nIV).Int("dvs", nDV).Int("covariates", nCov).Msg("regress: done")

	return rep, nil
}

func newReport(nIV, nDV int, simple bool, out Output) *Report {
	rep := &Report{}
	alloc := func(bit Output) *mat.Dense {
		if out&bit == 0 {
			return nil
		}
		return mat.NewDense(nIV, nDV, nil)
	}
	if simple {
		rep.Corr = alloc(OutCorr)
	}
	rep.R2 = alloc(OutR2)
	rep.Beta = alloc(OutBeta)
	rep.T = alloc(OutT)
	rep.P = alloc(OutP)
	if out&OutResiduals != 0 {
		rep.Residuals = make([][][]float64, nIV)
		for i := range rep.Residuals {
			rep.Residuals[i] = make([][]float64, nDV)
		}
	}
	return rep
}

func (r *Report) set(a, j int, beta, t, p, r2 float64, res []float64) {
	if r.Beta != nil {
		r.Beta.Set(a, j, beta)
	}
	if r.T != nil {
		r.T.Set(a, j, t)
	}
	if r.P != nil {
		r.P.Set(a, j, p)
	}
	if r.R2 != nil {
		r.R2.Set(a, j, r2)
	}
	if r.Residuals != nil {
		r.Residuals[a][j] = res
	}
}
