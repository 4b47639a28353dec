// SPDX-License-Identifier: MIT

package eigengame

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eigengame/matrix"
)

// Transform projects every row of data onto the component vectors:
// scores = D·Vᵀ, shape (n_samples × k).
//
// Errors: ErrInvalidDimension (nil input, column mismatch).
func Transform(data, vectors matrix.Matrix) (*matrix.Dense, error) {
	if data == nil || vectors == nil {
		return nil, detailf(opTransform, ErrInvalidDimension, "nil input")
	}
	if vectors.Cols() != data.Cols() {
		return nil, detailf(opTransform, ErrInvalidDimension, "vectors have %d columns, data has %d", vectors.Cols(), data.Cols())
	}
	Vt, err := matrix.Transpose(vectors)
	if err != nil {
		return nil, egErrorf(opTransform, err)
	}
	scores, err := matrix.Mul(data, Vt)
	if err != nil {
		return nil, egErrorf(opTransform, err)
	}

	return scores, nil
}

// RayleighQuotient returns vᵀ(DᵀD)v / vᵀv = ‖D v‖² / ‖v‖².
//
// Errors: ErrInvalidDimension (nil data, length mismatch), ErrNumericDegeneracy (v = 0).
func RayleighQuotient(data matrix.Matrix, v []float64) (float64, error) {
	if data == nil || len(v) != data.Cols() {
		return 0, detailf(opRayleigh, ErrInvalidDimension, "vector length %d", len(v))
	}
	vv := floats.Dot(v, v)
	if vv == 0 {
		return 0, detailf(opRayleigh, ErrNumericDegeneracy, "zero vector")
	}
	Dv, err := matrix.MatVec(data, v)
	if err != nil {
		return 0, egErrorf(opRayleigh, err)
	}

	return floats.Dot(Dv, Dv) / vv, nil
}

// SecondMoment returns DᵀD (d×d). Solve never needs it; it is offered for
// reporting and for reference solvers.
func SecondMoment(data matrix.Matrix) (*matrix.Dense, error) {
	if data == nil {
		return nil, detailf(opMoment, ErrInvalidDimension, "nil data")
	}
	M, err := matrix.SecondMoment(data)
	if err != nil {
		return nil, egErrorf(opMoment, err)
	}

	return M, nil
}

// Reference computes the top-k eigenpairs of DᵀD with the dense Jacobi
// solver, in the same layout as Result (descending, one vector per row).
// Used to check Solve and by the CLI `reference` command.
//
// Errors: ErrInvalidDimension (nil data, k outside [1,d]), wrapped matrix errors.
// Complexity: O(n·d² + sweeps·d³).
func Reference(data matrix.Matrix, k int, opts ...matrix.Option) ([]float64, *matrix.Dense, error) {
	if data == nil {
		return nil, nil, detailf(opReference, ErrInvalidDimension, "nil data")
	}
	d := data.Cols()
	if k < 1 || k > d {
		return nil, nil, detailf(opReference, ErrInvalidDimension, "k=%d outside [1,%d]", k, d)
	}
	M, err := matrix.SecondMoment(data)
	if err != nil {
		return nil, nil, egErrorf(opReference, err)
	}
	vals, V, err := matrix.EigenSym(M, opts...)
	if err != nil {
		return nil, nil, egErrorf(opReference, err)
	}
	top, err := matrix.NewDense(k, d)
	if err != nil {
		return nil, nil, egErrorf(opReference, err)
	}
	for t := 0; t < k; t++ {
		if err = top.SetRow(t, V.RawRow(t)); err != nil {
			return nil, nil, egErrorf(opReference, err)
		}
	}

	return vals[:k], top, nil
}
