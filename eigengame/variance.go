// SPDX-License-Identifier: MIT

package eigengame

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eigengame/matrix"
)

// ExplainedVarianceRatio reports, for every row v of vectors,
//
//	ratio = (v · M[0,:]) / v[0] / trace(M),   M = DᵀD
//
// For an exact eigenvector (M v)[0] = λ·v[0], so the ratio is λ/trace(M).
// M is never formed: M[0,:] = Dᵀ(D[:,0]) and trace(M) = Σ‖row‖².
//
// Notes:
//   - The recipe divides by v[0]; a small but non-zero v[0] amplifies any
//     residual error in v. That caveat is kept as is. Only an exactly zero
//     v[0] or trace is reported, as ErrNumericDegeneracy.
//
// Errors: ErrInvalidDimension (nil input, column mismatch), ErrNumericDegeneracy.
// Complexity: O(n·d + k·d).
func ExplainedVarianceRatio(data, vectors matrix.Matrix) ([]float64, error) {
	if data == nil || vectors == nil {
		return nil, detailf(opVariance, ErrInvalidDimension, "nil input")
	}
	if vectors.Cols() != data.Cols() {
		return nil, detailf(opVariance, ErrInvalidDimension, "vectors have %d columns, data has %d", vectors.Cols(), data.Cols())
	}
	D, err := matrix.ToDense(data)
	if err != nil {
		return nil, egErrorf(opVariance, err)
	}
	V, err := matrix.ToDense(vectors)
	if err != nil {
		return nil, egErrorf(opVariance, err)
	}

	n := D.Rows()
	col0 := make([]float64, n)
	for i := 0; i < n; i++ {
		col0[i] = D.RawRow(i)[0]
	}
	firstRow, err := matrix.MatTVec(D, col0)
	if err != nil {
		return nil, egErrorf(opVariance, err)
	}
	trace, err := matrix.FrobeniusSq(D)
	if err != nil {
		return nil, egErrorf(opVariance, err)
	}
	if trace == 0 {
		return nil, detailf(opVariance, ErrNumericDegeneracy, "trace(DᵀD) is zero")
	}

	out := make([]float64, V.Rows())
	for t := range out {
		v := V.RawRow(t)
		if v[0] == 0 {
			return nil, detailf(opVariance, ErrNumericDegeneracy, "vector %d has zero first coordinate", t)
		}
		out[t] = floats.Dot(v, firstRow) / v[0] / trace
	}

	return out, nil
}
