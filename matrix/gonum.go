// SPDX-License-Identifier: MIT

// Package matrix: interoperability with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Move data between *Dense and gonum matrices without aliasing buffers.
//   - Offer a second, independent symmetric eigen solver (LAPACK-backed
//     mat.EigenSym) for cross-checking the Jacobi reference.
package matrix

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum       = "ToGonum"
	opFromGonum     = "FromGonum"
	opGonumEigenSym = "GonumEigenSym"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors: ErrNilMatrix, wrapped At errors.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense under the given policy.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions (empty), ErrNaNInf under the finite policy.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDenseWith(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = g.At(i, j)
			if out.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// GonumEigenSym decomposes a symmetric m with gonum's mat.EigenSym and returns
// the spectrum in the same layout as EigenSym: descending eigenvalues and one
// unit eigenvector per ROW.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrMatrixEigenFailed.
// Complexity: O(n³).
func GonumEigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opGonumEigenSym, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opGonumEigenSym, err)
	}
	n := d.r
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, buf), true); !ok {
		return nil, nil, matrixErrorf(opGonumEigenSym, ErrMatrixEigenFailed)
	}
	vals := es.Values(nil) // ascending
	var vecs mat.Dense
	es.VectorsTo(&vecs) // columns

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	sorted := make([]float64, n)
	rows, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opGonumEigenSym, err)
	}
	var r, k int
	for r = 0; r < n; r++ {
		sorted[r] = vals[order[r]]
		for k = 0; k < n; k++ {
			rows.data[r*n+k] = vecs.At(k, order[r])
		}
	}

	return sorted, rows, nil
}
