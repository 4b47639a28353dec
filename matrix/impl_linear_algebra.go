// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// multiplication, transpose, scaling, matrix-vector products, the Gram
// product mᵀm and a Jacobi eigen solver for symmetric input. All functions
// perform strict fail-fast validation and return wrapped sentinels.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the module.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel resolves its operands once via asDense and then walks flat
//     row-major buffers in fixed i→j order; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// ZeroSum is the initial value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opMatTVec   = "MatTVec"
	opMatVecTo  = "MatVecTo"
	opMatTVecTo = "MatTVecTo"
	opGram      = "Gram"
	opEigen     = "Eigen"
	opEigenSym  = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j order (row of A streams across rows of B).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(da.r, db.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var av float64
	var rowA, rowB, rowR int
	for i = 0; i < da.r; i++ {
		rowA = i * da.c
		rowR = i * db.c
		for k = 0; k < da.c; k++ {
			av = da.data[rowA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowB = k * db.c
			for j = 0; j < db.c; j++ {
				res.data[rowR+j] += av * db.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = d.validateNaNInf

	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[base+j]
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range d.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x (len(x) == m.Cols()).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	matVecInto(d, x, y)

	return y, nil
}

// MatTVec computes z = mᵀ·y without materializing mᵀ (len(y) == m.Rows()).
//
// Determinism:
//   - Rows are accumulated in ascending order into z, so z[j] sums in i order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(c).
func MatTVec(m Matrix, y []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(y, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	z := make([]float64, d.c)
	matTVecInto(d, y, z)

	return z, nil
}

// MatVecTo writes m·x into dst without allocating (len(dst) == m.Rows()).
// Intended for iterative solvers that call it every step with reused buffers.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatVecTo(dst []float64, m *Dense, x []float64) error {
	if m == nil {
		return matrixErrorf(opMatVecTo, ErrNilMatrix)
	}
	if len(x) != m.c || len(dst) != m.r {
		return matrixErrorf(opMatVecTo, ErrDimensionMismatch)
	}
	matVecInto(m, x, dst)

	return nil
}

// MatTVecTo writes mᵀ·y into dst without allocating (len(dst) == m.Cols()).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MatTVecTo(dst []float64, m *Dense, y []float64) error {
	if m == nil {
		return matrixErrorf(opMatTVecTo, ErrNilMatrix)
	}
	if len(y) != m.r || len(dst) != m.c {
		return matrixErrorf(opMatTVecTo, ErrDimensionMismatch)
	}
	matTVecInto(m, y, dst)

	return nil
}

// matVecInto writes d·x into y. Lengths are the caller's responsibility.
func matVecInto(d *Dense, x, y []float64) {
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}
}

// matTVecInto writes dᵀ·y into z, overwriting z.
func matTVecInto(d *Dense, y, z []float64) {
	var i, j, base int
	var yi float64
	for j = range z {
		z[j] = ZeroSum
	}
	for i = 0; i < d.r; i++ {
		yi = y[i]
		if yi == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			z[j] += d.data[base+j] * yi
		}
	}
}

// Gram returns the c×c second-moment product mᵀm.
//
// Implementation:
//   - Stage 1: accumulate the upper triangle row by row (outer products).
//   - Stage 2: mirror into the lower triangle, so the result is exactly symmetric.
//
// Errors: ErrNilMatrix.
// Complexity: Time O(r·c²), Space O(c²).
func Gram(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	c := d.c
	res, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	var i, p, q, base int
	var xp float64
	for i = 0; i < d.r; i++ {
		base = i * c
		for p = 0; p < c; p++ {
			xp = d.data[base+p]
			if xp == 0 {
				continue
			}
			for q = p; q < c; q++ {
				res.data[p*c+q] += xp * d.data[base+q]
			}
		}
	}
	for p = 0; p < c; p++ {
		for q = p + 1; q < c; q++ {
			res.data[q*c+p] = res.data[p*c+q]
		}
	}

	return res, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol) and copy m into a working buffer.
//   - Stage 2: sweep pairs (p,q), p<q, in row order, annihilating a[p,q] with
//     one rotation each; accumulate rotations into Q.
//   - Stage 3: stop once max |a[p,q]| <= tol, or fail after maxSweeps.
//
// Returns:
//   - []float64: eigenvalues (diagonal order, unsorted).
//   - *Dense:    Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry,
//     ErrMatrixEigenFailed (off-diagonal above tol after maxSweeps; a budget
//     <= 0 only succeeds on already-diagonal input).
//
// Determinism:
//   - Fixed pair order; identical inputs produce identical bits. An already
//     diagonal input returns Q = I, so ties resolve to the standard basis.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := src.cloneDense()
	n := a.r
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var sweep int
	converged := maxOffDiagonal(a) <= tol
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		jacobiSweep(a, q, tol)
		converged = maxOffDiagonal(a) <= tol
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}

// jacobiSweep applies one rotation per off-diagonal pair (p<q) of a, in place,
// and accumulates the rotations into the columns of v.
func jacobiSweep(a, v *Dense, tol float64) {
	n := a.r
	var p, q, k int
	var apq, app, aqq, theta, t, c, s float64
	var akp, akq, vkp, vkq float64
	for p = 0; p < n-1; p++ {
		for q = p + 1; q < n; q++ {
			apq = a.data[p*n+q]
			if math.Abs(apq) <= tol {
				continue // rotation would be a no-op; skip to avoid blow-ups
			}
			app = a.data[p*n+p]
			aqq = a.data[q*n+q]
			// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)) is the smaller root.
			theta = (aqq - app) / (2 * apq)
			t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
			c = 1.0 / math.Sqrt(t*t+1)
			s = t * c

			for k = 0; k < n; k++ {
				if k == p || k == q {
					continue
				}
				akp = a.data[k*n+p]
				akq = a.data[k*n+q]
				a.data[k*n+p] = c*akp - s*akq
				a.data[p*n+k] = a.data[k*n+p]
				a.data[k*n+q] = s*akp + c*akq
				a.data[q*n+k] = a.data[k*n+q]
			}
			a.data[p*n+p] = app - t*apq
			a.data[q*n+q] = aqq + t*apq
			a.data[p*n+q], a.data[q*n+p] = 0, 0

			for k = 0; k < n; k++ {
				vkp = v.data[k*n+p]
				vkq = v.data[k*n+q]
				v.data[k*n+p] = c*vkp - s*vkq
				v.data[k*n+q] = s*vkp + c*vkq
			}
		}
	}
}

// maxOffDiagonal returns max |a[i,j]| over i<j of a square Dense.
func maxOffDiagonal(a *Dense) float64 {
	n := a.r
	var i, j int
	var off, best float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > best {
				best = off
			}
		}
	}

	return best
}

// EigenSym runs Eigen under the resolved options and returns the spectrum in
// DESCENDING eigenvalue order with one eigenvector per ROW, i.e. the same
// layout iterative PCA solvers produce (row 0 = dominant direction).
//
// Behavior highlights:
//   - Ties keep diagonal order (stable sort).
//   - Sign of each eigenvector is whatever Jacobi produced; compare with |cos|.
//
// Errors: those of Eigen, wrapped with opEigenSym.
// Complexity: O(sweeps·n³ + n log n).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	vals, q, err := Eigen(m, o.eps, o.maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	n := len(vals)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	sorted := make([]float64, n)
	rows, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	var r, k int
	for r = 0; r < n; r++ {
		sorted[r] = vals[order[r]]
		for k = 0; k < n; k++ {
			rows.data[r*n+k] = q.data[k*n+order[r]] // column order[r] of Q becomes row r
		}
	}

	return sorted, rows, nil
}
