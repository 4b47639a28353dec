// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the statistical transforms PCA needs (centering, covariance,
//     second moment, Frobenius energy) as deterministic compositions over the
//     canonical kernels (Gram/Scale) and ew* micro-kernels.
//
// Exposed API (see api.go):
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//   - SecondMoment(X)  -> M             // uncentered XᵀX
//   - FrobeniusSq(X)   -> Σ x²          // equals trace(XᵀX)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//
// AI-Hints:
//   - trace(XᵀX) never needs XᵀX: FrobeniusSq is O(r*c) instead of O(r*c²).

package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
	opSecondMoment  = "SecondMoment"
	opFrobeniusSq   = "FrobeniusSq"
)

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Resolve X once (nil check included).
//   - Stage 2: Compute column means in a deterministic pass.
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//
// Returns:
//   - *Dense: centered copy (r×c); X is never modified.
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix, wrapped At errors for foreign implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means).
//
// AI-Hints:
//   - For repeated centering, reuse the returned means to un-center later.
func centerColumns(X Matrix) (*Dense, []float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	means := ewColumnMeans(d)
	out, err := ewBroadcastSubCols(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	out.validateNaNInf = d.validateNaNInf

	return out, means, nil
}

// covariance computes the sample covariance of the columns of X.
//
// Implementation:
//   - Stage 1: Validate X and require r >= 2 (the r-1 denominator).
//   - Stage 2: Center via centerColumns.
//   - Stage 3: Cov = Gram(Xc) / (r-1).
//
// Behavior highlights:
//   - Result is exactly symmetric (Gram mirrors its upper triangle).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
//
// Complexity:
//   - Time O(r*c²), Space O(c²).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	r := X.Rows()
	if r < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}
	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := Gram(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}

// secondMoment returns the uncentered c×c product XᵀX.
func secondMoment(X Matrix) (*Dense, error) {
	M, err := Gram(X)
	if err != nil {
		return nil, matrixErrorf(opSecondMoment, err)
	}

	return M, nil
}

// frobeniusSq returns Σ_ij X[i,j]², the squared Frobenius norm, which equals
// trace(XᵀX) (the sum of squared row norms).
func frobeniusSq(X Matrix) (float64, error) {
	d, err := asDense(X)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusSq, err)
	}
	acc := ZeroSum
	for _, v := range d.data {
		acc += v * v
	}

	return acc, nil
}
