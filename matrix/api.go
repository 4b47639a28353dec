// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense: kernels then skip the one-off materialization.
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// AllClose reports whether |a-b| <= atol + rtol*|b| element-wise.
// Shapes must match; tolerances are taken by absolute value.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }

// ---------- Statistics ----------

// CenterColumns returns a column-centered copy of X and the column means.
// Complexity: O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) { return centerColumns(X) }

// Covariance returns the sample covariance (Xcᵀ Xc)/(r-1) and the column means.
// Requires r >= 2. Complexity: O(r*c²).
func Covariance(X Matrix) (*Dense, []float64, error) { return covariance(X) }

// SecondMoment returns the uncentered second-moment matrix XᵀX (c×c).
// Complexity: O(r*c²).
func SecondMoment(X Matrix) (*Dense, error) { return secondMoment(X) }

// FrobeniusSq returns Σ X[i,j]², i.e. trace(XᵀX) without forming XᵀX.
// Complexity: O(r*c).
func FrobeniusSq(X Matrix) (float64, error) { return frobeniusSq(X) }
