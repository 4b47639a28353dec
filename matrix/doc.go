// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer used by eigengame.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-value policy (NaN/±Inf rejected on Set by default).
//   - Kernels: Mul, Transpose, Scale, MatVec, MatTVec (mᵀx) and Gram (mᵀm).
//   - A deterministic Jacobi eigen solver (Eigen) for symmetric matrices,
//     used as the dense reference that iterative solvers are checked against.
//     EigenSym returns its spectrum sorted descending, one eigenvector per row.
//   - Statistics: CenterColumns, Covariance, SecondMoment, FrobeniusSq.
//   - Interop with gonum (ToGonum / FromGonum) and GonumEigenSym, a
//     LAPACK-backed cross-check of the Jacobi result.
//
// Orientation convention: a data matrix holds one observation per row and one
// feature per column, i.e. shape (n_samples, n_features).
//
// All public entry points return sentinel errors (see errors.go) wrapped with
// an operation tag; match them with errors.Is.
package matrix
