// SPDX-License-Identifier: MIT

// Package eigengame is the module root of an EigenGame PCA toolkit: the top-k
// eigenvectors of DᵀD are found as the equilibrium of a game in which every
// vector maximizes its own variance while being penalized for aligning with
// the vectors ranked above it. DᵀD is never formed.
//
// Packages:
//
//	eigengame/      Solve, explained variance, projection and reference helpers
//	matrix/         dense row-major float64 matrices, kernels, Jacobi eigen solver, gonum interop
//	parallel/       order-preserving bounded parallel map (errgroup)
//	groupstat/      per-label statistics, min-max normalization, label painting, binning
//	regress/        mass-univariate OLS with covariates, t statistics and p-values
//	chart/          convergence charts (gonum/plot)
//	config/         YAML or TOML settings → solver options
//	dataio/         CSV ↔ matrix.Dense
//	metrics/        Prometheus metrics for solver runs (textfile export)
//	cmd/eigengame/  command-line front end (cobra, zerolog)
//	examples/       runnable demos
//
// Quick start:
//
//	D, _ := matrix.NewFromRows(rows)           // samples × features
//	res, err := eigengame.Solve(D, 3, 2000, 0.1, eigengame.WithSeed(42))
//	// res.Vectors: 3×d, unit rows in rank order; res.Eigenvalues: ‖D v‖²
//
// The step must satisfy lr·λ₁/d < 1 (λ₁ the largest eigenvalue of DᵀD,
// d the feature count), otherwise the iteration favours the smallest
// directions instead of the largest.
package eigengame
