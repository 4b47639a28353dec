// SPDX-License-Identifier: MIT

// Package eigengame extracts the top-k eigenvectors of the second-moment
// matrix DᵀD of a data matrix D with the EigenGame gradient game, without
// forming or diagonalizing DᵀD.
//
// Each of the k candidate vectors ("players") is ranked 0..k-1. Per epoch the
// player at rank t follows
//
//	reward   r = (1/d)·Dᵀ(D v_t)
//	penalty  p = (1/d)·Σ_{a<t} ((D v_t)·(D v_a))·v_a
//	g⊥       = (r − p) − ((r − p)·v_t)·v_t
//	v_t      ← normalize(v_t + step·g⊥)
//
// where d is the feature count. The penalty pushes rank t away from variance
// already captured by its ancestors, so the players settle on distinct
// eigenvectors in descending eigenvalue order.
//
// Orientation: D has one observation per row, shape (n_samples, n_features).
// Data stored as (features, samples) must be transposed first
// (matrix.Transpose); nothing is inferred from the shape.
//
// Behavior highlights:
//   - Synchronous discipline (default): every gradient of an epoch is computed
//     from the previous epoch's vectors. Sequential: rank t sees ancestors
//     already updated in the same epoch.
//   - Termination is the epoch budget. WithTolerance adds an optional early exit.
//   - Degenerate states (zero-norm vector before normalization, zero penalty
//     denominator, non-finite data) fail with ErrNumericDegeneracy; no NaN is
//     ever returned.
//   - Deterministic for a fixed seed; Solve owns all of its state, so
//     independent calls may run concurrently.
//
// Quick start:
//
//	res, err := eigengame.Solve(D, 3, 2000, 0.1, eigengame.WithSeed(7))
//	top, _ := res.Vector(0)
//
// References: I. Gemp, B. McWilliams, C. Vernade, T. Graepel,
// "EigenGame: PCA as a Nash Equilibrium", ICLR 2021.
package eigengame
