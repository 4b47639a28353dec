// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) shared
//     by the statistics layer and the comparison facade.
//   - Keep all loops deterministic and cache-friendly over flat buffers.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Operands are resolved once via asDense; no per-element interface dispatch.

package matrix

import "math"

const (
	opBroadcastSubCols = "broadcastSubCols"
	opAllClose         = "AllClose"
)

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c). Deterministic i→j loops.
func ewBroadcastSubCols(X Matrix, colMeans []float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	if len(colMeans) != d.c {
		return nil, matrixErrorf(opBroadcastSubCols, ErrDimensionMismatch)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}

	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] - colMeans[j]
		}
	}

	return out, nil
}

// ewColumnMeans returns Σ_i X[i,j] / r for every column j.
func ewColumnMeans(d *Dense) []float64 {
	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	inv := 1.0 / float64(d.r)
	for j = range means {
		means[j] *= inv
	}

	return means
}

// ewAllClose reports whether |a-b| <= atol + rtol*|b| holds element-wise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Time: O(r*c). Space: O(1) for *Dense operands.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx, av := range da.data {
		bv := db.data[idx]
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
