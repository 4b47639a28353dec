// SPDX-License-Identifier: MIT

// Package eigengame - per-rank reward, penalty and update kernels.
//
// All kernels work on buffers owned by one state value and allocate nothing
// after newState. DᵀD is never formed: it is applied as Dᵀ(D v) through the
// cached projections proj[t] = D v_t and back[t] = Dᵀ(D v_t).
package eigengame

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eigengame/matrix"
)

// state is the iteration state of one Solve call.
type state struct {
	D       *matrix.Dense
	n, d, k int
	invDim  float64 // 1/d
	eps     float64
	penalty Penalty

	vecs [][]float64 // k×d, the players
	proj [][]float64 // k×n, D v_t
	back [][]float64 // k×d, Dᵀ D v_t (unscaled)
	grad [][]float64 // k×d, tangential gradients
	prev []float64   // d, v_t before the update
}

// newState allocates every buffer up front.
func newState(D *matrix.Dense, k int, o Options) *state {
	n, d := D.Shape()
	st := &state{
		D:       D,
		n:       n,
		d:       d,
		k:       k,
		invDim:  1.0 / float64(d),
		eps:     o.degeneracyEps,
		penalty: o.penalty,
		vecs:    make([][]float64, k),
		proj:    make([][]float64, k),
		back:    make([][]float64, k),
		grad:    make([][]float64, k),
		prev:    make([]float64, d),
	}
	for t := 0; t < k; t++ {
		st.vecs[t] = make([]float64, d)
		st.proj[t] = make([]float64, n)
		st.back[t] = make([]float64, d)
		st.grad[t] = make([]float64, d)
	}

	return st
}

// refresh recomputes proj[t] and back[t] from the current v_t.
func (st *state) refresh(t int) error {
	if err := matrix.MatVecTo(st.proj[t], st.D, st.vecs[t]); err != nil {
		return err
	}

	return matrix.MatTVecTo(st.back[t], st.D, st.proj[t])
}

// refreshAll refreshes every rank.
func (st *state) refreshAll() error {
	for t := 0; t < st.k; t++ {
		if err := st.refresh(t); err != nil {
			return err
		}
	}

	return nil
}

// gradient writes the tangential gradient of rank t into grad[t].
// Ancestor values are whatever proj/back/vecs currently hold, which is what
// distinguishes the two disciplines.
//
// Errors: ErrNumericDegeneracy for a zero projection-penalty denominator.
func (st *state) gradient(t int) error {
	g := st.grad[t]
	v := st.vecs[t]

	// reward: (1/d)·Dᵀ(D v_t)
	copy(g, st.back[t])
	floats.Scale(st.invDim, g)

	// penalty from every ancestor a < t
	var c, den float64
	for a := 0; a < t; a++ {
		c = floats.Dot(st.proj[t], st.proj[a])
		switch st.penalty {
		case PenaltyProjection:
			den = floats.Dot(st.proj[a], st.proj[a])
			if den <= st.eps {
				return detailf(opSolve, ErrNumericDegeneracy, "rank %d: ancestor %d has ‖D v‖² = %g", t, a, den)
			}
			floats.AddScaled(g, -c/den*st.invDim, st.back[a])
		default:
			floats.AddScaled(g, -c*st.invDim, st.vecs[a])
		}
	}

	// tangential projection onto the sphere at v_t
	floats.AddScaled(g, -floats.Dot(g, v), v)

	return nil
}

// apply performs v_t ← normalize(v_t + step·grad[t]) and returns ‖Δv_t‖
// measured after normalization.
//
// Errors: ErrNumericDegeneracy when the updated vector has (near) zero or
// non-finite norm.
func (st *state) apply(t int, step float64) (float64, error) {
	v := st.vecs[t]
	copy(st.prev, v)
	floats.AddScaled(v, step, st.grad[t])

	nrm := floats.Norm(v, 2)
	if nrm <= st.eps || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return 0, detailf(opSolve, ErrNumericDegeneracy, "rank %d: norm %g before normalization", t, nrm)
	}
	floats.Scale(1/nrm, v)

	return floats.Distance(v, st.prev, 2), nil
}

// epoch runs one sweep over all ranks under the given discipline and returns
// max_t ‖Δv_t‖. On return proj/back are consistent with vecs.
func (st *state) epoch(step float64, discipline Discipline) (float64, error) {
	var maxMove, moved float64
	var err error

	if discipline == Sequential {
		for t := 0; t < st.k; t++ {
			if err = st.gradient(t); err != nil {
				return 0, err
			}
			if moved, err = st.apply(t, step); err != nil {
				return 0, err
			}
			maxMove = math.Max(maxMove, moved)
			if err = st.refresh(t); err != nil {
				return 0, err
			}
		}

		return maxMove, nil
	}

	// Synchronous: every gradient sees the previous epoch.
	for t := 0; t < st.k; t++ {
		if err = st.gradient(t); err != nil {
			return 0, err
		}
	}
	for t := 0; t < st.k; t++ {
		if moved, err = st.apply(t, step); err != nil {
			return 0, err
		}
		maxMove = math.Max(maxMove, moved)
	}

	return maxMove, st.refreshAll()
}

// rayleighs returns ‖D v_t‖² per rank.
func (st *state) rayleighs() []float64 {
	out := make([]float64, st.k)
	for t := range out {
		out[t] = floats.Dot(st.proj[t], st.proj[t])
	}

	return out
}

// normalizeInto writes src/‖src‖ into dst.
//
// Errors: ErrNumericDegeneracy on a zero or non-finite norm.
func normalizeInto(dst, src []float64, eps float64) error {
	nrm := floats.Norm(src, 2)
	if nrm <= eps || math.IsNaN(nrm) || math.IsInf(nrm, 0) {
		return ErrNumericDegeneracy
	}
	for i, x := range src {
		dst[i] = x / nrm
	}

	return nil
}
