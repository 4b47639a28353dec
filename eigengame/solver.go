// SPDX-License-Identifier: MIT

package eigengame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eigengame/matrix"
)

// Solve runs EigenGame on data and returns the top-k eigenvectors of DᵀD.
//
// Implementation:
//   - Stage 1: validate shapes, parameters and option combinations; resolve
//     data into a *matrix.Dense (centered copy under WithCentering).
//   - Stage 2: seed k unit vectors (warm start, uniform random or ones).
//   - Stage 3: run `epochs` sweeps of reward/penalty/tangential updates,
//     decaying the step on schedule; stop early only under WithTolerance.
//   - Stage 4: assemble the Result and the optional reports.
//
// Inputs:
//   - data: (n_samples × n_features), n ≥ 2, finite. Never modified.
//   - k: 1 ≤ k ≤ n_features.
//   - epochs: ≥ 1.
//   - learningRate: > 0 and finite.
//
// Returns:
//   - *Result with Vectors (k×d, one unit vector per row, rank order).
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidParameter, ErrNumericDegeneracy, or the
//     context error when cancelled. No partial result is returned.
//
// Determinism:
//   - Identical inputs and seed give bit-identical vectors.
//
// Complexity:
//   - Time O(epochs·k·(n·d + k·(n+d))), Space O(k·(n+d)) beyond the data.
func Solve(data matrix.Matrix, k, epochs int, learningRate float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	D, err := prepare(data, k, epochs, learningRate, o)
	if err != nil {
		return nil, err
	}
	n, d := D.Shape()

	st := newState(D, k, o)
	if err = seed(st, o); err != nil {
		return nil, err
	}
	if err = st.refreshAll(); err != nil {
		return nil, egErrorf(opSolve, err)
	}

	log := o.logger
	log.Debug().
		Int("samples", n).Int("features", d).Int("k", k).
		Int("epochs", epochs).Float64("lr", learningRate).
		Str("discipline", o.discipline.String()).Str("penalty", o.penalty.String()).
		Msg("eigengame: solve start")

	sched := schedule{step: learningRate, every: o.decayEvery, factor: o.decayFactor}
	res := &Result{}
	if o.history {
		res.History = make([]EpochStat, 0, epochs)
	}

	var maxMove float64
	for epoch := 1; epoch <= epochs; epoch++ {
		if err = o.ctx.Err(); err != nil {
			return nil, egErrorf(opSolve, err)
		}
		step := sched.step
		if maxMove, err = st.epoch(step, o.discipline); err != nil {
			log.Debug().Err(err).Int("epoch", epoch).Msg("eigengame: degenerate update")
			return nil, err
		}
		res.Epochs = epoch
		if o.history {
			res.History = append(res.History, EpochStat{
				Epoch:     epoch,
				Step:      step,
				MaxUpdate: maxMove,
				Rayleigh:  st.rayleighs(),
			})
		}
		if o.tolerance > 0 && maxMove < o.tolerance {
			res.Converged = true
			log.Debug().Int("epoch", epoch).Float64("max_update", maxMove).Msg("eigengame: tolerance reached")
			break
		}
		if sched.afterEpoch(epoch) {
			log.Debug().Int("epoch", epoch).Float64("step", sched.step).Msg("eigengame: step decayed")
		}
	}
	res.FinalStep = sched.step

	if err = finish(res, st, o); err != nil {
		return nil, err
	}
	log.Debug().Int("epochs_run", res.Epochs).Bool("converged", res.Converged).
		Floats64("eigenvalues", res.Eigenvalues).Msg("eigengame: solve done")

	return res, nil
}

// prepare validates every input in priority order (shape → parameters →
// options → numeric) and returns the matrix the iteration reads from.
func prepare(data matrix.Matrix, k, epochs int, learningRate float64, o Options) (*matrix.Dense, error) {
	if data == nil {
		return nil, detailf(opSolve, ErrInvalidDimension, "nil data")
	}
	n, d := data.Rows(), data.Cols()
	if n < 2 || d < 1 {
		return nil, detailf(opSolve, ErrInvalidDimension, "data is %d×%d, need at least 2 rows and 1 column", n, d)
	}
	if k < 1 || k > d {
		return nil, detailf(opSolve, ErrInvalidDimension, "k=%d outside [1,%d]", k, d)
	}
	if epochs <= 0 {
		return nil, detailf(opSolve, ErrInvalidParameter, "epochs=%d", epochs)
	}
	if learningRate <= 0 || math.IsNaN(learningRate) || math.IsInf(learningRate, 0) {
		return nil, detailf(opSolve, ErrInvalidParameter, "learning rate %g", learningRate)
	}
	if o.initial == nil && o.init == InitOnes && o.discipline == Synchronous && k > 1 {
		return nil, detailf(opSolve, ErrInvalidParameter, "ones init with synchronous updates cannot separate %d ranks", k)
	}
	if o.initial != nil && (o.initial.Rows() != k || o.initial.Cols() != d) {
		return nil, detailf(opSolve, ErrInvalidDimension, "warm start is %d×%d, want %d×%d",
			o.initial.Rows(), o.initial.Cols(), k, d)
	}
	if err := matrix.ValidateFinite(data); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opSolve, ErrNumericDegeneracy, err)
	}

	if o.centering {
		Dc, _, err := matrix.CenterColumns(data)
		if err != nil {
			return nil, egErrorf(opSolve, err)
		}
		return Dc, nil
	}
	if D, ok := data.(*matrix.Dense); ok {
		return D, nil // read-only from here on
	}
	D, err := matrix.ToDense(data)
	if err != nil {
		return nil, egErrorf(opSolve, err)
	}

	return D, nil
}

// seed writes the k starting unit vectors into st.vecs.
func seed(st *state, o Options) error {
	switch {
	case o.initial != nil:
		src, err := matrix.ToDense(o.initial)
		if err != nil {
			return fmt.Errorf("%s: warm start: %w: %w", opSolve, ErrNumericDegeneracy, err)
		}
		for t := 0; t < st.k; t++ {
			if err = normalizeInto(st.vecs[t], src.RawRow(t), o.degeneracyEps); err != nil {
				return detailf(opSolve, err, "warm start row %d", t)
			}
		}
	case o.init == InitOnes:
		for t := 0; t < st.k; t++ {
			for j := range st.vecs[t] {
				st.vecs[t][j] = 1
			}
			floats.Scale(1/math.Sqrt(float64(st.d)), st.vecs[t])
		}
	default:
		rng := rngFromSeed(o.seed)
		for t := 0; t < st.k; t++ {
			fillUniform(rng, st.vecs[t])
			if err := normalizeInto(st.vecs[t], st.vecs[t], o.degeneracyEps); err != nil {
				return detailf(opSolve, err, "random seed vector %d", t)
			}
		}
	}

	return nil
}

// finish copies the vectors into the Result and computes optional reports.
func finish(res *Result, st *state, o Options) error {
	V, err := matrix.NewDense(st.k, st.d)
	if err != nil {
		return egErrorf(opSolve, err)
	}
	for t := 0; t < st.k; t++ {
		if err = V.SetRow(t, st.vecs[t]); err != nil {
			return fmt.Errorf("%s: %w: %w", opSolve, ErrNumericDegeneracy, err)
		}
	}
	res.Vectors = V
	res.Eigenvalues = st.rayleighs()

	if o.secondMoment {
		if res.SecondMoment, err = matrix.SecondMoment(st.D); err != nil {
			return egErrorf(opSolve, err)
		}
	}
	if o.explainedVariance {
		if res.ExplainedVariance, err = ExplainedVarianceRatio(st.D, V); err != nil {
			return egErrorf(opSolve, err)
		}
	}

	return nil
}
