// SPDX-License-Identifier: MIT

package eigengame

import (
	"github.com/katalvlaran/eigengame/matrix"
)

// Discipline selects which vector values a rank sees while its gradient is computed.
type Discipline int

const (
	// Synchronous computes all k gradients of an epoch from the previous
	// epoch's vectors, then applies them together.
	Synchronous Discipline = iota

	// Sequential updates ranks in order 0..k-1; rank t sees ancestors that
	// were already updated in the same epoch.
	Sequential
)

// String implements fmt.Stringer.
func (d Discipline) String() string {
	switch d {
	case Synchronous:
		return "synchronous"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// Penalty selects the ancestor penalty formulation.
type Penalty int

const (
	// PenaltyCoefficient uses (1/d)·Σ ((D v_t)·(D v_a))·v_a.
	PenaltyCoefficient Penalty = iota

	// PenaltyProjection uses (1/d)·Σ ((D v_t)·(D v_a) / ‖D v_a‖²)·Dᵀ(D v_a),
	// which removes from the reward exactly the share explained by each ancestor.
	PenaltyProjection
)

// String implements fmt.Stringer.
func (p Penalty) String() string {
	switch p {
	case PenaltyCoefficient:
		return "coefficient"
	case PenaltyProjection:
		return "projection"
	default:
		return "unknown"
	}
}

// Init selects how the k starting vectors are seeded.
type Init int

const (
	// InitRandom draws every coordinate uniformly from [0,1) and normalizes.
	InitRandom Init = iota

	// InitOnes starts every rank at 1/√d·(1,…,1). Only usable with the
	// sequential discipline or k == 1: identical synchronous players never separate.
	InitOnes
)

// String implements fmt.Stringer.
func (i Init) String() string {
	switch i {
	case InitRandom:
		return "random"
	case InitOnes:
		return "ones"
	default:
		return "unknown"
	}
}

// EpochStat records one completed epoch (collected with WithHistory).
type EpochStat struct {
	// Epoch is 1-based.
	Epoch int

	// Step is the step size that was used during this epoch.
	Step float64

	// MaxUpdate is max_t ‖v_t(after) − v_t(before)‖.
	MaxUpdate float64

	// Rayleigh holds ‖D v_t‖² per rank after the epoch.
	Rayleigh []float64
}

// Result holds the outcome of Solve.
type Result struct {
	// Vectors is k×d; row t is the unit vector of rank t, ordered by
	// descending eigenvalue (row 0 approximates the dominant eigenvector).
	Vectors *matrix.Dense

	// Eigenvalues holds the Rayleigh quotient v_tᵀ(DᵀD)v_t = ‖D v_t‖² per rank.
	Eigenvalues []float64

	// Epochs is the number of epochs actually run (the full budget unless
	// WithTolerance stopped early).
	Epochs int

	// Converged is true only when WithTolerance was set and triggered.
	Converged bool

	// FinalStep is the step size after the last decay.
	FinalStep float64

	// SecondMoment is DᵀD (d×d), set with WithSecondMoment.
	SecondMoment *matrix.Dense

	// ExplainedVariance holds ExplainedVarianceRatio per rank, set with WithExplainedVariance.
	ExplainedVariance []float64

	// History holds one entry per epoch, set with WithHistory.
	History []EpochStat
}

// Vector returns a copy of the rank-t vector.
//
// Errors: ErrInvalidDimension when t is out of range.
func (r *Result) Vector(t int) ([]float64, error) {
	if r == nil || r.Vectors == nil || t < 0 || t >= r.Vectors.Rows() {
		return nil, detailf("Vector", ErrInvalidDimension, "rank %d", t)
	}

	return r.Vectors.Row(t)
}

// K returns the number of extracted components.
func (r *Result) K() int {
	if r == nil || r.Vectors == nil {
		return 0
	}

	return r.Vectors.Rows()
}
