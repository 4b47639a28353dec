// SPDX-License-Identifier: MIT

// Package eigengame: functional configuration for Solve.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
package eigengame

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eigengame/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDiscipline is the update discipline used when none is given.
	DefaultDiscipline = Synchronous

	// DefaultPenalty is the penalty formulation used when none is given.
	DefaultPenalty = PenaltyCoefficient

	// DefaultInit is the seeding policy used when none is given.
	DefaultInit = InitRandom

	// DefaultDecayEvery disables step decay (constant step).
	DefaultDecayEvery = 0

	// DefaultDecayFactor is the multiplier applied at each decay point.
	DefaultDecayFactor = 0.1

	// DefaultTolerance disables the early exit.
	DefaultTolerance = 0.0

	// DefaultDegeneracyEps is the threshold at or below which a norm or a
	// penalty denominator counts as zero.
	DefaultDegeneracyEps = 1e-300
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDisciplineInvalid = "eigengame: WithDiscipline: unknown discipline"
	panicPenaltyInvalid    = "eigengame: WithPenalty: unknown penalty"
	panicInitInvalid       = "eigengame: WithInit: unknown init"
	panicDecayInvalid      = "eigengame: WithDecay: every must be >= 0 and factor in (0,1]"
	panicToleranceInvalid  = "eigengame: WithTolerance: tol must be finite, non-negative"
	panicEpsInvalid        = "eigengame: WithDegeneracyEps: eps must be finite, non-negative"
	panicContextNil        = "eigengame: WithContext: nil context"
	panicInitialNil        = "eigengame: WithInitial: nil matrix"
)

// Option mutates internal options. Later options win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	discipline        Discipline
	penalty           Penalty
	init              Init
	seed              int64
	initial           matrix.Matrix
	decayEvery        int
	decayFactor       float64
	tolerance         float64
	degeneracyEps     float64
	centering         bool
	secondMoment      bool
	explainedVariance bool
	history           bool
	logger            zerolog.Logger
	ctx               context.Context
}

// WithDiscipline selects Synchronous or Sequential updates.
func WithDiscipline(d Discipline) Option {
	if d != Synchronous && d != Sequential {
		panic(panicDisciplineInvalid)
	}

	return func(o *Options) { o.discipline = d }
}

// WithPenalty selects the penalty formulation.
func WithPenalty(p Penalty) Option {
	if p != PenaltyCoefficient && p != PenaltyProjection {
		panic(panicPenaltyInvalid)
	}

	return func(o *Options) { o.penalty = p }
}

// WithInit selects the seeding policy.
func WithInit(i Init) Option {
	if i != InitRandom && i != InitOnes {
		panic(panicInitInvalid)
	}

	return func(o *Options) { o.init = i }
}

// WithSeed fixes the RNG seed for InitRandom. Seed 0 maps to a fixed default,
// so the zero configuration is reproducible too.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithInitial warm-starts from a k×d matrix (rows normalized on entry); it
// overrides WithInit. Shape is checked by Solve.
func WithInitial(v matrix.Matrix) Option {
	if v == nil {
		panic(panicInitialNil)
	}

	return func(o *Options) { o.initial = v }
}

// WithDecay multiplies the step by factor after every `every` completed
// epochs. every == 0 keeps the step constant.
func WithDecay(every int, factor float64) Option {
	if every < 0 || math.IsNaN(factor) || factor <= 0 || factor > 1 {
		panic(panicDecayInvalid)
	}

	return func(o *Options) {
		o.decayEvery = every
		o.decayFactor = factor
	}
}

// WithTolerance stops early once an epoch moves no vector by more than tol
// (Euclidean). tol == 0 disables the check.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithDegeneracyEps sets the zero threshold for norms and penalty denominators.
func WithDegeneracyEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsInvalid)
	}

	return func(o *Options) { o.degeneracyEps = eps }
}

// WithCentering subtracts column means before solving (covariance PCA).
func WithCentering() Option { return func(o *Options) { o.centering = true } }

// WithSecondMoment also returns DᵀD in Result.SecondMoment.
func WithSecondMoment() Option { return func(o *Options) { o.secondMoment = true } }

// WithExplainedVariance also returns ExplainedVarianceRatio in the Result.
func WithExplainedVariance() Option { return func(o *Options) { o.explainedVariance = true } }

// WithHistory records an EpochStat per epoch.
func WithHistory() Option { return func(o *Options) { o.history = true } }

// WithLogger routes debug events (start, decay, early exit, finish) to l.
func WithLogger(l zerolog.Logger) Option { return func(o *Options) { o.logger = l } }

// WithContext enables cooperative cancellation, checked between epochs.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicContextNil)
	}

	return func(o *Options) { o.ctx = ctx }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		discipline:    DefaultDiscipline,
		penalty:       DefaultPenalty,
		init:          DefaultInit,
		decayEvery:    DefaultDecayEvery,
		decayFactor:   DefaultDecayFactor,
		tolerance:     DefaultTolerance,
		degeneracyEps: DefaultDegeneracyEps,
		logger:        zerolog.Nop(),
		ctx:           context.Background(),
	}
}

// gatherOptions applies setters in order over defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// NewOptions resolves setters into an Options value for inspection.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Discipline returns the effective update discipline.
func (o Options) Discipline() Discipline { return o.discipline }

// Penalty returns the effective penalty formulation.
func (o Options) Penalty() Penalty { return o.penalty }

// Init returns the effective seeding policy.
func (o Options) Init() Init { return o.init }

// Seed returns the configured seed (0 means the fixed default).
func (o Options) Seed() int64 { return o.seed }

// Decay returns the decay interval and factor.
func (o Options) Decay() (every int, factor float64) { return o.decayEvery, o.decayFactor }

// Tolerance returns the early-exit threshold (0 = off).
func (o Options) Tolerance() float64 { return o.tolerance }
