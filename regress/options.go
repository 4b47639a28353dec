// SPDX-License-Identifier: MIT

package regress

import "github.com/rs/zerolog"

// Output selects which statistics LinReg fills in.
type Output uint8

const (
	OutCorr Output = 1 << iota
	OutR2
	OutBeta
	OutP
	OutT
	OutResiduals

	// OutAll is the default.
	OutAll = OutCorr | OutR2 | OutBeta | OutP | OutT | OutResiduals
)

const panicOutputsInvalid = "regress: WithOutputs: unknown output bits"

// Option configures LinReg.
type Option func(*options)

type options struct {
	outputs Output
	logger  zerolog.Logger
}

// WithOutputs restricts the report to the given outputs.
func WithOutputs(out Output) Option {
	if out&^OutAll != 0 {
		panic(panicOutputsInvalid)
	}

	return func(o *options) { o.outputs = out }
}

// WithLogger reports per-column progress at debug level.
func WithLogger(l zerolog.Logger) Option { return func(o *options) { o.logger = l } }

func gatherOptions(opts ...Option) options {
	o := options{outputs: OutAll, logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
