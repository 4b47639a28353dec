// SPDX-License-Identifier: MIT

package eigengame

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension reports a shape problem: nil or empty data, a single
	// row, k outside [1, features], or a warm start of the wrong shape.
	ErrInvalidDimension = errors.New("eigengame: invalid dimension")

	// ErrInvalidParameter reports a non-positive epoch budget, a non-positive
	// or non-finite learning rate, or an unusable option combination.
	ErrInvalidParameter = errors.New("eigengame: invalid parameter")

	// ErrNumericDegeneracy reports a state the update cannot continue from:
	// a zero-norm vector before normalization, a zero penalty denominator,
	// non-finite input, or a zero divisor in variance reporting.
	ErrNumericDegeneracy = errors.New("eigengame: numeric degeneracy")
)

// Operation tags for error wrapping.
const (
	opSolve     = "Solve"
	opVariance  = "ExplainedVarianceRatio"
	opTransform = "Transform"
	opRayleigh  = "RayleighQuotient"
	opReference = "Reference"
	opMoment    = "SecondMoment"
)

// egErrorf wraps err with an operation tag, preserving it for errors.Is.
func egErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// detailf attaches context to a sentinel: "<op>: <detail>: <sentinel>".
func detailf(op string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
