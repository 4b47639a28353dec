// SPDX-License-Identifier: MIT

package groupstat

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates labels and values differ in length.
	ErrLengthMismatch = errors.New("groupstat: length mismatch")

	// ErrEmpty indicates there is nothing to aggregate.
	ErrEmpty = errors.New("groupstat: empty input")

	// ErrUnknownOp indicates an Op outside the defined set.
	ErrUnknownOp = errors.New("groupstat: unknown op")

	// ErrDegenerate indicates a zero range or a non-increasing edge vector.
	ErrDegenerate = errors.New("groupstat: degenerate input")
)

func groupErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
