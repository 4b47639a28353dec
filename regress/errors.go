// SPDX-License-Identifier: MIT

package regress

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension indicates nil inputs or mismatched sample counts.
	ErrDimension = errors.New("regress: dimension mismatch")

	// ErrDegreesOfFreedom indicates fewer samples than needed to estimate
	// the residual variance (n ≤ p).
	ErrDegreesOfFreedom = errors.New("regress: not enough samples")

	// ErrSingular indicates a rank-deficient design matrix.
	ErrSingular = errors.New("regress: singular design")

	// ErrDegenerate indicates a constant dependent variable.
	ErrDegenerate = errors.New("regress: constant dependent variable")
)

const opLinReg = "LinReg"

func regErrorf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", opLinReg, fmt.Sprintf(format, args...), err)
}
