// SPDX-License-Identifier: MIT

package groupstat

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Op names an aggregation.
type Op int

const (
	Mean Op = iota
	Std
	Median
	Count
	Sum
	Min
	Max
)

var opNames = [...]string{"mean", "std", "median", "count", "sum", "min", "max"}

// String implements fmt.Stringer.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}

	return opNames[op]
}

// ParseOp maps a case-insensitive name to an Op.
func ParseOp(s string) (Op, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}

	return 0, fmt.Errorf("ParseOp: %q: %w", s, ErrUnknownOp)
}

// apply reduces one non-empty group. xs may be reordered.
func (op Op) apply(xs []float64) float64 {
	switch op {
	case Mean:
		return stat.Mean(xs, nil)
	case Std:
		return stat.StdDev(xs, nil)
	case Median:
		return median(xs)
	case Count:
		return float64(len(xs))
	case Sum:
		return floats.Sum(xs)
	case Min:
		return floats.Min(xs)
	default:
		return floats.Max(xs)
	}
}

// median averages the two middle order statistics for even lengths.
func median(xs []float64) float64 {
	sort.Float64s(xs)
	n := len(xs)
	if n%2 == 1 {
		return xs[n/2]
	}

	return (xs[n/2-1] + xs[n/2]) / 2
}
