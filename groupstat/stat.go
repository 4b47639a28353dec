// SPDX-License-Identifier: MIT

package groupstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

const (
	opStat         = "Stat"
	opMinMaxNorm   = "MinMaxNorm"
	opMapValsToIdx = "MapValsToIndex"
	opDigitize     = "Digitize"
)

// Stat aggregates values by label and returns one statistic per distinct
// label, together with those labels in ascending order. With skipZero the
// label 0 is excluded entirely.
//
// Errors: ErrLengthMismatch, ErrUnknownOp, ErrEmpty (no label survives).
// Complexity: O(n log n).
func Stat(labels []int, values []float64, op Op, skipZero bool) ([]float64, []int, error) {
	if len(labels) != len(values) {
		return nil, nil, groupErrorf(opStat, ErrLengthMismatch, "%d labels, %d values", len(labels), len(values))
	}
	if op.String() == "unknown" {
		return nil, nil, groupErrorf(opStat, ErrUnknownOp, "op %d", int(op))
	}

	groups := make(map[int][]float64)
	for i, l := range labels {
		if skipZero && l == 0 {
			continue
		}
		groups[l] = append(groups[l], values[i])
	}
	if len(groups) == 0 {
		return nil, nil, groupErrorf(opStat, ErrEmpty, "no labels to aggregate")
	}

	keys := make([]int, 0, len(groups))
	for l := range groups {
		keys = append(keys, l)
	}
	sort.Ints(keys)

	out := make([]float64, len(keys))
	for i, l := range keys {
		out[i] = op.apply(groups[l])
	}

	return out, keys, nil
}

// Labels returns the distinct labels in ascending order.
func Labels(labels []int) []int {
	seen := make(map[int]struct{}, len(labels))
	out := make([]int, 0)
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// MinMaxNorm rescales values into [0,1]: (x − min) / (max − min).
//
// Errors: ErrEmpty, ErrDegenerate (max == min or a non-finite range).
func MinMaxNorm(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, groupErrorf(opMinMaxNorm, ErrEmpty, "no values")
	}
	lo, hi := floats.Min(values), floats.Max(values)
	span := hi - lo
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return nil, groupErrorf(opMinMaxNorm, ErrDegenerate, "range [%g,%g]", lo, hi)
	}
	out := make([]float64, len(values))
	copy(out, values)
	floats.AddConst(-lo, out)
	floats.Scale(1/span, out)

	return out, nil
}

// MapValsToIndex paints keyVals onto a label array: every occurrence of the
// i-th smallest distinct label receives keyVals[i]. Label 0, when present,
// takes a slot like any other label.
//
// Errors: ErrLengthMismatch when the number of distinct labels differs from len(keyVals).
func MapValsToIndex(labels []int, keyVals []float64) ([]float64, error) {
	palette := Labels(labels)
	if len(palette) != len(keyVals) {
		return nil, groupErrorf(opMapValsToIdx, ErrLengthMismatch, "%d distinct labels, %d values", len(palette), len(keyVals))
	}
	slot := make(map[int]float64, len(palette))
	for i, l := range palette {
		slot[l] = keyVals[i]
	}
	out := make([]float64, len(labels))
	for i, l := range labels {
		out[i] = slot[l]
	}

	return out, nil
}

// Digitize returns, for every value, the index of the bin it falls into
// given strictly increasing edges:
//
//	right == false: edges[i-1] <= x <  edges[i]
//	right == true:  edges[i-1] <  x <= edges[i]
//
// Values below the first edge map to 0, values past the last to len(edges).
//
// Errors: ErrDegenerate when edges are not strictly increasing.
func Digitize(values, edges []float64, right bool) ([]int, error) {
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return nil, groupErrorf(opDigitize, ErrDegenerate, "edges[%d]=%g after %g", i, edges[i], edges[i-1])
		}
	}
	out := make([]int, len(values))
	for i, x := range values {
		if right {
			out[i] = sort.SearchFloat64s(edges, x)
		} else {
			out[i] = sort.Search(len(edges), func(j int) bool { return edges[j] > x })
		}
	}

	return out, nil
}
