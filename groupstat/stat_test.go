// SPDX-License-Identifier: MIT
package groupstat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/groupstat"
)

func TestStat_Ops(t *testing.T) {
	t.Parallel()
	labels := []int{2, 0, 1, 2, 1, 2, 0}
	values := []float64{4, 100, 1, 6, 3, 5, 200}

	cases := []struct {
		op       groupstat.Op
		skipZero bool
		want     []float64
		labels   []int
	}{
		{groupstat.Mean, true, []float64{2, 5}, []int{1, 2}},
		{groupstat.Mean, false, []float64{150, 2, 5}, []int{0, 1, 2}},
		{groupstat.Median, true, []float64{2, 5}, []int{1, 2}},
		{groupstat.Count, true, []float64{2, 3}, []int{1, 2}},
		{groupstat.Sum, true, []float64{4, 15}, []int{1, 2}},
		{groupstat.Min, true, []float64{1, 4}, []int{1, 2}},
		{groupstat.Max, true, []float64{3, 6}, []int{1, 2}},
		{groupstat.Std, true, []float64{math.Sqrt2, 1}, []int{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, keys, err := groupstat.Stat(labels, values, tc.op, tc.skipZero)
			require.NoError(t, err)
			require.Equal(t, tc.labels, keys)
			require.InDeltaSlice(t, tc.want, got, 1e-12)
		})
	}
}

func TestStat_EvenMedianAverages(t *testing.T) {
	t.Parallel()
	got, _, err := groupstat.Stat([]int{1, 1, 1, 1}, []float64{4, 1, 3, 2}, groupstat.Median, false)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5}, got)
}

func TestStat_DoesNotReorderInput(t *testing.T) {
	t.Parallel()
	values := []float64{3, 1, 2}
	_, _, err := groupstat.Stat([]int{1, 1, 1}, values, groupstat.Median, false)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, values)
}

func TestStat_Errors(t *testing.T) {
	t.Parallel()
	_, _, err := groupstat.Stat([]int{1}, []float64{1, 2}, groupstat.Mean, false)
	require.ErrorIs(t, err, groupstat.ErrLengthMismatch)

	_, _, err = groupstat.Stat([]int{0, 0}, []float64{1, 2}, groupstat.Mean, true)
	require.ErrorIs(t, err, groupstat.ErrEmpty)

	_, _, err = groupstat.Stat([]int{1}, []float64{1}, groupstat.Op(42), false)
	require.ErrorIs(t, err, groupstat.ErrUnknownOp)
}

func TestParseOp(t *testing.T) {
	t.Parallel()
	op, err := groupstat.ParseOp(" Median ")
	require.NoError(t, err)
	require.Equal(t, groupstat.Median, op)

	_, err = groupstat.ParseOp("mode")
	require.ErrorIs(t, err, groupstat.ErrUnknownOp)
}

func TestMinMaxNorm(t *testing.T) {
	t.Parallel()
	out, err := groupstat.MinMaxNorm([]float64{2, 4, 6})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0.5, 1}, out, 1e-15)

	_, err = groupstat.MinMaxNorm([]float64{3, 3})
	require.ErrorIs(t, err, groupstat.ErrDegenerate)
	_, err = groupstat.MinMaxNorm(nil)
	require.ErrorIs(t, err, groupstat.ErrEmpty)
}

// TestMapValsToIndex_MatchesLoop compares against a direct per-label loop.
func TestMapValsToIndex_MatchesLoop(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(9))
	labels := make([]int, 10000)
	for i := range labels {
		labels[i] = rng.Intn(11)
	}
	palette := groupstat.Labels(labels)
	keyVals := make([]float64, len(palette))
	for i := range keyVals {
		keyVals[i] = rng.Float64()
	}

	got, err := groupstat.MapValsToIndex(labels, keyVals)
	require.NoError(t, err)

	want := make([]float64, len(labels))
	for idx, l := range palette {
		for i := range labels {
			if labels[i] == l {
				want[i] = keyVals[idx]
			}
		}
	}
	assert.Equal(t, want, got)

	_, err = groupstat.MapValsToIndex(labels, keyVals[:3])
	require.ErrorIs(t, err, groupstat.ErrLengthMismatch)
}

func TestDigitize(t *testing.T) {
	t.Parallel()
	edges := []float64{0, 1, 2}
	values := []float64{-1, 0, 0.5, 1, 2, 3}

	left, err := groupstat.Digitize(values, edges, false)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 2, 3, 3}, left)

	right, err := groupstat.Digitize(values, edges, true)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 1, 2, 3}, right)

	_, err = groupstat.Digitize(values, []float64{0, 0}, false)
	require.ErrorIs(t, err, groupstat.ErrDegenerate)
}
