// SPDX-License-Identifier: MIT

// Package groupstat aggregates a value vector by an integer label vector,
// one statistic per distinct label, and carries the small array helpers that
// go with label maps: min-max normalization, mapping per-label values back
// onto a label array, and binning.
//
// Labels are reported in ascending order. Label 0 is conventionally
// "background" and can be skipped.
//
// Statistics use gonum.org/v1/gonum/stat and floats. Std is the sample
// standard deviation (n−1 denominator); a singleton group yields NaN, as
// gonum does.
package groupstat
