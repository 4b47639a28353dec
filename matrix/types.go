// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Concrete storage lives in impl_dense.go; options and errors live in
// dedicated files (options.go, errors.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Kernels accept any Matrix; *Dense operands take a flat-slice fast path,
// other implementations are read through At and materialized once.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNaNInf when the
	// implementation enforces a finite-value policy.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
