// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c).
package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxSetRow   = "SetRow"
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Returns "Dense.<method>(row,col): <err>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // zero-filled
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseWith creates an r×c zero matrix with an explicit numeric policy.
func NewDenseWith(rows, cols int, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = gatherOptions(opts...).validateNaNInf

	return m, nil
}

// NewFromRows copies a slice of equal-length rows into a new Dense.
//
// Implementation:
//   - Stage 1: validate len(rows)>0, len(rows[0])>0 and equal row lengths.
//   - Stage 2: copy row by row; enforce the finite policy when enabled.
//
// Errors:
//   - ErrInvalidDimensions (no rows / empty first row), ErrRaggedRows,
//     ErrNaNInf (policy violation, wrapped with coordinates).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = o.validateNaNInf

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange (unwrapped;
// public methods wrap with coordinates and method name).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
//
// Errors: ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with v (len(v) must equal Cols()).
//
// Errors: ErrOutOfRange, ErrDimensionMismatch, ErrNaNInf under the finite policy.
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSetRow, i, 0, ErrOutOfRange)
	}
	if len(v) != m.c {
		return denseErrorf(ctxSetRow, i, len(v), ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for j, x := range v {
			if isNonFinite(x) {
				return denseErrorf(ctxSetRow, i, j, ErrNaNInf)
			}
		}
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// RawRow returns the backing slice of row i without copying. Mutations are
// visible in m and bypass the finite policy; intended for hot loops that
// already own m. Panics on an out-of-range index like a slice expression would.
func (m *Dense) RawRow(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix { return m.cloneDense() }

// cloneDense is the typed variant of Clone used internally.
func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// String is a row-wise dump for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// asDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. Kernels call it once and then work on the flat buffer, so the
// fallback costs one O(r*c) materialization instead of per-element dispatch.
//
// Errors: ErrNilMatrix, wrapped At errors from foreign implementations.
func asDense(m Matrix) (*Dense, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	out.validateNaNInf = false // foreign values are copied as-is; checks are the caller's job

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// ToDense returns a *Dense holding m's values. A *Dense input is cloned so the
// result never aliases the argument.
func ToDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}
	d, err := asDense(m)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	d.validateNaNInf = DefaultValidateNaNInf

	return d, nil
}
