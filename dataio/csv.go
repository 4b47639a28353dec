// SPDX-License-Identifier: MIT

// Package dataio reads and writes numeric CSV as matrix.Dense.
//
// Rows are samples and columns are features. A header line can be skipped
// or produced; blank lines are ignored; every row must have the same width.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eigengame/matrix"
)

var (
	// ErrEmpty indicates a file with no data rows.
	ErrEmpty = errors.New("dataio: no data")

	// ErrParse indicates a cell that is not a number.
	ErrParse = errors.New("dataio: not a number")

	// ErrNotInteger indicates a label cell with a fractional part.
	ErrNotInteger = errors.New("dataio: not an integer")
)

// Option configures reading and writing.
type Option func(*options)

type options struct {
	comma     rune
	header    bool
	names     []string
	transpose bool
}

// WithComma sets the field separator (default ',').
func WithComma(r rune) Option { return func(o *options) { o.comma = r } }

// WithHeader skips the first line on read.
func WithHeader() Option { return func(o *options) { o.header = true } }

// WithColumnNames writes names as a header line.
func WithColumnNames(names ...string) Option {
	return func(o *options) { o.names = append([]string(nil), names...) }
}

// WithTranspose swaps rows and columns, for files stored features × samples.
func WithTranspose() Option { return func(o *options) { o.transpose = true } }

func gather(opts []Option) options {
	o := options{comma: ','}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ReadCSV parses r into a Dense.
//
// Errors: ErrEmpty, ErrParse (with line and column), csv errors for ragged rows.
func ReadCSV(r io.Reader, opts ...Option) (*matrix.Dense, error) {
	o := gather(opts)
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var rows [][]float64
	skip := o.header
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataio: %w", err)
		}
		if skip {
			skip = false
			continue
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				line, col := cr.FieldPos(j)
				return nil, fmt.Errorf("dataio: line %d column %d %q: %w", line, col, cell, ErrParse)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	if o.transpose {
		return matrix.Transpose(m)
	}

	return m, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, opts ...Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	m, err := ReadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadVector reads a single row or a single column as a flat vector.
func ReadVector(r io.Reader, opts ...Option) ([]float64, error) {
	m, err := ReadCSV(r, opts...)
	if err != nil {
		return nil, err
	}
	rows, cols := m.Shape()
	if rows != 1 && cols != 1 {
		return nil, fmt.Errorf("dataio: vector file is %d×%d: %w", rows, cols, matrix.ErrDimensionMismatch)
	}
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, m.RawRow(i)...)
	}

	return out, nil
}

// ReadLabels reads an integer vector (e.g. a parcellation).
func ReadLabels(r io.Reader, opts ...Option) ([]int, error) {
	vals, err := ReadVector(r, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(vals))
	for i, v := range vals {
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("dataio: entry %d = %g: %w", i, v, ErrNotInteger)
		}
		out[i] = int(v)
	}

	return out, nil
}

// ReadVectorFile opens path and calls ReadVector.
func ReadVectorFile(path string, opts ...Option) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	return ReadVector(f, opts...)
}

// ReadLabelsFile opens path and calls ReadLabels.
func ReadLabelsFile(path string, opts ...Option) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataio: %w", err)
	}
	defer f.Close()

	return ReadLabels(f, opts...)
}

// WriteCSV writes m with the shortest exact float formatting.
func WriteCSV(w io.Writer, m matrix.Matrix, opts ...Option) error {
	o := gather(opts)
	if m == nil {
		return fmt.Errorf("dataio: %w", matrix.ErrNilMatrix)
	}
	if o.transpose {
		t, err := matrix.Transpose(m)
		if err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
		m = t
	}
	cw := csv.NewWriter(w)
	cw.Comma = o.comma
	if len(o.names) > 0 {
		if len(o.names) != m.Cols() {
			return fmt.Errorf("dataio: %d names for %d columns: %w", len(o.names), m.Cols(), matrix.ErrDimensionMismatch)
		}
		if err := cw.Write(o.names); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	rec := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := range rec {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("dataio: %w", err)
			}
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("dataio: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteCSVFile creates path and calls WriteCSV.
func WriteCSVFile(path string, m matrix.Matrix, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("dataio: %w", cerr)
		}
	}()

	return WriteCSV(f, m, opts...)
}

// WriteVector writes v as a single column.
func WriteVector(w io.Writer, v []float64, opts ...Option) error {
	rows := make([][]float64, len(v))
	for i, x := range v {
		rows[i] = []float64{x}
	}
	if len(rows) == 0 {
		return ErrEmpty
	}
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return fmt.Errorf("dataio: %w", err)
	}

	return WriteCSV(w, m, opts...)
}
