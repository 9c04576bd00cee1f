// SPDX-License-Identifier: MIT

// Package matrix - Dense storage over GF(2) (row-major, bit-packed rows) & safe accessors.
//
// Purpose:
//   - Keep each row in a *bitset.BitSet so row XOR/AND and popcount use whole words.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c/64); At/Set/Toggle: O(1); Clone: O(r*c/64); Weight: O(r*c/64).

package matrix

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lightsout/gf2"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxToggle = "Toggle"
	ctxRow    = "Row"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <cause>" and preserves the sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete r×c matrix over GF(2).
//   - r,c hold dimensions (rows, cols).
//   - rows[i] holds row i; bit j is entry (i,j). Every row has bit length c.
type Dense struct {
	r, c int
	rows []*bitset.BitSet
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c/64), Space O(r*c/64).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDenseZeroOK(rows, cols)
}

// newDenseZeroOK is the internal constructor that also allows rows==0.
// A 0×c matrix is how an empty null-space basis of vectors of length c is represented.
func newDenseZeroOK(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*bitset.BitSet, rows)
	for i := range data {
		data[i] = bitset.New(uint(cols))
	}

	return &Dense{r: rows, c: cols, rows: data}, nil
}

// NewFromRows builds a Dense from a rectangular slice of integer rows.
// Every value is reduced mod 2 (gf2.New), so any integer type is accepted.
//
// Errors:
//   - ErrInvalidDimensions for an empty input or empty first row.
//   - ErrDimensionMismatch when rows have differing lengths.
func NewFromRows[T constraints.Integer](values [][]T) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	h, w := len(values), len(values[0])
	m, err := NewDense(h, w)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("NewFromRows: row %d: %w", i, ErrDimensionMismatch)
		}
		for j, v := range row {
			if gf2.New(v) == gf2.One {
				m.rows[i].Set(uint(j))
			}
		}
	}

	return m, nil
}

// NewFromBits builds a Dense whose row i is a copy of bits[i].
// Every bitset must have Len() == cols. Zero rows are allowed (0×cols).
func NewFromBits(bits []*bitset.BitSet, cols int) (*Dense, error) {
	m, err := newDenseZeroOK(len(bits), cols)
	if err != nil {
		return nil, err
	}
	for i, b := range bits {
		if err = ValidateVecLen(b, cols); err != nil {
			return nil, fmt.Errorf("NewFromBits: row %d: %w", i, err)
		}
		m.rows[i] = b.Clone()
	}

	return m, nil
}

// Reshape lays a flat vector of length rows*cols out row-major into a rows×cols matrix.
// It is the inverse of FlattenBits.
func Reshape(v *bitset.BitSet, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateVecLen(v, rows*cols); err != nil {
		return nil, matrixErrorf(opReshape, err)
	}
	m, _ := NewDense(rows, cols)
	for idx, ok := v.NextSet(0); ok; idx, ok = v.NextSet(idx + 1) {
		m.rows[int(idx)/cols].Set(idx % uint(cols))
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// checkIndex validates (row, col) against the shape.
func (m *Dense) checkIndex(row, col int) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the element at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (gf2.Element, error) {
	if err := m.checkIndex(row, col); err != nil {
		return gf2.Zero, denseErrorf(ctxAt, row, col, err)
	}

	return gf2.FromBool(m.rows[row].Test(uint(col))), nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v gf2.Element) error {
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.rows[row].SetTo(uint(col), v.Bool())

	return nil
}

// Toggle adds One to the element at (row, col).
func (m *Dense) Toggle(row, col int) error {
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxToggle, row, col, err)
	}
	m.rows[row].Flip(uint(col))

	return nil
}

// Clone returns a deep copy; mutations of the copy never reach m.
func (m *Dense) Clone() *Dense {
	data := make([]*bitset.BitSet, m.r)
	for i, row := range m.rows {
		data[i] = row.Clone()
	}

	return &Dense{r: m.r, c: m.c, rows: data}
}

// RowBits returns a copy of row i as a bitset of length Cols().
func (m *Dense) RowBits(i int) (*bitset.BitSet, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.rows[i].Clone(), nil
}

// Row returns a copy of row i as field elements.
func (m *Dense) Row(i int) ([]gf2.Element, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]gf2.Element, m.c)
	for j := range out {
		out[j] = gf2.FromBool(m.rows[i].Test(uint(j)))
	}

	return out, nil
}

// FlattenBits returns the row-major concatenation of all rows (length r*c).
func (m *Dense) FlattenBits() *bitset.BitSet {
	out := bitset.New(uint(m.r * m.c))
	var base uint
	for i, row := range m.rows {
		base = uint(i * m.c)
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out.Set(base + j)
		}
	}

	return out
}

// Flatten returns the row-major concatenation of all rows as field elements.
func (m *Dense) Flatten() []gf2.Element {
	out := make([]gf2.Element, 0, m.r*m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out = append(out, gf2.FromBool(m.rows[i].Test(uint(j))))
		}
	}

	return out
}

// ToRows exports the matrix as [][]uint8 with values 0 or 1.
func (m *Dense) ToRows() [][]uint8 {
	out := make([][]uint8, m.r)
	for i, row := range m.rows {
		out[i] = make([]uint8, m.c)
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			out[i][j] = 1
		}
	}

	return out
}

// Weight returns the number of One entries (the Hamming weight).
func (m *Dense) Weight() int {
	var w uint
	for _, row := range m.rows {
		w += row.Count()
	}

	return int(w)
}

// IsZero reports whether every entry is Zero.
func (m *Dense) IsZero() bool {
	for _, row := range m.rows {
		if row.Any() {
			return false
		}
	}

	return true
}

// Equal reports whether m and o have the same shape and entries. Nil equals only nil.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// String renders rows as "[0, 1, 0]" lines for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if m.rows[i].Test(uint(j)) {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
