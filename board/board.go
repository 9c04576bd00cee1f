// SPDX-License-Identifier: MIT

package board

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lightsout/matrix"
)

const (
	onGlyph  = '#'
	offGlyph = '.'
)

// Board is an n×n grid of on/off cells.
type Board struct {
	n     int
	cells *bitset.BitSet // row-major, length n²
}

// New returns an all-off n×n board.
func New(n int) (*Board, error) {
	if n <= 0 {
		return nil, ErrSize
	}

	return &Board{n: n, cells: bitset.New(uint(n * n))}, nil
}

// FromMatrix copies a square GF(2) matrix into a board.
func FromMatrix(m *matrix.Dense) (*Board, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return &Board{n: m.Rows(), cells: m.FlattenBits()}, nil
}

// Size returns the side n.
func (b *Board) Size() int { return b.n }

func (b *Board) index(row, col int) (uint, error) {
	if row < 0 || row >= b.n || col < 0 || col >= b.n {
		return 0, fmt.Errorf("(%d,%d) on %dx%d: %w", row, col, b.n, b.n, ErrCell)
	}

	return uint(row*b.n + col), nil
}

// At reports whether cell (row, col) is on.
func (b *Board) At(row, col int) (bool, error) {
	i, err := b.index(row, col)
	if err != nil {
		return false, err
	}

	return b.cells.Test(i), nil
}

// Set turns cell (row, col) on or off.
func (b *Board) Set(row, col int, on bool) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	b.cells.SetTo(i, on)

	return nil
}

// Toggle flips cell (row, col).
func (b *Board) Toggle(row, col int) error {
	i, err := b.index(row, col)
	if err != nil {
		return err
	}
	b.cells.Flip(i)

	return nil
}

// Invert flips every cell.
func (b *Board) Invert() {
	b.cells.FlipRange(0, uint(b.n*b.n))
}

// Count returns the number of lit cells.
func (b *Board) Count() int { return int(b.cells.Count()) }

// Encode returns the row-major '0'/'1' string that Decode(_, false) accepts.
func (b *Board) Encode() string {
	out := make([]byte, b.n*b.n)
	for i := range out {
		out[i] = '0'
		if b.cells.Test(uint(i)) {
			out[i] = '1'
		}
	}

	return string(out)
}

// ToMatrix returns the board as an n×n GF(2) matrix.
func (b *Board) ToMatrix() *matrix.Dense {
	m, _ := matrix.Reshape(b.cells, b.n, b.n)

	return m
}

// String draws the board one row per line, '#' for on and '.' for off.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(b.n * (b.n + 1))
	for i := 0; i < b.n*b.n; i++ {
		if b.cells.Test(uint(i)) {
			sb.WriteByte(onGlyph)
		} else {
			sb.WriteByte(offGlyph)
		}
		if (i+1)%b.n == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
