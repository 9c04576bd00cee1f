// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Lift the scalar field operations of gf2 to whole matrices, element by element.
//   - One private kernel (ewBinary) owns the loop; public functions only choose the row op.
//
// Determinism & Performance:
//   - Fixed row order; each row is a single word-wise pass over the bitset.
//   - One output allocation; operands are never mutated.

package matrix

import "github.com/bits-and-blooms/bitset"

// rowOp combines two rows of equal length into a fresh row.
type rowOp func(a, b *bitset.BitSet) *bitset.BitSet

var (
	xorRows rowOp = func(a, b *bitset.BitSet) *bitset.BitSet { return a.SymmetricDifference(b) }
	andRows rowOp = func(a, b *bitset.BitSet) *bitset.BitSet { return a.Intersection(b) }
)

// ewBinary applies op row-by-row to two same-shape matrices.
// Time: O(r*c/64). Space: O(r*c/64).
func ewBinary(tag string, a, b *Dense, op rowOp) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := &Dense{r: a.r, c: a.c, rows: make([]*bitset.BitSet, a.r)}
	for i := 0; i < a.r; i++ {
		out.rows[i] = op(a.rows[i], b.rows[i])
	}

	return out, nil
}

// Add returns a + b element-wise (XOR).
func Add(a, b *Dense) (*Dense, error) { return ewBinary(opAdd, a, b, xorRows) }

// Sub returns a − b element-wise. Over GF(2) it equals Add.
func Sub(a, b *Dense) (*Dense, error) { return ewBinary(opSub, a, b, xorRows) }

// Hadamard returns a ⊙ b element-wise (AND).
func Hadamard(a, b *Dense) (*Dense, error) { return ewBinary(opHadamard, a, b, andRows) }

// Complement returns J + m, i.e. every entry flipped.
func Complement(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opComplement, err)
	}
	out := m.Clone()
	for _, row := range out.rows {
		row.FlipRange(0, uint(out.c))
	}

	return out, nil
}
