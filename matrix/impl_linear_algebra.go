// SPDX-License-Identifier: MIT
// Package matrix provides the mod-2 linear-algebra kernels: product, matrix-vector
// product, dot product, transpose and block operations.
//
// Purpose:
//   - Define operation tags for uniform error reporting.
//   - Express every product as row XORs and AND-popcounts on bit-packed rows.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lightsout/gf2"
)

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opHadamard   = "Hadamard"
	opComplement = "Complement"
	opMul        = "Mul"
	opMulVec     = "MulVec"
	opDot        = "Dot"
	opTranspose  = "Transpose"
	opAugment    = "Augment"
	opSlice      = "Slice"
	opReshape    = "Reshape"
	opIdentity   = "NewIdentity"
	opGaussJ     = "GaussJordan"
	opInverse    = "Inverse"
	opNullSpace  = "InverseWithNullSpace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// NewIdentity returns I_n.
// Complexity: O(n²/64) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.rows[i].Set(uint(i))
	}

	return I, nil
}

// Mul returns the product a×b mod 2.
// Row i of the result is the XOR of the rows of b selected by the set bits of row i of a.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c/64), Space O(r*c/64).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := newDenseZeroOK(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i, row := range a.rows {
		acc := res.rows[i]
		for k, ok := row.NextSet(0); ok; k, ok = row.NextSet(k + 1) {
			acc.InPlaceSymmetricDifference(b.rows[k])
		}
	}

	return res, nil
}

// MulVec returns y = m·x mod 2, where x has length Cols() and y has length Rows().
// y[i] is the parity of popcount(row_i AND x).
// Complexity: O(r*c/64).
func MulVec(m *Dense, x *bitset.BitSet) (*bitset.BitSet, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	y := bitset.New(uint(m.r))
	for i, row := range m.rows {
		if row.IntersectionCardinality(x)&1 == 1 {
			y.Set(uint(i))
		}
	}

	return y, nil
}

// Dot returns the mod-2 inner product of two vectors of equal length.
// Complexity: O(n/64).
func Dot(x, y *bitset.BitSet) (gf2.Element, error) {
	if x == nil || y == nil {
		return gf2.Zero, matrixErrorf(opDot, ErrNilMatrix)
	}
	if x.Len() != y.Len() {
		return gf2.Zero, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	return gf2.New(x.IntersectionCardinality(y)), nil
}

// Transpose returns mᵀ. The original matrix is never mutated.
// Complexity: O(r*c) in the worst case, O(nnz) for sparse rows.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	t, err := newDenseZeroOK(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i, row := range m.rows {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			t.rows[j].Set(uint(i))
		}
	}

	return t, nil
}

// Augment returns the horizontal concatenation [a | b].
// Both operands must have the same number of rows.
// Complexity: O(r*(ca+cb)).
func Augment(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAugment, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opAugment, ErrDimensionMismatch)
	}
	out, err := newDenseZeroOK(a.r, a.c+b.c)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	shift := uint(a.c)
	for i := 0; i < a.r; i++ {
		dst := out.rows[i]
		for j, ok := a.rows[i].NextSet(0); ok; j, ok = a.rows[i].NextSet(j + 1) {
			dst.Set(j)
		}
		for j, ok := b.rows[i].NextSet(0); ok; j, ok = b.rows[i].NextSet(j + 1) {
			dst.Set(shift + j)
		}
	}

	return out, nil
}

// Slice copies the h×w block whose top-left corner is (r0, c0).
// h may be 0, yielding an empty 0×w matrix.
// Complexity: O(h*w).
func Slice(m *Dense, r0, c0, h, w int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	if r0 < 0 || c0 < 0 || h < 0 || w < 0 || r0+h > m.r || c0+w > m.c {
		return nil, matrixErrorf(opSlice, ErrOutOfRange)
	}
	out, err := newDenseZeroOK(h, w)
	if err != nil {
		return nil, matrixErrorf(opSlice, err)
	}
	lo, hi := uint(c0), uint(c0+w)
	for i := 0; i < h; i++ {
		src := m.rows[r0+i]
		for j, ok := src.NextSet(lo); ok && j < hi; j, ok = src.NextSet(j + 1) {
			out.rows[i].Set(j - lo)
		}
	}

	return out, nil
}
