// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the canonical kernel.
//   - Facades never change loop orders or validation of the underlying kernels.

package matrix

// NewZeros returns a new zero rows×cols matrix. Alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); m must be square.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// Product is an alias for Mul.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Dense) (*Dense, error) { return Transpose(m) }

// MatVecMul is MulVec on []bool vectors, for callers that do not hold bitsets.
func MatVecMul(m *Dense, x []bool) ([]bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMulVec, ErrDimensionMismatch)
	}
	y, err := MulVec(m, boolsToBits(x))
	if err != nil {
		return nil, err
	}

	return bitsToBools(y, m.r), nil
}
