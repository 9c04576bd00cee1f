// SPDX-License-Identifier: MIT
// Package: matrix
//
// Inversion with null-space extraction.
//
// Purpose:
//   - Invert a square GF(2) matrix through Gauss-Jordan on [A | I].
//   - When A is singular, still return a partial inverse that generates a particular
//     solution x = P·b for every b in the column space, plus an ordered null-space basis.
//
// Null basis layout:
//   - One basis vector per free column f, in ascending order of f: v[f] = 1 and
//     v[PivotCols[r]] = R[r][f]. When the free columns are the trailing k columns this is
//     the left block's last k columns with the final k rows set to the identity, transposed.

package matrix

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// InverseWithNullSpace returns (P, N) for a square matrix A.
//   - nullity 0: P is A⁻¹ and N is an empty 0×n matrix.
//   - nullity k>0: P is a partial inverse (row PivotCols[r] holds row r of the reduced
//     right block; other rows are zero) and N is k×n whose rows are the null basis.
//
// Every row v of N satisfies A·v = 0; this is checked before returning.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ErrNullSpaceInvariant on a failed post-check.
//
// Complexity:
//   - Time O(n³/64), Space O(n²/64).
func InverseWithNullSpace(a *Dense) (*Dense, *Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}
	n := a.r

	I, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}
	aug, err := Augment(a, I)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}
	el, err := GaussJordan(aug, n)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}

	right, err := Slice(el.Reduced, 0, n, n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}

	var inv *Dense
	if el.Nullity == 0 {
		inv = right
	} else {
		inv, _ = NewDense(n, n)
		for r, col := range el.PivotCols {
			inv.rows[col] = right.rows[r].Clone()
		}
	}

	nulls, err := nullBasis(el, n)
	if err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}
	if err = checkAnnihilated(a, nulls); err != nil {
		return nil, nil, matrixErrorf(opNullSpace, err)
	}

	return inv, nulls, nil
}

// nullBasis assembles one vector per free column from the reduced left block.
func nullBasis(el *Elimination, n int) (*Dense, error) {
	basis := make([]*bitset.BitSet, 0, el.Nullity)
	for _, f := range el.FreeCols {
		v := bitset.New(uint(n))
		v.Set(uint(f))
		for r, col := range el.PivotCols {
			if el.Reduced.rows[r].Test(uint(f)) {
				v.Set(uint(col))
			}
		}
		basis = append(basis, v)
	}

	return NewFromBits(basis, n)
}

// checkAnnihilated verifies A·v = 0 for every row v of nulls.
func checkAnnihilated(a, nulls *Dense) error {
	for i, v := range nulls.rows {
		y, err := MulVec(a, v)
		if err != nil {
			return err
		}
		if y.Any() {
			return fmt.Errorf("basis vector %d: %w", i, ErrNullSpaceInvariant)
		}
	}

	return nil
}

// Inverse returns A⁻¹, or ErrSingular when A has a non-trivial null space.
// Complexity: O(n³/64).
func Inverse(a *Dense) (*Dense, error) {
	inv, nulls, err := InverseWithNullSpace(a)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if nulls.Rows() > 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("nullity %d: %w", nulls.Rows(), ErrSingular))
	}

	return inv, nil
}

// NullSpace returns the ordered null-space basis of a square matrix as rows of a k×n matrix.
func NullSpace(a *Dense) (*Dense, error) {
	_, nulls, err := InverseWithNullSpace(a)
	if err != nil {
		return nil, err
	}

	return nulls, nil
}

// Rank returns the rank of any non-nil matrix.
// Complexity: O(min(r,c)·r·c/64).
func Rank(m *Dense) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	el, err := GaussJordan(m, m.Cols())
	if err != nil {
		return 0, err
	}

	return el.Rank, nil
}
