// SPDX-License-Identifier: MIT
// Package: matrix
//
// Gauss-Jordan elimination over GF(2).
//
// Purpose:
//   - Reduce the leading pivotCols columns of a (usually augmented) matrix to
//     reduced row-echelon form and report rank, nullity, pivot and free columns.
//
// Pivoting:
//   - GF(2) has no magnitudes, so any row holding a 1 in the current column is an
//     equally valid pivot; the first one found (lowest row index) is taken.
//   - A column without a pivot is recorded as free and the scan continues with the
//     same pivot row. When the free columns are the trailing ones this is exactly
//     "stop at the first pivot-free column, nullity = rows − i".
//
// Determinism:
//   - Fixed column order, first-match pivot search, fixed row sweep.

package matrix

import (
	"github.com/katalvlaran/lightsout/gf2"
)

// Elimination is the outcome of GaussJordan.
type Elimination struct {
	// Reduced is the reduced copy of the input; the input itself is untouched.
	Reduced *Dense
	// Rank is the number of pivots found among the eliminated columns.
	Rank int
	// Nullity is pivotCols − Rank, the dimension of the null space of the eliminated block.
	Nullity int
	// PivotCols[r] is the column whose pivot ended up in row r (ascending).
	PivotCols []int
	// FreeCols lists the eliminated columns that have no pivot (ascending).
	FreeCols []int
}

// GaussJordan reduces the first pivotCols columns of aug over GF(2).
//
// Implementation:
//   - Stage 1: validate; clone aug so the caller's matrix is not mutated.
//   - Stage 2: for each column i < pivotCols, search rows rank..r-1 for a 1.
//   - Stage 3: none found → column is free. Otherwise swap that row into position rank,
//     normalize it by its pivot (gf2.Div) and XOR it into every other row with a 1 in column i.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when pivotCols is outside [0, Cols()].
//   - gf2.ErrDivisionByZero if a zero pivot ever reaches normalization (a defect).
//
// Complexity:
//   - Time O(min(r, pivotCols) · r · c/64), Space O(r*c/64).
func GaussJordan(aug *Dense, pivotCols int) (*Elimination, error) {
	if err := ValidateNotNil(aug); err != nil {
		return nil, matrixErrorf(opGaussJ, err)
	}
	if pivotCols < 0 || pivotCols > aug.c {
		return nil, matrixErrorf(opGaussJ, ErrOutOfRange)
	}

	a := aug.Clone()
	res := &Elimination{
		Reduced:   a,
		PivotCols: make([]int, 0, pivotCols),
	}

	var (
		rank  int // next pivot row
		p     int // candidate pivot row
		found bool
	)
	for col := 0; col < pivotCols; col++ {
		found = false
		for p = rank; p < a.r; p++ {
			if a.rows[p].Test(uint(col)) {
				found = true
				break
			}
		}
		if !found {
			res.FreeCols = append(res.FreeCols, col)
			continue
		}

		a.rows[rank], a.rows[p] = a.rows[p], a.rows[rank]
		if err := normalizeRow(a, rank, col); err != nil {
			return nil, matrixErrorf(opGaussJ, err)
		}

		pivot := a.rows[rank]
		for k := 0; k < a.r; k++ {
			if k != rank && a.rows[k].Test(uint(col)) {
				a.rows[k].InPlaceSymmetricDifference(pivot)
			}
		}
		res.PivotCols = append(res.PivotCols, col)
		rank++
	}

	res.Rank = rank
	res.Nullity = pivotCols - rank

	return res, nil
}

// normalizeRow divides row r by its entry in column col.
// The only legal divisor over GF(2) is One, which leaves the row unchanged;
// a zero pivot yields gf2.ErrDivisionByZero.
func normalizeRow(a *Dense, r, col int) error {
	pivot := gf2.FromBool(a.rows[r].Test(uint(col)))
	if _, err := gf2.Div(gf2.One, pivot); err != nil {
		return denseErrorf("normalize", r, col, err)
	}

	return nil
}
