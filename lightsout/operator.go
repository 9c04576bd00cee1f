// SPDX-License-Identifier: MIT

package lightsout

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lightsout/gridgraph"
	"github.com/katalvlaran/lightsout/matrix"
)

// BuildOperator returns the n²×n² toggle operator for an n×n grid.
//
// Row i is obtained by reshaping the basis vector e_i to n×n, dilating it with the
// structuring element of conn, and flattening back; entry (i,j) is 1 iff pressing
// cell i toggles cell j. The structuring element is point-symmetric, so the result
// is symmetric.
//
// Complexity: O(n²·n²/64) memory, O(n²·d) time.
func BuildOperator(n int, conn gridgraph.Connectivity) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	gg, err := gridgraph.NewSquare(n, conn)
	if err != nil {
		return nil, fmt.Errorf("BuildOperator: %w", err)
	}

	cells := gg.Cells()
	rows := make([]*bitset.BitSet, cells)
	unit := make([]bool, cells)
	for i := 0; i < cells; i++ {
		unit[i] = true
		toggled, err := gg.Dilate(unit)
		if err != nil {
			return nil, fmt.Errorf("BuildOperator: cell %d: %w", i, err)
		}
		unit[i] = false
		rows[i] = matrix.VectorFromBools(toggled)
	}

	return matrix.NewFromBits(rows, cells)
}
