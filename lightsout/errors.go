// SPDX-License-Identifier: MIT

package lightsout

import "errors"

var (
	// ErrInvalidSize indicates a non-positive grid size.
	ErrInvalidSize = errors.New("lightsout: grid size must be > 0")

	// ErrShape indicates a board (or press matrix) that is not n×n for the solver's n.
	ErrShape = errors.New("lightsout: board shape does not match solver size")

	// ErrUnsolvable indicates that no press pattern produces the board.
	ErrUnsolvable = errors.New("lightsout: board is not solvable")

	// ErrNullityTooLarge indicates that 2^nullity candidates exceed the configured search bound.
	ErrNullityTooLarge = errors.New("lightsout: nullity exceeds search limit")
)
