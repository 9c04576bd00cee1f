// SPDX-License-Identifier: MIT

package board

import "errors"

var (
	// ErrDecode indicates malformed board text.
	ErrDecode = errors.New("board: cannot decode")

	// ErrSize indicates a non-positive board side.
	ErrSize = errors.New("board: size must be > 0")

	// ErrCell indicates a cell coordinate outside the board.
	ErrCell = errors.New("board: cell out of range")
)
