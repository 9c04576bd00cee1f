// SPDX-License-Identifier: MIT

package board

import (
	"fmt"
	"math"
)

// Decode parses a row-major string of '0'/'1' cells into a square board.
// When invert is true every cell is flipped after parsing.
//
// Errors: ErrDecode for empty text, a length that is not a perfect square,
// or any other character.
func Decode(text string, invert bool) (*Board, error) {
	n, ok := side(len(text))
	if !ok {
		return nil, fmt.Errorf("%w: length %d is not a positive perfect square", ErrDecode, len(text))
	}

	b, _ := New(n)
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
		case '1':
			b.cells.Set(uint(i))
		default:
			return nil, fmt.Errorf("%w: character %q at offset %d", ErrDecode, text[i], i)
		}
	}
	if invert {
		b.Invert()
	}

	return b, nil
}

// side returns n with n*n == length, or false when length is not a positive square.
func side(length int) (int, bool) {
	if length <= 0 {
		return 0, false
	}
	n := int(math.Sqrt(float64(length)))
	for n*n > length {
		n--
	}
	for (n+1)*(n+1) <= length {
		n++
	}

	return n, n*n == length
}
