// SPDX-License-Identifier: MIT

// Package board holds the n×n on/off grid a player sees and decodes it from the
// flat bit strings the front end submits.
//
// What:
//
//   - Board is a square grid of n² cells addressed by (row, col), stored row-major.
//   - Decode parses a string of '0'/'1' characters whose length is a perfect square.
//     With invert set, every decoded bit is flipped: the front end marks cells that
//     are already on, while the solver expects the lit cells to turn off.
//   - ToMatrix and FromMatrix convert to and from the GF(2) matrices the solver uses.
//
// Errors:
//
//   - ErrDecode: empty input, a length that is not a perfect square, or a character
//     other than '0' and '1'.
//   - ErrSize: a non-positive side in New.
//   - ErrCell: a (row, col) outside the grid.
package board
