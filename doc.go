// Package lightsout is a solver for Lights Out on n×n grids, built on linear algebra
// over GF(2).
//
// 🚀 What is in the box?
//
//	Pressing a cell flips it and its neighbours. A press pattern x turns a board b off
//	exactly when A·x = b over GF(2), where A is the n²×n² toggle operator. The module
//	builds A, inverts it (or extracts its null space when it is singular), decides
//	solvability and returns a press pattern with the fewest presses.
//
// ✨ Why it is fast enough
//
//   - Matrix rows are bit-packed, so elimination and products run on whole words.
//   - The inversion is done once per grid size and reused for every board.
//   - The minimum-weight search walks the 2^k null-space cosets in Gray-code order,
//     one XOR per step.
//
// Everything is organized under these subpackages:
//
//	gf2/           the two-element field: Add, Mul, Div, Inv
//	matrix/        dense GF(2) matrices, Gauss-Jordan, inverse + null space
//	gridgraph/     grid neighbourhoods and binary dilation
//	lightsout/     toggle operator, Solver (IsSolvable, Solve, Apply)
//	board/         the player's board and its '0'/'1' text encoding
//	cmd/lightsout/ command-line front end
//	examples/      runnable scenarios
//
// Quick ASCII example (3×3, pressing the center):
//
//	. # .
//	# # #
//	. # .
//
//	go install github.com/katalvlaran/lightsout/cmd/lightsout@latest
package lightsout
