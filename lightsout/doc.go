// SPDX-License-Identifier: MIT

// Package lightsout solves generalized Lights Out puzzles on an n×n grid.
//
// Pressing a cell toggles it and its neighbours. Over GF(2) this is the linear map
// x ↦ A·x where A, the toggle operator, is the n²×n² matrix whose row i is the
// closed neighbourhood of cell i. A board b is solvable iff b lies in the column
// space of A; every press pattern x with A·x = b is a solution.
//
// A Solver is built once per grid size:
//
//	BuildOperator (gridgraph dilation) → matrix.InverseWithNullSpace → Solver
//
// and then answers IsSolvable and Solve for any number of boards of that size.
// Operator, inverse and null-space basis never change after NewSolver returns, so a
// Solver may be shared by concurrent callers without locking.
//
// Minimum weight:
//
//	With nullity k there are 2^k solutions, particular ⊕ (any subset of the null basis).
//	Solve visits all of them in Gray-code order (one row XOR per step) and keeps the
//	one with the fewest presses. Ties go to the subset that comes first when subsets are
//	listed by size, then lexicographically by basis index; results are reproducible.
//	The cost is O(2^k · n²/64), exponential in k, so NewSolver refuses nullities above
//	WithMaxNullity (default 24). Standard (Conn4) grids stay small: k=4 at n=4, k=8 at n=9.
//
// Errors (match with errors.Is):
//
//	ErrInvalidSize     - grid size n <= 0.
//	ErrShape           - board is not n×n (also matches matrix.ErrDimensionMismatch).
//	ErrUnsolvable      - board is outside the column space; expected, user-facing.
//	ErrNullityTooLarge - the minimum-weight search would exceed the configured bound.
package lightsout
