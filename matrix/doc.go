// SPDX-License-Identifier: MIT

// Package matrix provides dense matrices over GF(2) and the linear algebra needed to
// invert them or describe their null space.
//
// The matrix package provides:
//
//   - Dense, a fixed-shape row-major matrix whose rows are bit-packed into machine
//     words (github.com/bits-and-blooms/bitset), so whole-row field operations are
//     native XOR/AND and weights are popcounts.
//   - Element-wise lifts of the field (Add, Sub, Hadamard) and the mod-2 products
//     (Mul, MulVec, Dot), plus Transpose, Augment and Slice.
//   - GaussJordan, a reduction over GF(2) reporting rank, nullity, pivot and free columns.
//   - InverseWithNullSpace, returning an inverse (or a partial inverse usable as a
//     particular-solution generator) together with an ordered null-space basis.
//
// Shapes are validated at every entry point; failures are the sentinels in errors.go
// wrapped with the operation tag, so callers match them with errors.Is.
//
// Complexity: Gauss-Jordan on an r×c matrix costs O(r·r·c/64) word operations.
package matrix
