// SPDX-License-Identifier: MIT

// Package gf2 implements scalar arithmetic over GF(2), the two-element field {0,1}.
//
// What:
//
//   - Element is a plain value type holding 0 or 1.
//   - Add and Sub are XOR, Mul is AND; they coincide with integer arithmetic mod 2.
//   - Div is defined only for a divisor of 1 and fails with ErrDivisionByZero otherwise.
//
// Why:
//
//   - Gauss-Jordan elimination over GF(2) needs an explicit field contract so that a
//     mis-chosen (zero) pivot surfaces as an error instead of a silent value.
//
// Comparisons against raw integers work directly: Element is an unsigned integer
// type, so e == 1 and e < 1 behave as on the reduced value.
//
// Complexity: every operation is O(1) and allocation-free.
package gf2
