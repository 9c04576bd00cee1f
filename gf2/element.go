// SPDX-License-Identifier: MIT

package gf2

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// Element is a member of GF(2). Valid values are Zero and One; constructors and
// arithmetic never produce anything else.
type Element uint8

const (
	// Zero is the additive identity.
	Zero Element = 0
	// One is the multiplicative identity.
	One Element = 1
)

// New reduces any integer to its residue mod 2.
// Negative values reduce too: New(-1) == One.
func New[T constraints.Integer](v T) Element {
	return Element(v & 1)
}

// FromBool maps false to Zero and true to One.
func FromBool(b bool) Element {
	if b {
		return One
	}

	return Zero
}

// Add returns a + b (XOR).
func Add(a, b Element) Element { return (a ^ b) & 1 }

// Sub returns a - b. In characteristic 2 it is the same as Add.
func Sub(a, b Element) Element { return (a ^ b) & 1 }

// Mul returns a · b (AND).
func Mul(a, b Element) Element { return a & b & 1 }

// Div returns a / b.
// The only invertible element is One, so Div(a, One) == a and Div(a, Zero)
// fails with ErrDivisionByZero. No value is produced on failure.
func Div(a, b Element) (Element, error) {
	if b&1 == 0 {
		return Zero, ErrDivisionByZero
	}

	return a & 1, nil
}

// Inv returns the multiplicative inverse of a, i.e. Div(One, a).
func Inv(a Element) (Element, error) { return Div(One, a) }

// Neg returns the additive inverse of a, which is a itself.
func Neg(a Element) Element { return a & 1 }

// Less reports whether a < b on the reduced values.
func Less(a, b Element) bool { return a&1 < b&1 }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e&1 == 0 }

// Int returns e as a plain int (0 or 1).
func (e Element) Int() int { return int(e & 1) }

// Bool returns true for One.
func (e Element) Bool() bool { return e&1 == 1 }

// String renders "0" or "1".
func (e Element) String() string { return strconv.Itoa(e.Int()) }
