// SPDX-License-Identifier: MIT

package gf2

import "errors"

// ErrDivisionByZero is returned by Div and Inv when the divisor is 0.
// Seeing it from elimination code means a zero pivot was used, which is a defect.
var ErrDivisionByZero = errors.New("gf2: division by zero")
