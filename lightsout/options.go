// SPDX-License-Identifier: MIT
// Package: lightsout
//
// options.go: functional options for NewSolver.
//
// Contract:
//   • Options are functional (type Option func(*solverConfig)).
//   • Option constructors validate and PANIC on meaningless inputs;
//     NewSolver itself never panics.
//   • Later options override earlier ones.

package lightsout

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lightsout/gridgraph"
)

// Option customizes a Solver before its operator is built.
type Option func(*solverConfig)

// WithLogger routes construction and solve diagnostics to l.
// The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(c *solverConfig) {
		c.logger = l
	}
}

// WithConnectivity selects which neighbours a press toggles.
// Conn4 (default) is classic Lights Out; Conn8 also toggles the diagonals.
// Panics on an unknown value.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	if conn != gridgraph.Conn4 && conn != gridgraph.Conn8 {
		panic(fmt.Sprintf("lightsout: WithConnectivity(%d)", int(conn)))
	}
	return func(c *solverConfig) {
		c.conn = conn
	}
}

// WithMaxNullity bounds the null-space dimension NewSolver accepts; Solve enumerates
// 2^k candidates. Panics unless 0 <= k <= MaxSupportedNullity.
func WithMaxNullity(k int) Option {
	if k < 0 || k > MaxSupportedNullity {
		panic(fmt.Sprintf("lightsout: WithMaxNullity(%d) outside [0,%d]", k, MaxSupportedNullity))
	}
	return func(c *solverConfig) {
		c.maxNullity = k
	}
}
