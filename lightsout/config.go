// SPDX-License-Identifier: MIT
// Package: lightsout
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • logger      = zerolog.Nop()
//   • conn        = gridgraph.Conn4
//   • maxNullity  = DefaultMaxNullity
//   • warnNullity = 16 (a Warn line is logged at or above it)

package lightsout

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lightsout/gridgraph"
)

const (
	// DefaultMaxNullity is the default bound on the null-space dimension (2^24 candidates).
	DefaultMaxNullity = 24

	// MaxSupportedNullity is the hard bound: subsets are tracked as uint64 bitmasks.
	MaxSupportedNullity = 63

	defaultWarnNullity = 16
)

// solverConfig aggregates all knobs used by NewSolver.
type solverConfig struct {
	logger      zerolog.Logger
	conn        gridgraph.Connectivity
	maxNullity  int
	warnNullity int
}

// newSolverConfig applies opts in order over the defaults.
func newSolverConfig(opts ...Option) solverConfig {
	cfg := solverConfig{
		logger:      zerolog.Nop(),
		conn:        gridgraph.Conn4,
		maxNullity:  DefaultMaxNullity,
		warnNullity: defaultWarnNullity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
