// SPDX-License-Identifier: MIT

package lightsout

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lightsout/gridgraph"
	"github.com/katalvlaran/lightsout/matrix"
)

// Solver answers solvability and minimum-weight solutions for one grid size.
// All fields are written by NewSolver only.
type Solver struct {
	n    int
	conn gridgraph.Connectivity

	operator  *matrix.Dense    // n²×n² toggle operator A
	inverse   *matrix.Dense    // A⁻¹, or a partial inverse when A is singular
	nullSpace *matrix.Dense    // k×n² null basis (rows)
	nulls     []*bitset.BitSet // rows of nullSpace, cached for the search
	rank      int

	log zerolog.Logger
}

// NewSolver builds the operator for an n×n grid, inverts it and extracts its null space.
//
// Errors:
//   - ErrInvalidSize for n <= 0.
//   - ErrNullityTooLarge when the null space is larger than WithMaxNullity allows.
//   - matrix errors on an internal defect (asymmetric operator, failed null-space check).
func NewSolver(n int, opts ...Option) (*Solver, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}
	cfg := newSolverConfig(opts...)
	log := cfg.logger.With().Int("size", n).Stringer("conn", cfg.conn).Logger()

	op, err := BuildOperator(n, cfg.conn)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateSymmetric(op); err != nil {
		return nil, fmt.Errorf("NewSolver: toggle operator: %w", err)
	}

	inv, nullSpace, err := matrix.InverseWithNullSpace(op)
	if err != nil {
		return nil, fmt.Errorf("NewSolver: %w", err)
	}

	k := nullSpace.Rows()
	if k > cfg.maxNullity {
		log.Error().Int("nullity", k).Int("max_nullity", cfg.maxNullity).Msg("null space too large for exhaustive search")
		return nil, fmt.Errorf("NewSolver(%d): nullity %d > %d: %w", n, k, cfg.maxNullity, ErrNullityTooLarge)
	}
	if k >= cfg.warnNullity {
		log.Warn().Int("nullity", k).Uint64("candidates", uint64(1)<<k).Msg("minimum-weight search is exponential in nullity")
	}

	nulls := make([]*bitset.BitSet, k)
	for i := range nulls {
		nulls[i], _ = nullSpace.RowBits(i)
	}

	s := &Solver{
		n:         n,
		conn:      cfg.conn,
		operator:  op,
		inverse:   inv,
		nullSpace: nullSpace,
		nulls:     nulls,
		rank:      n*n - k,
		log:       log,
	}
	log.Debug().Int("rank", s.rank).Int("nullity", k).Msg("toggle operator inverted")

	return s, nil
}

// Size returns the grid side n.
func (s *Solver) Size() int { return s.n }

// Connectivity returns the neighbourhood a press toggles.
func (s *Solver) Connectivity() gridgraph.Connectivity { return s.conn }

// Nullity returns the dimension of the operator's null space.
func (s *Solver) Nullity() int { return len(s.nulls) }

// Rank returns n² − Nullity().
func (s *Solver) Rank() int { return s.rank }

// Candidates returns 2^Nullity(), the number of solutions of every solvable board.
func (s *Solver) Candidates() uint64 { return uint64(1) << len(s.nulls) }

// Operator returns a copy of the toggle operator.
func (s *Solver) Operator() *matrix.Dense { return s.operator.Clone() }

// Inverse returns a copy of the (partial) inverse.
func (s *Solver) Inverse() *matrix.Dense { return s.inverse.Clone() }

// NullSpace returns a copy of the null basis, one vector per row (k×n²).
func (s *Solver) NullSpace() *matrix.Dense { return s.nullSpace.Clone() }

// flatten checks that board is n×n and returns it as a length-n² vector.
func (s *Solver) flatten(board *matrix.Dense) (*bitset.BitSet, error) {
	if err := matrix.ValidateShape(board, s.n, s.n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	}

	return board.FlattenBits(), nil
}

// solvable reports whether b is orthogonal to every null vector.
// The operator is symmetric, so its null space is also its left null space.
func (s *Solver) solvable(b *bitset.BitSet) bool {
	for _, v := range s.nulls {
		if v.IntersectionCardinality(b)&1 == 1 {
			return false
		}
	}

	return true
}

// IsSolvable reports whether some press pattern produces board.
// It fails with ErrShape unless board is n×n. With nullity 0 every board is solvable.
// Complexity: O(k·n²/64).
func (s *Solver) IsSolvable(board *matrix.Dense) (bool, error) {
	b, err := s.flatten(board)
	if err != nil {
		return false, err
	}

	return s.solvable(b), nil
}

// Solve returns a minimum-weight press pattern (n×n) that produces board.
//
// Errors:
//   - ErrShape unless board is n×n.
//   - ErrUnsolvable when IsSolvable is false; nothing partial is returned.
//
// Complexity: O(n⁴/64) for the particular solution plus O(2^k · n²/64) for the search.
func (s *Solver) Solve(board *matrix.Dense) (*matrix.Dense, error) {
	b, err := s.flatten(board)
	if err != nil {
		return nil, err
	}
	if !s.solvable(b) {
		return nil, ErrUnsolvable
	}

	particular, err := matrix.MulVec(s.inverse, b)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	best, mask := particular, uint64(0)
	if len(s.nulls) > 0 {
		best, mask = minimumWeight(particular, s.nulls)
	}
	s.log.Debug().
		Uint("presses", best.Count()).
		Uint64("subset", mask).
		Uint64("candidates", s.Candidates()).
		Msg("solved")

	return matrix.Reshape(best, s.n, s.n)
}

// Apply returns the board produced by pressing every cell set in presses (A·x).
// It fails with ErrShape unless presses is n×n.
func (s *Solver) Apply(presses *matrix.Dense) (*matrix.Dense, error) {
	x, err := s.flatten(presses)
	if err != nil {
		return nil, err
	}
	y, err := matrix.MulVec(s.operator, x)
	if err != nil {
		return nil, fmt.Errorf("Apply: %w", err)
	}

	return matrix.Reshape(y, s.n, s.n)
}
