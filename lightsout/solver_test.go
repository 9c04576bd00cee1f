// SPDX-License-Identifier: MIT

package lightsout_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout/gridgraph"
	"github.com/katalvlaran/lightsout/lightsout"
	"github.com/katalvlaran/lightsout/matrix"
)

func mustSolver(t testing.TB, n int, opts ...lightsout.Option) *lightsout.Solver {
	t.Helper()
	s, err := lightsout.NewSolver(n, opts...)
	require.NoError(t, err)

	return s
}

func mustBoard(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func filled(n, v int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			rows[i][j] = v
		}
	}

	return rows
}

func requireRows(t testing.TB, want [][]uint8, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, got.ToRows()); diff != "" {
		t.Fatalf("press matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSolver_InvalidSize(t *testing.T) {
	_, err := lightsout.NewSolver(0)
	require.ErrorIs(t, err, lightsout.ErrInvalidSize)
	_, err = lightsout.NewSolver(-3)
	require.ErrorIs(t, err, lightsout.ErrInvalidSize)
}

// TestNewSolver_Nullity pins the null-space dimension of classic Lights Out.
func TestNewSolver_Nullity(t *testing.T) {
	want := map[int]int{1: 0, 2: 0, 3: 0, 4: 4, 5: 2, 6: 0, 7: 0, 8: 0, 9: 8, 10: 0}
	for n, k := range want {
		s := mustSolver(t, n)
		require.Equal(t, k, s.Nullity(), "n=%d", n)
		require.Equal(t, n*n-k, s.Rank(), "n=%d", n)
		require.Equal(t, uint64(1)<<k, s.Candidates())
		require.Equal(t, n, s.Size())
		require.Equal(t, gridgraph.Conn4, s.Connectivity())
	}
}

func TestNewSolver_NullSpaceAnnihilated(t *testing.T) {
	for _, n := range []int{4, 5, 9} {
		s := mustSolver(t, n)
		nt, err := matrix.Transpose(s.NullSpace())
		require.NoError(t, err)
		z, err := matrix.Mul(s.Operator(), nt)
		require.NoError(t, err)
		require.True(t, z.IsZero(), "n=%d", n)
	}
}

func TestNewSolver_NullSpace5x5(t *testing.T) {
	s := mustSolver(t, 5)
	require.Equal(t, [][]uint8{
		{0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1, 1, 1, 0},
		{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1},
	}, s.NullSpace().ToRows())
}

func TestNewSolver_InverseIsExactWhenRegular(t *testing.T) {
	s := mustSolver(t, 3)
	prod, err := matrix.Mul(s.Operator(), s.Inverse())
	require.NoError(t, err)
	I, err := matrix.NewIdentity(9)
	require.NoError(t, err)
	require.True(t, prod.Equal(I))
}

func TestNewSolver_MaxNullity(t *testing.T) {
	_, err := lightsout.NewSolver(4, lightsout.WithMaxNullity(3))
	require.ErrorIs(t, err, lightsout.ErrNullityTooLarge)

	s, err := lightsout.NewSolver(4, lightsout.WithMaxNullity(4))
	require.NoError(t, err)
	require.Equal(t, 4, s.Nullity())

	// size 3 is regular, so even a zero bound is fine
	_, err = lightsout.NewSolver(3, lightsout.WithMaxNullity(0))
	require.NoError(t, err)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { lightsout.WithMaxNullity(-1) })
	require.Panics(t, func() { lightsout.WithMaxNullity(lightsout.MaxSupportedNullity + 1) })
	require.Panics(t, func() { lightsout.WithConnectivity(gridgraph.Connectivity(3)) })
}

func TestSolve_ZeroBoard(t *testing.T) {
	for n := 1; n <= 9; n++ {
		s := mustSolver(t, n)
		board := mustBoard(t, filled(n, 0))
		ok, err := s.IsSolvable(board)
		require.NoError(t, err)
		require.True(t, ok)

		x, err := s.Solve(board)
		require.NoError(t, err)
		require.True(t, x.IsZero(), "n=%d", n)
	}
}

func TestSolve_CenterCell3x3(t *testing.T) {
	s := mustSolver(t, 3)
	board := mustBoard(t, [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	x, err := s.Solve(board)
	require.NoError(t, err)
	requireRows(t, [][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	}, x)

	back, err := s.Apply(x)
	require.NoError(t, err)
	require.True(t, back.Equal(board))
}

func TestSolve_AllOn3x3(t *testing.T) {
	s := mustSolver(t, 3)
	x, err := s.Solve(mustBoard(t, filled(3, 1)))
	require.NoError(t, err)
	requireRows(t, [][]uint8{{1, 0, 1}, {0, 1, 0}, {1, 0, 1}}, x)
}

func TestSolve_Fixtures(t *testing.T) {
	cases := []struct {
		name  string
		board [][]int
		want  [][]uint8
	}{
		{
			name:  "4x4 all on, tie resolved to second basis vector",
			board: filled(4, 1),
			want:  [][]uint8{{0, 0, 1, 0}, {1, 0, 0, 0}, {0, 0, 0, 1}, {0, 1, 0, 0}},
		},
		{
			name:  "4x4 center block, tie resolved to the particular solution",
			board: [][]int{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}},
			want:  [][]uint8{{1, 1, 1, 1}, {0, 1, 1, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		},
		{
			name:  "5x5 all on",
			board: filled(5, 1),
			want: [][]uint8{
				{0, 1, 1, 0, 1},
				{0, 1, 1, 1, 0},
				{0, 0, 1, 1, 1},
				{1, 1, 0, 1, 1},
				{1, 1, 0, 0, 0},
			},
		},
		{
			name:  "2x2 corner",
			board: [][]int{{1, 0}, {0, 0}},
			want:  [][]uint8{{1, 1}, {1, 0}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := mustSolver(t, len(tc.board))
			x, err := s.Solve(mustBoard(t, tc.board))
			require.NoError(t, err)
			requireRows(t, tc.want, x)
		})
	}
}

func TestSolve_Unsolvable(t *testing.T) {
	for _, n := range []int{4, 5} {
		s := mustSolver(t, n)
		rows := filled(n, 0)
		rows[0][0] = 1
		board := mustBoard(t, rows)

		ok, err := s.IsSolvable(board)
		require.NoError(t, err)
		require.False(t, ok)

		x, err := s.Solve(board)
		require.ErrorIs(t, err, lightsout.ErrUnsolvable)
		require.Nil(t, x)
	}
}

func TestSolve_ShapeErrors(t *testing.T) {
	s := mustSolver(t, 3)
	for _, board := range []*matrix.Dense{
		mustBoard(t, filled(4, 0)),
		mustBoard(t, [][]int{{0, 1}, {1, 0}, {0, 0}}),
		nil,
	} {
		_, err := s.Solve(board)
		require.ErrorIs(t, err, lightsout.ErrShape)
		_, err = s.IsSolvable(board)
		require.ErrorIs(t, err, lightsout.ErrShape)
		_, err = s.Apply(board)
		require.ErrorIs(t, err, lightsout.ErrShape)
	}

	_, err := s.Solve(mustBoard(t, filled(2, 0)))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_Conn8(t *testing.T) {
	s := mustSolver(t, 3, lightsout.WithConnectivity(gridgraph.Conn8))
	x, err := s.Solve(mustBoard(t, [][]int{{1, 0, 0}, {0, 0, 0}, {0, 0, 0}}))
	require.NoError(t, err)
	requireRows(t, [][]uint8{{0, 0, 0}, {0, 1, 1}, {0, 1, 1}}, x)

	s5 := mustSolver(t, 5, lightsout.WithConnectivity(gridgraph.Conn8))
	require.Equal(t, 9, s5.Nullity())
}

func TestSolver_LogsConstruction(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	s := mustSolver(t, 4, lightsout.WithLogger(logger))
	require.Contains(t, buf.String(), `"nullity":4`)
	require.Contains(t, buf.String(), "toggle operator inverted")

	buf.Reset()
	_, err := s.Solve(mustBoard(t, filled(4, 1)))
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"presses":4`)
}

func TestSolver_AccessorsReturnCopies(t *testing.T) {
	s := mustSolver(t, 3)
	op := s.Operator()
	require.NoError(t, op.Toggle(0, 0))
	require.False(t, op.Equal(s.Operator()))
}
