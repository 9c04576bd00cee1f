// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout/matrix"
)

func TestInverse_Known(t *testing.T) {
	a := MustRows(t, [][]int{
		{1, 1, 0},
		{0, 1, 1},
		{0, 0, 1},
	})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{{1, 1, 1}, {0, 1, 1}, {0, 0, 1}}, inv.ToRows())

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	RequireMatrix(t, IdentityDense(t, 3), prod)
}

func TestInverse_Singular(t *testing.T) {
	a := MustRows(t, [][]int{{1, 1}, {1, 1}})
	_, err := matrix.Inverse(a)
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverseWithNullSpace_Empty(t *testing.T) {
	inv, nulls, err := matrix.InverseWithNullSpace(IdentityDense(t, 4))
	require.NoError(t, err)
	RequireMatrix(t, IdentityDense(t, 4), inv)
	require.Equal(t, 0, nulls.Rows())
	require.Equal(t, 4, nulls.Cols())
}

// TestInverseWithNullSpace_Trailing checks the layout for trailing free columns:
// last k columns of the reduced left block, bottom k rows replaced by the identity.
func TestInverseWithNullSpace_Trailing(t *testing.T) {
	a := MustRows(t, [][]int{
		{1, 0, 1, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 1},
		{0, 0, 0, 0},
	})
	nulls, err := matrix.NullSpace(a)
	require.NoError(t, err)
	require.Equal(t, [][]uint8{
		{1, 1, 1, 0},
		{1, 0, 0, 1},
	}, nulls.ToRows())
}

func TestInverseWithNullSpace_AllZero(t *testing.T) {
	a := MustDense(t, 3, 3)
	inv, nulls, err := matrix.InverseWithNullSpace(a)
	require.NoError(t, err)
	require.True(t, inv.IsZero())
	RequireMatrix(t, IdentityDense(t, 3), nulls)
}

// TestInverseWithNullSpace_Properties runs random square matrices through the
// extraction and checks the algebraic contract for both outcomes.
func TestInverseWithNullSpace_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 150
	properties := gopter.NewProperties(params)

	properties.Property("inverse or annihilating basis of the right dimension", prop.ForAll(
		func(n int, seed int64) bool {
			a := RandomDense(t, n, n, seed)
			inv, nulls, err := matrix.InverseWithNullSpace(a)
			if err != nil {
				return false
			}
			rank, err := matrix.Rank(a)
			if err != nil || rank+nulls.Rows() != n {
				return false
			}
			if nulls.Rows() == 0 {
				prod, err := matrix.Mul(a, inv)
				return err == nil && prod.Equal(IdentityDense(t, n))
			}
			// basis vectors: annihilated and linearly independent
			az, err := matrix.Mul(a, mustT(t, nulls))
			if err != nil || !az.IsZero() {
				return false
			}
			nr, err := matrix.Rank(nulls)
			if err != nil || nr != nulls.Rows() {
				return false
			}
			// partial inverse: a particular solution for any reachable b
			b, err := matrix.MulVec(a, RandomVector(n, seed+1))
			if err != nil {
				return false
			}
			x, err := matrix.MulVec(inv, b)
			if err != nil {
				return false
			}
			ax, err := matrix.MulVec(a, x)
			return err == nil && ax.Equal(b)
		},
		gen.IntRange(1, 24), gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestInverse_InvertibleFromElementaryOps builds invertible matrices as products of
// elementary row additions and checks A·A⁻¹ = I and A⁻¹·A = I.
func TestInverse_InvertibleFromElementaryOps(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 60
	properties := gopter.NewProperties(params)

	properties.Property("A·A⁻¹ = A⁻¹·A = I", prop.ForAll(
		func(n int, seed int64) bool {
			a := randomInvertible(t, n, seed)
			inv, err := matrix.Inverse(a)
			if err != nil {
				return false
			}
			l, err1 := matrix.Mul(a, inv)
			r, err2 := matrix.Mul(inv, a)
			I := IdentityDense(t, n)
			return err1 == nil && err2 == nil && l.Equal(I) && r.Equal(I)
		},
		gen.IntRange(1, 40), gen.Int64(),
	))

	properties.TestingRun(t)
}

func mustT(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)

	return tr
}

// randomInvertible multiplies n² random elementary matrices E_ij = I + e_i e_jᵀ (i≠j).
func randomInvertible(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	a := IdentityDense(t, n)
	if n == 1 {
		return a
	}
	picks := RandomDense(t, n*n, 2, seed) // only used as a deterministic source of indices
	for step := 0; step < n*n; step++ {
		row, _ := picks.Row(step)
		i := (step + row[0].Int()) % n
		j := (i + 1 + step*7 + row[1].Int()) % n
		if i == j {
			j = (j + 1) % n
		}
		e := IdentityDense(t, n)
		require.NoError(t, e.Set(i, j, 1))
		var err error
		a, err = matrix.Mul(e, a)
		require.NoError(t, err)
	}

	return a
}
