// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Small, deterministic fixtures for GF(2) kernels.
//   • Seeded random matrices so property failures reproduce.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lightsout/matrix"
)

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a matrix from 0/1 rows or fails the test.
func MustRows(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// RandomDense fills an r×c matrix with fair coin flips from the given seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([][]int, r)
	for i := range vals {
		vals[i] = make([]int, c)
		for j := range vals[i] {
			vals[i][j] = rng.Intn(2)
		}
	}

	return MustRows(t, vals)
}

// RandomVector returns a length-n bit vector of fair coin flips.
func RandomVector(n int, seed int64) *bitset.BitSet {
	rng := rand.New(rand.NewSource(seed))
	v := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			v.Set(uint(i))
		}
	}

	return v
}

// RequireMatrix fails with a row diff when got and want differ.
func RequireMatrix(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want.ToRows(), got.ToRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}
