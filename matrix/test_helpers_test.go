// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/qsim/matrix"
	"github.com/stretchr/testify/require"
)

// looseEps absorbs rounding when comparing results of different but
// mathematically equal evaluation orders.
const looseEps = 1e-12

// invSqrt2 is the Hadamard entry 1/√2.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]complex128) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// zeros allocates an r×c zero matrix or fails the test.
func zeros(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// fillDenseRand fills m with reproducible entries in [-1,1)+[-1,1)i.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed uint64) {
	tb.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	m.Apply(func(_, _ int, _ complex128) complex128 {
		return complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	})
}

// randDense allocates and fills an r×c matrix from seed.
func randDense(tb testing.TB, r, c int, seed uint64) *matrix.Dense {
	tb.Helper()
	m := zeros(tb, r, c)
	fillDenseRand(tb, m, seed)

	return m
}

// hadamard returns the 2×2 Hadamard matrix.
func hadamard(tb testing.TB) *matrix.Dense {
	tb.Helper()

	return mustDense(tb, [][]complex128{
		{invSqrt2, invSqrt2},
		{invSqrt2, -invSqrt2},
	})
}

// requireEntries asserts every entry of m against want, exactly.
func requireEntries(tb testing.TB, m *matrix.Dense, want [][]complex128) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows())
	for i, row := range want {
		require.Equal(tb, len(row), m.Cols())
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(tb, err)
			require.Equalf(tb, w, got, "entry (%d,%d)", i, j)
		}
	}
}
