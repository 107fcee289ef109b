// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for Sparse tests.
//   • Keep random data seeded so every failure is reproducible.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/rpmoore24/Sparse-Matrix/matrix"
	"github.com/stretchr/testify/require"
)

// mustSparse ALLOCATES an n×n *Sparse or fails the test (fatal on error).
func mustSparse(tb testing.TB, n int, opts ...matrix.Option) *matrix.Sparse {
	tb.Helper()
	m, err := matrix.NewSparse(n, opts...)
	if err != nil {
		tb.Fatalf("NewSparse(%d): %v", n, err)
	}

	return m
}

// fromRows builds a Sparse matrix from a dense row literal.
// Zero cells are skipped, so only nonzeros end up stored.
func fromRows(tb testing.TB, rows [][]int) *matrix.Sparse {
	tb.Helper()
	m := mustSparse(tb, len(rows))
	for i, row := range rows {
		for j, v := range row {
			if err := m.AddElement(i, j, v); err != nil {
				tb.Fatalf("AddElement(%d,%d,%d): %v", i, j, v, err)
			}
		}
	}

	return m
}

// identity returns the n×n identity matrix.
func identity(tb testing.TB, n int) *matrix.Sparse {
	tb.Helper()
	m := mustSparse(tb, n)
	for i := 0; i < n; i++ {
		if err := m.AddElement(i, i, 1); err != nil {
			tb.Fatalf("AddElement(%d,%d,1): %v", i, i, err)
		}
	}

	return m
}

// fillRandom writes count random assignments with values in [-span, span]
// (zeros included, so deletions are exercised too). Deterministic per seed.
func fillRandom(tb testing.TB, m *matrix.Sparse, count, span int, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := m.GetSize()
	for k := 0; k < count; k++ {
		v := rng.Intn(2*span+1) - span
		if err := m.AddElement(rng.Intn(n), rng.Intn(n), v); err != nil {
			tb.Fatalf("AddElement: %v", err)
		}
	}
}

// requireAscending asserts strict row-major order of the enumeration and
// that the chain passes the white-box invariant walk.
func requireAscending(t *testing.T, m *matrix.Sparse) {
	t.Helper()
	require.NotPanics(t, func() { matrix.CheckInvariants(m) })
	els := m.Elements()
	for i := 1; i < len(els); i++ {
		prev, cur := els[i-1], els[i]
		ordered := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col)
		require.Truef(t, ordered, "element %d %+v not after %+v", i, cur, prev)
	}
	for _, e := range els {
		require.NotZero(t, e.Value)
	}
}

// requireElement asserts GetElement(row, col) == want without error.
func requireElement(t *testing.T, m *matrix.Sparse, row, col, want int) {
	t.Helper()
	got, err := m.GetElement(row, col)
	require.NoError(t, err)
	require.Equalf(t, want, got, "GetElement(%d,%d)", row, col)
}
