// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor (Laplace) expansion.
//
// Purpose:
//   - det(A) = Σ_i (-1)^i · a(i,0) · det(Minor(i,0)), expanded along column 0.
//   - Exact integer arithmetic throughout; the sign is taken from the parity of i.
//
// Complexity:
//   - Dense worst case O(n!) minors; proportional to the nonzero structure when sparse.
//   - With SkipZeroCofactors (default) a row with no element in column 0
//     builds no minor at all, and a matrix with an empty column 0 returns 0
//     immediately.

package matrix

import "go.uber.org/zap"

// Determinant returns the determinant of the matrix.
//
// Behavior highlights:
//   - 1×1: the single entry (0 when nothing is stored).
//   - 0×0 (only reachable as Minor of a 1×1): 1, the empty product.
//   - Any all-zero row or column yields 0.
//
// Notes:
//   - Integer overflow is not detected; results wrap like any Go int arithmetic.
func (m *Sparse) Determinant() int {
	var minors int
	det := m.determinant(&minors)
	m.opts.logger.Debug("determinant",
		zap.Int("dimension", m.n),
		zap.Int("nonzeros", m.store.count),
		zap.Int("minors", minors),
		zap.Int("result", det),
	)

	return det
}

// determinant is the recursive kernel; minors counts the sub-matrices built.
func (m *Sparse) determinant(minors *int) int {
	switch m.n {
	case 0:
		return 1
	case 1:
		return m.at(0, 0)
	}

	// Column-0 entries in ascending row order; zero rows are absent.
	column := make([]Element, 0, m.n)
	m.store.each(func(e Element) bool {
		if e.Col == 0 {
			column = append(column, e)
		}

		return true
	})

	det := 0
	if m.opts.skipZeroCofactors {
		for _, e := range column {
			*minors++
			det += cofactorSign(e.Row) * e.Value * m.minor(e.Row, 0).determinant(minors)
		}

		return det
	}

	next := 0
	for i := 0; i < m.n; i++ {
		a := 0
		if next < len(column) && column[next].Row == i {
			a = column[next].Value
			next++
		}
		*minors++
		det += cofactorSign(i) * a * m.minor(i, 0).determinant(minors)
	}

	return det
}

// cofactorSign returns (-1)^i exactly.
func cofactorSign(i int) int {
	if i%2 == 0 {
		return 1
	}

	return -1
}
