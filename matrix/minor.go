// SPDX-License-Identifier: MIT

package matrix

// Minor returns the (n-1)×(n-1) matrix obtained by deleting row and col.
//
// Implementation:
//   - Stage 1: validate (row, col); else ErrOutOfBounds.
//   - Stage 2: walk the receiver in row-major order, dropping elements on the
//     deleted row or column.
//   - Stage 3: shift every survivor up by one if it sat below the deleted row
//     and left by one if it sat right of the deleted column (independently),
//     then append it to the result.
//
// Behavior highlights:
//   - Deleting a row and a column preserves relative row-major order, so the
//     images arrive already sorted and each append is O(1).
//   - A 1×1 receiver yields a 0×0 result; Determinant uses that as its base case.
//   - Values are copied: the result is fully independent of the receiver.
//
// Complexity:
//   - Time O(k), Space O(k) for k stored elements.
func (m *Sparse) Minor(row, col int) (*Sparse, error) {
	if err := m.checkIndex(ctxMinor, row, col); err != nil {
		return nil, err
	}

	return m.minor(row, col), nil
}

// minor is Minor without the bounds check.
func (m *Sparse) minor(row, col int) *Sparse {
	out := newSparse(m.n-1, m.opts)
	m.store.each(func(e Element) bool {
		if e.Row == row || e.Col == col {
			return true
		}
		if e.Row > row {
			e.Row--
		}
		if e.Col > col {
			e.Col--
		}
		out.store.insertAfter(out.store.last(), e)

		return true
	})

	return out
}
