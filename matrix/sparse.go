// SPDX-License-Identifier: MIT

// Package matrix - Sparse square storage & safe accessors.
//
// Purpose:
//   - Store only the nonzero entries of an n×n integer matrix.
//   - Guarantee safety at the public surface: every indexed operation returns
//     ErrOutOfBounds instead of panicking, and a rejected call never mutates.
//   - Keep algorithmic determinism: a single row-major chain, no map iteration.
//
// Complexity quicksheet:
//   - NewSparse/SetSize/Clear/GetSize/Len: O(1).
//   - AddElement/RemoveElement/GetElement: O(k) for k stored elements.
//   - Clone: O(k).

package matrix

import (
	"fmt"

	"go.uber.org/zap"
)

// ---------- error context tags ----------

const (
	ctxAdd    = "AddElement"    // method tag used in error wrappers
	ctxRemove = "RemoveElement" // method tag used in error wrappers
	ctxGet    = "GetElement"    // method tag used in error wrappers
	ctxMinor  = "Minor"         // method tag used in error wrappers
)

// Sparse is a square matrix of ints that stores only nonzero entries.
//   - n is the side length (n ≥ 1 for public constructors; 0 only for the
//     base-case result of Minor on a 1×1 matrix).
//   - store holds the elements in ascending row-major order.
//
// Sparse is not safe for concurrent use; guard shared instances externally.
type Sparse struct {
	n     int     // dimension: the matrix is n×n
	store chain   // ordered nonzero elements
	opts  Options // resolved configuration (logger, determinant policy)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse creates an n×n zero matrix.
//
// Implementation:
//   - Stage 1: validate n > 0; else ErrInvalidSize.
//   - Stage 2: resolve options and build the sentinel-only store.
//
// Errors:
//   - ErrInvalidSize (shape contract violation).
//
// Complexity:
//   - Time O(1), Space O(1).
func NewSparse(n int, opts ...Option) (*Sparse, error) {
	if err := ValidateDimension(n); err != nil {
		return nil, fmt.Errorf("NewSparse(%d): %w", n, err)
	}

	return newSparse(n, gatherOptions(opts...)), nil
}

// NewDefault creates a DefaultDimension×DefaultDimension (5×5) zero matrix.
func NewDefault(opts ...Option) *Sparse {
	return newSparse(DefaultDimension, gatherOptions(opts...))
}

// newSparse is the internal constructor; it accepts n == 0 for Minor.
func newSparse(n int, o Options) *Sparse {
	return &Sparse{n: n, store: newChain(), opts: o}
}

// SetSize discards every element and makes the matrix n×n.
// This is a destructive resize: prior contents are not preserved.
// On ErrInvalidSize the matrix is left untouched.
// Complexity: O(1) beyond releasing the old arena.
func (m *Sparse) SetSize(n int) error {
	if err := ValidateDimension(n); err != nil {
		m.opts.logger.Debug("resize rejected", zap.Int("size", n), zap.Int("dimension", m.n))

		return fmt.Errorf("Sparse.SetSize(%d): %w", n, err)
	}
	m.opts.logger.Debug("resize", zap.Int("from", m.n), zap.Int("to", n), zap.Int("dropped", m.store.count))
	m.n = n
	m.store.reset()

	return nil
}

// Clear removes all elements and keeps the dimension.
// Complexity: O(1) beyond releasing the old arena.
func (m *Sparse) Clear() {
	m.opts.logger.Debug("clear", zap.Int("dimension", m.n), zap.Int("dropped", m.store.count))
	m.store.reset()
}

// GetSize returns the dimension n of the n×n matrix.
// Complexity: O(1).
func (m *Sparse) GetSize() int {
	return m.n
}

// Len returns the number of stored (nonzero) elements.
// Complexity: O(1).
func (m *Sparse) Len() int {
	return m.store.count
}

// AddElement assigns value at (row, col).
//
// Behavior highlights:
//   - value == 0 removes an existing element, or does nothing.
//   - value != 0 overwrites an existing element in place, or splices a new
//     element at its row-major position.
//
// Errors:
//   - ErrOutOfBounds when row or col is outside [0, n); nothing is mutated.
//
// Complexity:
//   - Time O(k) for k stored elements; O(1) when (row, col) is at or past the
//     current largest position.
func (m *Sparse) AddElement(row, col, value int) error {
	if err := m.checkIndex(ctxAdd, row, col); err != nil {
		return err
	}
	h, found := m.store.seek(pos{row: row, col: col})
	switch {
	case found && value == 0:
		m.store.unlink(h)
	case found:
		m.store.nodes[h].Value = value
	case value != 0:
		m.store.insertAfter(h, Element{Row: row, Col: col, Value: value})
	}

	return nil
}

// RemoveElement deletes the element at (row, col) if one exists.
//
// Errors:
//   - ErrOutOfBounds when row or col is outside [0, n); no search is performed.
//
// Complexity: O(k).
func (m *Sparse) RemoveElement(row, col int) error {
	if err := m.checkIndex(ctxRemove, row, col); err != nil {
		return err
	}
	if h, found := m.store.seek(pos{row: row, col: col}); found {
		m.store.unlink(h)
	}

	return nil
}

// GetElement returns the value at (row, col), or 0 when nothing is stored there.
//
// Errors:
//   - ErrOutOfBounds when row or col is outside [0, n). An invalid index is
//     never reported as a 0 value.
//
// Complexity: O(k).
func (m *Sparse) GetElement(row, col int) (int, error) {
	if err := m.checkIndex(ctxGet, row, col); err != nil {
		return 0, err
	}

	return m.at(row, col), nil
}

// at is the unchecked lookup used once indices are known to be valid.
func (m *Sparse) at(row, col int) int {
	if h, found := m.store.seek(pos{row: row, col: col}); found {
		return m.store.nodes[h].Value
	}

	return 0
}

// Clone returns an independent deep copy sharing the receiver's options.
// Complexity: O(k).
func (m *Sparse) Clone() *Sparse {
	out := newSparse(m.n, m.opts)
	m.store.each(func(e Element) bool {
		out.store.insertAfter(out.store.last(), e)

		return true
	})

	return out
}

// Equal reports whether m and other have the same dimension and elements.
// Two nil matrices are equal; a nil and a non-nil one are not.
// Complexity: O(k).
func (m *Sparse) Equal(other *Sparse) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.n != other.n || m.store.count != other.store.count {
		return false
	}
	a, b := m.store.first(), other.store.first()
	for a != sentinel {
		if m.store.nodes[a].Element != other.store.nodes[b].Element {
			return false
		}
		a, b = m.store.nodes[a].next, other.store.nodes[b].next
	}

	return true
}

// checkIndex validates (row, col), logs rejections and wraps the sentinel
// with the calling method's context.
func (m *Sparse) checkIndex(method string, row, col int) error {
	if err := validateIndex(m.n, row, col); err != nil {
		m.opts.logger.Debug("index rejected",
			zap.String("method", method),
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Int("dimension", m.n),
		)

		return sparseErrorf(method, row, col, err)
	}

	return nil
}
