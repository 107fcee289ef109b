// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Purpose:
//   - Export a Sparse matrix to a dense *mat.Dense, or expose it read-only as
//     a mat.Matrix without copying.
//   - Import any square mat.Matrix whose entries are finite integers.
//
// Complexity quicksheet:
//   - ToDense: O(n² + k); Gonum: O(1), each At O(k); FromDense: O(n²).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies the matrix into a new gonum dense matrix.
// A 0×0 matrix yields an empty &mat.Dense{} (gonum forbids zero-length NewDense).
func (m *Sparse) ToDense() *mat.Dense {
	if m.n == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.n, m.n, nil)
	for e := range m.All() {
		d.Set(e.Row, e.Col, float64(e.Value))
	}

	return d
}

// Gonum returns a read-only mat.Matrix view backed by the receiver.
// Later mutations of the receiver are visible through the view.
// At panics with mat.ErrIndexOutOfRange on invalid indices, as gonum does.
func (m *Sparse) Gonum() mat.Matrix {
	return gonumView{m: m}
}

// gonumView adapts *Sparse to mat.Matrix.
type gonumView struct {
	m *Sparse
}

var _ mat.Matrix = gonumView{}

// Dims implements mat.Matrix.
func (v gonumView) Dims() (r, c int) { return v.m.n, v.m.n }

// At implements mat.Matrix.
func (v gonumView) At(i, j int) float64 {
	if validateIndex(v.m.n, i, j) != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return float64(v.m.at(i, j))
}

// T implements mat.Matrix.
func (v gonumView) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// FromDense builds a Sparse matrix from a square gonum matrix.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrNonSquare when rows != cols.
//   - ErrInvalidSize for a 0×0 input.
//   - ErrNonInteger when an entry is NaN, ±Inf, fractional or outside the int range.
func FromDense(a mat.Matrix, opts ...Option) (*Sparse, error) {
	if a == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("FromDense: %dx%d: %w", r, c, ErrNonSquare)
	}
	m, err := NewSparse(r, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromDense: %w", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := a.At(i, j)
			if v == 0 {
				continue
			}
			if !isIntegral(v) {
				return nil, fmt.Errorf("FromDense: (%d,%d)=%v: %w", i, j, v, ErrNonInteger)
			}
			// Row-major input order keeps every insertion at the tail: O(1).
			m.store.insertAfter(m.store.last(), Element{Row: i, Col: j, Value: int(v)})
		}
	}

	return m, nil
}

// isIntegral reports whether v is finite, whole and representable as int.
func isIntegral(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return false
	}

	return v >= math.MinInt && v < math.MaxInt
}
