// Package matrix offers a sparse square integer matrix with a cofactor
// determinant.
//
// The matrix package provides:
//
//   - Sparse, an n×n matrix that stores only nonzero entries in one
//     row-major ordered chain (an arena of nodes closed by a sentinel).
//   - Minor extraction: delete one row and one column into a brand-new,
//     independent (n-1)×(n-1) matrix.
//   - Determinant by recursive Laplace expansion along column 0, exact in
//     integer arithmetic.
//   - A canonical "row col value" text form (String, WriteTo, ReadRecords,
//     Parse), a YAML document form, and gonum/mat interop (ToDense, Gonum,
//     FromDense).
//
// Every indexed operation validates its coordinates and returns
// ErrOutOfBounds without mutating anything; sizes <= 0 are rejected with
// ErrInvalidSize. Sparse is not safe for concurrent use.
//
// Sparse storage pays off when the matrix is mostly zero: memory is O(k) for
// k nonzeros and the determinant only expands along entries that exist.
//
// See the examples in this package for usage patterns.
package matrix
