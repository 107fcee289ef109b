// Package sparsematrix is a small library for determinants of mostly-zero
// square integer matrices.
//
// What is in here?
//
//	A sparse n×n store that keeps only nonzero entries, ordered row-major,
//	plus the operations built on it:
//		• Element mutation & lookup with explicit out-of-bounds errors
//		• Minor extraction (delete one row and one column)
//		• Determinant by recursive cofactor (Laplace) expansion
//		• Canonical text, YAML and gonum/mat conversions
//
// Everything lives in one subpackage:
//
//	matrix/ — Sparse, Element, options, sentinel errors and converters
//
// Quick example:
//
//	m, _ := matrix.NewSparse(3)
//	_ = m.AddElement(0, 0, 2)
//	_ = m.AddElement(1, 1, 3)
//	_ = m.AddElement(2, 2, 4)
//	fmt.Println(m.Determinant()) // 24
//
//	go get github.com/rpmoore24/Sparse-Matrix/matrix
package sparsematrix
