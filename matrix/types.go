// SPDX-License-Identifier: MIT

// Package matrix: domain types of the sparse store.
// This file intentionally contains ONLY the element record, the position key
// and the internal chain node. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Element is a stored nonzero entry (Row, Col, Value).
// Values handed out by All/Elements are copies; mutating them does not touch
// the matrix.
type Element struct {
	Row   int // 0 ≤ Row < n
	Col   int // 0 ≤ Col < n
	Value int // never 0 while stored
}

// pos is a (row, col) position compared in row-major order.
// Complexity: O(1) to build and compare.
type pos struct {
	row int // primary key
	col int // secondary key
}

// less reports whether p precedes q in row-major order.
func (p pos) less(q pos) bool {
	if p.row != q.row {
		return p.row < q.row
	}

	return p.col < q.col
}

// handle addresses a node inside the chain arena. Handle 0 is the sentinel.
type handle int

// sentinel is the anchor handle; it never holds a matrix entry.
const sentinel handle = 0

// node is one slot of the arena: the element plus two non-owning links.
//   - prior points to the neighbour with the next smaller position (or the sentinel).
//   - next points to the neighbour with the next larger position (or the sentinel).
type node struct {
	Element
	prior handle
	next  handle
}

// at returns the position key of the node.
func (nd *node) at() pos {
	return pos{row: nd.Row, col: nd.Col}
}
