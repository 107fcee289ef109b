// SPDX-License-Identifier: MIT

// Package matrix - ordered element chain (arena + sentinel).
//
// Purpose:
//   - Keep every stored element in one doubly linked, row-major ordered chain.
//   - Address nodes by integer handles into a single slice so links can never
//     dangle; released slots are recycled through a free list.
//   - The sentinel (handle 0) closes the chain into a ring:
//     sentinel.prior is the largest position (the append point),
//     sentinel.next is the smallest.
//
// Complexity quicksheet:
//   - seek: O(k) worst case over k stored elements, O(1) when p is at or past the tail.
//   - insertAfter/unlink: O(1); reset: O(1) plus releasing the old arena.

package matrix

import "fmt"

// chain is the position-ordered element store used by Sparse.
type chain struct {
	nodes []node   // nodes[sentinel] is the anchor; live nodes are reachable from it
	free  []handle // released slots available for reuse
	count int      // number of live elements
}

// newChain returns an empty ring made of the sentinel alone.
func newChain() chain {
	return chain{nodes: make([]node, 1)}
}

// reset drops every element and the arena that backed them.
func (c *chain) reset() {
	*c = newChain()
}

// first returns the handle of the smallest element, or sentinel when empty.
func (c *chain) first() handle { return c.nodes[sentinel].next }

// last returns the handle of the largest element, or sentinel when empty.
func (c *chain) last() handle { return c.nodes[sentinel].prior }

// seek walks from the append point towards smaller positions.
// It returns (h, true) when h holds p, otherwise (h, false) where h is the
// node after which p must be spliced (sentinel means "before the first").
//
// Scanning from the tail makes ascending bulk loads (Minor, Parse of
// canonical text) append in O(1) per element.
func (c *chain) seek(p pos) (handle, bool) {
	h := c.last()
	for h != sentinel {
		at := c.nodes[h].at()
		if at == p {
			return h, true
		}
		if at.less(p) {
			return h, false
		}
		h = c.nodes[h].prior
	}

	return sentinel, false
}

// alloc takes a slot from the free list or grows the arena.
func (c *chain) alloc(e Element) handle {
	if n := len(c.free); n > 0 {
		h := c.free[n-1]
		c.free = c.free[:n-1]
		c.nodes[h] = node{Element: e}

		return h
	}
	c.nodes = append(c.nodes, node{Element: e})

	return handle(len(c.nodes) - 1)
}

// insertAfter splices a new node holding e right after handle at.
// Covers the three cases uniformly: at==sentinel inserts before the first
// element, at==last appends next to the sentinel, anything else inserts
// between two elements.
func (c *chain) insertAfter(at handle, e Element) handle {
	h := c.alloc(e) // may grow c.nodes; only handles are held across it
	next := c.nodes[at].next
	c.nodes[h].prior = at
	c.nodes[h].next = next
	c.nodes[at].next = h
	c.nodes[next].prior = h
	c.count++

	return h
}

// unlink detaches h from both neighbours and releases its slot.
// Removing the last live element resets the arena entirely.
func (c *chain) unlink(h handle) {
	nd := c.nodes[h]
	c.nodes[nd.prior].next = nd.next
	c.nodes[nd.next].prior = nd.prior
	c.count--
	if c.count == 0 {
		c.reset()

		return
	}
	c.nodes[h] = node{}
	c.free = append(c.free, h)
}

// each yields the live elements in ascending row-major order until yield
// returns false.
func (c *chain) each(yield func(Element) bool) {
	for h := c.first(); h != sentinel; h = c.nodes[h].next {
		if !yield(c.nodes[h].Element) {
			return
		}
	}
}

// checkInvariants walks the ring and panics on any structural corruption:
// broken back links, out-of-order or duplicate positions, stored zeros,
// out-of-range indices or a count mismatch. n is the matrix dimension.
// Complexity: O(k).
func (c *chain) checkInvariants(n int) {
	seen := 0
	prev := sentinel
	for h := c.first(); h != sentinel; h = c.nodes[h].next {
		nd := &c.nodes[h]
		if nd.prior != prev {
			panic(fmt.Sprintf("matrix: chain corrupted: node %d prior=%d want %d", h, nd.prior, prev))
		}
		if nd.Value == 0 {
			panic(fmt.Sprintf("matrix: chain corrupted: zero stored at (%d,%d)", nd.Row, nd.Col))
		}
		if validateIndex(n, nd.Row, nd.Col) != nil {
			panic(fmt.Sprintf("matrix: chain corrupted: (%d,%d) outside %dx%d", nd.Row, nd.Col, n, n))
		}
		if prev != sentinel && !c.nodes[prev].at().less(nd.at()) {
			panic(fmt.Sprintf("matrix: chain corrupted: (%d,%d) not after (%d,%d)",
				nd.Row, nd.Col, c.nodes[prev].Row, c.nodes[prev].Col))
		}
		prev = h
		seen++
		if seen > len(c.nodes) {
			panic("matrix: chain corrupted: cycle without sentinel")
		}
	}
	if c.last() != prev {
		panic(fmt.Sprintf("matrix: chain corrupted: sentinel prior=%d want %d", c.last(), prev))
	}
	if seen != c.count {
		panic(fmt.Sprintf("matrix: chain corrupted: walked %d elements, count=%d", seen, c.count))
	}
}
