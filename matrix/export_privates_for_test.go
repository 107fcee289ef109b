// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the element chain.
//
// Purpose:
//   - Expose the unexported invariant walk to matrix_test ONLY.
//   - File is in package matrix, so it can reach private state, but it is
//     compiled only with the tests.

// CheckInvariants panics when m's chain is structurally corrupted.
func CheckInvariants(m *Sparse) { m.store.checkInvariants(m.n) }

// ArenaLen reports how many slots (sentinel included) back m's chain.
func ArenaLen(m *Sparse) int { return len(m.store.nodes) }
