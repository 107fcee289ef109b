// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the sparse store's guards.
//  - Keep operations minimal by delegating size/index checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// sparseErrorf wraps err with the Sparse method and coordinates it was raised for.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// ValidateDimension checks that n is a usable side length.
//
// Inputs: candidate dimension.
// Errors: ErrInvalidSize if n <= 0.
// Complexity: O(1).
func ValidateDimension(n int) error {
	if n <= 0 {
		return ErrInvalidSize
	}

	return nil
}

// validateIndex checks 0 ≤ row < n and 0 ≤ col < n.
// Assumes n ≥ 0. Returns ErrOutOfBounds on violation.
// Complexity: O(1).
func validateIndex(n, row, col int) error {
	if row < 0 || row >= n {
		return ErrOutOfBounds
	}
	if col < 0 || col >= n {
		return ErrOutOfBounds
	}

	return nil
}
