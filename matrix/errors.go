// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public operations MUST return these sentinels (optionally wrapped
// with method context) and tests MUST check them via errors.Is.
// Panics are reserved for corrupted internal state (broken chain ordering,
// duplicate positions), which is a programmer error and never user-triggered.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with
// fmt.Errorf("Sparse.<Method>(row,col): %w", ErrX) — callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> size -> index -> record syntax -> value policy.

var (
	// ErrOutOfBounds indicates that a row or column index lies outside [0, n).
	// The rejected call never mutates the store.
	ErrOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidSize is returned when a dimension <= 0 is requested through
	// NewSparse, SetSize or Parse.
	ErrInvalidSize = errors.New("matrix: dimension must be > 0")

	// ErrMalformedRecord marks a serialized record that is not exactly three
	// integers "row col value".
	ErrMalformedRecord = errors.New("matrix: malformed element record")

	// ErrNonInteger signals a NaN, ±Inf or fractional value met while
	// importing from a floating-point matrix.
	ErrNonInteger = errors.New("matrix: value is not an integer")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
