// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the sparse store.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves them.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options travel with a matrix: Minor, Clone and Parse results inherit
//     the options of the matrix they came from.
package matrix

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDimension is the side length used by NewDefault (a 5×5 zero matrix).
	DefaultDimension = 5

	// DefaultSkipZeroCofactors lets Determinant visit only the rows that hold
	// an element in column 0. When false every row builds its minor, as in a
	// literal Σ over i = 0..n-1; the result is identical.
	DefaultSkipZeroCofactors = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLoggerNil = "matrix: WithLogger: logger must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	logger            *zap.Logger // never nil after gatherOptions; zap.NewNop() by default
	skipZeroCofactors bool        // DefaultSkipZeroCofactors
}

// ---------- Constructors (WithX) ----------

// WithLogger routes the matrix diagnostics to l.
// Rejected calls, resizes and determinant summaries are emitted at Debug level.
// Panics when l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithSkipZeroCofactors toggles the sparse shortcut in Determinant.
//
// Behavior highlights:
//   - true (default): cofactors are computed only for nonzero column-0 entries.
//   - false: a minor is built for every row, zero or not.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSkipZeroCofactors(skip bool) Option {
	return func(o *Options) { o.skipZeroCofactors = skip }
}

// ---------- Resolution ----------

// NewMatrixOptions resolves opts into a read-only Options snapshot.
// Useful to inspect effective defaults in tests and callers.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Logger returns the configured logger.
func (o Options) Logger() *zap.Logger { return o.logger }

// SkipZeroCofactors reports whether Determinant skips zero column-0 entries.
func (o Options) SkipZeroCofactors() bool { return o.skipZeroCofactors }

// gatherOptions applies user setters on top of the documented defaults.
// Implementation:
//   - Stage 1: fill fields from Default* constants.
//   - Stage 2: apply user setters in order; last-writer-wins.
//
// Complexity:
//   - Time O(len(user)), Space O(1).
func gatherOptions(user ...Option) Options {
	o := Options{
		logger:            zap.NewNop(),
		skipZeroCofactors: DefaultSkipZeroCofactors,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
