// SPDX-License-Identifier: MIT

// Package matrix - canonical text form of a Sparse matrix.
//
// Format:
//   - One record per stored element: "row col value\n".
//   - Records appear in ascending row-major order; an empty matrix is "".
//   - Readers accept any run of spaces/tabs between fields and ignore blank lines.
//
// Determinism:
//   - String/WriteTo/All always enumerate in the same order for the same contents.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Compile-time assertion for io.WriterTo conformance.
var _ io.WriterTo = (*Sparse)(nil)

// All returns a restartable, ordered enumeration of the stored elements.
// The matrix must not be mutated while the sequence is being consumed.
func (m *Sparse) All() iter.Seq[Element] {
	return m.store.each
}

// Elements returns a snapshot of the stored elements in row-major order.
// Complexity: O(k).
func (m *Sparse) Elements() []Element {
	out := make([]Element, 0, m.store.count)
	for e := range m.All() {
		out = append(out, e)
	}

	return out
}

// String implements fmt.Stringer with the canonical "row col value" lines.
// Complexity: O(k).
func (m *Sparse) String() string {
	var sb strings.Builder
	for e := range m.All() {
		appendRecord(&sb, e)
	}

	return sb.String()
}

// WriteTo writes the canonical text form to w.
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for e := range m.All() {
		n, err := fmt.Fprintf(bw, "%d %d %d\n", e.Row, e.Col, e.Value)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// ReadRecords replays every "row col value" record from r through AddElement.
//
// Implementation:
//   - Stage 1: parse and bounds-check every record.
//   - Stage 2: apply them in input order (later records win on duplicates).
//
// Errors:
//   - ErrMalformedRecord for a line that is not three integers.
//   - ErrOutOfBounds for a record outside [0, n).
//   - Any read error from r.
//
// The matrix is left untouched when an error is returned.
func (m *Sparse) ReadRecords(r io.Reader) error {
	var records []Element
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		e, err := parseRecord(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err = validateIndex(m.n, e.Row, e.Col); err != nil {
			return fmt.Errorf("line %d: %w", line, sparseErrorf(ctxAdd, e.Row, e.Col, err))
		}
		records = append(records, e)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read records: %w", err)
	}
	for _, e := range records {
		if err := m.AddElement(e.Row, e.Col, e.Value); err != nil {
			return err
		}
	}

	return nil
}

// Parse builds an n×n matrix from canonical text, the inverse of String.
//
// Errors:
//   - ErrInvalidSize, ErrMalformedRecord, ErrOutOfBounds.
func Parse(n int, text string, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(n, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.ReadRecords(strings.NewReader(text)); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}

// parseRecord decodes one trimmed, non-empty "row col value" line.
func parseRecord(text string) (Element, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Element{}, fmt.Errorf("%q: want 3 fields, got %d: %w", text, len(fields), ErrMalformedRecord)
	}
	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Element{}, fmt.Errorf("%q: field %d: %w", text, i+1, ErrMalformedRecord)
		}
		vals[i] = v
	}

	return Element{Row: vals[0], Col: vals[1], Value: vals[2]}, nil
}

// appendRecord writes e as one canonical line.
func appendRecord(sb *strings.Builder, e Element) {
	sb.WriteString(strconv.Itoa(e.Row))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(e.Col))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(e.Value))
	sb.WriteByte('\n')
}
