// SPDX-License-Identifier: MIT

// Package matrix - YAML document form of a Sparse matrix.
//
// Shape:
//
//	size: 3
//	elements: [[0, 0, 1], [1, 1, 1], [2, 2, 1]]
//
// Elements are emitted in row-major order as "[row, col, value]" triples.
// Block-style sequences are accepted on input as well.
// Decoding validates the whole document before touching the receiver.

package matrix

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Compile-time assertions for yaml.v3 conformance.
var (
	_ yaml.Marshaler   = (*Sparse)(nil)
	_ yaml.Unmarshaler = (*Sparse)(nil)
)

// yamlDocument is the serialized layout.
type yamlDocument struct {
	Size     int     `yaml:"size"`
	Elements [][]int `yaml:"elements,flow"`
}

// MarshalYAML implements yaml.Marshaler.
func (m *Sparse) MarshalYAML() (interface{}, error) {
	doc := yamlDocument{Size: m.n, Elements: make([][]int, 0, m.store.count)}
	for e := range m.All() {
		doc.Elements = append(doc.Elements, []int{e.Row, e.Col, e.Value})
	}

	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
// The receiver keeps its options (or gets the defaults when it is a zero
// value) and is replaced wholesale on success.
//
// Errors:
//   - ErrInvalidSize, ErrMalformedRecord, ErrOutOfBounds, or a yaml decode error.
func (m *Sparse) UnmarshalYAML(value *yaml.Node) error {
	var doc yamlDocument
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("matrix: decode yaml: %w", err)
	}
	if err := ValidateDimension(doc.Size); err != nil {
		return fmt.Errorf("UnmarshalYAML: size %d: %w", doc.Size, err)
	}

	opts := m.opts
	if opts.logger == nil {
		opts = gatherOptions()
	}
	out := newSparse(doc.Size, opts)
	for i, rec := range doc.Elements {
		if len(rec) != 3 {
			return fmt.Errorf("UnmarshalYAML: element %d has %d fields: %w", i, len(rec), ErrMalformedRecord)
		}
		if err := out.AddElement(rec[0], rec[1], rec[2]); err != nil {
			return fmt.Errorf("UnmarshalYAML: element %d: %w", i, err)
		}
	}
	*m = *out

	return nil
}
