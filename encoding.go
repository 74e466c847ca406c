// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = Series[int]{}
	_ json.Unmarshaler = (*Series[int])(nil)
	_ yaml.Marshaler   = Series[int]{}
	_ yaml.Unmarshaler = (*Series[int])(nil)
)

// MarshalJSON encodes the series as a JSON array. An empty series
// encodes as [] rather than null. The value receiver lets a Series
// embedded by value encode the same way as a *Series.
func (s Series[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.values())
}

// UnmarshalJSON replaces the contents of the series with the elements
// of a JSON array. A JSON null produces an empty series.
func (s *Series[T]) UnmarshalJSON(data []byte) error {
	var next []T
	if err := json.Unmarshal(data, &next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// MarshalYAML encodes the series as a YAML sequence.
func (s Series[T]) MarshalYAML() (any, error) {
	return s.values(), nil
}

// UnmarshalYAML replaces the contents of the series with the elements
// of a YAML sequence.
func (s *Series[T]) UnmarshalYAML(node *yaml.Node) error {
	var next []T
	if err := node.Decode(&next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// values returns a non-nil slice for encoders that distinguish nil.
func (s Series[T]) values() []T {
	if s.data == nil {
		return []T{}
	}
	return s.data
}
