// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import "iter"

// A Result holds either a value or the error that prevented it from
// being computed. A non-nil Err marks a failure, in which case Value
// should be ignored.
type Result[T any] struct {
	Value T
	Err   error
}

// OK returns a successful Result.
func OK[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail returns a failed Result.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

// Get unpacks the Result.
func (r Result[T]) Get() (T, error) { return r.Value, r.Err }

// Collapse returns a series of the unwrapped values if every element of
// s succeeded. Otherwise, it returns the first error encountered,
// unchanged. Elements after the first failure are not examined.
func Collapse[T any](s *Series[Result[T]]) (*Series[T], error) {
	return CollapseSeq(func(yield func(T, error) bool) {
		for _, r := range s.data {
			if !yield(r.Value, r.Err) {
				return
			}
		}
	})
}

// CollapseSeq drains the sequence into a series, stopping at and
// returning the first non-nil error.
func CollapseSeq[T any](items iter.Seq2[T, error]) (*Series[T], error) {
	ret := &Series[T]{}
	for v, err := range items {
		if err != nil {
			return nil, err
		}
		ret.data = append(ret.data, v)
	}
	return ret, nil
}
