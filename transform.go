// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import (
	"fmt"
	"iter"

	"vawter.tech/series/internal/safe"
)

// Map returns a new series containing fn applied to each element. The
// result has the same length and order as the input.
func Map[T, U any](s *Series[T], fn func(T) U) *Series[U] {
	ret := &Series[U]{data: make([]U, len(s.data))}
	for i, v := range s.data {
		ret.data[i] = fn(v)
	}
	return ret
}

// MapErr applies fn to every element and records each outcome. If fn
// panics, the outcome for that element is a [*RecoveredError] and
// processing continues with the next element.
func MapErr[T, U any](s *Series[T], fn func(T) (U, error)) *Series[Result[U]] {
	ret := &Series[Result[U]]{data: make([]Result[U], len(s.data))}
	for i, v := range s.data {
		u, err := safe.Apply(fn, v)
		ret.data[i] = Result[U]{Value: u, Err: err}
	}
	return ret
}

// TryMap applies fn to each element in order, stopping at the first
// failure. The returned error identifies the index of the failing
// element and wraps the callback's error. A panic in fn is reported as
// a [*RecoveredError].
func TryMap[T, U any](s *Series[T], fn func(T) (U, error)) (*Series[U], error) {
	return CollapseSeq(mapSeq(s, fn))
}

// mapSeq lazily applies fn, so that a consumer which stops early also
// stops the callbacks.
func mapSeq[T, U any](s *Series[T], fn func(T) (U, error)) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for idx, v := range s.data {
			u, err := safe.Apply(fn, v)
			if err != nil {
				err = fmt.Errorf("index %d: %w", idx, err)
			}
			if !yield(u, err) {
				return
			}
		}
	}
}
