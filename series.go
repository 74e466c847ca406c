// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import (
	"fmt"
	"iter"
	"slices"
)

// A Series is an ordered sequence of values, where the position of a
// value is its time step. The zero value is an empty series.
//
// A Series exclusively owns its backing storage. Methods that return a
// *Series always return a new value with its own copy of the data.
//
// A nil *Series reads as empty for Len, IsEmpty, String, and [Equal].
// Other methods require a non-nil receiver.
type Series[T any] struct {
	data []T
}

// New returns an empty Series.
func New[T any](opts ...Option) *Series[T] {
	cfg := applyOpts(opts)
	return &Series[T]{data: make([]T, 0, cfg.capacity)}
}

// Of returns a Series containing a copy of the values.
func Of[T any](values ...T) *Series[T] {
	return FromSlice(values)
}

// FromSlice returns a Series containing a copy of the values. Use
// [Series.AsSlice] to convert back.
func FromSlice[T any](values []T) *Series[T] {
	return &Series[T]{data: slices.Clone(values)}
}

// Collect drains the sequence into a new Series.
func Collect[T any](items iter.Seq[T], opts ...Option) *Series[T] {
	ret := New[T](opts...)
	ret.Extend(items)
	return ret
}

// Equal reports whether the series have the same length and elements.
func Equal[T comparable](a, b *Series[T]) bool {
	return slices.Equal(a.items(), b.items())
}

// Push appends a value to the end of the series.
func (s *Series[T]) Push(v T) {
	s.data = append(s.data, v)
}

// PopFront removes and returns the oldest value in the series. It
// returns false if the series is empty.
func (s *Series[T]) PopFront() (T, bool) {
	var zero T
	if len(s.data) == 0 {
		return zero, false
	}
	ret := s.data[0]
	// Release the reference so the slot can be collected.
	s.data[0] = zero
	s.data = s.data[1:]
	return ret, true
}

// IsEmpty returns true if the series has no elements.
func (s *Series[T]) IsEmpty() bool { return len(s.items()) == 0 }

// Len returns the number of elements in the series.
func (s *Series[T]) Len() int { return len(s.items()) }

// First returns the oldest value, or false if the series is empty.
func (s *Series[T]) First() (T, bool) { return s.Get(0) }

// Last returns the newest value, or false if the series is empty.
func (s *Series[T]) Last() (T, bool) { return s.Get(len(s.data) - 1) }

// Get returns the value at the index, or false if the index is out of
// range.
func (s *Series[T]) Get(idx int) (T, bool) {
	if idx < 0 || idx >= len(s.data) {
		var zero T
		return zero, false
	}
	return s.data[idx], true
}

// Clear removes all elements from the series. The allocated storage is
// retained for reuse.
func (s *Series[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
}

// Slice returns a copy of the elements in the half-open range [start,
// end). A [*BoundsError] is returned if the range is invalid.
func (s *Series[T]) Slice(start, end int) (*Series[T], error) {
	if start < 0 || start > end || end > len(s.data) {
		return nil, &BoundsError{Start: start, End: end, Len: len(s.data)}
	}
	return FromSlice(s.data[start:end]), nil
}

// Append adds a copy of the elements of other to the end of the
// receiver.
func (s *Series[T]) Append(other *Series[T]) {
	s.data = append(s.data, other.data...)
}

// Extend appends all values from the sequence.
func (s *Series[T]) Extend(items iter.Seq[T]) {
	s.data = slices.AppendSeq(s.data, items)
}

// Reverse returns a new series with the elements in the opposite
// order. The receiver is unchanged.
func (s *Series[T]) Reverse() *Series[T] {
	ret := s.Clone()
	slices.Reverse(ret.data)
	return ret
}

// Clone returns a deep copy of the series storage. Elements are copied
// by assignment.
func (s *Series[T]) Clone() *Series[T] {
	return FromSlice(s.data)
}

// Filter returns a new series with the elements for which the predicate
// returns true, in their original order.
func (s *Series[T]) Filter(pred func(T) bool) *Series[T] {
	ret := &Series[T]{}
	for _, v := range s.data {
		if pred(v) {
			ret.data = append(ret.data, v)
		}
	}
	return ret
}

// At returns the element at the index. It panics if the index is out
// of range.
func (s *Series[T]) At(idx int) T { return s.data[idx] }

// Set replaces the element at the index. It panics if the index is out
// of range.
func (s *Series[T]) Set(idx int, v T) { s.data[idx] = v }

// Ref returns a pointer to the element at the index. It panics if the
// index is out of range. The pointer is invalidated by any operation
// that grows or shrinks the series.
func (s *Series[T]) Ref(idx int) *T { return &s.data[idx] }

// Range returns a view of the elements in [start, end). The view shares
// storage with the series; its capacity is clipped so that appending to
// it never overwrites the series. It panics if the range is invalid.
func (s *Series[T]) Range(start, end int) []T {
	// Clip to the length first so that end is checked against Len, not
	// against the spare capacity.
	live := s.data[:len(s.data):len(s.data)]
	return live[start:end:end]
}

// RangeFrom is equivalent to Range(start, s.Len()).
func (s *Series[T]) RangeFrom(start int) []T { return s.Range(start, len(s.data)) }

// RangeTo is equivalent to Range(0, end).
func (s *Series[T]) RangeTo(end int) []T { return s.Range(0, end) }

// AsSlice returns a view of all elements. See [Series.Range].
func (s *Series[T]) AsSlice() []T { return s.Range(0, len(s.data)) }

// All yields the index and value of each element, oldest first.
func (s *Series[T]) All() iter.Seq2[int, T] { return slices.All(s.data) }

// Backward yields the index and value of each element, newest first.
func (s *Series[T]) Backward() iter.Seq2[int, T] { return slices.Backward(s.data) }

// Values yields each element, oldest first.
func (s *Series[T]) Values() iter.Seq[T] { return slices.Values(s.data) }

// String is for debugging use only.
func (s *Series[T]) String() string {
	return fmt.Sprint(s.items())
}

// items tolerates a nil receiver.
func (s *Series[T]) items() []T {
	if s == nil {
		return nil
	}
	return s.data
}
