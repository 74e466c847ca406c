// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package series provides an ordered, generic container for time-series
// data and a small algebra over it.
//
// A [Series] holds elements of a single type in insertion order. The
// position of an element is its time step; there are no timestamps.
// Every transform allocates a new Series that owns its data, so derived
// values never alias the series they were computed from.
//
// # Creating a series
//
// The zero value is an empty, ready-to-use Series. Use [New] to
// pre-size the backing storage, or build one from existing values with
// [Of], [FromSlice], or [Collect]:
//
//	s := series.New[float64](series.WithCapacity(128))
//	s.Push(1.5)
//
//	prices := series.Of(101.0, 102.5, 99.8)
//	fromIter := series.Collect(maps.Values(m))
//
// # Access and mutation
//
// [Series.First], [Series.Last], [Series.Get], and [Series.PopFront]
// report a missing element with a false second return value. Note that
// PopFront removes the oldest element, not the newest.
//
// [Series.At], [Series.Set], [Series.Ref], and the [Series.Range]
// family behave like slice indexing: an out-of-range position panics.
// The slices returned by the Range methods share storage with the
// series, so writes through them are visible in the series.
//
// [Series.Slice] copies a half-open range and returns a [*BoundsError]
// instead of panicking when the range is invalid.
//
// # Arithmetic
//
// [Add], [Sub], [Mul], and [Div] combine two series position by
// position for any [Number] element type. When the operands differ in
// length, the result has the length of the shorter one and the extra
// elements of the longer operand are ignored. [Combine] accepts an
// arbitrary [Operator] for element types that are not numbers.
//
//	total := series.Add(a, b)
//	ratio := series.Div(series.Sub(b, a), a)
//
// Lagged differences and relative changes live in the [variation]
// sub-package.
//
// # Transforms
//
// [Map] and [Series.Filter] produce new series. [MapErr] and [TryMap]
// apply a fallible callback; a panic in the callback is recovered into
// a [RecoveredError]. A series of [Result] values can be reduced to
// either all of its values or its first error with [Collapse], and
// [CollapseSeq] does the same for an [iter.Seq2] of value/error pairs.
//
// # Encoding
//
// A Series encodes as a flat JSON array or YAML sequence and decodes
// from the same.
//
// # Concurrency
//
// A Series may be read from multiple goroutines. Mutation requires
// external synchronization.
//
// [variation]: https://pkg.go.dev/vawter.tech/series/variation
package series
