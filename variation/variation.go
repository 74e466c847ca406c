// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package variation computes lagged changes over a [series.Series].
//
// Both functions compare each element with the element offset
// positions before it, so the result is offset elements shorter than
// the input. An offset equal to the length of the input produces an
// empty result, while a larger (or negative) offset is reported as a
// [series.BoundsError].
package variation

import (
	"fmt"

	"vawter.tech/series"
)

// Diff returns the lagged difference of the series. Element i of the
// result is s[offset+i] - s[i].
func Diff[T series.Number](s *series.Series[T], offset int) (*series.Series[T], error) {
	later, base, err := lagged(s, offset)
	if err != nil {
		return nil, err
	}
	return series.Sub(later, base), nil
}

// PctChange returns the lagged relative change of the series. Element i
// of the result is (s[offset+i] - s[i]) / s[i].
//
// A zero base element is not treated specially: floating-point types
// produce an infinity or NaN and integer types panic. Integer types
// also truncate the quotient.
func PctChange[T series.Number](s *series.Series[T], offset int) (*series.Series[T], error) {
	later, base, err := lagged(s, offset)
	if err != nil {
		return nil, err
	}
	return series.Div(series.Sub(later, base), base), nil
}

// lagged splits the series into the trailing and leading windows that
// are offset positions apart.
func lagged[T any](s *series.Series[T], offset int) (later, base *series.Series[T], err error) {
	n := s.Len()
	later, err = s.Slice(offset, n)
	if err != nil {
		return nil, nil, fmt.Errorf("offset %d: %w", offset, err)
	}
	base, err = s.Slice(0, n-offset)
	if err != nil {
		return nil, nil, fmt.Errorf("offset %d: %w", offset, err)
	}
	return later, base, nil
}
