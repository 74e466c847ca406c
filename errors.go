// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import (
	"errors"
	"fmt"

	"vawter.tech/series/internal/safe"
)

// ErrOutOfBounds is matched by any [BoundsError] via [errors.Is].
var ErrOutOfBounds = errors.New("out of bounds")

// A BoundsError is returned when a requested range does not fit within
// a series.
type BoundsError struct {
	Start, End int // The requested half-open range.
	Len        int // The length of the series at the time of the request.
}

// Error implements error.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("range [%d:%d] with length %d: %v",
		e.Start, e.End, e.Len, ErrOutOfBounds)
}

// Unwrap returns [ErrOutOfBounds].
func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}

// A RecoveredError is recorded by [MapErr] and [TryMap] when the
// callback panics. The Err field holds the panic value, converted to an
// error if necessary.
type RecoveredError = safe.RecoveredError
