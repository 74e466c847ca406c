// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	r := require.New(t)

	s := Of(1, 2, 3)
	doubled := Map(s, func(x int) int { return x * 2 })
	r.Equal([]int{2, 4, 6}, doubled.AsSlice())
	r.Equal([]int{1, 2, 3}, s.AsSlice())

	labels := Map(s, strconv.Itoa)
	r.Equal([]string{"1", "2", "3"}, labels.AsSlice())

	r.True(Map(New[int](), strconv.Itoa).IsEmpty())
}

func TestMapErr(t *testing.T) {
	r := require.New(t)

	s := Of("1", "two", "3", "")
	out := MapErr(s, strconv.Atoi)
	r.Equal(4, out.Len())

	v, err := out.At(0).Get()
	r.NoError(err)
	r.Equal(1, v)

	_, err = out.At(1).Get()
	var numErr *strconv.NumError
	r.ErrorAs(err, &numErr)
	r.Equal("two", numErr.Num)

	v, err = out.At(2).Get()
	r.NoError(err)
	r.Equal(3, v)

	// Every element is evaluated, even after a failure.
	r.Error(out.At(3).Err)
}

func TestMapErrPanic(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	s := Of(1, 2, 3)
	out := MapErr(s, func(x int) (int, error) {
		if x == 2 {
			panic(boom)
		}
		return x * 10, nil
	})

	r.NoError(out.At(0).Err)
	r.Equal(10, out.At(0).Value)

	var recovered *RecoveredError
	r.ErrorAs(out.At(1).Err, &recovered)
	r.ErrorIs(out.At(1).Err, boom)
	r.Zero(out.At(1).Value)

	r.NoError(out.At(2).Err)
	r.Equal(30, out.At(2).Value)
}

func TestTryMap(t *testing.T) {
	r := require.New(t)

	out, err := TryMap(Of("4", "5", "6"), strconv.Atoi)
	r.NoError(err)
	r.Equal([]int{4, 5, 6}, out.AsSlice())

	out, err = TryMap(New[string](), strconv.Atoi)
	r.NoError(err)
	r.True(out.IsEmpty())
}

func TestTryMapStopsAtFirstError(t *testing.T) {
	r := require.New(t)

	errOdd := errors.New("odd")
	var seen []int
	out, err := TryMap(Of(2, 4, 5, 6, 7), func(x int) (string, error) {
		seen = append(seen, x)
		if x%2 != 0 {
			return "", fmt.Errorf("%d: %w", x, errOdd)
		}
		return strconv.Itoa(x), nil
	})
	r.Nil(out)
	r.ErrorIs(err, errOdd)
	r.EqualError(err, "index 2: 5: odd")
	r.Equal([]int{2, 4, 5}, seen)
}

func TestTryMapPanic(t *testing.T) {
	r := require.New(t)

	_, err := TryMap(Of(0, 1), func(x int) (int, error) {
		return 10 / x, nil
	})
	var recovered *RecoveredError
	r.ErrorAs(err, &recovered)
	r.ErrorContains(err, "index 0: recovered: runtime error: integer divide by zero")
}
