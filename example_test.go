// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series_test

import (
	"errors"
	"fmt"
	"strconv"

	"vawter.tech/series"
)

func Example() {
	// Record a few observations.
	prices := series.New[float64](series.WithCapacity(4))
	prices.Push(100)
	prices.Push(102)
	prices.Push(101)
	prices.Push(105)

	fees := series.Of(1.0, 1.0, 2.0, 2.0)
	net := series.Sub(prices, fees)
	fmt.Println(net)

	// Keep only the observations above a threshold.
	fmt.Println(net.Filter(func(v float64) bool { return v > 100 }))

	// Output:
	// [99 101 99 103]
	// [101 103]
}

func ExampleSeries_PopFront() {
	s := series.Of("a", "b")
	for {
		v, ok := s.PopFront()
		if !ok {
			break
		}
		fmt.Println(v)
	}

	// Output:
	// a
	// b
}

func ExampleSeries_Slice() {
	s := series.Of(10, 20, 30, 40)

	sub, err := s.Slice(1, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(sub)

	_, err = s.Slice(2, 5)
	fmt.Println(errors.Is(err, series.ErrOutOfBounds))

	// Output:
	// [20 30]
	// true
}

func ExampleAdd() {
	// The shorter operand determines the length of the result.
	a := series.Of(1, 2, 3, 4)
	b := series.Of(10, 20)
	fmt.Println(series.Add(a, b))

	// Output:
	// [11 22]
}

func ExampleMap() {
	s := series.Of(1, 2, 3)
	fmt.Println(series.Map(s, func(x int) int { return x * 2 }))

	// Output:
	// [2 4 6]
}

func ExampleTryMap() {
	parsed, err := series.TryMap(series.Of("1", "2", "3"), strconv.Atoi)
	fmt.Println(parsed, err)

	_, err = series.TryMap(series.Of("1", "x", "3"), strconv.Atoi)
	fmt.Println(err)

	// Output:
	// [1 2 3] <nil>
	// index 1: strconv.Atoi: parsing "x": invalid syntax
}

func ExampleCollapse() {
	results := series.Of(series.OK(1), series.OK(2))
	values, err := series.Collapse(results)
	fmt.Println(values, err)

	results.Push(series.Fail[int](errors.New("sensor offline")))
	results.Push(series.OK(4))
	_, err = series.Collapse(results)
	fmt.Println(err)

	// Output:
	// [1 2] <nil>
	// sensor offline
}
