// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package series

// Number is the set of element types closed under the built-in
// arithmetic operators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// An Operator combines two elements into a new element without
// modifying either argument.
type Operator[T any] func(x, y T) T

// Combine applies the operator to the elements of a and b, position by
// position. The result has the length of the shorter operand; surplus
// elements of the longer operand are ignored. Neither operand is
// modified.
func Combine[T any](a, b *Series[T], op Operator[T]) *Series[T] {
	n := min(len(a.data), len(b.data))
	ret := &Series[T]{data: make([]T, n)}
	for i := range n {
		ret.data[i] = op(a.data[i], b.data[i])
	}
	return ret
}

// Add returns the elementwise sum a+b. See [Combine] for the handling
// of operands of different lengths.
func Add[T Number](a, b *Series[T]) *Series[T] {
	return Combine(a, b, func(x, y T) T { return x + y })
}

// Sub returns the elementwise difference a-b.
func Sub[T Number](a, b *Series[T]) *Series[T] {
	return Combine(a, b, func(x, y T) T { return x - y })
}

// Mul returns the elementwise product a*b.
func Mul[T Number](a, b *Series[T]) *Series[T] {
	return Combine(a, b, func(x, y T) T { return x * y })
}

// Div returns the elementwise quotient a/b. Division by a zero element
// follows the rules of the element type: floating-point types yield an
// infinity or NaN, while integer types panic.
func Div[T Number](a, b *Series[T]) *Series[T] {
	return Combine(a, b, func(x, y T) T { return x / y })
}
