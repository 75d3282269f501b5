package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Digit returns the digit value of the byte.
func Digit(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("%w: not a digit: %q", ErrBadCell, b)
	}
	return int(b - '0'), nil
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}
