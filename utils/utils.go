// Package utils implements small generic helpers shared across the library.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Min returns the minimum of a and b.
func Min[T constraints.Ordered](a, b T) (r T) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[T constraints.Ordered](a, b T) (r T) {
	if a >= b {
		return a
	}
	return b
}

// Abs returns the absolute value of x.
func Abs[T constraints.Float | constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
