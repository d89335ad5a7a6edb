// Copyright 2021 Aleksandr Demakin. All rights reserved.

// Package minmax provides branch-free minimum and maximum for fixed-width
// signed integers. The comparison outcome is folded into a bit mask and
// the result is XOR-selected, so the data flow never branches on it.
// A single type parameter types both operands, which makes mixed-width
// or mixed-signedness calls compile-time errors.
package minmax

import (
	"golang.org/x/exp/constraints"

	"github.com/avdva/numbits/internal/mathutil"
)

// mask returns x^y under all-one bits when x < y, and zero otherwise.
// XOR against either operand then selects the right one. The mask comes
// from negating the 0/1 comparison result, not from the sign of x-y,
// which would overflow for operands of opposite signs.
func mask[T constraints.Signed](x, y T) T {
	return (x ^ y) & -T(mathutil.Bit(x < y))
}

// Min returns the smaller of x and y.
func Min[T constraints.Signed](x, y T) T {
	return y ^ mask(x, y)
}

// Max returns the larger of x and y.
func Max[T constraints.Signed](x, y T) T {
	return x ^ mask(x, y)
}

// MinMax returns (min, max), computing the selection mask once.
func MinMax[T constraints.Signed](x, y T) (mn, mx T) {
	m := mask(x, y)
	return y ^ m, x ^ m
}

// MaxMin is MinMax with the results swapped.
func MaxMin[T constraints.Signed](x, y T) (mx, mn T) {
	m := mask(x, y)
	return x ^ m, y ^ m
}

// Abs returns the absolute value of v in the same mask-select style.
// The minimum value of T has no positive counterpart and wraps to itself.
func Abs[T constraints.Signed](v T) T {
	m := -T(mathutil.Bit(v < 0))
	return (v + m) ^ m
}

// Sign returns -1 for negative v, 0 for zero, and 1 otherwise.
func Sign[T constraints.Signed](v T) T {
	return T(mathutil.Bit(v > 0)) - T(mathutil.Bit(v < 0))
}

// SameSign reports whether x and y have the same sign bit,
// so a zero counts as positive.
func SameSign[T constraints.Signed](x, y T) bool {
	return x^y >= 0
}

// Clamp limits v to [lo, hi]. lo must not exceed hi.
func Clamp[T constraints.Signed](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
