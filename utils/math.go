package utils

import "golang.org/x/exp/constraints"

// Number is the set of types the numeric helpers operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the smaller value between two numbers.
func Min[T constraints.Ordered](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger value between two numbers.
func Max[T constraints.Ordered](x, y T) T {
	if x > y {
		return x
	}
	return y
}

// Abs returns the absolut value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp restricts x to the [lo, hi] interval.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// Floor converts a number to int rounding towards negative infinity.
func Floor[T Number](x T) int {
	i := int(x)
	if T(i) > x {
		i--
	}
	return i
}

// Ceil converts a number to int rounding towards positive infinity.
func Ceil[T Number](x T) int {
	i := int(x)
	if T(i) < x {
		i++
	}
	return i
}
