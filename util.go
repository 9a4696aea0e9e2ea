package dd

import (
	"math"

	"golang.org/x/exp/constraints"
)

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func floor[T constraints.Float](x T) T {
	return T(math.Floor(float64(x)))
}

// nint rounds to the nearest integer, ties upward.
func nint[T constraints.Float](x T) T {
	f := floor(x)
	if x == f {
		return x
	}
	return floor(x + T(0.5))
}
