package dd

import "math"

// Sqrt returns the square root of x to double-word accuracy (~2^-104
// relative), via Karp's trick: with r an approximation of 1/sqrt(x),
//
//	sqrt(x) = x*r + (x - (x*r)^2) * r/2   (approximately)
//
// which doubles the accuracy of r while needing only native-precision
// multiplies for the correction term.
//
// Sqrt(0) is exactly zero. A negative x yields a NaN pair.
func (x DD[T]) Sqrt() DD[T] {
	if x.IsZero() {
		return DD[T]{}
	}
	if x.h < 0 {
		return nanPair[T]()
	}

	r := 1 / T(math.Sqrt(float64(x.h)))
	ax := x.h * r
	resid := x.Sub(twoSqr(ax))
	return TwoSum(ax, resid.h*r*T(0.5))
}
