/*
Package dd provides a double-word ("double-double") floating point type,
DD, built from an unevaluated pair of native floats. A DD carries roughly
twice the significand precision of the native type (about 107 bits for
float64) without the cost of arbitrary precision arithmetic.

DD is a value type; all operations return new values.

Simple example:

	x := dd.FromFloat(2.0)
	fmt.Println(x.Sqrt())

DD values can be created from a variety of sources:

	FromRaw[T](h, l T) DD[T]
	FromFloat[T](v T) DD[T]
	TwoSum[T](a, b T) DD[T]
	TwoProd[T](a, b T) DD[T]

Operations that trade accuracy for speed are selected by method name, not
by a runtime flag: Add is the always-bounded variant, AddSloppy the cheap
one; Mul uses fused multiply-add, MulFastNoFMA does not. Combinations
without a proven error bound have no corresponding method, so selecting
one is a compile error rather than a runtime surprise.

Domain errors (negative Sqrt argument, trigonometric range reduction
failure) are reported by returning a DD whose both components are NaN;
check with IsNaN. No operation panics or returns an error value.
*/
package dd
