package dd

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// DD is a double-word floating point number: the unevaluated sum h + l of
// two native floats, where |l| is at most half an ulp of h. That
// normalization is assumed, never enforced; constructing a DD from a
// mismatched pair yields silently inaccurate results, not a panic.
type DD[T constraints.Float] struct {
	h, l T
}

// FromRaw builds a DD directly from its components. The caller is
// responsible for normalization; when in doubt, use TwoSum.
func FromRaw[T constraints.Float](h, l T) DD[T] { return DD[T]{h: h, l: l} }

// FromFloat builds a DD holding exactly the native value v.
func FromFloat[T constraints.Float](v T) DD[T] { return DD[T]{h: v} }

// Raw returns the high and low components.
func (x DD[T]) Raw() (h, l T) { return x.h, x.l }

func (x DD[T]) Hi() T { return x.h }
func (x DD[T]) Lo() T { return x.l }

// Eval collapses x to the best single native approximation of its value.
func (x DD[T]) Eval() T { return x.h + x.l }

// Neg returns -x. Componentwise negation is exact.
func (x DD[T]) Neg() DD[T] { return DD[T]{h: -x.h, l: -x.l} }

func (x DD[T]) IsZero() bool { return x.Eval() == 0 }

// IsNaN reports whether x is the NaN pair used to signal domain errors,
// or has otherwise absorbed a NaN through ordinary contagion.
func (x DD[T]) IsNaN() bool { return x.h != x.h || x.l != x.l }

func (x DD[T]) Equal(y DD[T]) bool { return x.h == y.h && x.l == y.l }

// Nint rounds x to the nearest integer, ties upward. The low word breaks
// ties in the high word.
func (x DD[T]) Nint() DD[T] {
	hi := nint(x.h)
	var lo T
	if hi == x.h {
		// High word is already an integer; round the low word.
		lo = nint(x.l)
		// Renormalize, needed when l rounds to a non-zero integer.
		return FastTwoSum(hi, lo)
	}
	if abs(hi-x.h) == T(0.5) && x.l < 0 {
		// The high word rounded on a tie; the low word decides it.
		hi--
	}
	return DD[T]{h: hi, l: lo}
}

// AsBigFloat returns x as a 240-bit big.Float, more than enough to hold
// the exact sum h + l for any normalized pair. NaN is returned as nil,
// since big.Float cannot represent it.
func (x DD[T]) AsBigFloat() *big.Float {
	if x.IsNaN() {
		return nil
	}
	out := new(big.Float).SetPrec(bigFloatPrec)
	out.SetFloat64(float64(x.h))
	l := new(big.Float).SetPrec(bigFloatPrec).SetFloat64(float64(x.l))
	return out.Add(out, l)
}

func (x DD[T]) String() string {
	b := x.AsBigFloat()
	if b == nil {
		return "NaN"
	}
	return b.Text('g', decimalDigits)
}

func (x DD[T]) Format(s fmt.State, c rune) {
	b := x.AsBigFloat()
	if b == nil {
		fmt.Fprint(s, "NaN")
		return
	}
	b.Format(s, c)
}
