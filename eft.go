package dd

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// This file contains the error-free transformations the double-word
// algorithms are assembled from. Each primitive returns both the rounded
// result of a native float operation and its exact rounding error, packed
// into a DD.
//
// Preconditions are the caller's problem: FastTwoSum with |a| < |b| does
// not trap, it silently returns garbage in the low word.

// TwoSum returns s = RN(a+b) and the exact error e such that s + e == a + b.
// Valid for any finite a and b (Knuth/Møller).
func TwoSum[T constraints.Float](a, b T) DD[T] {
	s := a + b
	bb := s - a
	e := (a - (s - bb)) + (b - bb)
	return DD[T]{h: s, l: e}
}

// TwoDiff returns s = RN(a-b) and the exact error e such that s + e == a - b.
func TwoDiff[T constraints.Float](a, b T) DD[T] {
	s := a - b
	bb := s - a
	e := (a - (s - bb)) - (b + bb)
	return DD[T]{h: s, l: e}
}

// FastTwoSum is the cheaper variant of TwoSum, valid only when |a| >= |b|
// (or a == 0). The precondition is not checked.
func FastTwoSum[T constraints.Float](a, b T) DD[T] {
	s := a + b
	e := b - (s - a)
	return DD[T]{h: s, l: e}
}

// Split divides a into two non-overlapping halves h + l using Veltkamp's
// scheme, so that products of halves are exact in native precision.
func Split[T constraints.Float](a T) DD[T] {
	// 2^ceil(p/2)+1 for significand size p: 27 bits of float64, 12 of float32.
	var splitter T
	if unsafe.Sizeof(a) == 4 {
		splitter = 1<<12 + 1
	} else {
		splitter = 1<<27 + 1
	}
	t := splitter * a
	h := t - (t - a)
	l := a - h
	return DD[T]{h: h, l: l}
}

// TwoProd returns p = RN(a*b) and the exact error e such that p + e == a * b.
// Requires hardware fused multiply-add; use TwoProdNoFMA otherwise.
func TwoProd[T constraints.Float](a, b T) DD[T] {
	p := a * b
	e := fma(a, b, -p)
	return DD[T]{h: p, l: e}
}

// TwoProdNoFMA is TwoProd computed with Dekker's splitting instead of a
// fused multiply-add.
func TwoProdNoFMA[T constraints.Float](a, b T) DD[T] {
	p := a * b
	as := Split(a)
	bs := Split(b)
	e := ((as.h*bs.h - p) + as.h*bs.l + as.l*bs.h) + as.l*bs.l
	return DD[T]{h: p, l: e}
}

// twoSqr is the squaring special case of TwoProdNoFMA; it saves one split
// and two partial products.
func twoSqr[T constraints.Float](a T) DD[T] {
	q := a * a
	s := Split(a)
	e := ((s.h*s.h - q) + 2*s.h*s.l) + s.l*s.l
	return DD[T]{h: q, l: e}
}

// fma computes a*b + c with a single rounding.
//
// math.FMA is float64-only; float32 arguments are routed through it, which
// keeps the product term exact (24+24 < 53 significand bits).
func fma[T constraints.Float](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}
