package dd

// Double-word add/sub/mul/div, after the algorithms surveyed in Joldeş,
// Muller & Popescu, "Tight and rigorous error bounds for basic building
// blocks of double-word arithmetic" (2017). The variant is picked by the
// method name; error bounds below are relative, for float64 components.

// AddFloat returns x + y. The result is within one ulp of the exact sum
// on top of the usual double-word precision (DWPlusFP).
func (x DD[T]) AddFloat(y T) DD[T] {
	s := TwoSum(x.h, y)
	v := x.l + s.l
	return FastTwoSum(s.h, v)
}

// SubFloat returns x - y.
func (x DD[T]) SubFloat(y T) DD[T] {
	s := TwoDiff(x.h, y)
	v := x.l + s.l
	return FastTwoSum(s.h, v)
}

// SubFromFloat returns y - x.
func (x DD[T]) SubFromFloat(y T) DD[T] {
	s := TwoDiff(y, x.h)
	v := s.l - x.l
	return FastTwoSum(s.h, v)
}

// Add returns x + y, bounded by roughly 2^-104 regardless of the signs of
// the operands (AccurateDWPlusDW). Costs about twice as many operations
// as AddSloppy.
func (x DD[T]) Add(y DD[T]) DD[T] {
	s := TwoSum(x.h, y.h)
	t := TwoSum(x.l, y.l)
	c := s.l + t.h
	v := FastTwoSum(s.h, c)
	w := t.l + v.l
	return FastTwoSum(v.h, w)
}

// AddSloppy returns x + y (SloppyDWPlusDW). The error is only bounded
// when x.h and y.h have the same sign; with opposite signs, cancellation
// can leave the entire low-order contribution behind.
func (x DD[T]) AddSloppy(y DD[T]) DD[T] {
	s := TwoSum(x.h, y.h)
	v := x.l + y.l
	w := s.l + v
	return FastTwoSum(s.h, w)
}

// Sub returns x - y with the same bound as Add.
func (x DD[T]) Sub(y DD[T]) DD[T] {
	s := TwoDiff(x.h, y.h)
	t := TwoDiff(x.l, y.l)
	c := s.l + t.h
	v := FastTwoSum(s.h, c)
	w := t.l + v.l
	return FastTwoSum(v.h, w)
}

// SubSloppy returns x - y with the same caveat as AddSloppy: only bounded
// when x.h and -y.h share a sign.
func (x DD[T]) SubSloppy(y DD[T]) DD[T] {
	s := TwoDiff(x.h, y.h)
	v := x.l - y.l
	w := s.l + v
	return FastTwoSum(s.h, w)
}

// MulFloat returns x * y using one fused multiply-add (DWTimesFP3). The
// cheapest and tightest of the scalar multiplies, ~2^-105.
func (x DD[T]) MulFloat(y T) DD[T] {
	c := TwoProd(x.h, y)
	cl := fma(x.l, y, c.l)
	return FastTwoSum(c.h, cl)
}

// MulFloatFast returns x * y without fused multiply-add (DWTimesFP2),
// dropping one renormalization relative to MulFloatAccurate, ~3*2^-106.
func (x DD[T]) MulFloatFast(y T) DD[T] {
	c := TwoProdNoFMA(x.h, y)
	cl2 := x.l * y
	cl3 := c.l + cl2
	return FastTwoSum(c.h, cl3)
}

// MulFloatAccurate returns x * y without fused multiply-add (DWTimesFP1),
// spending an extra renormalization for a ~2^-105 bound.
func (x DD[T]) MulFloatAccurate(y T) DD[T] {
	c := TwoProdNoFMA(x.h, y)
	cl2 := x.l * y
	t := FastTwoSum(c.h, cl2)
	tl2 := t.l + c.l
	return FastTwoSum(t.h, tl2)
}

// MulPow2 returns x * y for y an exact power of two. Both components
// scale exactly; no renormalization is needed.
func (x DD[T]) MulPow2(y T) DD[T] {
	return DD[T]{h: x.h * y, l: x.l * y}
}

// Mul returns x * y, keeping the x.l*y.l cross term for a ~2^-104 bound
// (DWTimesDW3). Requires fused multiply-add; there is deliberately no
// accurate double-word product without it.
func (x DD[T]) Mul(y DD[T]) DD[T] {
	c := TwoProd(x.h, y.h)
	tl0 := x.l * y.l
	tl1 := fma(x.h, y.l, tl0)
	cl2 := fma(x.l, y.h, tl1)
	cl3 := c.l + cl2
	return FastTwoSum(c.h, cl3)
}

// MulFast returns x * y, dropping the x.l*y.l cross term (DWTimesDW2),
// ~2^-96 worst case.
func (x DD[T]) MulFast(y DD[T]) DD[T] {
	c := TwoProd(x.h, y.h)
	tl := x.h * y.l
	cl2 := fma(x.l, y.h, tl)
	cl3 := c.l + cl2
	return FastTwoSum(c.h, cl3)
}

// MulFastNoFMA returns x * y using Dekker's product (DWTimesDW1), the
// only double-word product available without fused multiply-add.
func (x DD[T]) MulFastNoFMA(y DD[T]) DD[T] {
	c := TwoProdNoFMA(x.h, y.h)
	tl1 := x.h * y.l
	tl2 := x.l * y.h
	cl2 := tl1 + tl2
	cl3 := c.l + cl2
	return FastTwoSum(c.h, cl3)
}

// Sqr returns x * x. The squaring saves a split and two partial products
// over Mul with identical arguments.
func (x DD[T]) Sqr() DD[T] {
	p := twoSqr(x.h)
	e := p.l + 2*x.h*x.l
	e += x.l * x.l
	return FastTwoSum(p.h, e)
}

// DivFloat returns x / y: a native leading quotient, one exact product to
// estimate the remainder, and a final divide-and-fold (DWDivFP3). No mode
// parameter; accuracy matches the accurate multiplies, ~2^-104.
func (x DD[T]) DivFloat(y T) DD[T] {
	th := x.h / y
	p := TwoProd(th, y)
	dh := x.h - p.h
	dt := dh - p.l
	delta := dt + x.l
	tl := delta / y
	return FastTwoSum(th, tl)
}

// DivFloatNoFMA is DivFloat with the remainder estimated via Dekker's
// product instead of a fused multiply-add.
func (x DD[T]) DivFloatNoFMA(y T) DD[T] {
	th := x.h / y
	p := TwoProdNoFMA(th, y)
	dh := x.h - p.h
	dt := dh - p.l
	delta := dt + x.l
	tl := delta / y
	return FastTwoSum(th, tl)
}

// Div returns x / y using one Newton correction of the native quotient
// (DWDivDW2), ~3.5*2^-104.
func (x DD[T]) Div(y DD[T]) DD[T] {
	th := x.h / y.h
	r := y.MulFloat(th)
	ph := x.h - r.h
	dl := x.l - r.l
	delta := ph + dl
	tl := delta / y.h
	return FastTwoSum(th, tl)
}

// DivNoFMA is Div with the internal scalar multiply done without fused
// multiply-add.
func (x DD[T]) DivNoFMA(y DD[T]) DD[T] {
	th := x.h / y.h
	r := y.MulFloatAccurate(th)
	ph := x.h - r.h
	dl := x.l - r.l
	delta := ph + dl
	tl := delta / y.h
	return FastTwoSum(th, tl)
}

// DivAccurate returns x / y by refining the reciprocal of y independently
// of any direct division (DWDivDW3): roughly double the operations of Div
// for a ~2^-104 bound. Requires fused multiply-add; there is no accurate
// double-word division without it.
func (x DD[T]) DivAccurate(y DD[T]) DD[T] {
	th := 1 / y.h
	rh := fma(-y.h, th, 1)
	rl := -(y.l * th)
	e := FastTwoSum(rh, rl)
	delta := e.MulFloat(th)
	m := delta.AddFloat(th)
	return x.MulFast(m)
}
