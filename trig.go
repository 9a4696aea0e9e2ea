package dd

import "golang.org/x/exp/constraints"

// Truncated Taylor evaluation plus the QD library's three-stage range
// reduction (modulo 2*pi, then pi/2, then pi/16). The small-angle
// evaluators are only valid on |a| <= pi/32, which the reduction
// guarantees before dispatching to them.

// sinTaylor computes sin(a) by Taylor series. Assumes |a| <= pi/32.
func sinTaylor[T constraints.Float](a DD[T]) DD[T] {
	if a.IsZero() {
		return DD[T]{}
	}

	thresh := T(0.5) * abs(a.Eval()) * eps
	x := a.Sqr().Neg()
	s := a
	r := a
	i := 0
	for {
		r = r.Mul(x)
		t := r.Mul(pairConst[T](invFact[i]))
		s = s.Add(t)
		i += 2
		if i >= nInvFact || abs(t.Eval()) <= thresh {
			break
		}
	}
	return s
}

// cosTaylor computes cos(a) by Taylor series. Assumes |a| <= pi/32.
func cosTaylor[T constraints.Float](a DD[T]) DD[T] {
	if a.IsZero() {
		return FromFloat[T](1)
	}

	thresh := T(0.5) * eps
	x := a.Sqr().Neg()
	r := x
	s := r.MulPow2(T(0.5)).AddFloat(1)
	i := 1
	for {
		r = r.Mul(x)
		t := r.Mul(pairConst[T](invFact[i]))
		s = s.Add(t)
		i += 2
		if i >= nInvFact || abs(t.Eval()) <= thresh {
			break
		}
	}
	return s
}

// sincosTaylor computes sin(a) and cos(a) together, deriving the cosine
// as sqrt(1 - sin^2). That is only sign-correct while the cosine is
// non-negative, which holds on the evaluator's whole |a| <= pi/32 domain.
func sincosTaylor[T constraints.Float](a DD[T]) (sin, cos DD[T]) {
	if a.IsZero() {
		return DD[T]{}, FromFloat[T](1)
	}
	sin = sinTaylor(a)
	cos = sin.Sqr().SubFromFloat(1).Sqrt()
	return sin, cos
}

// Sin returns sin(x) to roughly 2^-100 absolute accuracy.
//
// The argument is reduced modulo 2*pi, then to an offset j of the nearest
// multiple of pi/2, then to an offset k of the nearest multiple of pi/16,
// leaving a remainder within the Taylor evaluators' domain. The final
// value is assembled from the k*pi/16 sine/cosine tables by the angle sum
// identities.
//
// The fixed tables resolve |j| <= 2 and |k| <= 4 only. Arguments too
// large for the reduction to keep that property (magnitudes around 2^104
// and beyond) yield a NaN pair.
func (x DD[T]) Sin() DD[T] {
	if x.IsZero() {
		return DD[T]{}
	}

	// Reduce modulo 2*pi.
	z := x.DivAccurate(twoPi[T]()).Nint()
	r := x.Sub(twoPi[T]().Mul(z))

	// Reduce modulo pi/2, then pi/16.
	q := floor(r.h/piOver2[T]().h + T(0.5))
	t := r.Sub(piOver2[T]().MulFloat(q))
	j := int(q)
	q = floor(t.h/piOver16[T]().h + T(0.5))
	t = t.Sub(piOver16[T]().MulFloat(q))
	k := int(q)
	absK := k
	if absK < 0 {
		absK = -absK
	}

	if j < -2 || j > 2 {
		// Cannot reduce modulo pi/2.
		return nanPair[T]()
	}
	if absK > 4 {
		// Cannot reduce modulo pi/16.
		return nanPair[T]()
	}

	if k == 0 {
		switch j {
		case 0:
			return sinTaylor(t)
		case 1:
			return cosTaylor(t)
		case -1:
			return cosTaylor(t).Neg()
		default: // j == +/-2: sin(t -+ pi) == -sin(t) either way.
			return sinTaylor(t).Neg()
		}
	}

	u := pairConst[T](cosTable[absK-1])
	v := pairConst[T](sinTable[absK-1])
	sinT, cosT := sincosTaylor(t)

	switch {
	case j == 0 && k > 0:
		return u.Mul(sinT).Add(v.Mul(cosT))
	case j == 0:
		return u.Mul(sinT).Sub(v.Mul(cosT))
	case j == 1 && k > 0:
		return u.Mul(cosT).Sub(v.Mul(sinT))
	case j == 1:
		return u.Mul(cosT).Add(v.Mul(sinT))
	case j == -1 && k > 0:
		return v.Mul(sinT).Sub(u.Mul(cosT))
	case j == -1:
		return u.Mul(cosT).Neg().Sub(v.Mul(sinT))
	case k > 0: // j == +/-2
		return u.Mul(sinT).Neg().Sub(v.Mul(cosT))
	default:
		return v.Mul(cosT).Sub(u.Mul(sinT))
	}
}
