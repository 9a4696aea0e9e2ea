package dd

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestAddFloat(t *testing.T) {
	for _, tc := range []struct {
		x    DD[float64]
		y    float64
		want DD[float64]
	}{
		{dd64(1.0, 0), 2.0, dd64(3.0, 0)},
		{dd64(0.5, 0), 0.25, dd64(0.75, 0)},
		{dd64(1.0, 1e-17), 1.0, dd64(2.0, 1e-17)},
		{dd64(1.0, 0), -1.0, dd64(0, 0)},
	} {
		t.Run(fmt.Sprintf("%v+%g=%v", tc.x, tc.y, tc.want), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(tc.x.AddFloat(tc.y).Equal(tc.want), "found %v", tc.x.AddFloat(tc.y))
		})
	}
}

func TestSubFloat(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(dd64(0.75, 0).SubFloat(0.25).Equal(dd64(0.5, 0)))
	tt.MustAssert(dd64(0.5, 0).SubFromFloat(1.0).Equal(dd64(0.5, 0)))
	tt.MustAssert(dd64(3.0, 0).SubFromFloat(1.0).Equal(dd64(-2.0, 0)))
}

// Addition must commute bit for bit in both modes.
func TestAddCommutes(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		x, y := randDD64(globalRNG), randDD64(globalRNG)
		tt.MustAssert(x.Add(y).Equal(y.Add(x)), "%v + %v", x, y)
		tt.MustAssert(x.AddSloppy(y).Equal(y.AddSloppy(x)), "%v + %v (sloppy)", x, y)
	}
}

// Sub is Add of the exact negation, in both modes.
func TestSubMatchesAddOfNegation(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		x, y := randDD64(globalRNG), randDD64(globalRNG)
		tt.MustAssert(x.Sub(y).Equal(x.Add(y.Neg())), "%v - %v", x, y)
		tt.MustAssert(x.SubSloppy(y).Equal(x.AddSloppy(y.Neg())), "%v - %v (sloppy)", x, y)
	}
}

// Multiplying by exactly 1.0 must return the operand unchanged in every
// mode/FMA combination.
func TestMulIdentity(t *testing.T) {
	one := FromFloat(1.0)
	muls := []struct {
		name string
		fn   func(x DD[float64]) DD[float64]
	}{
		{"mul", func(x DD[float64]) DD[float64] { return x.Mul(one) }},
		{"mulfast", func(x DD[float64]) DD[float64] { return x.MulFast(one) }},
		{"mulfastnofma", func(x DD[float64]) DD[float64] { return x.MulFastNoFMA(one) }},
		{"mulfloat", func(x DD[float64]) DD[float64] { return x.MulFloat(1.0) }},
		{"mulfloatfast", func(x DD[float64]) DD[float64] { return x.MulFloatFast(1.0) }},
		{"mulfloataccurate", func(x DD[float64]) DD[float64] { return x.MulFloatAccurate(1.0) }},
	}
	for _, m := range muls {
		t.Run(m.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(m.fn(dd64(1.0, 1e-17)).Equal(dd64(1.0, 1e-17)))
			for i := 0; i < 2000; i++ {
				x := randDD64(globalRNG)
				tt.MustAssert(m.fn(x).Equal(x), "%v * 1", x)
			}
		})
	}
}

func TestMulFloatCarriesLowWord(t *testing.T) {
	tt := assert.WrapTB(t)

	got := dd64(1.0, 1e-20).MulFloat(3.0)
	tt.MustEqual(3.0, got.Hi())

	// The low word must be within one rounding of 3e-20.
	d := new(big.Float).SetPrec(bigFloatPrec).SetFloat64(got.Lo())
	d.Sub(d, bigs("3e-20"))
	d.Abs(d)
	tt.MustAssert(d.Cmp(bigs("1e-35")) < 0, "low word %g too far from 3e-20", got.Lo())
}

func TestMulPow2(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(dd64(1.5, 1e-17).MulPow2(2.0).Equal(dd64(3.0, 2e-17)))
	tt.MustAssert(dd64(1.5, 1e-17).MulPow2(0.5).Equal(dd64(0.75, 5e-18)))
}

func TestSqrMatchesMul(t *testing.T) {
	tt := assert.WrapTB(t)
	budget := pow2(-100)
	for i := 0; i < 2000; i++ {
		x := randDD64(globalRNG)
		ref := bigMul(x.AsBigFloat(), x.AsBigFloat())
		tt.MustAssert(relDiff(x.Sqr(), ref).Cmp(budget) <= 0, "%v^2", x)
	}
}

// Dividing then multiplying back must reproduce the dividend to roughly
// double-word precision.
func TestDivRoundTrip(t *testing.T) {
	divs := []struct {
		name string
		fn   func(x, y DD[float64]) DD[float64]
	}{
		{"div", func(x, y DD[float64]) DD[float64] { return x.Div(y) }},
		{"divnofma", func(x, y DD[float64]) DD[float64] { return x.DivNoFMA(y) }},
		{"divaccurate", func(x, y DD[float64]) DD[float64] { return x.DivAccurate(y) }},
	}
	for _, d := range divs {
		t.Run(d.name, func(t *testing.T) {
			tt := assert.WrapTB(t)
			budget := pow2(-99)
			for i := 0; i < 2000; i++ {
				x := randDD64(globalRNG)
				var y DD[float64]
				for {
					y = randDD64(globalRNG)
					if y.Hi() > 1e-6 || y.Hi() < -1e-6 {
						break
					}
				}
				rt := d.fn(x, y).Mul(y)
				tt.MustAssert(relDiff(rt, x.AsBigFloat()).Cmp(budget) <= 0, "(%v / %v) * %v", x, y, y)
			}
		})
	}
}

func TestDivFloatExactCases(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(dd64(3.0, 0).DivFloat(2.0).Equal(dd64(1.5, 0)))
	tt.MustAssert(dd64(1.0, 0).DivFloat(-4.0).Equal(dd64(-0.25, 0)))
	tt.MustAssert(dd64(3.0, 0).DivFloatNoFMA(2.0).Equal(dd64(1.5, 0)))
}

// The sloppy error bound only holds when the high words share a sign;
// check it actually delivers in that regime.
func TestAddSloppySameSignIsBounded(t *testing.T) {
	tt := assert.WrapTB(t)
	budget := pow2(-100)
	for i := 0; i < 5000; i++ {
		x, y := randDD64(globalRNG), randDD64(globalRNG)
		if (x.Hi() < 0) != (y.Hi() < 0) {
			y = y.Neg()
		}
		ref := bigAdd(x.AsBigFloat(), y.AsBigFloat())
		tt.MustAssert(relDiff(x.AddSloppy(y), ref).Cmp(budget) <= 0, "%v + %v", x, y)
	}
}
