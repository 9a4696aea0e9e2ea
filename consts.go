package dd

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Double-word constants are stored as float64 literal pairs (the QD
// library's values) and narrowed to T at instantiation. For float32 the
// low words carry no extra information, but the high words still round
// correctly.

const (
	// eps is the relative precision of an accurate double-word operation
	// on float64 components: 2^-104.
	eps = 4.93038065763132e-32

	bigFloatPrec  = 240
	decimalDigits = 34
)

func twoPi[T constraints.Float]() DD[T] {
	return DD[T]{h: T(6.283185307179586232e+00), l: T(2.449293598294706414e-16)}
}

func piOver2[T constraints.Float]() DD[T] {
	return DD[T]{h: T(1.570796326794896558e+00), l: T(6.123233995736766036e-17)}
}

func piOver16[T constraints.Float]() DD[T] {
	return DD[T]{h: T(1.963495408493620697e-01), l: T(7.654042494670957545e-18)}
}

func nanPair[T constraints.Float]() DD[T] {
	n := T(math.NaN())
	return DD[T]{h: n, l: n}
}

const nInvFact = 15

// invFact[i] is 1/(i+3)! as a double-word pair. The Taylor evaluators
// step through it by 2: sine uses the odd factorials, cosine the even.
var invFact = [nInvFact][2]float64{
	{1.66666666666666657e-01, 9.25185853854297066e-18},
	{4.16666666666666644e-02, 2.31296463463574266e-18},
	{8.33333333333333322e-03, 1.15648231731787138e-19},
	{1.38888888888888894e-03, -5.30054395437357706e-20},
	{1.98412698412698413e-04, 1.72095582934207053e-22},
	{2.48015873015873016e-05, 2.15119478667758816e-23},
	{2.75573192239858925e-06, -1.85839327404647208e-22},
	{2.75573192239858883e-07, 2.37677146222502973e-23},
	{2.50521083854417202e-08, -1.44881407093591197e-24},
	{2.08767569878681002e-09, -1.20734505911325997e-25},
	{1.60590438368216133e-10, 1.25852945887520981e-26},
	{1.14707455977297245e-11, 2.06555127528307454e-28},
	{7.64716373181981641e-13, 7.03872877733453001e-30},
	{4.77947733238738525e-14, 4.39920548583408126e-31},
	{2.81145725434552060e-15, 1.65088427308614326e-31},
}

// cosTable[k-1] and sinTable[k-1] hold cos(k*pi/16) and sin(k*pi/16) for
// k in 1..4.
var cosTable = [4][2]float64{
	{9.807852804032304306e-01, 1.854693999782500573e-17},
	{9.238795325112867385e-01, 1.764504708433667706e-17},
	{8.314696123025452357e-01, 1.407385698472802389e-18},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

var sinTable = [4][2]float64{
	{1.950903220161282758e-01, -7.991079068461731263e-18},
	{3.826834323650897818e-01, -1.005077269646158761e-17},
	{5.555702330196021776e-01, 4.709410940561676821e-17},
	{7.071067811865475727e-01, -4.833646656726456726e-17},
}

func pairConst[T constraints.Float](p [2]float64) DD[T] {
	return DD[T]{h: T(p[0]), l: T(p[1])}
}
