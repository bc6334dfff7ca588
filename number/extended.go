// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"math/big"
)

// Extended is a double-double value: the unevaluated sum Hi+Lo with
// |Lo| ≤ ulp(Hi)/2. It carries roughly 106 significant bits, which covers
// the 80-bit and 128-bit "long double" slot without heap allocation.
type Extended struct {
	Hi float64
	Lo float64
}

// ExtendedFromFloat64 promotes v exactly.
func ExtendedFromFloat64(v float64) Extended { return Extended{Hi: v} }

// Float64 rounds e to the nearest float64.
func (e Extended) Float64() float64 { return e.Hi + e.Lo }

// Big returns e as an exact big.Float with 128-bit mantissa.
func (e Extended) Big() *big.Float {
	f := new(big.Float).SetPrec(128).SetFloat64(e.Hi)
	if e.Lo != 0 {
		f.Add(f, new(big.Float).SetPrec(128).SetFloat64(e.Lo))
	}

	return f
}

// String prints e with 32 significant digits.
func (e Extended) String() string { return e.Big().Text('g', 32) }

// ExtendedArith is Arith for Extended.
type ExtendedArith struct{}

// twoSum returns s=fl(a+b) and the exact rounding error e (Knuth).
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)

	return s, e
}

// quickTwoSum is twoSum for |a| ≥ |b| (Dekker).
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)

	return s, e
}

// twoProd returns p=fl(a*b) and the exact rounding error using FMA.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)

	return p, e
}

func (ExtendedArith) Add(a, b Extended) Extended {
	s, e := twoSum(a.Hi, b.Hi)
	t, f := twoSum(a.Lo, b.Lo)
	e += t
	s, e = quickTwoSum(s, e)
	e += f
	s, e = quickTwoSum(s, e)

	return Extended{Hi: s, Lo: e}
}

func (x ExtendedArith) Sub(a, b Extended) Extended { return x.Add(a, x.Neg(b)) }

func (ExtendedArith) Neg(a Extended) Extended { return Extended{Hi: -a.Hi, Lo: -a.Lo} }

func (ExtendedArith) Mul(a, b Extended) Extended {
	p, e := twoProd(a.Hi, b.Hi)
	e += a.Hi*b.Lo + a.Lo*b.Hi
	p, e = quickTwoSum(p, e)

	return Extended{Hi: p, Lo: e}
}

// Div uses two rounds of long division on the leading components.
func (x ExtendedArith) Div(a, b Extended) Extended {
	q1 := a.Hi / b.Hi
	if math.IsInf(q1, 0) || math.IsNaN(q1) || b.Hi == 0 {
		return Extended{Hi: q1}
	}
	r := x.Sub(a, x.Mul(b, Extended{Hi: q1}))
	q2 := r.Hi / b.Hi
	r = x.Sub(r, x.Mul(b, Extended{Hi: q2}))
	q3 := r.Hi / b.Hi

	s, e := quickTwoSum(q1, q2)

	return x.Add(Extended{Hi: s, Lo: e}, Extended{Hi: q3})
}

func (ExtendedArith) Less(a, b Extended) bool {
	return a.Hi < b.Hi || (a.Hi == b.Hi && a.Lo < b.Lo)
}

func (ExtendedArith) Equal(a, b Extended) bool { return a.Hi == b.Hi && a.Lo == b.Lo }

func (ExtendedArith) FromFloat64(v float64) Extended { return Extended{Hi: v} }

// FromInt is exact for every int: the high part is the rounded value and
// the low part the (exactly representable) remainder.
func (ExtendedArith) FromInt(v int) Extended {
	hi := float64(v)
	if math.Abs(hi) >= 0x1p63 {
		return Extended{Hi: hi}
	}

	return Extended{Hi: hi, Lo: float64(v - int(hi))}
}

func (ExtendedArith) Float64(v Extended) float64 { return v.Float64() }
func (ExtendedArith) Precision() Precision       { return PrecisionQuad }
func (ExtendedArith) Size() int                  { return 16 }

func (ExtendedArith) Format(v Extended, verb byte, digits int) string {
	if math.IsNaN(v.Hi) {
		return "NaN"
	}
	if math.IsInf(v.Hi, 0) {
		if v.Hi > 0 {
			return "+Inf"
		}
		return "-Inf"
	}

	return v.Big().Text(verb, digits)
}
