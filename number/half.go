// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"strconv"

	"github.com/x448/float16"
)

// Half is an IEEE 754-2008 binary16 value stored as its raw bits.
// Arithmetic widens to float32, computes, and rounds back to binary16 with
// ties to even. float32 carries more than 2·11+2 significand bits, so the
// double rounding of + - * / is innocuous and results match native binary16.
type Half uint16

// HalfFromFloat32 rounds f to the nearest binary16 value, ties to even.
func HalfFromFloat32(f float32) Half { return Half(float16.Fromfloat32(f).Bits()) }

// HalfFromFloat64 rounds v to the nearest binary16 value, ties to even.
//
// v is first narrowed to float32 with round-to-odd, which keeps the sticky
// information a plain float32(v) would lose on a binary16 tie.
func HalfFromFloat64(v float64) Half {
	f := float32(v)
	if fv := float64(f); fv != v && !math.IsInf(float64(f), 0) && math.Float32bits(f)&1 == 0 {
		if fv < v {
			f = math.Nextafter32(f, float32(math.Inf(1)))
		} else {
			f = math.Nextafter32(f, float32(math.Inf(-1)))
		}
	}

	return HalfFromFloat32(f)
}

// Float32 widens h exactly.
func (h Half) Float32() float32 { return float16.Frombits(uint16(h)).Float32() }

// Bits returns the raw binary16 encoding.
func (h Half) Bits() uint16 { return uint16(h) }

// String prints h with four significant digits.
func (h Half) String() string { return strconv.FormatFloat(float64(h.Float32()), 'g', 4, 32) }

// HalfArith is Arith for Half.
type HalfArith struct{}

func (HalfArith) Add(a, b Half) Half { return HalfFromFloat32(a.Float32() + b.Float32()) }
func (HalfArith) Sub(a, b Half) Half { return HalfFromFloat32(a.Float32() - b.Float32()) }
func (HalfArith) Mul(a, b Half) Half { return HalfFromFloat32(a.Float32() * b.Float32()) }
func (HalfArith) Div(a, b Half) Half { return HalfFromFloat32(a.Float32() / b.Float32()) }
func (HalfArith) Neg(a Half) Half    { return a ^ 0x8000 }

func (HalfArith) Less(a, b Half) bool  { return a.Float32() < b.Float32() }
func (HalfArith) Equal(a, b Half) bool { return a.Float32() == b.Float32() }

func (HalfArith) FromFloat64(v float64) Half { return HalfFromFloat64(v) }
func (HalfArith) FromInt(v int) Half         { return HalfFromFloat64(float64(v)) }
func (HalfArith) Float64(v Half) float64     { return float64(v.Float32()) }
func (HalfArith) Precision() Precision       { return PrecisionHalf }
func (HalfArith) Size() int                  { return 2 }

func (HalfArith) Format(v Half, verb byte, digits int) string {
	return strconv.FormatFloat(float64(v.Float32()), verb, digits, 32)
}
