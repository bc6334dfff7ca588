// SPDX-License-Identifier: MIT

package number

import (
	"math"
	"strconv"
)

// Arith is the arithmetic of one concrete scalar type T.
//
// Contract:
//   - Results must match the native operation of the wrapped format exactly.
//   - FromInt and FromFloat64 are exact whenever the value is representable in T.
//   - Format(v, 'e', d) prints d fractional digits; Format(v, 'g', d) prints d
//     significant digits.
//
// Implementations are stateless; the zero value is ready to use.
type Arith[T any] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Div(a, b T) T
	Neg(a T) T
	Less(a, b T) bool
	Equal(a, b T) bool
	FromFloat64(v float64) T
	FromInt(v int) T
	Float64(v T) float64
	Format(v T, verb byte, digits int) string
	Precision() Precision
	Size() int
}

// Float64 is Arith for IEEE binary64.
type Float64 struct{}

func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Sub(a, b float64) float64      { return a - b }
func (Float64) Mul(a, b float64) float64      { return a * b }
func (Float64) Div(a, b float64) float64      { return a / b }
func (Float64) Neg(a float64) float64         { return -a }
func (Float64) Less(a, b float64) bool        { return a < b }
func (Float64) Equal(a, b float64) bool       { return a == b }
func (Float64) FromFloat64(v float64) float64 { return v }
func (Float64) FromInt(v int) float64         { return float64(v) }
func (Float64) Float64(v float64) float64     { return v }
func (Float64) Precision() Precision          { return PrecisionDouble }
func (Float64) Size() int                     { return 8 }

func (Float64) Format(v float64, verb byte, digits int) string {
	return strconv.FormatFloat(v, verb, digits, 64)
}

// Float32 is Arith for IEEE binary32.
type Float32 struct{}

func (Float32) Add(a, b float32) float32      { return a + b }
func (Float32) Sub(a, b float32) float32      { return a - b }
func (Float32) Mul(a, b float32) float32      { return a * b }
func (Float32) Div(a, b float32) float32      { return a / b }
func (Float32) Neg(a float32) float32         { return -a }
func (Float32) Less(a, b float32) bool        { return a < b }
func (Float32) Equal(a, b float32) bool       { return a == b }
func (Float32) FromFloat64(v float64) float32 { return float32(v) }
func (Float32) FromInt(v int) float32         { return float32(v) }
func (Float32) Float64(v float32) float64     { return float64(v) }
func (Float32) Precision() Precision          { return PrecisionSingle }
func (Float32) Size() int                     { return 4 }

func (Float32) Format(v float32, verb byte, digits int) string {
	return strconv.FormatFloat(float64(v), verb, digits, 32)
}

// IsFinite reports whether v is neither NaN nor ±Inf once widened to float64.
func IsFinite[T any](a Arith[T], v T) bool {
	f := a.Float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
