// SPDX-License-Identifier: MIT

package number

// Ops is the counting front-end over an Arith[T].
//
// Every arithmetic call is forwarded unchanged and recorded on the attached
// Counter. Comparisons and conversions are never counted. Ops is a small
// value type; copy it freely. WithCounter returns a copy bound to another
// counter, which is how parallel workers count into private tallies.
type Ops[T any] struct {
	arith   Arith[T]
	counter Counter
}

// New binds arith to counter. A nil counter means Discard.
func New[T any](arith Arith[T], counter Counter) Ops[T] {
	if arith == nil {
		panic("number: New(nil arith)")
	}
	if counter == nil {
		counter = Discard
	}

	return Ops[T]{arith: arith, counter: counter}
}

// Arith returns the uncounted arithmetic.
func (o Ops[T]) Arith() Arith[T] { return o.arith }

// Counter returns the attached counter.
func (o Ops[T]) Counter() Counter { return o.counter }

// WithCounter returns a copy of o counting into c (nil means Discard).
func (o Ops[T]) WithCounter(c Counter) Ops[T] {
	if c == nil {
		c = Discard
	}
	o.counter = c

	return o
}

// Precision reports the precision of T.
func (o Ops[T]) Precision() Precision { return o.arith.Precision() }

// Add returns a+b (one add).
func (o Ops[T]) Add(a, b T) T {
	o.counter.Count(OpAdd, 1)
	return o.arith.Add(a, b)
}

// Sub returns a-b (one add).
func (o Ops[T]) Sub(a, b T) T {
	o.counter.Count(OpAdd, 1)
	return o.arith.Sub(a, b)
}

// Neg returns -a (one add).
func (o Ops[T]) Neg(a T) T {
	o.counter.Count(OpAdd, 1)
	return o.arith.Neg(a)
}

// Mul returns a*b (one mult).
func (o Ops[T]) Mul(a, b T) T {
	o.counter.Count(OpMul, 1)
	return o.arith.Mul(a, b)
}

// Div returns a/b (one div).
func (o Ops[T]) Div(a, b T) T {
	o.counter.Count(OpDiv, 1)
	return o.arith.Div(a, b)
}

// Less reports a < b.
func (o Ops[T]) Less(a, b T) bool { return o.arith.Less(a, b) }

// Greater reports a > b.
func (o Ops[T]) Greater(a, b T) bool { return o.arith.Less(b, a) }

// LessEq reports a ≤ b.
func (o Ops[T]) LessEq(a, b T) bool { return !o.arith.Less(b, a) }

// Equal reports a == b.
func (o Ops[T]) Equal(a, b T) bool { return o.arith.Equal(a, b) }

// Int promotes a native int.
func (o Ops[T]) Int(v int) T { return o.arith.FromInt(v) }

// Float promotes a native float64.
func (o Ops[T]) Float(v float64) T { return o.arith.FromFloat64(v) }

// Float64 converts v to float64.
func (o Ops[T]) Float64(v T) float64 { return o.arith.Float64(v) }

// Zero returns the additive identity.
func (o Ops[T]) Zero() T { return o.arith.FromInt(0) }

// One returns the multiplicative identity.
func (o Ops[T]) One() T { return o.arith.FromInt(1) }

// Format prints v through the underlying arithmetic.
func (o Ops[T]) Format(v T, verb byte, digits int) string { return o.arith.Format(v, verb, digits) }

// Make allocates a zeroed []T of length n and records n·Size() bytes.
// The zero value of every supported T is +0.
func (o Ops[T]) Make(n int) []T {
	o.counter.Count(OpBytes, int64(n*o.arith.Size()))

	return make([]T, n)
}

// FromFloat64s converts src into a freshly allocated []T (bytes counted).
func (o Ops[T]) FromFloat64s(src []float64) []T {
	dst := o.Make(len(src))
	for i, v := range src {
		dst[i] = o.arith.FromFloat64(v)
	}

	return dst
}

// Float64s converts src to float64 without counting.
func (o Ops[T]) Float64s(src []T) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = o.arith.Float64(v)
	}

	return dst
}
