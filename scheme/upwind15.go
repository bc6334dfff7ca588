// SPDX-License-Identifier: MIT

package scheme

import "github.com/katalvlaran/heat1d/number"

// Upwind15 is an explicit 5-point scheme in k = alpha²·dt/dx².
//
// Rows 1 and n-2 use the 3-point update u(i) + k·(u(i-1) - 2u(i) + u(i+1)).
// Rows 2..n-3 use
//
//	f2(12k²-2k)·(u(i-2) + u(i+2)) - f1(12k²-8k)·(u(i-1) + u(i+1)) + f0(12k²-10k+4)·u(i)
//
// with f2 = 1/24, f1 = 1/6, f0 = 1/4, each of the five terms evaluated on its
// own. No stability check is performed; parameters are the caller's concern.
type Upwind15[T any] struct {
	base[T]
	k  T
	w2 T // f2(12k²-2k)
	w1 T // f1(12k²-8k)
	w0 T // f0(12k²-10k+4)
}

// NewUpwind15 precomputes k and the three stencil weights.
func NewUpwind15[T any](ops number.Ops[T], n int, c Coefficients[T], opts ...Option) (*Upwind15[T], error) {
	b, err := newBase(AlgUpwind15, ops, n, c, opts)
	if err != nil {
		return nil, err
	}
	s := &Upwind15[T]{base: b}

	// Stage 1: k and 12k²
	s.k = ops.Div(ops.Mul(ops.Mul(c.Alpha, c.Alpha), c.Dt), ops.Mul(c.Dx, c.Dx))
	k12 := ops.Mul(ops.Int(12), ops.Mul(s.k, s.k))

	// Stage 2: weights
	f2 := ops.Div(ops.One(), ops.Int(24))
	f1 := ops.Div(ops.One(), ops.Int(6))
	f0 := ops.Div(ops.One(), ops.Int(4))
	s.w2 = ops.Mul(f2, ops.Sub(k12, ops.Mul(ops.Int(2), s.k)))
	s.w1 = ops.Mul(f1, ops.Sub(k12, ops.Mul(ops.Int(8), s.k)))
	s.w0 = ops.Mul(f0, ops.Add(ops.Sub(k12, ops.Mul(ops.Int(10), s.k)), ops.Int(4)))

	return s, nil
}

// Algorithm returns AlgUpwind15.
func (s *Upwind15[T]) Algorithm() Algorithm { return AlgUpwind15 }

// Levels returns 1.
func (s *Upwind15[T]) Levels() int { return 1 }

// K returns alpha²·dt/dx².
func (s *Upwind15[T]) K() T { return s.k }

// Step computes dst from h.Back1.
//
// Cost per 5-point row: 5 mults, 4 adds. Per edge row: 2 mults, 3 adds.
func (s *Upwind15[T]) Step(dst []T, h History[T]) error {
	if err := s.check(AlgUpwind15, dst, h, 1); err != nil {
		return err
	}

	u := h.Back1
	n := s.n
	s.edge(dst, u, 1)
	s.edge(dst, u, n-2)

	w2, w1, w0 := s.w2, s.w1, s.w0
	err := sweep(s.ops, s.opts, 2, n-2, func(ops number.Ops[T], lo, hi int) {
		var acc T
		for i := lo; i < hi; i++ {
			acc = ops.Add(ops.Mul(w2, u[i-2]), ops.Mul(w2, u[i+2]))
			acc = ops.Sub(acc, ops.Mul(w1, u[i-1]))
			acc = ops.Sub(acc, ops.Mul(w1, u[i+1]))
			dst[i] = ops.Add(acc, ops.Mul(w0, u[i]))
		}
	})
	s.boundaries(dst)

	return err
}

// edge applies the 3-point update at row i.
func (s *Upwind15[T]) edge(dst, u []T, i int) {
	ops := s.ops
	lap := ops.Add(ops.Sub(u[i-1], ops.Mul(ops.Int(2), u[i])), u[i+1])
	dst[i] = ops.Add(u[i], ops.Mul(s.k, lap))
}
