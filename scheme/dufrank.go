// SPDX-License-Identifier: MIT

package scheme

import "github.com/katalvlaran/heat1d/number"

// DuFortFrankel is the explicit three-level scheme
//
//	u'(i) = q(1-r)·u''(i) + q·r·(u(i+1) + u(i-1)),   q = 1/(1+r)
//
// where u is one level back and u'' two levels back. It is unconditionally
// stable, so Step never returns ErrUnstable.
//
// On the first step there is no second level yet. When History.Back2 is nil
// the scheme uses Back1 in its place.
type DuFortFrankel[T any] struct {
	base[T]
	r     T
	older T // q(1-r)
	near  T // q·r
}

// NewDuFortFrankel precomputes r, q(1-r) and q·r.
func NewDuFortFrankel[T any](ops number.Ops[T], n int, c Coefficients[T], opts ...Option) (*DuFortFrankel[T], error) {
	b, err := newBase(AlgDuFortFrankel, ops, n, c, opts)
	if err != nil {
		return nil, err
	}
	s := &DuFortFrankel[T]{base: b}
	s.r = ratio(ops, c)
	q := ops.Div(ops.One(), ops.Add(ops.One(), s.r))
	s.older = ops.Mul(q, ops.Sub(ops.One(), s.r))
	s.near = ops.Mul(q, s.r)

	return s, nil
}

// Algorithm returns AlgDuFortFrankel.
func (s *DuFortFrankel[T]) Algorithm() Algorithm { return AlgDuFortFrankel }

// Levels returns 2.
func (s *DuFortFrankel[T]) Levels() int { return 2 }

// Ratio returns r = alpha·dt/dx².
func (s *DuFortFrankel[T]) Ratio() T { return s.r }

// Step computes dst from h.Back1 and h.Back2 (Back1 if Back2 is nil).
//
// Cost per interior point: 2 mults, 2 adds.
func (s *DuFortFrankel[T]) Step(dst []T, h History[T]) error {
	if err := s.check(AlgDuFortFrankel, dst, h, 2); err != nil {
		return err
	}

	u1, u2 := h.Back1, h.Back2
	if u2 == nil {
		u2 = u1
	}
	older, near := s.older, s.near
	err := sweep(s.ops, s.opts, 1, s.n-1, func(ops number.Ops[T], lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = ops.Add(ops.Mul(older, u2[i]), ops.Mul(near, ops.Add(u1[i+1], u1[i-1])))
		}
	})
	s.boundaries(dst)

	return err
}
