// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// FTCS is the explicit forward-time central-space scheme.
//
//	u'(i) = r·u(i+1) + (1-2r)·u(i) + r·u(i-1),   r = alpha·dt/dx²
//
// Step fails with ErrUnstable when r > 0.5.
type FTCS[T any] struct {
	base[T]
	r      T // mesh ratio
	center T // 1-2r
	stable bool
}

// NewFTCS precomputes r and 1-2r. Instability is reported by Step, not here.
func NewFTCS[T any](ops number.Ops[T], n int, c Coefficients[T], opts ...Option) (*FTCS[T], error) {
	b, err := newBase(AlgFTCS, ops, n, c, opts)
	if err != nil {
		return nil, err
	}
	s := &FTCS[T]{base: b}
	s.r = ratio(ops, c)
	s.center = ops.Sub(ops.One(), ops.Mul(ops.Int(2), s.r))
	s.stable = !ops.Greater(s.r, ops.Float(0.5))

	return s, nil
}

// Algorithm returns AlgFTCS.
func (s *FTCS[T]) Algorithm() Algorithm { return AlgFTCS }

// Levels returns 1.
func (s *FTCS[T]) Levels() int { return 1 }

// Ratio returns r = alpha·dt/dx².
func (s *FTCS[T]) Ratio() T { return s.r }

// Stable reports r ≤ 0.5.
func (s *FTCS[T]) Stable() bool { return s.stable }

// Step computes dst from h.Back1.
//
// Cost per interior point: 3 mults, 2 adds.
func (s *FTCS[T]) Step(dst []T, h History[T]) error {
	if err := s.check(AlgFTCS, dst, h, 1); err != nil {
		return err
	}
	if !s.stable {
		return fmt.Errorf("ftcs: r=%s > 0.5: %w", s.ops.Format(s.r, 'g', 6), ErrUnstable)
	}

	u := h.Back1
	r, center := s.r, s.center
	err := sweep(s.ops, s.opts, 1, s.n-1, func(ops number.Ops[T], lo, hi int) {
		for i := lo; i < hi; i++ {
			dst[i] = ops.Add(ops.Add(ops.Mul(r, u[i+1]), ops.Mul(center, u[i])), ops.Mul(r, u[i-1]))
		}
	})
	s.boundaries(dst)

	return err
}
