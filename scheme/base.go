// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// base holds what every scheme shares: arithmetic, size, constants, options.
type base[T any] struct {
	ops  number.Ops[T]
	n    int
	c    Coefficients[T]
	opts Options
}

func newBase[T any](alg Algorithm, ops number.Ops[T], n int, c Coefficients[T], opts []Option) (base[T], error) {
	if n < MinPoints {
		return base[T]{}, fmt.Errorf("%s: n=%d < %d: %w", alg, n, MinPoints, ErrGridTooSmall)
	}

	return base[T]{ops: ops, n: n, c: c, opts: gatherOptions(opts)}, nil
}

// Len returns the grid size.
func (b *base[T]) Len() int { return b.n }

// Options returns the resolved options.
func (b *base[T]) Options() Options { return b.opts }

// check validates buffer lengths and aliasing for a step reading `levels` levels.
func (b *base[T]) check(alg Algorithm, dst []T, h History[T], levels int) error {
	if len(dst) != b.n {
		return fmt.Errorf("%s: dst %d, want %d: %w", alg, len(dst), b.n, ErrDimensionMismatch)
	}
	if h.Back1 == nil {
		return fmt.Errorf("%s: back1: %w", alg, ErrMissingHistory)
	}
	if len(h.Back1) != b.n {
		return fmt.Errorf("%s: back1 %d, want %d: %w", alg, len(h.Back1), b.n, ErrDimensionMismatch)
	}
	if &dst[0] == &h.Back1[0] {
		return fmt.Errorf("%s: back1: %w", alg, ErrAliased)
	}
	if levels > 1 && h.Back2 != nil {
		if len(h.Back2) != b.n {
			return fmt.Errorf("%s: back2 %d, want %d: %w", alg, len(h.Back2), b.n, ErrDimensionMismatch)
		}
		if &dst[0] == &h.Back2[0] {
			return fmt.Errorf("%s: back2: %w", alg, ErrAliased)
		}
	}

	return nil
}

// boundaries imposes the Dirichlet values.
func (b *base[T]) boundaries(dst []T) {
	dst[0] = b.c.BC0
	dst[b.n-1] = b.c.BC1
}

// ratio returns alpha·dt/dx², counted.
func ratio[T any](ops number.Ops[T], c Coefficients[T]) T {
	return ops.Div(ops.Mul(c.Alpha, c.Dt), ops.Mul(c.Dx, c.Dx))
}
