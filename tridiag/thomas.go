// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// Factor performs in-place LU factorization without pivoting.
//
// Implementation:
//   - Stage 1: for i = 1..n-1 check the pivot diag(i-1), store the
//     multiplier m = sub(i)/diag(i-1) in the sub slot, and reduce
//     diag(i) -= m·super(i-1).
//   - Stage 2: check the last pivot so Solve never divides by zero.
//
// Errors: ErrAlreadyFactored; ErrZeroPivot wrapped with the offending row.
// On ErrZeroPivot the band contents are partially eliminated and must not
// be reused.
//
// Cost: (n-1) adds, (n-1) mults, (n-1) divs.
func (b *Band[T]) Factor(ops number.Ops[T]) error {
	if b.factored {
		return fmt.Errorf("Factor: %w", ErrAlreadyFactored)
	}
	zero := ops.Zero()

	// Stage 1: eliminate the sub-diagonal
	var m, pivot T
	for i := 1; i < b.n; i++ {
		pivot = b.data[3*(i-1)+1] // diag(i-1)
		if ops.Equal(pivot, zero) {
			return fmt.Errorf("Factor: row %d: %w", i-1, ErrZeroPivot)
		}
		m = ops.Div(b.data[3*i], pivot) // sub(i)/diag(i-1)
		b.data[3*i] = m
		b.data[3*i+1] = ops.Sub(b.data[3*i+1], ops.Mul(m, b.data[3*(i-1)+2]))
	}

	// Stage 2: last pivot
	if ops.Equal(b.data[3*(b.n-1)+1], zero) {
		return fmt.Errorf("Factor: row %d: %w", b.n-1, ErrZeroPivot)
	}
	b.factored = true

	return nil
}

// Solve writes the solution of A·x = rhs into dst.
//
// Implementation:
//   - Stage 1: copy rhs into dst (rhs itself is never written unless it
//     aliases dst).
//   - Stage 2: forward elimination x(i) -= m(i)·x(i-1).
//   - Stage 3: back substitution x(n-1) /= diag(n-1), then
//     x(i-1) = (x(i-1) - super(i-1)·x(i)) / diag(i-1).
//
// Errors: ErrNotFactored, ErrDimensionMismatch.
//
// Cost: 2(n-1) adds, 2(n-1) mults, n divs. The band is only read.
func (b *Band[T]) Solve(ops number.Ops[T], dst, rhs []T) error {
	if !b.factored {
		return fmt.Errorf("Solve: %w", ErrNotFactored)
	}
	if len(dst) != b.n || len(rhs) != b.n {
		return fmt.Errorf("Solve: band %d, dst %d, rhs %d: %w", b.n, len(dst), len(rhs), ErrDimensionMismatch)
	}

	// Stage 1
	copy(dst, rhs)

	// Stage 2
	for i := 1; i < b.n; i++ {
		dst[i] = ops.Sub(dst[i], ops.Mul(b.data[3*i], dst[i-1]))
	}

	// Stage 3
	last := b.n - 1
	dst[last] = ops.Div(dst[last], b.data[3*last+1])
	for i := last; i >= 1; i-- {
		dst[i-1] = ops.Div(ops.Sub(dst[i-1], ops.Mul(b.data[3*(i-1)+2], dst[i])), b.data[3*(i-1)+1])
	}

	return nil
}
