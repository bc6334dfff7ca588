// SPDX-License-Identifier: MIT

package tridiag

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// Band is an n×n tridiagonal matrix stored row-interleaved.
//
// Row i occupies data[3i], data[3i+1], data[3i+2] as (sub, diag, super).
// sub of row 0 and super of row n-1 lie outside the matrix and are kept zero.
// After Factor the sub slots hold elimination multipliers and the diagonal
// holds the reduced pivots; the super slots are unchanged.
type Band[T any] struct {
	n        int
	data     []T
	factored bool
}

// NewBand allocates a zeroed n-row band. Storage bytes are counted on ops.
func NewBand[T any](ops number.Ops[T], n int) (*Band[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("NewBand(%d): %w", n, ErrBadSize)
	}

	return &Band[T]{n: n, data: ops.Make(3 * n)}, nil
}

// Len returns the number of rows.
func (b *Band[T]) Len() int { return b.n }

// Sub returns the sub-diagonal entry of row i (multiplier after Factor).
func (b *Band[T]) Sub(i int) T { return b.data[3*i] }

// Diag returns the diagonal entry of row i (reduced pivot after Factor).
func (b *Band[T]) Diag(i int) T { return b.data[3*i+1] }

// Super returns the super-diagonal entry of row i.
func (b *Band[T]) Super(i int) T { return b.data[3*i+2] }

// Factored reports whether Factor has completed successfully.
func (b *Band[T]) Factored() bool { return b.factored }

// SetRow assigns row i. Returns ErrOutOfRange or ErrAlreadyFactored.
func (b *Band[T]) SetRow(i int, sub, diag, super T) error {
	if i < 0 || i >= b.n {
		return fmt.Errorf("SetRow(%d) of %d rows: %w", i, b.n, ErrOutOfRange)
	}
	if b.factored {
		return fmt.Errorf("SetRow(%d): %w", i, ErrAlreadyFactored)
	}
	b.data[3*i] = sub
	b.data[3*i+1] = diag
	b.data[3*i+2] = super

	return nil
}

// NewDiffusion builds the implicit diffusion matrix for n grid points.
//
// With w = alpha·dt/dx² the boundary rows are identity rows (0, 1, 0) so the
// Dirichlet values pass through the solve unchanged, and every interior row
// is (-w, 1+2w, -w).
func NewDiffusion[T any](ops number.Ops[T], n int, alpha, dx, dt T) (*Band[T], error) {
	// Stage 1: allocate
	b, err := NewBand(ops, n)
	if err != nil {
		return nil, err
	}

	// Stage 2: coefficients, computed once
	w := ops.Div(ops.Mul(alpha, dt), ops.Mul(dx, dx))
	diag := ops.Add(ops.One(), ops.Mul(ops.Int(2), w)) // 1+2w
	off := ops.Neg(w)                                  // -w
	zero, one := ops.Zero(), ops.One()

	// Stage 3: fill rows
	b.data[1] = one // row 0: (0, 1, 0)
	for i := 1; i < n-1; i++ {
		b.data[3*i] = off
		b.data[3*i+1] = diag
		b.data[3*i+2] = off
	}
	if n > 1 {
		b.data[3*(n-1)] = zero
		b.data[3*(n-1)+1] = one // row n-1: (0, 1, 0)
		b.data[3*(n-1)+2] = zero
	}

	return b, nil
}

// NewFactoredDiffusion is NewDiffusion followed by Factor.
func NewFactoredDiffusion[T any](ops number.Ops[T], n int, alpha, dx, dt T) (*Band[T], error) {
	b, err := NewDiffusion(ops, n, alpha, dx, dt)
	if err != nil {
		return nil, err
	}
	if err = b.Factor(ops); err != nil {
		return nil, err
	}

	return b, nil
}
