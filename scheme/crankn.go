// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/tridiag"
)

// CrankNicolson is the implicit scheme. Each step solves A·u' = u with the
// diffusion band A of package tridiag, built and factored once in the
// constructor and read-only afterwards.
type CrankNicolson[T any] struct {
	base[T]
	band *tridiag.Band[T]
}

// NewCrankNicolson builds and factors the band. A zero pivot is a
// configuration error: tridiag.ErrZeroPivot is returned wrapped.
func NewCrankNicolson[T any](ops number.Ops[T], n int, c Coefficients[T], opts ...Option) (*CrankNicolson[T], error) {
	b, err := newBase(AlgCrankNicolson, ops, n, c, opts)
	if err != nil {
		return nil, err
	}
	band, err := tridiag.NewFactoredDiffusion(ops, n, c.Alpha, c.Dx, c.Dt)
	if err != nil {
		return nil, fmt.Errorf("crankn: %w", err)
	}

	return &CrankNicolson[T]{base: b, band: band}, nil
}

// Algorithm returns AlgCrankNicolson.
func (s *CrankNicolson[T]) Algorithm() Algorithm { return AlgCrankNicolson }

// Levels returns 1.
func (s *CrankNicolson[T]) Levels() int { return 1 }

// Band exposes the factored matrix (read-only).
func (s *CrankNicolson[T]) Band() *tridiag.Band[T] { return s.band }

// Step solves for dst with h.Back1 as the right-hand side.
func (s *CrankNicolson[T]) Step(dst []T, h History[T]) error {
	if err := s.check(AlgCrankNicolson, dst, h, 1); err != nil {
		return err
	}
	if err := s.band.Solve(s.ops, dst, h.Back1); err != nil {
		return fmt.Errorf("crankn: %w", err)
	}
	s.boundaries(dst)

	return nil
}
