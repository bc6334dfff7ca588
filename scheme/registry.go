// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// New constructs the scheme named by alg.
//
// Errors: ErrUnknownAlgorithm, ErrGridTooSmall, and for Crank-Nicolson the
// wrapped tridiag factorization error. The returned Scheme is nil on error,
// never an interface holding a nil pointer.
func New[T any](alg Algorithm, ops number.Ops[T], n int, c Coefficients[T], opts ...Option) (Scheme[T], error) {
	switch alg {
	case AlgFTCS:
		s, err := NewFTCS(ops, n, c, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case AlgDuFortFrankel:
		s, err := NewDuFortFrankel(ops, n, c, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case AlgUpwind15:
		s, err := NewUpwind15(ops, n, c, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	case AlgCrankNicolson:
		s, err := NewCrankNicolson(ops, n, c, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, fmt.Errorf("New(%q): %w", string(alg), ErrUnknownAlgorithm)
}
