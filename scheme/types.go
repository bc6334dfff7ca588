// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"
	"strings"
)

// MinPoints is the smallest grid any scheme accepts.
const MinPoints = 3

// Algorithm names a time-stepping scheme.
type Algorithm string

const (
	// AlgFTCS is forward-time central-space (explicit, r ≤ 0.5).
	AlgFTCS Algorithm = "ftcs"

	// AlgDuFortFrankel is the explicit, unconditionally stable three-level scheme.
	AlgDuFortFrankel Algorithm = "dufrank"

	// AlgUpwind15 is the explicit 5-point scheme.
	AlgUpwind15 Algorithm = "upwind15"

	// AlgCrankNicolson is the implicit scheme solved with the Thomas algorithm.
	AlgCrankNicolson Algorithm = "crankn"
)

// Algorithms lists every registered scheme in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgFTCS, AlgDuFortFrankel, AlgUpwind15, AlgCrankNicolson}
}

// ParseAlgorithm maps a name (case-insensitive) onto an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms() {
		if a == known {
			return a, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Levels returns how many previous time levels the scheme reads.
func (a Algorithm) Levels() int {
	if a == AlgDuFortFrankel {
		return 2
	}

	return 1
}

// Description is a one-line human summary.
func (a Algorithm) Description() string {
	switch a {
	case AlgFTCS:
		return "explicit forward-time central-space, stable for alpha·dt/dx² ≤ 0.5"
	case AlgDuFortFrankel:
		return "explicit three-level DuFort-Frankel, unconditionally stable"
	case AlgUpwind15:
		return "explicit 5-point stencil in k = alpha²·dt/dx²"
	case AlgCrankNicolson:
		return "implicit Crank-Nicolson, tridiagonal solve per step"
	}

	return "unknown"
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Coefficients are the physical and boundary constants of a run.
type Coefficients[T any] struct {
	Alpha T // thermal diffusivity
	Dx    T // grid spacing
	Dt    T // time step
	BC0   T // u(0)
	BC1   T // u(lenx)
}

// History carries the previous time levels into a step.
// Back1 is one step ago, Back2 two steps ago (DuFort-Frankel only).
type History[T any] struct {
	Back1 []T
	Back2 []T
}

// Scheme advances the solution by one time step.
//
// Step reads the history levels and writes all n samples of dst: the
// interior by the scheme's stencil, then dst[0] = BC0 and dst[n-1] = BC1.
// dst must not alias any history level. A nil error means the step is
// valid; ErrUnstable is fatal for the run.
type Scheme[T any] interface {
	Algorithm() Algorithm
	Levels() int
	Len() int
	Step(dst []T, h History[T]) error
}
