// SPDX-License-Identifier: MIT
// Package heat: sentinel errors.
//
// Configuration errors surface from Params.Validate and Init, numerical
// failures from Step. Errors of the scheme, tridiag and initcond packages
// are wrapped, never replaced, so errors.Is keeps matching their sentinels.

package heat

import "errors"

var (
	// ErrInvalidParam indicates a missing, non-positive or non-finite parameter.
	ErrInvalidParam = errors.New("heat: invalid parameter")

	// ErrConflictingStop indicates both a time limit and a change threshold.
	ErrConflictingStop = errors.New("heat: both max time and min change set")

	// ErrState indicates a lifecycle call in the wrong state.
	ErrState = errors.New("heat: invalid state")

	// ErrNonFinite indicates NaN or ±Inf in the solution (WithFPChecks).
	ErrNonFinite = errors.New("heat: non-finite value")

	// ErrUnknownPrecision is returned by Run for an unsupported precision.
	ErrUnknownPrecision = errors.New("heat: unknown precision")
)
