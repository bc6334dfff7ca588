// SPDX-License-Identifier: MIT
// Package tridiag: sentinel errors.
//
// Every message is prefixed with "tridiag: ". Callers match with errors.Is;
// context (row index, lengths) is added by %w wrapping at the call site.

package tridiag

import "errors"

var (
	// ErrBadSize is returned when a band is requested with fewer than one row.
	ErrBadSize = errors.New("tridiag: invalid size")

	// ErrOutOfRange indicates a row index outside [0, n).
	ErrOutOfRange = errors.New("tridiag: row out of range")

	// ErrZeroPivot signals an exact zero pivot during factorization.
	// The elimination does not pivot, so such a system cannot be solved.
	ErrZeroPivot = errors.New("tridiag: zero pivot")

	// ErrAlreadyFactored is returned by Factor and SetRow on a factored band.
	ErrAlreadyFactored = errors.New("tridiag: already factored")

	// ErrNotFactored is returned by Solve on a band that was never factored.
	ErrNotFactored = errors.New("tridiag: not factored")

	// ErrDimensionMismatch indicates a vector length different from the band size.
	ErrDimensionMismatch = errors.New("tridiag: dimension mismatch")
)
