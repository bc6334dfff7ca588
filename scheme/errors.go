// SPDX-License-Identifier: MIT
// Package scheme: sentinel errors.
//
// ErrUnstable is the only runtime failure; every other sentinel reports a
// configuration or programmer error and is returned before any value is written.

package scheme

import "errors"

var (
	// ErrUnstable signals that a step would be mathematically invalid
	// (FTCS with r > 0.5). The caller must abort the run.
	ErrUnstable = errors.New("scheme: unstable step")

	// ErrUnknownAlgorithm is returned for a name outside Algorithms().
	ErrUnknownAlgorithm = errors.New("scheme: unknown algorithm")

	// ErrGridTooSmall is returned when n < MinPoints.
	ErrGridTooSmall = errors.New("scheme: grid too small")

	// ErrDimensionMismatch indicates a buffer whose length differs from Len().
	ErrDimensionMismatch = errors.New("scheme: dimension mismatch")

	// ErrMissingHistory indicates a required history level was not supplied.
	ErrMissingHistory = errors.New("scheme: missing history level")

	// ErrAliased indicates dst shares storage with a history level.
	ErrAliased = errors.New("scheme: destination aliases history")
)
