// SPDX-License-Identifier: MIT

package diagnostics

import "errors"

var (
	// ErrEmpty is returned by L2 for zero-length inputs.
	ErrEmpty = errors.New("diagnostics: empty input")

	// ErrLengthMismatch is returned by L2 when the inputs differ in length.
	ErrLengthMismatch = errors.New("diagnostics: length mismatch")

	// ErrNegativeStep is returned by History for a negative step index.
	ErrNegativeStep = errors.New("diagnostics: negative step")
)
