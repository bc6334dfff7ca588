// SPDX-License-Identifier: MIT

package initcond

import "errors"

var (
	// ErrSyntax indicates a malformed expression or a wrong argument count.
	ErrSyntax = errors.New("initcond: syntax error")

	// ErrUnknownKind indicates a function name outside the language.
	ErrUnknownKind = errors.New("initcond: unknown kind")

	// ErrBadSize is returned by Eval for n < 1.
	ErrBadSize = errors.New("initcond: invalid grid size")

	// ErrSpikeIndex indicates a spike index outside [0, n).
	ErrSpikeIndex = errors.New("initcond: spike index out of range")

	// ErrFileLength indicates a file that does not hold exactly n values.
	ErrFileLength = errors.New("initcond: file length mismatch")
)
