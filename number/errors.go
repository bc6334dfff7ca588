// SPDX-License-Identifier: MIT
// Package number: sentinel errors.
//
// Arithmetic itself has no error conditions; the only failure surface is
// configuration (selecting a precision by name).

package number

import "errors"

// ErrUnknownPrecision is returned by ParsePrecision for an unrecognized name.
var ErrUnknownPrecision = errors.New("number: unknown precision")
