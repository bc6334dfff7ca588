// SPDX-License-Identifier: MIT

package diagnostics

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// L2 returns Σ(a(i)-b(i))² / n.
//
// L2(x, x) is exactly zero. Errors: ErrEmpty, ErrLengthMismatch.
//
// Cost: n adds for the differences, n mults, n adds for the sum, 1 div.
func L2[T any](ops number.Ops[T], a, b []T) (T, error) {
	var zero T
	if len(a) != len(b) {
		return zero, fmt.Errorf("L2: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	if len(a) == 0 {
		return zero, fmt.Errorf("L2: %w", ErrEmpty)
	}

	sum := ops.Zero()
	var d T
	for i := range a {
		d = ops.Sub(a[i], b[i])
		sum = ops.Add(sum, ops.Mul(d, d))
	}

	return ops.Div(sum, ops.Int(len(a))), nil
}
