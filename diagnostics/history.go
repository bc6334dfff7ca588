// SPDX-License-Identifier: MIT

package diagnostics

import (
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// History stores per-step L2 change and L2 error series indexed by step.
//
// With a known step budget the change series is allocated up front
// (NewHistory with capacity > 0) and its bytes are counted once; otherwise
// both series grow on demand. The error series is only allocated when the
// first error is recorded, since an exact solution is not always available.
type History[T any] struct {
	ops      number.Ops[T]
	capacity int
	change   []T
	errs     []T
	steps    int // highest recorded change step + 1
	errSteps int // highest recorded error step + 1
}

// NewHistory returns a History pre-sized for capacity steps (0 = grow).
func NewHistory[T any](ops number.Ops[T], capacity int) *History[T] {
	h := &History[T]{ops: ops, capacity: max(capacity, 0)}
	if h.capacity > 0 {
		h.change = ops.Make(h.capacity)
	}

	return h
}

// Record stores the change of step.
func (h *History[T]) Record(step int, change T) error {
	if step < 0 {
		return fmt.Errorf("Record(%d): %w", step, ErrNegativeStep)
	}
	h.change = h.grow(h.change, step)
	h.change[step] = change
	h.steps = max(h.steps, step+1)

	return nil
}

// RecordError stores the error of step against the exact solution.
func (h *History[T]) RecordError(step int, err T) error {
	if step < 0 {
		return fmt.Errorf("RecordError(%d): %w", step, ErrNegativeStep)
	}
	if h.errs == nil && h.capacity > step {
		h.errs = h.ops.Make(h.capacity)
	}
	h.errs = h.grow(h.errs, step)
	h.errs[step] = err
	h.errSteps = max(h.errSteps, step+1)

	return nil
}

// grow extends s so index step is addressable, doubling to amortise.
func (h *History[T]) grow(s []T, step int) []T {
	if step < len(s) {
		return s
	}
	size := max(2*len(s), step+1, 64)
	next := h.ops.Make(size)
	copy(next, s)

	return next
}

// Len returns the number of change steps recorded (highest step + 1).
func (h *History[T]) Len() int { return h.steps }

// Change returns the change series for steps [0, Len()).
func (h *History[T]) Change() []T { return h.change[:h.steps] }

// Error returns the error series, empty when no error was recorded.
func (h *History[T]) Error() []T {
	if h.errs == nil {
		return nil
	}

	return h.errs[:h.errSteps]
}

// HasError reports whether any error sample was recorded.
func (h *History[T]) HasError() bool { return h.errSteps > 0 }

// Last returns the most recent change and whether one exists.
func (h *History[T]) Last() (T, bool) {
	if h.steps == 0 {
		var zero T
		return zero, false
	}

	return h.change[h.steps-1], true
}
