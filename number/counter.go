// SPDX-License-Identifier: MIT
// Package number: operation counting.
//
// Counting is an injectable capability, not a global. A run owns one Counter;
// tests own their own, so repeated runs never observe each other's totals.

package number

import (
	"fmt"
	"sync/atomic"
)

// Op classifies a counted event.
type Op int

const (
	// OpAdd counts additions, subtractions and negations.
	OpAdd Op = iota

	// OpMul counts multiplications.
	OpMul

	// OpDiv counts divisions.
	OpDiv

	// OpBytes accumulates bytes allocated for scalar arrays.
	OpBytes
)

// Counts is a snapshot of accumulated events.
type Counts struct {
	Adds  int64
	Mults int64
	Divs  int64
	Bytes int64
}

// Plus returns the element-wise sum of c and o.
func (c Counts) Plus(o Counts) Counts {
	return Counts{
		Adds:  c.Adds + o.Adds,
		Mults: c.Mults + o.Mults,
		Divs:  c.Divs + o.Divs,
		Bytes: c.Bytes + o.Bytes,
	}
}

// Flops returns Adds+Mults+Divs.
func (c Counts) Flops() int64 { return c.Adds + c.Mults + c.Divs }

// String formats the end-of-run summary.
func (c Counts) String() string {
	return fmt.Sprintf("Adds:%d, Mults:%d, Divs:%d, Bytes:%d", c.Adds, c.Mults, c.Divs, c.Bytes)
}

// Counter receives counted events.
//
// Implementations decide the synchronisation policy: Tally is for a single
// goroutine, AtomicTally may be shared by concurrent stencil workers.
type Counter interface {
	Count(op Op, n int64)
	Counts() Counts
}

// Discard is a Counter that ignores every event.
var Discard Counter = discard{}

type discard struct{}

func (discard) Count(Op, int64) {}
func (discard) Counts() Counts  { return Counts{} }

// Tally is a plain, non-synchronised Counter. The zero value is ready to use.
type Tally struct {
	c Counts
}

// Count records n events of kind op.
func (t *Tally) Count(op Op, n int64) {
	switch op {
	case OpAdd:
		t.c.Adds += n
	case OpMul:
		t.c.Mults += n
	case OpDiv:
		t.c.Divs += n
	case OpBytes:
		t.c.Bytes += n
	}
}

// Counts returns the accumulated totals.
func (t *Tally) Counts() Counts { return t.c }

// Reset zeroes the tally.
func (t *Tally) Reset() { t.c = Counts{} }

// AtomicTally is a Counter safe for concurrent use.
// Updates are relaxed: totals are exact once all writers have finished.
type AtomicTally struct {
	adds  atomic.Int64
	mults atomic.Int64
	divs  atomic.Int64
	bytes atomic.Int64
}

// NewAtomicTally returns an empty AtomicTally.
func NewAtomicTally() *AtomicTally { return &AtomicTally{} }

// Count records n events of kind op.
func (t *AtomicTally) Count(op Op, n int64) {
	switch op {
	case OpAdd:
		t.adds.Add(n)
	case OpMul:
		t.mults.Add(n)
	case OpDiv:
		t.divs.Add(n)
	case OpBytes:
		t.bytes.Add(n)
	}
}

// Counts returns a snapshot of the totals.
func (t *AtomicTally) Counts() Counts {
	return Counts{
		Adds:  t.adds.Load(),
		Mults: t.mults.Load(),
		Divs:  t.divs.Load(),
		Bytes: t.bytes.Load(),
	}
}

// Merge adds a snapshot into dst, one Count call per non-zero kind.
// Stencil workers use it to publish a private Tally into the shared counter.
func Merge(dst Counter, c Counts) {
	if dst == nil {
		return
	}
	if c.Adds != 0 {
		dst.Count(OpAdd, c.Adds)
	}
	if c.Mults != 0 {
		dst.Count(OpMul, c.Mults)
	}
	if c.Divs != 0 {
		dst.Count(OpDiv, c.Divs)
	}
	if c.Bytes != 0 {
		dst.Count(OpBytes, c.Bytes)
	}
}
