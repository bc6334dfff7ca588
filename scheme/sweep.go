// SPDX-License-Identifier: MIT

package scheme

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/heat1d/number"
)

// kernel updates dst over the index range [lo, hi) counting through ops.
type kernel[T any] func(ops number.Ops[T], lo, hi int)

// sweep applies k over [lo, hi), fanning out when the range is large enough.
//
// Each chunk counts into its own Tally. The tallies are merged into ops'
// counter only after every chunk has finished, so the shared counter is
// never touched concurrently and the totals do not depend on scheduling.
func sweep[T any](ops number.Ops[T], o Options, lo, hi int, k kernel[T]) error {
	span := hi - lo
	if span <= 0 {
		return nil
	}
	if o.workers <= 1 || span <= o.minChunk {
		k(ops, lo, hi)
		return nil
	}

	size := (span + o.workers - 1) / o.workers
	if size < o.minChunk {
		size = o.minChunk
	}
	chunks := (span + size - 1) / size
	tallies := make([]number.Tally, chunks)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for c := 0; c < chunks; c++ {
		start := lo + c*size
		end := min(start+size, hi)
		tally := &tallies[c]
		g.Go(func() error {
			k(ops.WithCounter(tally), start, end)
			return nil
		})
	}
	err := g.Wait()

	for i := range tallies {
		number.Merge(ops.Counter(), tallies[i].Counts())
	}

	return err
}
