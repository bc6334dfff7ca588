// SPDX-License-Identifier: MIT

package scheme

import "fmt"

const (
	// DefaultWorkers runs the interior sequentially.
	DefaultWorkers = 1

	// DefaultMinChunk is the smallest interior slice handed to one worker.
	// Below it the errgroup overhead exceeds the stencil cost.
	DefaultMinChunk = 4096
)

const (
	panicWorkersInvalid  = "scheme: WithWorkers: n must be ≥ 1, got %d"
	panicMinChunkInvalid = "scheme: WithMinChunk: n must be ≥ 1, got %d"
)

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved scheme configuration.
type Options struct {
	workers  int // DefaultWorkers
	minChunk int // DefaultMinChunk
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{workers: DefaultWorkers, minChunk: DefaultMinChunk}
}

// Workers returns the configured worker bound.
func (o Options) Workers() int { return o.workers }

// MinChunk returns the configured minimum chunk size.
func (o Options) MinChunk() int { return o.minChunk }

// WithWorkers bounds the number of goroutines used per step.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicWorkersInvalid, n))
	}

	return func(o *Options) { o.workers = n }
}

// WithMinChunk sets the smallest interior slice given to a worker.
func WithMinChunk(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicMinChunkInvalid, n))
	}

	return func(o *Options) { o.minChunk = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
