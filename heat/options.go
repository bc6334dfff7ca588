// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/scheme"
)

const (
	panicNilSink     = "heat: WithSink(nil)"
	panicNilReporter = "heat: WithReporter(nil)"
	panicNilCounter  = "heat: WithCounter(nil)"
	panicNilLogger   = "heat: WithLogger(nil)"
	panicWorkers     = "heat: WithWorkers: n must be ≥ 1, got %d"
)

// Option configures a Simulation. Constructors panic on programmer error.
type Option func(*options)

type options struct {
	sink     Sink
	reporter Reporter
	counter  number.Counter // nil: a fresh AtomicTally per simulation
	logger   *slog.Logger
	fpChecks bool
	scheme   []scheme.Option
}

func defaultOptions() options {
	return options{
		sink:     DiscardSink,
		reporter: DiscardReporter,
		logger:   slog.New(slog.DiscardHandler),
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.counter == nil {
		o.counter = number.NewAtomicTally()
	}

	return o
}

// WithSink routes curves to s.
func WithSink(s Sink) Option {
	if s == nil {
		panic(panicNilSink)
	}

	return func(o *options) { o.sink = s }
}

// WithReporter routes progress and the summary to r.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic(panicNilReporter)
	}

	return func(o *options) { o.reporter = r }
}

// WithCounter counts operations into c instead of a private AtomicTally.
func WithCounter(c number.Counter) Option {
	if c == nil {
		panic(panicNilCounter)
	}

	return func(o *options) { o.counter = c }
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithWorkers fans the explicit stencils out over n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicWorkers, n))
	}

	return func(o *options) { o.scheme = append(o.scheme, scheme.WithWorkers(n)) }
}

// WithSchemeOptions passes options through to the scheme constructor.
func WithSchemeOptions(opts ...scheme.Option) Option {
	return func(o *options) { o.scheme = append(o.scheme, opts...) }
}

// WithFPChecks makes every step verify the solution is finite and fail with
// ErrNonFinite otherwise. It stands in for hardware floating-point traps;
// the heat command turns it on unless --fpcheck=false.
func WithFPChecks(on bool) Option {
	return func(o *options) { o.fpChecks = on }
}
