// SPDX-License-Identifier: MIT

package heat

import (
	"errors"

	"github.com/katalvlaran/heat1d/number"
)

// NoStep marks a curve that is not tied to a time step.
const NoStep = -1

// Label identifies what a Curve holds.
type Label int

const (
	// LabelStart is the initial condition (step 0).
	LabelStart Label = iota

	// LabelStep is the solution at a save interval.
	LabelStep

	// LabelExact is the exact solution at a save interval.
	LabelExact

	// LabelFinal is the last solution of the run.
	LabelFinal

	// LabelChange is the per-step L2 change history (x = step·dt).
	LabelChange

	// LabelError is the per-step L2 error history (x = step·dt).
	LabelError
)

var labelNames = [...]string{"start", "step", "exact", "final", "change", "error"}

// String returns the lower-case label name.
func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return "unknown"
	}

	return labelNames[l]
}

// Curve is one array handed to a Sink.
//
// Values are the samples widened to float64; Text holds the same samples
// formatted at the run's precision ('e', Precision.CurveDigits digits), so
// sinks can persist extended-precision digits that float64 would drop.
// Sample i sits at x = i·Spacing.
type Curve struct {
	Label     Label
	Step      int // NoStep unless Label is LabelStep or LabelExact
	Spacing   float64
	Precision number.Precision
	Values    []float64
	Text      []string
}

// Sink persists curves. WriteCurve errors are fatal to the run.
type Sink interface {
	WriteCurve(c Curve) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Curve) error

// WriteCurve calls f(c).
func (f SinkFunc) WriteCurve(c Curve) error { return f(c) }

// MultiSink fans each curve out to every sink, joining their errors.
type MultiSink []Sink

// WriteCurve implements Sink.
func (m MultiSink) WriteCurve(c Curve) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.WriteCurve(c); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// DiscardSink drops every curve.
var DiscardSink Sink = SinkFunc(func(Curve) error { return nil })

// Reporter observes a run. Implementations must not block.
type Reporter interface {
	// Progress is called every ReportEvery steps.
	Progress(step int, change float64)

	// Stopped is called when the change threshold ends the run early.
	Stopped(step int, change float64)

	// Summary is called once by Finish.
	Summary(r Result)
}

// DiscardReporter ignores every event.
var DiscardReporter Reporter = discardReporter{}

type discardReporter struct{}

func (discardReporter) Progress(int, float64) {}
func (discardReporter) Stopped(int, float64)  {}
func (discardReporter) Summary(Result)        {}
