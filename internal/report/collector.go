// Package report turns the curves of a run into PNG plots and a PDF summary.
package report

import (
	"sort"
	"sync"

	"github.com/katalvlaran/heat1d/heat"
)

// Collector is a heat.Sink that keeps every curve in memory.
type Collector struct {
	mu     sync.Mutex
	start  *heat.Curve
	final  *heat.Curve
	change *heat.Curve
	errs   *heat.Curve
	steps  []heat.Curve
	exact  []heat.Curve
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// WriteCurve implements heat.Sink.
func (c *Collector) WriteCurve(curve heat.Curve) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch curve.Label {
	case heat.LabelStart:
		c.start = &curve
	case heat.LabelFinal:
		c.final = &curve
	case heat.LabelChange:
		c.change = &curve
	case heat.LabelError:
		c.errs = &curve
	case heat.LabelStep:
		c.steps = append(c.steps, curve)
	case heat.LabelExact:
		c.exact = append(c.exact, curve)
	}

	return nil
}

// Snapshot is the collected curves, step curves ordered by step.
type Snapshot struct {
	Start  *heat.Curve
	Final  *heat.Curve
	Change *heat.Curve
	Error  *heat.Curve
	Steps  []heat.Curve
	Exact  []heat.Curve
}

// Snapshot returns a copy of what has been collected.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Start:  c.start,
		Final:  c.final,
		Change: c.change,
		Error:  c.errs,
		Steps:  append([]heat.Curve(nil), c.steps...),
		Exact:  append([]heat.Curve(nil), c.exact...),
	}
	byStep := func(cs []heat.Curve) {
		sort.Slice(cs, func(i, j int) bool { return cs[i].Step < cs[j].Step })
	}
	byStep(s.Steps)
	byStep(s.Exact)

	return s
}
