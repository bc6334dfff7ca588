// SPDX-License-Identifier: MIT

package heat

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/heat1d/diagnostics"
	"github.com/katalvlaran/heat1d/exact"
	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/scheme"
)

// LevelTrace is the slog level of the per-step records, below Debug.
const LevelTrace = slog.LevelDebug - 4

// Simulation owns every buffer and collaborator of one run.
// It is not safe for concurrent use; one goroutine drives it.
type Simulation[T any] struct {
	ops    number.Ops[T]
	params Params
	opts   options
	state  State
	err    error // sticky failure, set when a step fails

	setup  Setup
	scheme scheme.Scheme[T]
	hist   *diagnostics.History[T]

	curr  []T
	back1 []T
	back2 []T // nil unless the scheme reads two levels

	problem exact.Problem
	exactF  []float64 // exact solution, float64 (nil unless saving)
	exactT  []T       // exact solution in T

	dt        T
	maxTime   T
	minChange T
	step      int // completed steps
	change    T
	hasChange bool
	converged bool
	started   time.Time
}

// New returns an uninitialized Simulation computing in T.
// Options are resolved here; parameters are validated by Init.
func New[T any](arith number.Arith[T], params Params, opts ...Option) *Simulation[T] {
	o := gatherOptions(opts)

	return &Simulation[T]{
		ops:    number.New(arith, o.counter),
		params: params,
		opts:   o,
		state:  StateUninitialized,
	}
}

// State returns the lifecycle position.
func (s *Simulation[T]) State() State { return s.state }

// Setup returns the validated parameters (zero before Init).
func (s *Simulation[T]) Setup() Setup { return s.setup }

// Steps returns the number of completed steps.
func (s *Simulation[T]) Steps() int { return s.step }

// Counts returns the operation counts accumulated so far.
func (s *Simulation[T]) Counts() number.Counts { return s.ops.Counter().Counts() }

// Current returns a float64 copy of the latest solution level.
func (s *Simulation[T]) Current() []float64 {
	if latest := s.latest(); latest != nil {
		return s.ops.Float64s(latest)
	}

	return nil
}

// Init validates the parameters, allocates the time levels, builds the
// scheme, evaluates the initial condition into the previous level and emits
// the LabelStart curve.
//
// Errors: ErrState, ErrInvalidParam, ErrConflictingStop, and the wrapped
// errors of Params.Validate, initcond and scheme.New (for Crank-Nicolson the
// factorization error). A configuration error leaves the Simulation
// uninitialized; a sink error terminates it.
func (s *Simulation[T]) Init() error {
	if s.state != StateUninitialized {
		return fmt.Errorf("Init in state %s: %w", s.state, ErrState)
	}

	// Stage 1: parameters
	setup, err := s.params.Validate()
	if err != nil {
		return err
	}
	ops := s.ops
	dt := ops.Float(setup.Params.Dt)
	if !ops.Greater(dt, ops.Zero()) || !number.IsFinite(ops.Arith(), dt) {
		return fmt.Errorf("dt=%g not representable at %s precision: %w",
			setup.Params.Dt, ops.Precision(), ErrInvalidParam)
	}
	minChange := ops.Float(setup.MinChange)
	if setup.Stop == StopThreshold && !ops.Greater(minChange, ops.Zero()) {
		return fmt.Errorf("min change %g underflows at %s precision: %w",
			setup.MinChange, ops.Precision(), ErrInvalidParam)
	}

	// Stage 2: initial condition (before any allocation is counted)
	ic, err := setup.IC.Eval(setup.Nx, setup.Dx)
	if err != nil {
		return fmt.Errorf("heat: ic %s: %w", setup.IC, err)
	}

	// Stage 3: scheme
	coeffs := scheme.Coefficients[T]{
		Alpha: ops.Float(setup.Params.Alpha),
		Dx:    ops.Float(setup.Dx),
		Dt:    dt,
		BC0:   ops.Float(setup.Params.BC0),
		BC1:   ops.Float(setup.Params.BC1),
	}
	sch, err := scheme.New(setup.Algorithm, ops, setup.Nx, coeffs, s.opts.scheme...)
	if err != nil {
		return fmt.Errorf("heat: %w", err)
	}

	// Stage 4: time levels and diagnostics
	s.back1 = ops.FromFloat64s(ic)
	s.curr = ops.Make(setup.Nx)
	if sch.Levels() > 1 {
		s.back2 = ops.Make(setup.Nx)
	}
	if setup.Params.Save {
		s.hist = diagnostics.NewHistory(ops, setup.MaxSteps)
		s.exactF = make([]float64, setup.Nx)
		s.exactT = ops.Make(setup.Nx)
		s.problem = exact.Problem{
			IC:    setup.IC,
			Alpha: setup.Params.Alpha,
			LenX:  setup.Params.LenX,
			BC0:   setup.Params.BC0,
			BC1:   setup.Params.BC1,
		}
	}

	s.setup, s.scheme = setup, sch
	s.dt, s.maxTime, s.minChange = dt, ops.Float(setup.MaxTime), minChange
	s.started = time.Now()
	s.state = StateInitialized

	s.opts.logger.Info("run initialized",
		"alg", setup.Algorithm, "prec", ops.Precision(), "nx", setup.Nx, "dx", setup.Dx,
		"dt", setup.Params.Dt, "stop", setup.Stop, "maxt", setup.MaxTime,
		"min_change", setup.MinChange, "ic", setup.IC.String())

	// Stage 5: initial curve
	if err = s.emit(LabelStart, 0, setup.Dx, s.back1); err != nil {
		return s.fail(err)
	}

	return nil
}

// Step performs one time step and reports whether the run is finished.
//
// Implementation:
//   - Stage 1: scheme step curr ← (back1, back2); back2 is nil on the first step.
//   - Stage 2: optional finiteness check.
//   - Stage 3: when saving, exact solution at (step+1)·dt and its L2 error.
//   - Stage 4: solution and exact curves every SaveEvery steps (step > 0).
//   - Stage 5: change = L2(curr, back1), recorded when saving.
//   - Stage 6: threshold stop without rotation.
//   - Stage 7: progress report, rotation, time check.
//
// Any error is fatal: the Simulation moves to StateTerminated and every
// later call fails. Errors: ErrState, scheme.ErrUnstable, ErrNonFinite,
// sink errors.
func (s *Simulation[T]) Step() (done bool, err error) {
	switch s.state {
	case StateInitialized:
		s.state = StateStepping
	case StateStepping:
	default:
		return true, fmt.Errorf("Step in state %s: %w", s.state, ErrState)
	}
	ops, k := s.ops, s.step

	// Stage 1: scheme
	h := scheme.History[T]{Back1: s.back1}
	if s.back2 != nil && k > 0 {
		h.Back2 = s.back2
	}
	if err = s.scheme.Step(s.curr, h); err != nil {
		return true, s.fail(fmt.Errorf("heat: step %d: %w", k, err))
	}

	// Stage 2: finiteness
	if s.opts.fpChecks {
		for i, v := range s.curr {
			if !number.IsFinite(ops.Arith(), v) {
				return true, s.fail(fmt.Errorf("step %d: u[%d]=%s: %w",
					k, i, ops.Format(v, 'g', -1), ErrNonFinite))
			}
		}
	}

	// Stage 3: error against the exact solution
	if s.hist != nil {
		t := float64(k+1) * s.setup.Params.Dt
		s.problem.Evaluate(s.exactF, s.setup.Dx, t)
		for i, v := range s.exactF {
			s.exactT[i] = ops.Float(v)
		}
		l2, err := diagnostics.L2(ops, s.curr, s.exactT)
		if err != nil {
			return true, s.fail(err)
		}
		if err = s.hist.RecordError(k, l2); err != nil {
			return true, s.fail(err)
		}
	}

	// Stage 4: periodic curves
	if every := s.setup.Params.SaveEvery; every > 0 && k > 0 && k%every == 0 {
		if s.hist != nil {
			if err = s.emit(LabelExact, k, s.setup.Dx, s.exactT); err != nil {
				return true, s.fail(err)
			}
		}
		if err = s.emit(LabelStep, k, s.setup.Dx, s.curr); err != nil {
			return true, s.fail(err)
		}
	}

	// Stage 5: change
	change, err := diagnostics.L2(ops, s.curr, s.back1)
	if err != nil {
		return true, s.fail(err)
	}
	s.change, s.hasChange = change, true
	if s.hist != nil {
		if err = s.hist.Record(k, change); err != nil {
			return true, s.fail(err)
		}
	}
	s.step = k + 1
	if ctx := context.Background(); s.opts.logger.Enabled(ctx, LevelTrace) {
		s.opts.logger.Log(ctx, LevelTrace, "step",
			"step", k, "change", ops.Format(change, 'g', ops.Precision().Digits()))
	}

	// Stage 6: threshold
	if s.setup.Stop == StopThreshold && ops.Less(change, s.minChange) {
		s.converged = true
		s.state = StateTerminated
		s.opts.reporter.Stopped(k, ops.Float64(change))
		s.opts.logger.Info("change below threshold", "step", k,
			"change", ops.Float64(change), "min_change", s.setup.MinChange)

		return true, nil
	}

	// Stage 7: report, rotate, advance
	if every := s.setup.Params.ReportEvery; every > 0 && k%every == 0 {
		s.opts.reporter.Progress(k, ops.Float64(change))
	}
	if s.back2 != nil {
		s.back2, s.back1, s.curr = s.back1, s.curr, s.back2
	} else {
		s.back1, s.curr = s.curr, s.back1
	}
	if !ops.Less(ops.Mul(ops.Int(s.step), s.dt), s.maxTime) {
		s.state = StateTerminated

		return true, nil
	}

	return false, nil
}

// Finish emits the final solution and, when saving, the change and error
// histories, reports the summary and releases the time levels.
// Finish after a failed step returns that failure and emits nothing.
//
// Errors: ErrState (before Init or when called twice), the sticky step
// failure, sink errors.
func (s *Simulation[T]) Finish() (Result, error) {
	if s.err != nil {
		return Result{}, s.err
	}
	if s.state == StateUninitialized || s.scheme == nil {
		return Result{}, fmt.Errorf("Finish in state %s: %w", s.state, ErrState)
	}
	s.state = StateTerminated
	ops, setup := s.ops, s.setup

	latest := s.latest()
	res := Result{
		Algorithm: setup.Algorithm,
		Precision: ops.Precision(),
		Stop:      setup.Stop,
		Nx:        setup.Nx,
		Dx:        setup.Dx,
		Dt:        setup.Params.Dt,
		Steps:     s.step,
		SimTime:   float64(s.step) * setup.Params.Dt,
		Converged: s.converged,
		Final:     ops.Float64s(latest),
	}
	if s.hasChange {
		res.Change = ops.Float64(s.change)
	}

	if err := s.emit(LabelFinal, NoStep, setup.Dx, latest); err != nil {
		return Result{}, s.fail(err)
	}
	if s.hist != nil {
		res.Changes = ops.Float64s(s.hist.Change())
		if err := s.emit(LabelChange, NoStep, setup.Params.Dt, s.hist.Change()); err != nil {
			return Result{}, s.fail(err)
		}
		if s.hist.HasError() {
			res.Errors = ops.Float64s(s.hist.Error())
			if err := s.emit(LabelError, NoStep, setup.Params.Dt, s.hist.Error()); err != nil {
				return Result{}, s.fail(err)
			}
		}
	}

	res.Counts = ops.Counter().Counts()
	res.Elapsed = time.Since(s.started)
	s.opts.reporter.Summary(res)
	s.opts.logger.Info("run finished",
		"steps", res.Steps, "sim_time", res.SimTime, "change", res.Change,
		"converged", res.Converged, "counts", res.Counts.String(), "elapsed", res.Elapsed)

	s.release()
	s.err = fmt.Errorf("Finish already called: %w", ErrState)

	return res, nil
}

// Run drives Init, Step until done, and Finish. ctx is checked between
// steps; a step itself is never interrupted.
func (s *Simulation[T]) Run(ctx context.Context) (Result, error) {
	if err := s.Init(); err != nil {
		return Result{}, err
	}
	for {
		if err := ctx.Err(); err != nil {
			return Result{}, s.fail(fmt.Errorf("heat: after %d steps: %w", s.step, err))
		}
		done, err := s.Step()
		if err != nil {
			return Result{}, err
		}
		if done {
			break
		}
	}

	return s.Finish()
}

// latest is the most recent level: curr after a threshold stop (no
// rotation), back1 otherwise.
func (s *Simulation[T]) latest() []T {
	if s.converged {
		return s.curr
	}

	return s.back1
}

// emit converts values into a Curve and hands it to the sink.
func (s *Simulation[T]) emit(label Label, step int, spacing float64, values []T) error {
	prec := s.ops.Precision()
	c := Curve{
		Label:     label,
		Step:      step,
		Spacing:   spacing,
		Precision: prec,
		Values:    s.ops.Float64s(values),
		Text:      make([]string, len(values)),
	}
	for i, v := range values {
		c.Text[i] = s.ops.Format(v, 'e', prec.CurveDigits())
	}
	if err := s.opts.sink.WriteCurve(c); err != nil {
		return fmt.Errorf("heat: write %s curve: %w", label, err)
	}

	return nil
}

// fail records err, terminates and releases the time levels.
func (s *Simulation[T]) fail(err error) error {
	s.err = err
	s.state = StateTerminated
	s.opts.logger.Error("run failed", "step", s.step, "err", err)
	s.release()

	return err
}

func (s *Simulation[T]) release() {
	s.curr, s.back1, s.back2 = nil, nil, nil
	s.exactF, s.exactT = nil, nil
}
