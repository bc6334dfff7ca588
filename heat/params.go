// SPDX-License-Identifier: MIT

package heat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/heat1d/initcond"
	"github.com/katalvlaran/heat1d/scheme"
)

// SentinelMaxTime is the MaxTime used in threshold mode. Simulated time
// never reaches it, so only the change threshold stops the run.
const SentinelMaxTime = math.MaxInt32

// MaxPoints bounds the grid so a typo in dx cannot exhaust memory.
const MaxPoints = 1 << 26

// Reference defaults.
const (
	DefaultAlpha       = 0.2
	DefaultLenX        = 1.0
	DefaultDx          = 0.1
	DefaultDt          = 0.004
	DefaultMaxTime     = 2.0
	DefaultBC0         = 0.0
	DefaultBC1         = 1.0
	DefaultIC          = "const(1)"
	DefaultAlgorithm   = "ftcs"
	DefaultReportEvery = 100
)

// Params are the user-facing run parameters.
type Params struct {
	Alpha     float64 // thermal diffusivity
	LenX      float64 // domain length
	Dx        float64 // requested spacing; adjusted so the grid spans [0, LenX]
	Dt        float64 // time step
	MaxTime   float64 // > 0 time limit; < 0 legacy threshold encoding
	MinChange float64 // > 0 threshold mode (with MaxTime == 0)
	BC0       float64 // u(0)
	BC1       float64 // u(LenX)
	IC        string  // initial condition expression
	Algorithm string  // scheme name

	Save        bool // record change/error histories and write them at Finish
	SaveEvery   int  // write solution (and exact) curves every n steps; 0 = never
	ReportEvery int  // report progress every n steps; 0 = never
}

// DefaultParams returns the reference defaults.
func DefaultParams() Params {
	return Params{
		Alpha:       DefaultAlpha,
		LenX:        DefaultLenX,
		Dx:          DefaultDx,
		Dt:          DefaultDt,
		MaxTime:     DefaultMaxTime,
		BC0:         DefaultBC0,
		BC1:         DefaultBC1,
		IC:          DefaultIC,
		Algorithm:   DefaultAlgorithm,
		ReportEvery: DefaultReportEvery,
	}
}

// StopMode selects the stopping criterion.
type StopMode int

const (
	// StopTime stops once step·dt reaches MaxTime.
	StopTime StopMode = iota

	// StopThreshold stops once the L2 change falls below MinChange.
	StopThreshold
)

// String returns "time" or "threshold".
func (m StopMode) String() string {
	if m == StopThreshold {
		return "threshold"
	}

	return "time"
}

// Setup is the validated, derived form of Params. Immutable.
type Setup struct {
	Params    Params
	Nx        int
	Dx        float64 // LenX/(Nx-1)
	IC        initcond.Spec
	Algorithm scheme.Algorithm
	Stop      StopMode
	MaxTime   float64 // SentinelMaxTime in threshold mode
	MinChange float64 // 0 in time mode
	MaxSteps  int     // ceil(MaxTime/Dt) in time mode, 0 in threshold mode
}

// Validate checks p and derives the grid and stopping policy.
//
// Implementation:
//   - Stage 1: Alpha, LenX, Dx, Dt positive and finite; boundaries finite;
//     SaveEvery, ReportEvery, MinChange non-negative.
//   - Stage 2: resolve the stopping criterion (legacy negative MaxTime
//     becomes MinChange = MaxTime², MaxTime = SentinelMaxTime).
//   - Stage 3: Nx = round(LenX/Dx)+1, Dx = LenX/(Nx-1), MinPoints ≤ Nx ≤ MaxPoints.
//   - Stage 4: algorithm name and initial-condition expression.
//
// Errors: ErrInvalidParam, ErrConflictingStop, scheme.ErrGridTooSmall,
// scheme.ErrUnknownAlgorithm, initcond.ErrSyntax, initcond.ErrUnknownKind.
func (p Params) Validate() (Setup, error) {
	// Stage 1: scalar ranges
	for _, f := range []struct {
		name string
		v    float64
	}{{"alpha", p.Alpha}, {"lenx", p.LenX}, {"dx", p.Dx}, {"dt", p.Dt}} {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return Setup{}, fmt.Errorf("%s=%g: must be positive and finite: %w", f.name, f.v, ErrInvalidParam)
		}
	}
	if !finite(p.BC0) || !finite(p.BC1) || !finite(p.MaxTime) || !finite(p.MinChange) {
		return Setup{}, fmt.Errorf("bc0=%g bc1=%g maxt=%g minchange=%g: must be finite: %w",
			p.BC0, p.BC1, p.MaxTime, p.MinChange, ErrInvalidParam)
	}
	if p.MinChange < 0 || p.SaveEvery < 0 || p.ReportEvery < 0 {
		return Setup{}, fmt.Errorf("minchange=%g savi=%d outi=%d: must not be negative: %w",
			p.MinChange, p.SaveEvery, p.ReportEvery, ErrInvalidParam)
	}

	// Stage 2: stopping criterion
	s := Setup{Params: p}
	switch {
	case p.MaxTime > 0 && p.MinChange > 0, p.MaxTime < 0 && p.MinChange > 0:
		return Setup{}, fmt.Errorf("maxt=%g minchange=%g: %w", p.MaxTime, p.MinChange, ErrConflictingStop)
	case p.MaxTime > 0:
		s.Stop, s.MaxTime = StopTime, p.MaxTime
		s.MaxSteps = int(math.Ceil(p.MaxTime / p.Dt))
	case p.MaxTime < 0:
		s.Stop, s.MaxTime, s.MinChange = StopThreshold, SentinelMaxTime, p.MaxTime*p.MaxTime
	case p.MinChange > 0:
		s.Stop, s.MaxTime, s.MinChange = StopThreshold, SentinelMaxTime, p.MinChange
	default:
		return Setup{}, fmt.Errorf("neither maxt nor minchange set: %w", ErrInvalidParam)
	}

	// Stage 3: grid
	cells := math.Round(p.LenX / p.Dx)
	if cells+1 > MaxPoints {
		return Setup{}, fmt.Errorf("lenx/dx=%g: more than %d points: %w", cells, MaxPoints, ErrInvalidParam)
	}
	s.Nx = int(cells) + 1
	if s.Nx < scheme.MinPoints {
		return Setup{}, fmt.Errorf("heat: Nx=%d: %w", s.Nx, scheme.ErrGridTooSmall)
	}
	s.Dx = p.LenX / float64(s.Nx-1)

	// Stage 4: algorithm and initial condition
	alg, err := scheme.ParseAlgorithm(p.Algorithm)
	if err != nil {
		return Setup{}, fmt.Errorf("heat: %w", err)
	}
	s.Algorithm = alg
	if s.IC, err = initcond.Parse(p.IC); err != nil {
		return Setup{}, fmt.Errorf("heat: ic: %w", err)
	}

	return s, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
