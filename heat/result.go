// SPDX-License-Identifier: MIT

package heat

import (
	"time"

	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/scheme"
)

// Result summarises a finished run.
type Result struct {
	Algorithm scheme.Algorithm
	Precision number.Precision
	Stop      StopMode
	Nx        int
	Dx        float64
	Dt        float64
	Steps     int     // time steps performed
	SimTime   float64 // Steps·Dt
	Change    float64 // last L2 change, 0 before the first step
	Converged bool    // the change threshold ended the run
	Counts    number.Counts
	Elapsed   time.Duration

	Final   []float64 // last solution level
	Changes []float64 // per-step change, nil unless saving
	Errors  []float64 // per-step error against the exact solution, nil unless saving
}
