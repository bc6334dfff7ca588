// SPDX-License-Identifier: MIT

package heat

import (
	"context"
	"fmt"

	"github.com/katalvlaran/heat1d/number"
)

// Run executes one complete run at precision prec.
//
// It instantiates Simulation[float64], [float32], [number.Half] or
// [number.Extended] and drives it with Simulation.Run.
// Errors: ErrUnknownPrecision and every error of Simulation.Run.
func Run(ctx context.Context, prec number.Precision, params Params, opts ...Option) (Result, error) {
	switch prec {
	case number.PrecisionHalf:
		return New[number.Half](number.HalfArith{}, params, opts...).Run(ctx)
	case number.PrecisionSingle:
		return New[float32](number.Float32{}, params, opts...).Run(ctx)
	case number.PrecisionDouble:
		return New[float64](number.Float64{}, params, opts...).Run(ctx)
	case number.PrecisionQuad:
		return New[number.Extended](number.ExtendedArith{}, params, opts...).Run(ctx)
	}

	return Result{}, fmt.Errorf("precision %d: %w", int(prec), ErrUnknownPrecision)
}
