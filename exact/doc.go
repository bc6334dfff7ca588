// Package exact evaluates reference solutions of u_t = alpha·u_xx on [0, L]
// used to measure the error of a run. They never feed back into the
// simulated trajectory.
//
// Three cases are recognised from the initial condition and boundaries:
//
//	KindSine     sin(amp,w) with zero boundaries and w·L integral:
//	             amp·sin(wπx)·exp(-α(wπ)²t)
//	KindFourier  const(c) with zero boundaries: the first 999 terms of
//	             Σ 2c(1-(-1)ⁿ)/(nπ)·sin(nπx/L)·exp(-α(nπ/L)²t)
//	KindSteady   anything else: the steady state bc0 + (bc1-bc0)·x/L,
//	             valid only for t ≫ 0
//
// Evaluation is done in float64 regardless of the run's precision.
package exact
