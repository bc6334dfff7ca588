// Package diagnostics computes the L2 metric used as both the step-to-step
// convergence signal and the error against an exact solution, and records
// both series per time step.
//
//	l2(a, b) = Σ (a(i) - b(i))² / n
//
// Note the metric is the mean squared difference; no square root is taken.
// Every operation is counted through number.Ops like the schemes themselves.
package diagnostics
