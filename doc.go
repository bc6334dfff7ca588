// Package heat1d solves the one-dimensional heat equation u_t = α·u_xx on a
// uniform grid with fixed boundary values, in a precision chosen at run time,
// while counting every arithmetic operation it performs.
//
// 🚀 What is heat1d?
//
//	A small numerical laboratory for comparing finite-difference schemes:
//		• Numeric types: float16, float32, float64 and double-double with op counting
//		• Linear algebra: Thomas algorithm for tridiagonal systems
//		• Schemes: FTCS, DuFort-Frankel, Upwind15, Crank-Nicolson
//		• Driver: validated parameters, time or change-threshold stopping
//		• Diagnostics: L2 change between levels and L2 error against exact solutions
//
// ✨ Why heat1d?
//
//   - Every run is isolated: counters, sinks and reporters are injected
//   - Precision is a type parameter, not a recompile
//   - Explicit stencils fan out across goroutines with identical results
//
// Packages:
//
//	number/      Arith implementations, Precision table, operation counters
//	tridiag/     factor-once, solve-many tridiagonal band
//	scheme/      the four update schemes behind one Scheme interface
//	heat/        Simulation state machine and the Run entry point
//	diagnostics/ L2 norms
//	exact/       closed-form solutions for comparison
//	initcond/    the initial-condition expression language
//
// The heat command (cmd/heat) adds curve files, PNG plots, a PDF report and
// a SQLite archive of finished runs:
//
//	go install github.com/katalvlaran/heat1d/cmd/heat@latest
//	heat runame=demo alg=crankn savi=100 save=1 --report
package heat1d
