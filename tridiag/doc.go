// Package tridiag provides banded storage and the Thomas algorithm for the
// tridiagonal systems that implicit heat-equation schemes produce.
//
// 🚀 What is tridiag?
//
//	Crank-Nicolson turns every time step into a linear solve A·x = b where A
//	is tridiagonal and constant for the whole run. tridiag stores A in a
//	flat band, factors it once (no pivoting) and then solves in O(n) per
//	right-hand side, counting every scalar operation through number.Ops.
//
// ✨ Key pieces:
//   - Band[T]          n rows, each stored as the triple (sub, diag, super)
//     at 3i..3i+2 of one []T; accessed only through Sub/Diag/Super/SetRow.
//   - NewDiffusion     the Crank-Nicolson matrix: identity boundary rows,
//     interior rows (-w, 1+2w, -w) with w = alpha·dt/dx².
//   - Band.Factor      in-place LU without pivoting; multipliers overwrite
//     the sub slots, reduced pivots overwrite the diagonal.
//   - Band.Solve       forward elimination then back substitution.
//
// ⚙️ Usage:
//
//	ops := number.New[float64](number.Float64{}, nil)
//	band, err := tridiag.NewFactoredDiffusion(ops, n, alpha, dx, dt)
//	if err != nil { ... } // tridiag.ErrZeroPivot for a singular system
//	err = band.Solve(ops, next, prev)
//
// Complexity: Factor O(n), Solve O(n), memory 3n scalars.
//
// A factored Band is read-only: any number of goroutines may call Solve on
// it concurrently, each with its own destination slice.
package tridiag
