// Package scheme implements the finite-difference time-stepping schemes for
// the 1-D heat equation u_t = alpha·u_xx with Dirichlet boundaries.
//
// 🚀 What is scheme?
//
//	Every scheme turns one or two previous time levels into the next one.
//	They share a single contract, Scheme[T], so the driver can swap them by
//	name and run them at any precision supported by package number.
//
// ✨ Schemes:
//
//	| Name     | Levels | Interior update                                  | Check         |
//	|----------|--------|--------------------------------------------------|---------------|
//	| ftcs     | 1      | r·u(i+1) + (1-2r)·u(i) + r·u(i-1)                | r > 0.5 fails |
//	| dufrank  | 2      | q(1-r)·u''(i) + q·r·(u(i+1)+u(i-1)), q = 1/(1+r) | none          |
//	| upwind15 | 1      | 5-point stencil in k = alpha²·dt/dx²             | none          |
//	| crankn   | 1      | tridiagonal solve, right-hand side = u           | at New        |
//
//	r = alpha·dt/dx². Boundary samples are overwritten with BC0/BC1 after the
//	interior update of every scheme, so Dirichlet values hold exactly.
//
// ⚙️ Usage:
//
//	ops := number.New[float64](number.Float64{}, number.NewAtomicTally())
//	s, err := scheme.New(scheme.AlgCrankNicolson, ops, n, coeffs, scheme.WithWorkers(4))
//	if err != nil { ... } // ErrUnknownAlgorithm, ErrGridTooSmall, tridiag.ErrZeroPivot
//	err = s.Step(next, scheme.History[float64]{Back1: prev})
//	if errors.Is(err, scheme.ErrUnstable) { ... } // fatal, parameters must change
//
// ⚡ Parallelism:
//
//	The explicit stencils split the interior into chunks and run them on an
//	errgroup bounded by WithWorkers. Each chunk counts into a private
//	number.Tally; the tallies are merged into the scheme's counter after the
//	chunks finish, so totals are identical to a sequential step. The
//	Crank-Nicolson solve is sequential.
package scheme
