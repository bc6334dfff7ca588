// Package heat drives a 1-D heat-equation run from validated parameters to
// a final result.
//
// 🚀 What is heat?
//
//	heat owns everything a run needs: the grid buffers, the selected scheme,
//	the stopping policy, the optional exact-solution comparison and the
//	per-step change/error history. Collaborators are injected: curves go to
//	a Sink, progress goes to a Reporter, operation counts to a
//	number.Counter. Nothing is global, so runs are isolated from each other.
//
// ✨ Lifecycle:
//
//	StateUninitialized --Init--> StateInitialized --Step--> StateStepping
//	        StateStepping --Step (stop criterion or failure)--> StateTerminated
//	        Finish: emit final curves and summary, release buffers
//
// One Step performs:
//  1. scheme step into curr from back1 (and back2); ErrUnstable is fatal;
//  2. optional non-finite check (WithFPChecks), ErrNonFinite is fatal;
//  3. when saving: exact solution at (step+1)·dt and its L2 error;
//  4. every SaveEvery steps (step > 0): exact and current curves;
//  5. change = L2(curr, back1), recorded when saving;
//  6. threshold mode: stop without rotating when change < MinChange;
//  7. progress every ReportEvery steps;
//  8. rotate back2 ← back1 ← curr, advance, continue while step·dt < MaxTime.
//
// ⚙️ Stopping criterion:
//
//	Params.MaxTime > 0                 stop once simulated time reaches MaxTime
//	Params.MinChange > 0, MaxTime == 0 stop once change < MinChange
//	Params.MaxTime < 0                 legacy form of the above with
//	                                   MinChange = MaxTime², MaxTime = MaxInt32
//
// Precision is a type parameter. Run dispatches a number.Precision to
// Simulation[float64], [float32], [number.Half] or [number.Extended].
package heat
