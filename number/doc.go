// Package number provides the scalar layer shared by every heat1d solver.
//
// 🚀 What is number?
//
//	Finite-difference schemes only need a handful of scalar operations:
//	add, subtract, multiply, divide and compare. This package expresses them
//	through a small generic contract so the same stencil code can run at
//	16-, 32-, 64-bit or double-double precision without preprocessor-style
//	branching, while an injectable Counter tallies every operation.
//
// ✨ Key pieces:
//   - Arith[T]      arithmetic for one concrete precision (Float64, Float32,
//     HalfArith, ExtendedArith).
//   - Ops[T]        counting front-end: every Add/Sub/Neg is one "add",
//     every Mul one "mult", every Div one "div"; comparisons are free.
//   - Counter       capability interface (Discard, Tally, AtomicTally).
//   - Half          IEEE 754 binary16 storage, float32 arithmetic.
//   - Extended      double-double value (~106-bit significand).
//   - Precision     the precision table, including output format digits.
//
// ⚙️ Usage:
//
//	tally := number.NewAtomicTally()
//	ops := number.New[float64](number.Float64{}, tally)
//	r := ops.Div(ops.Mul(alpha, dt), ops.Mul(dx, dx))
//	fmt.Println(tally.Counts()) // Adds:0, Mults:2, Divs:1, Bytes:0
//
// Counting never changes numeric results: Ops[T] forwards to Arith[T] and
// only records the event.
package number
