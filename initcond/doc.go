// Package initcond parses and evaluates the initial-condition mini-language.
//
// 🚀 Forms (x = i·dx, i = 0..n-1):
//
//	const(c)                     u = c
//	step(left,xmid,right)        u = left for x < xmid, right otherwise
//	ramp(left,right)             linear from left (i = 0) to right (i = n-1)
//	rand(seed,base,amp)          u = base + amp·(2·r - 1), r uniform in [0,1)
//	sin(amp,w)                   u = amp·sin(π·w·x)
//	sin(Pi*x)                    shorthand for sin(1,1)
//	spikes(c,amp,idx,amp,idx...) u = c, then u[idx] = amp for each pair
//	file(path)                   exactly n whitespace-separated numbers
//
// ✨ Parse returns a Spec; Spec.Eval produces the samples. Specs are plain
// values, so callers (package exact) can type-switch on the concrete form.
//
// ⚙️ Errors: ErrSyntax and ErrUnknownKind from Parse; ErrBadSize,
// ErrSpikeIndex and ErrFileLength from Eval.
package initcond
