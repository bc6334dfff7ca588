package logging

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/heat1d/heat"
)

// Reporter implements heat.Reporter.
//
// It prints the classic console lines
//
//	Iteration 0100: last change l2=1.23457e-05
//	Stopped after 000740 iterations for threshold 9.98632e-11
//	Counts: Adds:20001, Mults:19503, Divs:501, Bytes:176
//
// mirrors every event to the logger at debug level and to the optional
// JSONL progress log. JSON cannot carry NaN or Inf, so non-finite changes
// are logged as strings there.
type Reporter struct {
	out   io.Writer
	log   *slog.Logger
	trace *ProgressLog
	quiet bool
}

// NewReporter returns a Reporter printing to out. A nil logger discards,
// a nil trace is skipped. Quiet suppresses the console summary.
func NewReporter(out io.Writer, log *slog.Logger, trace *ProgressLog, quiet bool) *Reporter {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Reporter{out: out, log: log, trace: trace, quiet: quiet}
}

// Progress prints one iteration line.
func (r *Reporter) Progress(step int, change float64) {
	fmt.Fprintf(r.out, "Iteration %04d: last change l2=%.6g\n", step, change)
	r.log.Debug("progress", "step", step, "change", change)
	r.trace.Log(map[string]any{"event": "progress", "step": step, "change": jsonFloat(change)})
}

// Stopped prints the threshold stop line.
func (r *Reporter) Stopped(step int, change float64) {
	fmt.Fprintf(r.out, "Stopped after %06d iterations for threshold %.6g\n", step, change)
	r.trace.Log(map[string]any{"event": "stopped", "step": step, "change": jsonFloat(change)})
}

// Summary prints the last change and the operation counts.
func (r *Reporter) Summary(res heat.Result) {
	last := res.Steps
	if res.Converged {
		last-- // index of the step that met the threshold
	}
	if !r.quiet {
		fmt.Fprintf(r.out, "Iteration %04d: last change l2=%.6g\n", last, res.Change)
		fmt.Fprintf(r.out, "Counts: %s\n", res.Counts)
	}
	r.trace.Log(map[string]any{
		"event":     "summary",
		"alg":       res.Algorithm.String(),
		"prec":      res.Precision.String(),
		"steps":     res.Steps,
		"change":    jsonFloat(res.Change),
		"converged": res.Converged,
		"adds":      res.Counts.Adds,
		"mults":     res.Counts.Mults,
		"divs":      res.Counts.Divs,
		"bytes":     res.Counts.Bytes,
		"elapsed":   res.Elapsed.String(),
	})
}

func jsonFloat(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}

	return v
}
