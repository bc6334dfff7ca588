// Package logging provides leveled logging and progress reporting for heat.
// It offers three complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A Reporter printing the classic progress lines to stdout
//   - A ProgressLog writing one JSONL record per progress report
package logging

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/heat1d/heat"
)

// LevelTrace is the level of the per-step records a Simulation emits.
// At this level every time step is logged.
const LevelTrace = heat.LevelTrace

// FloatDigits is the number of significant digits float attributes are
// rendered with, matching the progress lines.
const FloatDigits = 6

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing text records to w.
//
// Records at LevelTrace are labelled TRACE. float64 attributes (change,
// error, dt) are printed with FloatDigits significant digits so per-step
// records line up with the progress output; NaN and Inf print as such.
func NewLogger(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: replaceAttr,
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindFloat64:
		a.Value = slog.StringValue(strconv.FormatFloat(a.Value.Float64(), 'g', FloatDigits, 64))
	case slog.KindAny:
		// Label the custom trace level
		if a.Key == slog.LevelKey {
			if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
		}
	}
	return a
}
