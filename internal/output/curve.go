package output

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/heat1d/heat"
)

// CurveWriter is a heat.Sink writing .curve files into a Dir.
type CurveWriter struct {
	dir *Dir

	mu      sync.Mutex
	written []string
}

// NewCurveWriter returns a CurveWriter for d.
func NewCurveWriter(d *Dir) *CurveWriter { return &CurveWriter{dir: d} }

// Written lists the files written so far, in order.
func (w *CurveWriter) Written() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]string(nil), w.written...)
}

// FileName returns the curve file name for c in run.
func FileName(run string, c heat.Curve) string {
	switch c.Label {
	case heat.LabelStart:
		return run + "_soln_00000.curve"
	case heat.LabelStep:
		return fmt.Sprintf("%s_soln_%05d.curve", run, c.Step)
	case heat.LabelExact:
		return fmt.Sprintf("%s_exact_%05d.curve", run, c.Step)
	case heat.LabelFinal:
		return run + "_soln_final.curve"
	case heat.LabelChange:
		return run + "_change.curve"
	case heat.LabelError:
		return run + "_error.curve"
	}

	return fmt.Sprintf("%s_%s.curve", run, c.Label)
}

// Header returns the variable name written on the first line.
func Header(run string, label heat.Label) string {
	switch label {
	case heat.LabelExact:
		return "exact_temperature"
	case heat.LabelChange:
		return run + "/" + run + "_l2_change"
	case heat.LabelError:
		return run + "/" + run + "_l2"
	}

	return "Temperature"
}

// WriteCurve implements heat.Sink.
//
// x is i·Spacing printed with the run precision's digits; y is the
// precision-formatted text of the sample. Both columns are space-signed
// and left-aligned to Precision.CurveWidth.
func (w *CurveWriter) WriteCurve(c heat.Curve) error {
	name := FileName(w.dir.name, c)
	f, err := os.Create(w.dir.File(name))
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	digits, width := c.Precision.CurveDigits(), c.Precision.CurveWidth()
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "# %s\n", Header(w.dir.name, c.Label))
	for i, v := range c.Values {
		var y string
		if i < len(c.Text) {
			y = c.Text[i]
		} else {
			y = strconv.FormatFloat(v, 'e', digits, 64)
		}
		fmt.Fprintf(bw, "%- *.*e %s\n", width, digits, float64(i)*c.Spacing, column(y, width))
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("output: write %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", name, err)
	}

	w.mu.Lock()
	w.written = append(w.written, name)
	w.mu.Unlock()

	return nil
}

// column space-signs s and pads it on the right to width.
func column(s string, width int) string {
	if !strings.HasPrefix(s, "-") && !strings.HasPrefix(s, "+") {
		s = " " + s
	}

	return fmt.Sprintf("%-*s", width, s)
}

// Curve is a parsed curve file.
type Curve struct {
	Name string
	X    []float64
	Y    []float64
}

// ReadCurve parses a curve file. Values beyond float64 range or precision
// are rounded to float64.
func ReadCurve(path string) (Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return Curve{}, fmt.Errorf("output: %w", err)
	}
	defer f.Close()

	var c Curve
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if name, ok := strings.CutPrefix(text, "#"); ok {
			if c.Name == "" {
				c.Name = strings.TrimSpace(name)
			}
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return Curve{}, fmt.Errorf("%s:%d: want 2 columns, got %d: %w", path, line, len(fields), ErrBadCurve)
		}
		x, errX := parseValue(fields[0])
		y, errY := parseValue(fields[1])
		if errX != nil || errY != nil {
			return Curve{}, fmt.Errorf("%s:%d: %q: %w", path, line, text, ErrBadCurve)
		}
		c.X = append(c.X, x)
		c.Y = append(c.Y, y)
	}
	if err = sc.Err(); err != nil {
		return Curve{}, fmt.Errorf("output: read %s: %w", path, err)
	}

	return c, nil
}

// parseValue accepts out-of-range values as ±Inf or ±0.
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}

	return v, err
}
