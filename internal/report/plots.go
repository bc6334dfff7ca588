package report

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/heat1d/heat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot sizes in points.
const (
	plotWidth  = 640
	plotHeight = 400
)

// ErrNothingToPlot indicates a snapshot without the curves a plot needs.
var ErrNothingToPlot = errors.New("report: nothing to plot")

// SolutionPNG plots the initial, intermediate and final solutions, with
// exact solutions dashed.
func SolutionPNG(s Snapshot, title string) ([]byte, error) {
	if s.Start == nil && s.Final == nil && len(s.Steps) == 0 {
		return nil, fmt.Errorf("solution plot: %w", ErrNothingToPlot)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "u(x, t)"
	p.Add(plotter.NewGrid())

	add := func(c *heat.Curve, name string, colour int, dashed bool) error {
		line, err := plotter.NewLine(points(c))
		if err != nil {
			return fmt.Errorf("solution plot %s: %w", name, err)
		}
		line.Color = plotutil.Color(colour)
		line.Width = vg.Points(1.5)
		if dashed {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(name, line)
		return nil
	}

	colour := 0
	if s.Start != nil {
		if err := add(s.Start, "t = 0", colour, false); err != nil {
			return nil, err
		}
		colour++
	}
	exact := make(map[int]*heat.Curve, len(s.Exact))
	for i := range s.Exact {
		exact[s.Exact[i].Step] = &s.Exact[i]
	}
	for i := range s.Steps {
		step := &s.Steps[i]
		if err := add(step, fmt.Sprintf("step %d", step.Step), colour, false); err != nil {
			return nil, err
		}
		if e, ok := exact[step.Step]; ok {
			if err := add(e, fmt.Sprintf("exact %d", e.Step), colour, true); err != nil {
				return nil, err
			}
		}
		colour++
	}
	if s.Final != nil {
		if err := add(s.Final, "final", colour, false); err != nil {
			return nil, err
		}
	}
	p.Legend.Top = true

	return render(p)
}

// HistoryPNG plots the L2 change and error per step on a log scale.
// Non-positive samples cannot be shown on a log axis and are skipped.
func HistoryPNG(s Snapshot, title string) ([]byte, error) {
	if s.Change == nil && s.Error == nil {
		return nil, fmt.Errorf("history plot: %w", ErrNothingToPlot)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "L2"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	plotted := 0
	for i, h := range []struct {
		c    *heat.Curve
		name string
	}{{s.Change, "change"}, {s.Error, "error"}} {
		if h.c == nil {
			continue
		}
		pts := positive(points(h.c))
		if len(pts) < 2 {
			continue
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("history plot %s: %w", h.name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(h.name, line)
		plotted++
	}
	if plotted == 0 {
		return nil, fmt.Errorf("history plot: no positive samples: %w", ErrNothingToPlot)
	}

	return render(p)
}

func points(c *heat.Curve) plotter.XYs {
	pts := make(plotter.XYs, 0, len(c.Values))
	for i, v := range c.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i) * c.Spacing, Y: v})
	}

	return pts
}

func positive(pts plotter.XYs) plotter.XYs {
	out := pts[:0:0]
	for _, pt := range pts {
		if pt.Y > 0 {
			out = append(out, pt)
		}
	}

	return out
}

func render(p *plot.Plot) ([]byte, error) {
	writer, err := p.WriterTo(vg.Points(plotWidth), vg.Points(plotHeight), "png")
	if err != nil {
		return nil, fmt.Errorf("report: plot writer: %w", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("report: render plot: %w", err)
	}

	return buf.Bytes(), nil
}
