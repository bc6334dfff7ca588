package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/internal/config"
	"github.com/katalvlaran/heat1d/internal/output"
	"github.com/katalvlaran/heat1d/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RefusesExisting(t *testing.T) {
	parent := t.TempDir()
	d, err := output.Create(parent, "run1")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(parent, "run1"), d.Path())
	assert.Equal(t, "run1", d.Name())

	_, err = output.Create(parent, "run1")
	require.ErrorIs(t, err, output.ErrRunExists)

	_, err = output.Create(parent, "a/b")
	require.Error(t, err)

	o, err := output.Open(parent, "run1")
	require.NoError(t, err)
	assert.Equal(t, d.Path(), o.Path())
}

func TestArgs_RoundTrip(t *testing.T) {
	d, err := output.Create(t.TempDir(), "args")
	require.NoError(t, err)

	c := config.Default()
	require.NoError(t, c.Apply([]string{"alg=crankn", "dt=0.01"}))
	require.NoError(t, d.WriteArgs(c))

	back := config.Default()
	require.NoError(t, d.ReadArgs(back))
	assert.Equal(t, c, back)
}

func TestFileNameAndHeader(t *testing.T) {
	tests := []struct {
		c      heat.Curve
		file   string
		header string
	}{
		{heat.Curve{Label: heat.LabelStart}, "r_soln_00000.curve", "Temperature"},
		{heat.Curve{Label: heat.LabelStep, Step: 250}, "r_soln_00250.curve", "Temperature"},
		{heat.Curve{Label: heat.LabelExact, Step: 7}, "r_exact_00007.curve", "exact_temperature"},
		{heat.Curve{Label: heat.LabelFinal, Step: heat.NoStep}, "r_soln_final.curve", "Temperature"},
		{heat.Curve{Label: heat.LabelChange, Step: heat.NoStep}, "r_change.curve", "r/r_l2_change"},
		{heat.Curve{Label: heat.LabelError, Step: heat.NoStep}, "r_error.curve", "r/r_l2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.file, output.FileName("r", tt.c))
		assert.Equal(t, tt.header, output.Header("r", tt.c.Label))
	}
}

func TestCurveWriter_Format(t *testing.T) {
	d, err := output.Create(t.TempDir(), "fmt")
	require.NoError(t, err)
	w := output.NewCurveWriter(d)

	require.NoError(t, w.WriteCurve(heat.Curve{
		Label:     heat.LabelStart,
		Spacing:   0.5,
		Precision: number.PrecisionDouble,
		Values:    []float64{1, -0.25},
		Text:      []string{"1.00000000000000000e+00", "-2.50000000000000000e-01"},
	}))
	require.NoError(t, w.WriteCurve(heat.Curve{
		Label:     heat.LabelFinal,
		Step:      heat.NoStep,
		Spacing:   0.25,
		Precision: number.PrecisionHalf,
		Values:    []float64{0.5},
	}))

	data, err := os.ReadFile(d.File("fmt_soln_00000.curve"))
	require.NoError(t, err)
	assert.Equal(t, "# Temperature\n"+
		" 0.00000000000000000e+00  1.00000000000000000e+00\n"+
		" 5.00000000000000000e-01 -2.50000000000000000e-01\n", string(data))

	data, err = os.ReadFile(d.File("fmt_soln_final.curve"))
	require.NoError(t, err)
	assert.Equal(t, "# Temperature\n 0.00000e+00  5.00000e-01\n", string(data))

	assert.Equal(t, []string{"fmt_soln_00000.curve", "fmt_soln_final.curve"}, w.Written())
}

func TestCurveWriter_WithSimulation(t *testing.T) {
	d, err := output.Create(t.TempDir(), "sim")
	require.NoError(t, err)
	w := output.NewCurveWriter(d)

	p := heat.DefaultParams()
	p.Save, p.SaveEvery = true, 250
	res, err := heat.Run(t.Context(), number.PrecisionDouble, p, heat.WithSink(w))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"sim_soln_00000.curve",
		"sim_exact_00250.curve", "sim_soln_00250.curve",
		"sim_soln_final.curve", "sim_change.curve", "sim_error.curve",
	}, w.Written())

	final, err := output.ReadCurve(d.File("sim_soln_final.curve"))
	require.NoError(t, err)
	assert.Equal(t, "Temperature", final.Name)
	assert.Equal(t, res.Final, final.Y, "17 digits round trip float64")
	assert.InDelta(t, 1.0, final.X[10], 1e-15)

	change, err := output.ReadCurve(d.File("sim_change.curve"))
	require.NoError(t, err)
	assert.Equal(t, "sim/sim_l2_change", change.Name)
	assert.Len(t, change.Y, res.Steps)
	assert.InDelta(t, 0.004, change.X[1], 1e-18)
}

func TestReadCurve_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.curve")
	require.NoError(t, os.WriteFile(path, []byte("# x\n1 2 3\n"), 0o644))
	_, err := output.ReadCurve(path)
	require.ErrorIs(t, err, output.ErrBadCurve)

	require.NoError(t, os.WriteFile(path, []byte("# x\n1 two\n"), 0o644))
	_, err = output.ReadCurve(path)
	require.ErrorIs(t, err, output.ErrBadCurve)

	require.NoError(t, os.WriteFile(path, []byte("# x\n 1e-400 +Inf\n"), 0o644))
	c, err := output.ReadCurve(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, c.X)
}
