// Package initcond_test covers parsing and evaluation of every form.
package initcond_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/heat1d/initcond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Forms maps each expression onto its typed form.
func TestParse_Forms(t *testing.T) {
	cases := []struct {
		in   string
		want initcond.Spec
	}{
		{"const(1)", initcond.Const{C: 1}},
		{" const( -2.5 ) ", initcond.Const{C: -2.5}},
		{"step(1,0.5,0)", initcond.Step{Left: 1, XMid: 0.5, Right: 0}},
		{"ramp(0,1)", initcond.Ramp{Left: 0, Right: 1}},
		{"rand(42,0.5,0.1)", initcond.Rand{Seed: 42, Base: 0.5, Amp: 0.1}},
		{"sin(2,3)", initcond.Sine{Amp: 2, W: 3}},
		{"sin(Pi*x)", initcond.Sine{Amp: 1, W: 1}},
		{"spikes(0,5,3,7,10)", initcond.Spikes{C: 0, Points: []initcond.Spike{{Amp: 5, Index: 3}, {Amp: 7, Index: 10}}}},
		{"spikes(1)", initcond.Spikes{C: 1}},
		{"file(data/ic.dat)", initcond.File{Path: "data/ic.dat"}},
	}
	for _, tc := range cases {
		got, err := initcond.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

// TestParse_RoundTrip checks String produces parseable canonical text.
func TestParse_RoundTrip(t *testing.T) {
	for _, in := range []string{"const(1)", "step(1,0.5,0)", "ramp(-1,1)", "rand(7,0,1)", "sin(1,2)", "spikes(0,1,2,3,4)", "file(x.dat)"} {
		spec := initcond.MustParse(in)
		assert.Equal(t, in, spec.String())
		again, err := initcond.Parse(spec.String())
		require.NoError(t, err)
		assert.Equal(t, spec, again)
	}
}

// TestParse_Errors covers the syntax and kind sentinels.
func TestParse_Errors(t *testing.T) {
	syntax := []string{"", "const", "const(1", "(1)", "const(a)", "const(1,2)", "step(1,2)",
		"ramp(1)", "rand(1.5,0,1)", "sin(1)", "spikes()", "spikes(0,1)", "spikes(0,1,2.5)", "file()"}
	for _, in := range syntax {
		_, err := initcond.Parse(in)
		assert.ErrorIs(t, err, initcond.ErrSyntax, in)
	}

	_, err := initcond.Parse("gauss(1,2)")
	require.ErrorIs(t, err, initcond.ErrUnknownKind)
	assert.Panics(t, func() { initcond.MustParse("nope") })
}

// TestEval_Values checks sample values of each numeric form.
func TestEval_Values(t *testing.T) {
	u, err := initcond.Const{C: 3}.Eval(4, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3, 3}, u)

	u, err = initcond.Step{Left: 1, XMid: 0.5, Right: 2}.Eval(5, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2, 2, 2}, u) // x = 0, .25, .5, .75, 1

	u, err = initcond.Ramp{Left: 0, Right: 1}.Eval(5, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, u)

	u, err = initcond.Ramp{Left: 2, Right: 9}.Eval(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, u)

	u, err = initcond.Sine{Amp: 2, W: 1}.Eval(3, 0.5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2, 0}, u, 1e-15)

	u, err = initcond.Spikes{C: 1, Points: []initcond.Spike{{Amp: 9, Index: 0}, {Amp: 4, Index: 2}}}.Eval(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 1, 4}, u)
}

// TestEval_RandReproducible checks seeding and the amplitude bound.
func TestEval_RandReproducible(t *testing.T) {
	spec := initcond.Rand{Seed: 12345, Base: 10, Amp: 0.5}
	a, err := spec.Eval(200, 0.1)
	require.NoError(t, err)
	b, err := spec.Eval(200, 0.1)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed, same samples")

	for i, v := range a {
		assert.GreaterOrEqual(t, v, 9.5, "sample %d", i)
		assert.Less(t, v, 10.5, "sample %d", i)
	}

	c, err := initcond.Rand{Seed: 54321, Base: 10, Amp: 0.5}.Eval(200, 0.1)
	require.NoError(t, err)
	assert.NotEqual(t, a, c, "different seed")
}

// TestEval_Errors covers Eval-time sentinels.
func TestEval_Errors(t *testing.T) {
	_, err := initcond.Const{C: 1}.Eval(0, 0.1)
	require.ErrorIs(t, err, initcond.ErrBadSize)

	_, err = initcond.Spikes{C: 0, Points: []initcond.Spike{{Amp: 1, Index: 5}}}.Eval(5, 1)
	require.ErrorIs(t, err, initcond.ErrSpikeIndex)
	_, err = initcond.Spikes{C: 0, Points: []initcond.Spike{{Amp: 1, Index: -1}}}.Eval(5, 1)
	require.ErrorIs(t, err, initcond.ErrSpikeIndex)
}

// TestEval_File reads exact-length data and rejects short or long files.
func TestEval_File(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	good := write("good.dat", "0 0.5\n1e0\n  0.25\t-3\n")
	u, err := initcond.MustParse("file(" + good + ")").Eval(5, 0.1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 0.25, -3}, u)

	_, err = initcond.File{Path: good}.Eval(6, 0.1)
	require.ErrorIs(t, err, initcond.ErrFileLength, "short")
	_, err = initcond.File{Path: good}.Eval(4, 0.1)
	require.ErrorIs(t, err, initcond.ErrFileLength, "long")

	bad := write("bad.dat", "1 two 3")
	_, err = initcond.File{Path: bad}.Eval(3, 0.1)
	require.ErrorIs(t, err, initcond.ErrSyntax)

	_, err = initcond.File{Path: filepath.Join(dir, "missing.dat")}.Eval(3, 0.1)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestSine_ZeroAtBoundaries holds when w·lenx is an integer.
func TestSine_ZeroAtBoundaries(t *testing.T) {
	u, err := initcond.Sine{Amp: 1, W: 2}.Eval(101, 0.01)
	require.NoError(t, err)
	assert.InDelta(t, 0, u[0], 1e-15)
	assert.InDelta(t, 0, u[100], 1e-14)
	assert.InDelta(t, math.Sin(math.Pi*2*0.25), u[25], 1e-15)
}
