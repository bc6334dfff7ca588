// Package exact_test checks the classification and the closed forms.
package exact_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/heat1d/exact"
	"github.com/katalvlaran/heat1d/initcond"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKind_Classification covers every branch.
func TestKind_Classification(t *testing.T) {
	cases := []struct {
		name string
		p    exact.Problem
		want exact.Kind
	}{
		{"sine", exact.Problem{IC: initcond.Sine{Amp: 1, W: 1}, Alpha: 1, LenX: 1}, exact.KindSine},
		{"sine w·L=2", exact.Problem{IC: initcond.Sine{Amp: 1, W: 1}, Alpha: 1, LenX: 2}, exact.KindSine},
		{"sine w·L=0.5", exact.Problem{IC: initcond.Sine{Amp: 1, W: 0.5}, Alpha: 1, LenX: 1}, exact.KindSteady},
		{"sine nonzero bc", exact.Problem{IC: initcond.Sine{Amp: 1, W: 1}, Alpha: 1, LenX: 1, BC1: 1}, exact.KindSteady},
		{"const", exact.Problem{IC: initcond.Const{C: 1}, Alpha: 1, LenX: 1}, exact.KindFourier},
		{"const nonzero bc", exact.Problem{IC: initcond.Const{C: 1}, Alpha: 1, LenX: 1, BC0: 1}, exact.KindSteady},
		{"ramp", exact.Problem{IC: initcond.Ramp{Left: 0, Right: 1}, Alpha: 1, LenX: 1}, exact.KindSteady},
		{"nil ic", exact.Problem{Alpha: 1, LenX: 1}, exact.KindSteady},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.p.Kind(), tc.name)
	}
	assert.Equal(t, "fourier", exact.KindFourier.String())
	assert.True(t, exact.KindSine.Transient())
	assert.False(t, exact.KindSteady.Transient())
}

// TestSine_Decay checks amplitude and decay rate.
func TestSine_Decay(t *testing.T) {
	p := exact.Problem{IC: initcond.Sine{Amp: 2, W: 1}, Alpha: 0.2, LenX: 1}
	dst := make([]float64, 11)
	require.Equal(t, exact.KindSine, p.Evaluate(dst, 0.1, 0.5))

	decay := math.Exp(-0.2 * math.Pi * math.Pi * 0.5)
	assert.InDelta(t, 2*decay, dst[5], 1e-14)
	assert.InDelta(t, 0, dst[0], 1e-15)
	assert.InDelta(t, 0, dst[10], 1e-14)
}

// TestFourier_ReproducesConstantAtZero checks the series at t = 0 away from the edges.
func TestFourier_ReproducesConstantAtZero(t *testing.T) {
	p := exact.Problem{IC: initcond.Const{C: 1}, Alpha: 0.2, LenX: 1}
	assert.InDelta(t, 1, p.At(0.5, 0), 2e-3) // truncated series, Gibbs-free midpoint
	assert.InDelta(t, 0, p.At(0, 0), 1e-12)
}

// TestFourier_LongTimeIsFirstMode checks higher modes die out first.
func TestFourier_LongTimeIsFirstMode(t *testing.T) {
	p := exact.Problem{IC: initcond.Const{C: 3}, Alpha: 0.2, LenX: 2}
	tt := 5.0
	k := math.Pi / 2
	want := 4 * 3 / math.Pi * math.Sin(k*0.7) * math.Exp(-0.2*k*k*tt)
	assert.InDelta(t, want, p.At(0.7, tt), 1e-4)
}

// TestSteady_Linear checks the fallback on a non-unit domain.
func TestSteady_Linear(t *testing.T) {
	p := exact.Problem{IC: initcond.Ramp{Left: 0, Right: 1}, Alpha: 1, LenX: 2, BC0: 1, BC1: 3}
	dst := make([]float64, 5)
	require.Equal(t, exact.KindSteady, p.Evaluate(dst, 0.5, 100))
	assert.InDeltaSlice(t, []float64{1, 1.5, 2, 2.5, 3}, dst, 1e-15)
}
