package heat_test

import (
	"testing"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/initcond"
	"github.com/katalvlaran/heat1d/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	s, err := heat.DefaultParams().Validate()
	require.NoError(t, err)

	assert.Equal(t, 11, s.Nx)
	assert.InDelta(t, 0.1, s.Dx, 1e-15)
	assert.Equal(t, scheme.AlgFTCS, s.Algorithm)
	assert.Equal(t, initcond.Const{C: 1}, s.IC)
	assert.Equal(t, heat.StopTime, s.Stop)
	assert.Equal(t, 2.0, s.MaxTime)
	assert.Zero(t, s.MinChange)
	assert.Equal(t, 500, s.MaxSteps)
}

func TestValidate_GridSpansDomain(t *testing.T) {
	p := heat.DefaultParams()
	p.LenX, p.Dx = 1, 0.3 // 3.33 cells → 3 cells
	s, err := p.Validate()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Nx)
	assert.InDelta(t, 1.0/3, s.Dx, 1e-15)
	assert.InDelta(t, p.LenX, s.Dx*float64(s.Nx-1), 1e-15)
}

func TestValidate_StopModes(t *testing.T) {
	tests := []struct {
		name      string
		maxt, min float64
		mode      heat.StopMode
		wantMaxT  float64
		wantMin   float64
	}{
		{"time limit", 1.5, 0, heat.StopTime, 1.5, 0},
		{"explicit threshold", 0, 1e-8, heat.StopThreshold, heat.SentinelMaxTime, 1e-8},
		{"legacy negative maxt", -1e-4, 0, heat.StopThreshold, heat.SentinelMaxTime, 1e-8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := heat.DefaultParams()
			p.MaxTime, p.MinChange = tt.maxt, tt.min
			s, err := p.Validate()
			require.NoError(t, err)
			assert.Equal(t, tt.mode, s.Stop)
			assert.Equal(t, tt.wantMaxT, s.MaxTime)
			assert.InDelta(t, tt.wantMin, s.MinChange, 1e-20)
			if tt.mode == heat.StopThreshold {
				assert.Zero(t, s.MaxSteps, "unknown step budget")
			}
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*heat.Params)
		want   error
	}{
		{"zero alpha", func(p *heat.Params) { p.Alpha = 0 }, heat.ErrInvalidParam},
		{"negative dt", func(p *heat.Params) { p.Dt = -1 }, heat.ErrInvalidParam},
		{"infinite lenx", func(p *heat.Params) { p.LenX = inf() }, heat.ErrInvalidParam},
		{"nan bc", func(p *heat.Params) { p.BC1 = nan() }, heat.ErrInvalidParam},
		{"negative save interval", func(p *heat.Params) { p.SaveEvery = -1 }, heat.ErrInvalidParam},
		{"no stop", func(p *heat.Params) { p.MaxTime = 0 }, heat.ErrInvalidParam},
		{"both stops", func(p *heat.Params) { p.MinChange = 1e-6 }, heat.ErrConflictingStop},
		{"legacy and min", func(p *heat.Params) { p.MaxTime, p.MinChange = -1, 1e-6 }, heat.ErrConflictingStop},
		{"dx too large", func(p *heat.Params) { p.Dx = 0.8 }, scheme.ErrGridTooSmall},
		{"unknown alg", func(p *heat.Params) { p.Algorithm = "leapfrog" }, scheme.ErrUnknownAlgorithm},
		{"bad ic", func(p *heat.Params) { p.IC = "wave(1)" }, initcond.ErrUnknownKind},
		{"ic syntax", func(p *heat.Params) { p.IC = "const(1" }, initcond.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := heat.DefaultParams()
			tt.mutate(&p)
			_, err := p.Validate()
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestStopMode_String(t *testing.T) {
	assert.Equal(t, "time", heat.StopTime.String())
	assert.Equal(t, "threshold", heat.StopThreshold.String())
}
