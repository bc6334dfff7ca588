package scheme_test

import (
	"testing"

	"github.com/katalvlaran/heat1d/scheme"
	"github.com/stretchr/testify/require"
)

// advance runs steps of s from u0 with driver-style buffer rotation and
// returns the latest level.
func advance(t *testing.T, s scheme.Scheme[float64], u0 []float64, steps int) []float64 {
	t.Helper()
	n := len(u0)
	back1 := append([]float64(nil), u0...)
	curr := make([]float64, n)
	var back2 []float64

	for k := 0; k < steps; k++ {
		require.NoError(t, s.Step(curr, scheme.History[float64]{Back1: back1, Back2: back2}), "step %d", k)
		if s.Levels() > 1 {
			old := back2
			back2, back1 = back1, curr
			if old == nil {
				old = make([]float64, n)
			}
			curr = old
		} else {
			back1, curr = curr, back1
		}
	}

	return back1
}

// ramp returns n evenly spaced values from lo to hi.
func ramp(n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}

	return v
}

// constant returns n copies of c.
func constant(n int, c float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = c
	}

	return v
}
