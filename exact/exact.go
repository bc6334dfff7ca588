// SPDX-License-Identifier: MIT

package exact

import (
	"math"

	"github.com/katalvlaran/heat1d/initcond"
)

// FourierTerms is the number of series terms summed for KindFourier
// (n = 1..FourierTerms; even terms vanish).
const FourierTerms = 999

// Kind identifies which closed form a Problem uses.
type Kind int

const (
	// KindSteady is the linear steady state, exact only as t → ∞.
	KindSteady Kind = iota

	// KindSine is a single decaying Fourier mode.
	KindSine

	// KindFourier is the truncated series for a constant initial condition.
	KindFourier
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindSine:
		return "sine"
	case KindFourier:
		return "fourier"
	}

	return "steady"
}

// Transient reports whether the kind is exact at every t, not just t ≫ 0.
func (k Kind) Transient() bool { return k != KindSteady }

// Problem is the continuous problem a run discretises.
type Problem struct {
	IC    initcond.Spec
	Alpha float64
	LenX  float64
	BC0   float64
	BC1   float64
}

// Kind classifies the problem.
func (p Problem) Kind() Kind {
	if p.BC0 != 0 || p.BC1 != 0 || p.LenX <= 0 {
		return KindSteady
	}
	switch ic := p.IC.(type) {
	case initcond.Sine:
		if wl := ic.W * p.LenX; wl == math.Trunc(wl) && wl != 0 {
			return KindSine
		}
	case initcond.Const:
		return KindFourier
	}

	return KindSteady
}

// Evaluate writes the solution at x = i·dx, time t, into dst and returns
// the kind used.
func (p Problem) Evaluate(dst []float64, dx, t float64) Kind {
	kind := p.Kind()
	for i := range dst {
		dst[i] = p.at(kind, float64(i)*dx, t)
	}

	return kind
}

// At returns the solution at a single point.
func (p Problem) At(x, t float64) float64 { return p.at(p.Kind(), x, t) }

func (p Problem) at(kind Kind, x, t float64) float64 {
	switch kind {
	case KindSine:
		ic := p.IC.(initcond.Sine)
		k := ic.W * math.Pi
		return ic.Amp * math.Sin(k*x) * math.Exp(-p.Alpha*k*k*t)
	case KindFourier:
		c := p.IC.(initcond.Const).C
		var sum float64
		for n := 1; n <= FourierTerms; n += 2 { // 1-(-1)ⁿ = 0 for even n
			k := float64(n) * math.Pi / p.LenX
			coeff := 4 * c / (float64(n) * math.Pi)
			sum += coeff * math.Sin(k*x) * math.Exp(-p.Alpha*k*k*t)
		}
		return sum
	}

	return p.BC0 + (p.BC1-p.BC0)*x/p.LenX
}
