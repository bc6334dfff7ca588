// SPDX-License-Identifier: MIT

package initcond

import (
	"bufio"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
)

// Spec is a parsed initial condition.
type Spec interface {
	// Eval returns n samples at spacing dx.
	Eval(n int, dx float64) ([]float64, error)

	// String renders the canonical expression; Parse(s.String()) round-trips.
	String() string
}

// Const is u = C.
type Const struct{ C float64 }

// Step is Left below XMid and Right from XMid on.
type Step struct{ Left, XMid, Right float64 }

// Ramp is linear from Left at i = 0 to Right at i = n-1.
type Ramp struct{ Left, Right float64 }

// Rand is Base + Amp·(2r-1) with a seeded generator, reproducible per Seed.
type Rand struct {
	Seed int64
	Base float64
	Amp  float64
}

// Sine is Amp·sin(π·W·x).
type Sine struct{ Amp, W float64 }

// Spike sets one sample.
type Spike struct {
	Amp   float64
	Index int
}

// Spikes is a constant background C with individual samples overridden.
type Spikes struct {
	C      float64
	Points []Spike
}

// File reads samples from Path.
type File struct{ Path string }

func alloc(n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadSize)
	}

	return make([]float64, n), nil
}

// Eval implements Spec.
func (s Const) Eval(n int, _ float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	for i := range u {
		u[i] = s.C
	}

	return u, nil
}

// Eval implements Spec.
func (s Step) Eval(n int, dx float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	for i := range u {
		if float64(i)*dx < s.XMid {
			u[i] = s.Left
		} else {
			u[i] = s.Right
		}
	}

	return u, nil
}

// Eval implements Spec. A single-point ramp is Left.
func (s Ramp) Eval(n int, _ float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		u[0] = s.Left
		return u, nil
	}
	dv := (s.Right - s.Left) / float64(n-1)
	for i := range u {
		u[i] = s.Left + float64(i)*dv
	}
	u[n-1] = s.Right

	return u, nil
}

// Eval implements Spec.
func (s Rand) Eval(n int, _ float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(uint64(s.Seed), 0))
	for i := range u {
		u[i] = s.Base + s.Amp*(2*rng.Float64()-1)
	}

	return u, nil
}

// Eval implements Spec.
func (s Sine) Eval(n int, dx float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	for i := range u {
		u[i] = s.Amp * math.Sin(math.Pi*s.W*float64(i)*dx)
	}

	return u, nil
}

// Eval implements Spec. Later spikes overwrite earlier ones at the same index.
func (s Spikes) Eval(n int, _ float64) ([]float64, error) {
	u, err := Const{C: s.C}.Eval(n, 0)
	if err != nil {
		return nil, err
	}
	for _, p := range s.Points {
		if p.Index < 0 || p.Index >= n {
			return nil, fmt.Errorf("spike at %d of %d: %w", p.Index, n, ErrSpikeIndex)
		}
		u[p.Index] = p.Amp
	}

	return u, nil
}

// Eval implements Spec. The file must hold exactly n numbers.
func (s File) Eval(n int, _ float64) ([]float64, error) {
	u, err := alloc(n)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("initcond: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)
	i := 0
	for sc.Scan() {
		if i == n {
			return nil, fmt.Errorf("%s: more than %d values: %w", s.Path, n, ErrFileLength)
		}
		v, perr := strconv.ParseFloat(sc.Text(), 64)
		if perr != nil {
			return nil, fmt.Errorf("%s: value %d %q: %w", s.Path, i, sc.Text(), ErrSyntax)
		}
		u[i] = v
		i++
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("initcond: %s: %w", s.Path, err)
	}
	if i != n {
		return nil, fmt.Errorf("%s: %d values, want %d: %w", s.Path, i, n, ErrFileLength)
	}

	return u, nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func (s Const) String() string { return "const(" + num(s.C) + ")" }
func (s Step) String() string {
	return "step(" + num(s.Left) + "," + num(s.XMid) + "," + num(s.Right) + ")"
}
func (s Ramp) String() string { return "ramp(" + num(s.Left) + "," + num(s.Right) + ")" }
func (s Rand) String() string {
	return "rand(" + strconv.FormatInt(s.Seed, 10) + "," + num(s.Base) + "," + num(s.Amp) + ")"
}
func (s Sine) String() string { return "sin(" + num(s.Amp) + "," + num(s.W) + ")" }
func (s File) String() string { return "file(" + s.Path + ")" }

func (s Spikes) String() string {
	var b strings.Builder
	b.WriteString("spikes(")
	b.WriteString(num(s.C))
	for _, p := range s.Points {
		b.WriteString("," + num(p.Amp) + "," + strconv.Itoa(p.Index))
	}
	b.WriteString(")")

	return b.String()
}
