// SPDX-License-Identifier: MIT

package initcond

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse reads one initial-condition expression.
func Parse(s string) (Spec, error) {
	src := strings.TrimSpace(s)
	if strings.EqualFold(strings.ReplaceAll(src, " ", ""), "sin(pi*x)") {
		return Sine{Amp: 1, W: 1}, nil
	}

	// Stage 1: split name(args)
	open := strings.IndexByte(src, '(')
	if open <= 0 || !strings.HasSuffix(src, ")") {
		return nil, fmt.Errorf("%q: want name(args): %w", s, ErrSyntax)
	}
	name := strings.ToLower(strings.TrimSpace(src[:open]))
	body := src[open+1 : len(src)-1]

	if name == "file" {
		path := strings.TrimSpace(body)
		if path == "" {
			return nil, fmt.Errorf("%q: empty path: %w", s, ErrSyntax)
		}
		return File{Path: path}, nil
	}

	// Stage 2: numeric arguments
	args, err := floats(body)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", s, err)
	}
	arity := func(want int) error {
		if len(args) != want {
			return fmt.Errorf("%q: %s takes %d arguments, got %d: %w", s, name, want, len(args), ErrSyntax)
		}
		return nil
	}

	// Stage 3: build the form
	switch name {
	case "const":
		if err = arity(1); err != nil {
			return nil, err
		}
		return Const{C: args[0]}, nil
	case "step":
		if err = arity(3); err != nil {
			return nil, err
		}
		return Step{Left: args[0], XMid: args[1], Right: args[2]}, nil
	case "ramp":
		if err = arity(2); err != nil {
			return nil, err
		}
		return Ramp{Left: args[0], Right: args[1]}, nil
	case "rand":
		if err = arity(3); err != nil {
			return nil, err
		}
		seed, ok := integral(args[0])
		if !ok {
			return nil, fmt.Errorf("%q: seed must be an integer: %w", s, ErrSyntax)
		}
		return Rand{Seed: int64(seed), Base: args[1], Amp: args[2]}, nil
	case "sin":
		if err = arity(2); err != nil {
			return nil, err
		}
		return Sine{Amp: args[0], W: args[1]}, nil
	case "spikes":
		if len(args) == 0 || len(args)%2 != 1 {
			return nil, fmt.Errorf("%q: spikes takes c followed by amp,idx pairs: %w", s, ErrSyntax)
		}
		sp := Spikes{C: args[0]}
		for k := 1; k < len(args); k += 2 {
			idx, ok := integral(args[k+1])
			if !ok {
				return nil, fmt.Errorf("%q: spike index %v: %w", s, args[k+1], ErrSyntax)
			}
			sp.Points = append(sp.Points, Spike{Amp: args[k], Index: idx})
		}
		return sp, nil
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownKind)
}

// MustParse is Parse that panics on error; for tests and constants.
func MustParse(s string) Spec {
	spec, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return spec
}

func floats(body string) ([]float64, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d %q: %w", i, strings.TrimSpace(p), ErrSyntax)
		}
		out[i] = v
	}

	return out, nil
}

func integral(v float64) (int, bool) {
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}

	return int(v), true
}
