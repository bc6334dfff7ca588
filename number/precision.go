// SPDX-License-Identifier: MIT

package number

import (
	"fmt"
	"strings"
)

// Precision identifies the floating-point format a run computes in.
type Precision int

const (
	// PrecisionHalf is IEEE 754 binary16 (11-bit significand).
	PrecisionHalf Precision = iota

	// PrecisionSingle is IEEE 754 binary32.
	PrecisionSingle

	// PrecisionDouble is IEEE 754 binary64. Default.
	PrecisionDouble

	// PrecisionQuad is the extended slot, realised as double-double (~106-bit significand).
	PrecisionQuad
)

// precisionInfo is the single source of truth for per-precision constants.
type precisionInfo struct {
	name        string
	bits        int
	digits      int // significant digits for %g style progress output
	curveDigits int // digits after the point for %e style curve output
}

var precisionTable = [...]precisionInfo{
	PrecisionHalf:   {name: "half", bits: 16, digits: 4, curveDigits: 5},
	PrecisionSingle: {name: "float", bits: 32, digits: 7, curveDigits: 9},
	PrecisionDouble: {name: "double", bits: 64, digits: 16, curveDigits: 17},
	PrecisionQuad:   {name: "quad", bits: 128, digits: 32, curveDigits: 25},
}

// ParsePrecision maps a user-facing name onto a Precision.
// Accepted (case-insensitive): half, float, single, double, quad, extended,
// and the historical numeric codes 1 (float), 2 (double) and 3 (long double).
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half", "float16":
		return PrecisionHalf, nil
	case "float", "single", "float32", "1":
		return PrecisionSingle, nil
	case "double", "float64", "2", "":
		return PrecisionDouble, nil
	case "quad", "extended", "long double", "3":
		return PrecisionQuad, nil
	}

	return PrecisionDouble, fmt.Errorf("%q: %w", s, ErrUnknownPrecision)
}

func (p Precision) info() precisionInfo {
	if p < PrecisionHalf || p > PrecisionQuad {
		return precisionTable[PrecisionDouble]
	}

	return precisionTable[p]
}

// String returns the canonical name ("half", "float", "double", "quad").
func (p Precision) String() string { return p.info().name }

// Bits returns the storage width of one value.
func (p Precision) Bits() int { return p.info().bits }

// Digits returns the number of significant digits used for progress output.
func (p Precision) Digits() int { return p.info().digits }

// CurveDigits returns the number of fractional digits used in curve files.
func (p Precision) CurveDigits() int { return p.info().curveDigits }

// CurveWidth returns the minimum field width for a curve-file value:
// sign, leading digit, point, fraction and a four character exponent.
func (p Precision) CurveWidth() int { return p.CurveDigits() + 7 }

// Precisions lists every supported precision in ascending width.
func Precisions() []Precision {
	return []Precision{PrecisionHalf, PrecisionSingle, PrecisionDouble, PrecisionQuad}
}
