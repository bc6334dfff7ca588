// Package tridiag_test checks factorization and solve against a dense oracle.
package tridiag_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/heat1d/number"
	"github.com/katalvlaran/heat1d/tridiag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// dense expands an unfactored band into a gonum matrix.
func dense(b *tridiag.Band[float64]) *mat.Dense {
	n := b.Len()
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, b.Diag(i))
		if i > 0 {
			a.Set(i, i-1, b.Sub(i))
		}
		if i < n-1 {
			a.Set(i, i+1, b.Super(i))
		}
	}

	return a
}

// TestNewDiffusion_Layout verifies boundary identity rows and interior stencil.
func TestNewDiffusion_Layout(t *testing.T) {
	ops := number.New[float64](number.Float64{}, nil)
	b, err := tridiag.NewDiffusion(ops, 5, 0.5, 0.1, 0.01) // w = 0.5
	require.NoError(t, err)

	require.Equal(t, 5, b.Len())
	assert.Equal(t, [3]float64{0, 1, 0}, [3]float64{b.Sub(0), b.Diag(0), b.Super(0)})
	assert.Equal(t, [3]float64{0, 1, 0}, [3]float64{b.Sub(4), b.Diag(4), b.Super(4)})
	for i := 1; i < 4; i++ {
		assert.InDelta(t, -0.5, b.Sub(i), 1e-15, "row %d sub", i)
		assert.InDelta(t, 2.0, b.Diag(i), 1e-15, "row %d diag", i)
		assert.InDelta(t, -0.5, b.Super(i), 1e-15, "row %d super", i)
	}
	assert.False(t, b.Factored())
}

// TestSolve_MatchesDenseOracle compares Thomas against gonum's LU solve.
func TestSolve_MatchesDenseOracle(t *testing.T) {
	const n = 21
	ops := number.New[float64](number.Float64{}, nil)

	b, err := tridiag.NewDiffusion(ops, n, 0.2, 0.05, 0.004)
	require.NoError(t, err)
	a := dense(b)

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = float64(i*i%7) - 2.5
	}

	var want mat.VecDense
	require.NoError(t, want.SolveVec(a, mat.NewVecDense(n, append([]float64(nil), rhs...))))

	require.NoError(t, b.Factor(ops))
	got := make([]float64, n)
	require.NoError(t, b.Solve(ops, got, rhs))

	for i := 0; i < n; i++ {
		assert.InDelta(t, want.AtVec(i), got[i], 1e-12, "x[%d]", i)
	}
	assert.Equal(t, rhs[0], got[0], "identity boundary row passes the value through")
	assert.Equal(t, rhs[n-1], got[n-1])
}

// TestSolve_GeneralBand exercises SetRow with a non-symmetric system.
func TestSolve_GeneralBand(t *testing.T) {
	ops := number.New[float64](number.Float64{}, nil)
	b, err := tridiag.NewBand(ops, 4)
	require.NoError(t, err)
	require.NoError(t, b.SetRow(0, 0, 4, 1))
	require.NoError(t, b.SetRow(1, 2, 5, -1))
	require.NoError(t, b.SetRow(2, 1, 6, 2))
	require.NoError(t, b.SetRow(3, -3, 7, 0))
	a := dense(b)

	x := []float64{1, -2, 3, 0.5}
	var rhsVec mat.VecDense
	rhsVec.MulVec(a, mat.NewVecDense(4, x))
	rhs := rhsVec.RawVector().Data

	require.NoError(t, b.Factor(ops))
	got := make([]float64, 4)
	require.NoError(t, b.Solve(ops, got, rhs))
	assert.InDeltaSlice(t, x, got, 1e-12)
}

// TestSolve_InPlace allows dst to alias rhs.
func TestSolve_InPlace(t *testing.T) {
	ops := number.New[float64](number.Float64{}, nil)
	b, err := tridiag.NewFactoredDiffusion(ops, 6, 1.0, 1.0, 1.0)
	require.NoError(t, err)

	v := []float64{0, 1, 1, 1, 1, 0}
	want := make([]float64, 6)
	require.NoError(t, b.Solve(ops, want, v))

	require.NoError(t, b.Solve(ops, v, v))
	assert.Equal(t, want, v)
}

// TestSolve_OtherPrecisions runs the same system at float32 and double-double.
func TestSolve_OtherPrecisions(t *testing.T) {
	const n = 11
	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = 1
	}

	ref := number.New[float64](number.Float64{}, nil)
	b64, err := tridiag.NewFactoredDiffusion(ref, n, 0.2, 0.1, 0.004)
	require.NoError(t, err)
	want := make([]float64, n)
	require.NoError(t, b64.Solve(ref, want, rhs))

	o32 := number.New[float32](number.Float32{}, nil)
	b32, err := tridiag.NewFactoredDiffusion(o32, n, o32.Float(0.2), o32.Float(0.1), o32.Float(0.004))
	require.NoError(t, err)
	got32 := o32.Make(n)
	require.NoError(t, b32.Solve(o32, got32, o32.FromFloat64s(rhs)))
	assert.InDeltaSlice(t, want, o32.Float64s(got32), 1e-6)

	ox := number.New[number.Extended](number.ExtendedArith{}, nil)
	bx, err := tridiag.NewFactoredDiffusion(ox, n, ox.Float(0.2), ox.Float(0.1), ox.Float(0.004))
	require.NoError(t, err)
	gotx := ox.Make(n)
	require.NoError(t, bx.Solve(ox, gotx, ox.FromFloat64s(rhs)))
	assert.InDeltaSlice(t, want, ox.Float64s(gotx), 1e-14)
}

// TestFactor_ZeroPivot reports the offending row.
func TestFactor_ZeroPivot(t *testing.T) {
	ops := number.New[float64](number.Float64{}, nil)

	b, err := tridiag.NewBand(ops, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetRow(0, 0, 0, 1)) // zero leading pivot
	require.NoError(t, b.SetRow(1, 1, 2, 1))
	require.NoError(t, b.SetRow(2, 1, 2, 0))
	err = b.Factor(ops)
	require.ErrorIs(t, err, tridiag.ErrZeroPivot)
	assert.Contains(t, err.Error(), "row 0")
	assert.False(t, b.Factored())

	// Elimination produces the zero: diag(1) - (1/1)·1 = 0.
	c, err := tridiag.NewBand(ops, 3)
	require.NoError(t, err)
	require.NoError(t, c.SetRow(0, 0, 1, 1))
	require.NoError(t, c.SetRow(1, 1, 1, 1))
	require.NoError(t, c.SetRow(2, 1, 2, 0))
	require.ErrorIs(t, c.Factor(ops), tridiag.ErrZeroPivot)

	// Last pivot is checked as well.
	d, err := tridiag.NewBand(ops, 1)
	require.NoError(t, err)
	require.ErrorIs(t, d.Factor(ops), tridiag.ErrZeroPivot)
}

// TestBand_StateErrors covers the lifecycle sentinels.
func TestBand_StateErrors(t *testing.T) {
	ops := number.New[float64](number.Float64{}, nil)

	_, err := tridiag.NewBand(ops, 0)
	require.ErrorIs(t, err, tridiag.ErrBadSize)
	_, err = tridiag.NewDiffusion(ops, -1, 1, 1, 1)
	require.ErrorIs(t, err, tridiag.ErrBadSize)

	b, err := tridiag.NewDiffusion(ops, 4, 1, 1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, b.SetRow(4, 0, 1, 0), tridiag.ErrOutOfRange)
	require.ErrorIs(t, b.SetRow(-1, 0, 1, 0), tridiag.ErrOutOfRange)
	require.ErrorIs(t, b.Solve(ops, make([]float64, 4), make([]float64, 4)), tridiag.ErrNotFactored)

	require.NoError(t, b.Factor(ops))
	require.ErrorIs(t, b.Factor(ops), tridiag.ErrAlreadyFactored)
	require.ErrorIs(t, b.SetRow(1, 0, 1, 0), tridiag.ErrAlreadyFactored)
	require.ErrorIs(t, b.Solve(ops, make([]float64, 3), make([]float64, 4)), tridiag.ErrDimensionMismatch)
	require.ErrorIs(t, b.Solve(ops, make([]float64, 4), make([]float64, 5)), tridiag.ErrDimensionMismatch)
}

// TestCounts_FactorAndSolve pins the operation cost of both phases.
func TestCounts_FactorAndSolve(t *testing.T) {
	const n = 10
	build := &number.Tally{}
	ops := number.New[float64](number.Float64{}, build)

	b, err := tridiag.NewDiffusion(ops, n, 0.2, 0.1, 0.004)
	require.NoError(t, err)
	// w: 2 mults + 1 div; 1+2w: 1 mult + 1 add; -w: 1 add.
	assert.Equal(t, number.Counts{Adds: 2, Mults: 3, Divs: 1, Bytes: 3 * n * 8}, build.Counts())

	factor := &number.Tally{}
	require.NoError(t, b.Factor(ops.WithCounter(factor)))
	assert.Equal(t, number.Counts{Adds: n - 1, Mults: n - 1, Divs: n - 1}, factor.Counts())

	solve := &number.Tally{}
	dst, rhs := make([]float64, n), make([]float64, n)
	require.NoError(t, b.Solve(ops.WithCounter(solve), dst, rhs))
	assert.Equal(t, number.Counts{Adds: 2 * (n - 1), Mults: 2 * (n - 1), Divs: n}, solve.Counts())
}

// TestSolve_ConcurrentReaders shares one factored band across goroutines.
func TestSolve_ConcurrentReaders(t *testing.T) {
	const n, workers = 33, 8
	shared := number.NewAtomicTally()
	ops := number.New[float64](number.Float64{}, shared)
	b, err := tridiag.NewFactoredDiffusion(ops, n, 0.2, 0.1, 0.004)
	require.NoError(t, err)

	rhs := make([]float64, n)
	for i := range rhs {
		rhs[i] = float64(i)
	}
	want := make([]float64, n)
	require.NoError(t, b.Solve(ops, want, rhs))

	results := make([][]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			dst := make([]float64, n)
			if err := b.Solve(ops, dst, rhs); err == nil {
				results[w] = dst
			}
		}(w)
	}
	wg.Wait()

	for w := range results {
		require.Equal(t, want, results[w], "worker %d", w)
	}
}
