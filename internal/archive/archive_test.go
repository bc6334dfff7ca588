package archive_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/internal/archive"
	"github.com/katalvlaran/heat1d/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *archive.Store {
	t.Helper()
	s, err := archive.Open(t.Context(), filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_SaveAndList(t *testing.T) {
	s := openStore(t)
	ctx := t.Context()

	p := heat.DefaultParams()
	res, err := heat.Run(ctx, number.PrecisionDouble, p)
	require.NoError(t, err)

	rec := archive.NewRecord("first", p, res)
	rec.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	id, err := s.SaveRun(ctx, rec)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	p.Algorithm = "crankn"
	_, err = s.SaveRun(ctx, archive.NewRecord("second", p, heat.Result{Steps: 3, Change: math.NaN()}))
	require.NoError(t, err)

	runs, err := s.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "second", runs[0].Name)
	assert.True(t, math.IsNaN(runs[0].Change))
	assert.Equal(t, "crankn", runs[0].Params.Algorithm)

	got := runs[1]
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, "ftcs", got.Algorithm)
	assert.Equal(t, "double", got.Precision)
	assert.Equal(t, "time", got.Stop)
	assert.Equal(t, 11, got.Nx)
	assert.Equal(t, 500, got.Steps)
	assert.Equal(t, res.Change, got.Change)
	assert.False(t, got.Converged)
	assert.Equal(t, res.Counts, got.Counts)
	assert.Equal(t, p.IC, got.Params.IC)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	limited, err := s.ListRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "second", limited[0].Name)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := t.Context()

	s, err := archive.Open(ctx, path)
	require.NoError(t, err)
	_, err = s.SaveRun(ctx, archive.Record{Name: "kept", Algorithm: "ftcs", Precision: "double", Stop: "time"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = archive.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "kept", runs[0].Name)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestStore_Memory(t *testing.T) {
	s, err := archive.Open(t.Context(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	runs, err := s.ListRuns(t.Context(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_Closed(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err := s.SaveRun(t.Context(), archive.Record{Name: "x"})
	require.ErrorIs(t, err, archive.ErrClosed)
	_, err = s.ListRuns(t.Context(), 1)
	require.ErrorIs(t, err, archive.ErrClosed)
}
