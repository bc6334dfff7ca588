// Package archive keeps a SQLite record of finished runs.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/number"
	_ "modernc.org/sqlite" // SQLite driver
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    algorithm TEXT NOT NULL,
    precision TEXT NOT NULL,
    stop TEXT NOT NULL,
    nx INTEGER NOT NULL,
    dx REAL NOT NULL,
    dt REAL NOT NULL,
    steps INTEGER NOT NULL,
    sim_time REAL NOT NULL,
    change REAL,
    converged INTEGER NOT NULL DEFAULT 0,

    adds INTEGER NOT NULL DEFAULT 0,
    mults INTEGER NOT NULL DEFAULT 0,
    divs INTEGER NOT NULL DEFAULT 0,
    bytes INTEGER NOT NULL DEFAULT 0,

    elapsed_ns INTEGER NOT NULL DEFAULT 0,
    params TEXT,  -- JSON
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);
`

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("archive: store is closed")

// Record is one archived run.
type Record struct {
	ID        int64
	Name      string
	Params    heat.Params
	Algorithm string
	Precision string
	Stop      string
	Nx        int
	Dx        float64
	Dt        float64
	Steps     int
	SimTime   float64
	Change    float64
	Converged bool
	Counts    number.Counts
	Elapsed   time.Duration
	CreatedAt time.Time
}

// NewRecord builds a Record from a finished run.
func NewRecord(name string, p heat.Params, r heat.Result) Record {
	return Record{
		Name:      name,
		Params:    p,
		Algorithm: r.Algorithm.String(),
		Precision: r.Precision.String(),
		Stop:      r.Stop.String(),
		Nx:        r.Nx,
		Dx:        r.Dx,
		Dt:        r.Dt,
		Steps:     r.Steps,
		SimTime:   r.SimTime,
		Change:    r.Change,
		Converged: r.Converged,
		Counts:    r.Counts,
		Elapsed:   r.Elapsed,
	}
}

// Store is a SQLite-backed run archive.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
// ":memory:" gives a private in-memory archive.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// InitSchema creates the tables when missing and records the version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	return nil
}

// SaveRun inserts r and returns its id. A zero CreatedAt is set to now.
func (s *Store) SaveRun(ctx context.Context, r Record) (int64, error) {
	if s.db == nil {
		return 0, ErrClosed
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	params, err := json.Marshal(r.Params)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal params: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			name, algorithm, precision, stop, nx, dx, dt, steps, sim_time, change, converged,
			adds, mults, divs, bytes, elapsed_ns, params, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Name, r.Algorithm, r.Precision, r.Stop, r.Nx, r.Dx, r.Dt, r.Steps, r.SimTime, r.Change, boolToInt(r.Converged),
		r.Counts.Adds, r.Counts.Mults, r.Counts.Divs, r.Counts.Bytes, int64(r.Elapsed), string(params),
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	return res.LastInsertId()
}

// ListRuns returns up to limit runs, newest first. limit <= 0 means all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, algorithm, precision, stop, nx, dx, dt, steps, sim_time, change, converged,
			adds, mults, divs, bytes, elapsed_ns, params, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, rows.Err()
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		r         Record
		change    sql.NullFloat64
		converged int
		elapsed   int64
		params    sql.NullString
		created   string
	)
	if err := rows.Scan(
		&r.ID, &r.Name, &r.Algorithm, &r.Precision, &r.Stop, &r.Nx, &r.Dx, &r.Dt, &r.Steps,
		&r.SimTime, &change, &converged,
		&r.Counts.Adds, &r.Counts.Mults, &r.Counts.Divs, &r.Counts.Bytes,
		&elapsed, &params, &created,
	); err != nil {
		return Record{}, fmt.Errorf("failed to scan run: %w", err)
	}
	// SQLite stores NaN as NULL
	r.Change = math.NaN()
	if change.Valid {
		r.Change = change.Float64
	}
	r.Converged = converged != 0
	r.Elapsed = time.Duration(elapsed)
	if params.Valid && params.String != "" {
		if err := json.Unmarshal([]byte(params.String), &r.Params); err != nil {
			return Record{}, fmt.Errorf("run %d: failed to unmarshal params: %w", r.ID, err)
		}
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, fmt.Errorf("run %d: bad created_at %q: %w", r.ID, created, err)
	}
	r.CreatedAt = t

	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
