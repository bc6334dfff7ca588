// Package output persists a run on disk.
//
// A run directory <parent>/<run> holds clargs.yaml (the effective
// configuration) and one .curve file per array the simulation emits:
//
//	<run>_soln_00000.curve  initial condition
//	<run>_soln_%05d.curve   solution at a save interval
//	<run>_exact_%05d.curve  exact solution at a save interval
//	<run>_soln_final.curve  final solution
//	<run>_change.curve      L2 change per step
//	<run>_error.curve       L2 error per step
//
// Each curve file starts with a "# <name>" line followed by "x y" rows.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ArgsFile is the name of the saved configuration inside a run directory.
const ArgsFile = "clargs.yaml"

var (
	// ErrRunExists indicates the run directory already exists.
	ErrRunExists = errors.New("output: run directory already exists")

	// ErrBadCurve indicates a curve file that does not parse.
	ErrBadCurve = errors.New("output: malformed curve file")
)

// Dir is a created run directory.
type Dir struct {
	path string
	name string
}

// Create makes <parent>/<name>. It refuses to reuse an existing entry so
// results of an earlier run are never overwritten.
func Create(parent, name string) (*Dir, error) {
	if name == "" || name != filepath.Base(name) {
		return nil, fmt.Errorf("output: run name %q must be a single path element", name)
	}
	path := filepath.Join(parent, name)
	if err := os.Mkdir(path, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrRunExists)
		}
		return nil, fmt.Errorf("output: %w", err)
	}

	return &Dir{path: path, name: name}, nil
}

// Open returns an existing run directory without creating it.
func Open(parent, name string) (*Dir, error) {
	path := filepath.Join(parent, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output: %s is not a directory", path)
	}

	return &Dir{path: path, name: name}, nil
}

// Path returns the directory path.
func (d *Dir) Path() string { return d.path }

// Name returns the run name.
func (d *Dir) Name() string { return d.name }

// File returns the path of file inside the directory.
func (d *Dir) File(file string) string { return filepath.Join(d.path, file) }

// WriteArgs saves v as ArgsFile.
func (d *Dir) WriteArgs(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("output: marshal args: %w", err)
	}
	if err = os.WriteFile(d.File(ArgsFile), data, 0o644); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

// ReadArgs loads ArgsFile into v.
func (d *Dir) ReadArgs(v any) error {
	data, err := os.ReadFile(d.File(ArgsFile))
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if err = yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("output: parse %s: %w", ArgsFile, err)
	}

	return nil
}
