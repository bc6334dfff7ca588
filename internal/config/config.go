// Package config loads heat run configuration.
// Values come from defaults, an optional YAML file, HEAT_* environment
// variables and finally key=value command-line arguments, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/number"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override (HEAT_ALPHA, HEAT_DT, ...).
const EnvPrefix = "HEAT_"

// DefaultRunName names the results directory when none is given.
const DefaultRunName = "heat_results"

var (
	// ErrUnknownKey indicates a key=value argument with an unknown key.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrBadValue indicates a value that does not parse as the key's type.
	ErrBadValue = errors.New("config: bad value")

	// ErrSyntax indicates an argument that is not of the form key=value.
	ErrSyntax = errors.New("config: want key=value")
)

// Config contains every setting of one run.
// The flat keys keep the historical argument names so a saved clargs.yaml
// can be fed back with --config.
type Config struct {
	RunName     string  `json:"runame" yaml:"runame"`
	Precision   string  `json:"prec" yaml:"prec"`
	Alpha       float64 `json:"alpha" yaml:"alpha"`
	LenX        float64 `json:"lenx" yaml:"lenx"`
	Dx          float64 `json:"dx" yaml:"dx"`
	Dt          float64 `json:"dt" yaml:"dt"`
	MaxTime     float64 `json:"maxt" yaml:"maxt"`
	MinChange   float64 `json:"min_change,omitempty" yaml:"min_change,omitempty"`
	BC0         float64 `json:"bc0" yaml:"bc0"`
	BC1         float64 `json:"bc1" yaml:"bc1"`
	IC          string  `json:"ic" yaml:"ic"`
	Algorithm   string  `json:"alg" yaml:"alg"`
	SaveEvery   int     `json:"savi" yaml:"savi"`
	Save        bool    `json:"save" yaml:"save"`
	ReportEvery int     `json:"outi" yaml:"outi"`
	NoOutput    bool    `json:"noout" yaml:"noout"`

	// Compute tunes how steps are executed.
	Compute ComputeConfig `json:"compute" yaml:"compute"`

	// Logging contains settings for operational and progress logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Outputs selects the optional artifacts beyond curve files.
	Outputs OutputsConfig `json:"outputs" yaml:"outputs"`
}

// ComputeConfig configures step execution.
type ComputeConfig struct {
	// Workers bounds the goroutines of one stencil sweep (1 = sequential).
	Workers int `json:"workers" yaml:"workers"`

	// MinChunk is the smallest interior slice handed to one worker.
	MinChunk int `json:"min_chunk" yaml:"min_chunk"`

	// FPChecks fails the run on the first NaN or Inf. On by default.
	FPChecks bool `json:"fpcheck" yaml:"fpcheck"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`

	// Trace is a JSONL file receiving one record per progress report.
	Trace string `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// OutputsConfig selects extra artifacts.
type OutputsConfig struct {
	// Plot writes PNG plots of the solution and histories into the run directory.
	Plot bool `json:"plot" yaml:"plot"`

	// Report writes a PDF summary into the run directory (implies Plot).
	Report bool `json:"report" yaml:"report"`

	// Database is a SQLite file that archives every finished run.
	Database string `json:"database,omitempty" yaml:"database,omitempty"`
}

// Default returns a Config with the reference defaults.
func Default() *Config {
	p := heat.DefaultParams()

	return &Config{
		RunName:     DefaultRunName,
		Precision:   number.PrecisionDouble.String(),
		Alpha:       p.Alpha,
		LenX:        p.LenX,
		Dx:          p.Dx,
		Dt:          p.Dt,
		MaxTime:     p.MaxTime,
		BC0:         p.BC0,
		BC1:         p.BC1,
		IC:          p.IC,
		Algorithm:   p.Algorithm,
		ReportEvery: p.ReportEvery,
		Compute: ComputeConfig{
			Workers:  1,
			FPChecks: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped
// when path is empty) and the environment.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return config, nil
}

// Keys lists the key=value argument names in their documented order.
func Keys() []string {
	return []string{
		"runame", "prec", "alpha", "lenx", "dx", "dt", "maxt", "min_change",
		"bc0", "bc1", "ic", "alg", "savi", "save", "outi", "noout",
	}
}

// fields maps each key onto the field it sets.
func (c *Config) fields() map[string]any {
	return map[string]any{
		"runame":     &c.RunName,
		"prec":       &c.Precision,
		"alpha":      &c.Alpha,
		"lenx":       &c.LenX,
		"dx":         &c.Dx,
		"dt":         &c.Dt,
		"maxt":       &c.MaxTime,
		"min_change": &c.MinChange,
		"bc0":        &c.BC0,
		"bc1":        &c.BC1,
		"ic":         &c.IC,
		"alg":        &c.Algorithm,
		"savi":       &c.SaveEvery,
		"save":       &c.Save,
		"outi":       &c.ReportEvery,
		"noout":      &c.NoOutput,
	}
}

// Set assigns one value by key. An empty value leaves the field unchanged.
func (c *Config) Set(key, value string) error {
	ptr, ok := c.fields()[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}
	if value == "" {
		return nil
	}

	switch p := ptr.(type) {
	case *string:
		*p = value
	case *float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
		}
		*p = f
	case *int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
		}
		*p = n
	case *bool:
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", key, value, ErrBadValue)
		}
		*p = b
	}

	return nil
}

// Apply sets every key=value argument in order.
func (c *Config) Apply(args []string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%q: %w", arg, ErrSyntax)
		}
		if err := c.Set(key, value); err != nil {
			return err
		}
	}

	return nil
}

// Params converts the run keys into heat.Params.
func (c *Config) Params() heat.Params {
	return heat.Params{
		Alpha:       c.Alpha,
		LenX:        c.LenX,
		Dx:          c.Dx,
		Dt:          c.Dt,
		MaxTime:     c.MaxTime,
		MinChange:   c.MinChange,
		BC0:         c.BC0,
		BC1:         c.BC1,
		IC:          c.IC,
		Algorithm:   c.Algorithm,
		Save:        c.Save,
		SaveEvery:   c.SaveEvery,
		ReportEvery: c.ReportEvery,
	}
}

// Validate checks the settings heat.Params.Validate does not cover.
func (c *Config) Validate() error {
	if _, err := number.ParsePrecision(c.Precision); err != nil {
		return fmt.Errorf("prec: %w", err)
	}
	if strings.TrimSpace(c.RunName) == "" && !c.NoOutput {
		return fmt.Errorf("runame is required unless noout is set: %w", ErrBadValue)
	}
	if c.Compute.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Compute.Workers, ErrBadValue)
	}
	if c.Compute.MinChunk < 0 {
		return fmt.Errorf("min_chunk must be non-negative, got %d: %w", c.Compute.MinChunk, ErrBadValue)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default): %w",
			c.Logging.Level, ErrBadValue)
	}

	return nil
}

// PrecisionValue parses Precision.
func (c *Config) PrecisionValue() (number.Precision, error) {
	return number.ParsePrecision(c.Precision)
}

// applyEnvOverrides applies HEAT_<KEY> variables, then the non-run settings.
func applyEnvOverrides(config *Config) error {
	for _, key := range Keys() {
		if v := os.Getenv(EnvPrefix + strings.ToUpper(key)); v != "" {
			if err := config.Set(key, v); err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, strings.ToUpper(key), err)
			}
		}
	}

	if v := os.Getenv("HEAT_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Compute.Workers = n
		}
	}
	if v := os.Getenv("HEAT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("HEAT_DB"); v != "" {
		config.Outputs.Database = v
	}

	return nil
}

// parseBool accepts the integer flags of the historical interface as well
// as strconv booleans.
func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0, nil
	}

	return strconv.ParseBool(s)
}
