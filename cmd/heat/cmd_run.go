package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/heat1d/heat"
	"github.com/katalvlaran/heat1d/internal/archive"
	"github.com/katalvlaran/heat1d/internal/config"
	"github.com/katalvlaran/heat1d/internal/logging"
	"github.com/katalvlaran/heat1d/internal/output"
	"github.com/katalvlaran/heat1d/internal/report"
	"github.com/katalvlaran/heat1d/scheme"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heat [key=value ...]",
		Short: "Solve the 1-D heat equation",
		Long: `heat solves u_t = alpha u_xx on [0, lenx] with fixed boundary values.

Run parameters are key=value arguments:
  runame  name to give run and results dir
  prec    precision half|float|double|quad (or 1|2|3)
  alpha   material thermal diffusivity (sq-meters/second)
  lenx    material length (meters)
  dx      x-increment, best if lenx/dx is an integer (meters)
  dt      t-increment (seconds)
  maxt    >0: max sim time (seconds) | <0: min l2 change in solution
  bc0     boundary condition @ x=0: u(0,t) (Kelvin)
  bc1     boundary condition @ x=lenx: u(lenx,t) (Kelvin)
  ic      initial condition @ t=0: u(x,0) (Kelvin); see "heat ic"
  alg     algorithm ftcs|dufrank|upwind15|crankn
  savi    save every i-th solution step
  save    save error in every saved solution
  outi    output progress every i-th solution step
  noout   disable all file outputs

Values are layered: defaults, --config file, HEAT_<KEY> environment
variables, then arguments.`,
		Example: `  heat runame=ftcs_results
  heat alg=crankn dt=0.01 maxt=-1e-5 ic="ramp(0,1)" noout=1
  heat --plot --report --db runs.db runame=demo savi=100 save=1`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHeat,
	}

	flags := cmd.Flags()
	flags.String("config", "", "YAML configuration file")
	flags.String("outdir", ".", "Directory in which the run directory is created")
	flags.String("log-level", "", "Log level: info, debug, trace")
	flags.String("trace", "", "JSONL file receiving one record per progress report")
	flags.Int("workers", 0, "Goroutines per stencil sweep (0 = configured)")
	flags.Int("min-chunk", 0, "Smallest interior slice per worker (0 = default)")
	flags.Bool("plot", false, "Write PNG plots into the run directory")
	flags.Bool("report", false, "Write a PDF report into the run directory (implies --plot)")
	flags.Bool("fpcheck", true, "Fail on the first NaN or Inf (--fpcheck=false to disable)")
	flags.String("cpuprofile", "", "Write a CPU profile to this file")

	return cmd
}

// loadConfig layers defaults, the config file, the environment, the
// key=value arguments and finally the flags.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(args); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("trace") {
		cfg.Logging.Trace, _ = flags.GetString("trace")
	}
	if flags.Changed("workers") {
		cfg.Compute.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("min-chunk") {
		cfg.Compute.MinChunk, _ = flags.GetInt("min-chunk")
	}
	if flags.Changed("fpcheck") {
		cfg.Compute.FPChecks, _ = flags.GetBool("fpcheck")
	}
	if flags.Changed("plot") {
		cfg.Outputs.Plot, _ = flags.GetBool("plot")
	}
	if flags.Changed("report") {
		cfg.Outputs.Report, _ = flags.GetBool("report")
	}
	if flags.Changed("db") {
		cfg.Outputs.Database, _ = flags.GetString("db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runHeat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	if strings.Contains(strings.ToLower(cfg.IC), "help") {
		fmt.Fprint(cmd.ErrOrStderr(), icHelp)
		return nil
	}
	prec, err := cfg.PrecisionValue()
	if err != nil {
		return err
	}
	params := cfg.Params()
	if _, err := params.Validate(); err != nil {
		return err
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	if path, _ := cmd.Flags().GetString("cpuprofile"); path != "" {
		stop, err := startCPUProfile(path)
		if err != nil {
			return fmt.Errorf("cpuprofile: %w", err)
		}
		defer stop()
	}

	// Stage 1: outputs
	var (
		dir       *output.Dir
		sinks     heat.MultiSink
		collector *report.Collector
	)
	wantPlots := cfg.Outputs.Plot || cfg.Outputs.Report
	if cfg.NoOutput {
		if wantPlots {
			logger.Warn("plots and report need file output; skipping", "noout", true)
		}
	} else {
		outdir, _ := cmd.Flags().GetString("outdir")
		if dir, err = output.Create(outdir, cfg.RunName); err != nil {
			return err
		}
		if err = dir.WriteArgs(cfg); err != nil {
			return err
		}
		sinks = append(sinks, output.NewCurveWriter(dir))
		if wantPlots {
			collector = report.NewCollector()
			sinks = append(sinks, collector)
		}
	}

	trace, err := logging.NewProgressLog(cfg.Logging.Trace)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	defer trace.Close()

	// Stage 2: run
	opts := []heat.Option{
		heat.WithSink(sinks),
		heat.WithReporter(logging.NewReporter(cmd.OutOrStdout(), logger, trace, cfg.ReportEvery == 0)),
		heat.WithLogger(logger),
		heat.WithWorkers(cfg.Compute.Workers),
		heat.WithFPChecks(cfg.Compute.FPChecks),
	}
	if cfg.Compute.MinChunk > 0 {
		opts = append(opts, heat.WithSchemeOptions(scheme.WithMinChunk(cfg.Compute.MinChunk)))
	}
	logger.Debug("starting run", "run", cfg.RunName, "alg", params.Algorithm, "prec", prec.String())

	res, runErr := heat.Run(cmd.Context(), prec, params, opts...)

	if runErr != nil {
		return runErr
	}

	// Stage 3: artifacts
	var errs []error
	if collector != nil {
		files, err := report.Render(dir.Path(), report.Summary{Run: cfg.RunName, Params: params, Result: res},
			collector.Snapshot(), cfg.Outputs.Report)
		if err != nil {
			errs = append(errs, fmt.Errorf("report: %w", err))
		}
		for _, f := range files {
			logger.Debug("wrote artifact", "file", f)
		}
	}
	if cfg.Outputs.Database != "" {
		if err := archiveRun(cmd, cfg, params, res, logger); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func archiveRun(cmd *cobra.Command, cfg *config.Config, params heat.Params, res heat.Result, logger *slog.Logger) error {
	ctx := context.WithoutCancel(cmd.Context())
	store, err := archive.Open(ctx, cfg.Outputs.Database)
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	defer store.Close()

	id, err := store.SaveRun(ctx, archive.NewRecord(cfg.RunName, params, res))
	if err != nil {
		return fmt.Errorf("archive: %w", err)
	}
	logger.Debug("archived run", "id", id, "db", cfg.Outputs.Database)

	return nil
}

// databasePath resolves --db, falling back to HEAT_DB.
func databasePath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p
	}
	return os.Getenv("HEAT_DB")
}
