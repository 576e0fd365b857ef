package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/agbru/tsapredictor/internal/cli"
	"github.com/agbru/tsapredictor/internal/config"
	"github.com/agbru/tsapredictor/internal/critical"
	apperrors "github.com/agbru/tsapredictor/internal/errors"
	"github.com/agbru/tsapredictor/internal/logging"
	"github.com/agbru/tsapredictor/internal/metrics"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/orbit"
	"github.com/agbru/tsapredictor/internal/orchestration"
	"github.com/agbru/tsapredictor/internal/report"
	"github.com/agbru/tsapredictor/internal/ui"
)

// Application represents the tsapredictor application instance. It
// encapsulates the configuration and drives the full critical-point,
// orbit-classification and cell-mapping pipeline to completion.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It returns an error if parsing fails (including flag.ErrHelp).
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "tsapredictor"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{Config: cfg, ErrWriter: errWriter}, nil
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run drives one full tsapredictor analysis: it locates the critical
// points of the configured polynomial shape, classifies their orbits
// into attracting cycles, runs the cell-mapping engine concurrently over
// every retained cycle, and renders the resulting report. It returns the
// process exit code per apperrors' exit-status table.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	ctx, lifecycle := SetupLifecycle(ctx, a.Config.Timeout)
	defer lifecycle.Cleanup()

	start := time.Now()

	logFile, err := os.OpenFile(a.Config.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "warning: could not open log file %q: %v\n", a.Config.LogFile, err)
		logFile = nil
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := a.buildLogger(logFile)

	f := a.Config.Shape.Polynomial(a.Config.Seed)
	fprime := f.Derivative()
	fsecond := fprime.Derivative()
	lagrange := f.LagrangeBound()

	log.Info("starting analysis",
		logging.String("shape", a.Config.Shape.String()),
		logging.String("precision", numeric.PrecisionTag),
		logging.Float64("lagrange_bound", float64(lagrange)))

	criticalPoints := critical.NewFinder(log).Find(&f, &fprime, &fsecond, lagrange)
	if len(criticalPoints) == 0 {
		return a.fail(apperrors.NoCriticalPointsError{}, start, out)
	}
	log.Info("critical points located", logging.Int("count", len(criticalPoints)))

	cycles := orbit.Classify(&f, &fprime, criticalPoints, lagrange)
	if len(cycles) == 0 {
		return a.fail(apperrors.NoBoundedOrbitError{}, start, out)
	}
	cycles = a.filterPeriods(cycles)
	if len(cycles) == 0 {
		return a.fail(apperrors.NoBoundedOrbitError{}, start, out)
	}

	for _, c := range cycles {
		log.Info("cycle retained",
			logging.Int("number", c.Number),
			logging.Int("period", len(c.Points)),
			logging.Float64("multiplier", float64(c.Multiplier)))
	}

	collectors, handler := metrics.NewCollectors()
	metricsSrv := metrics.Serve(a.Config.MetricsPort, handler)
	if metricsSrv != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsSrv.Shutdown(shutdownCtx)
		}()
	}
	collectors.CyclesTotal.Add(float64(len(cycles)))

	runCtx, runSpan := metrics.StartRunSpan(ctx, a.Config.Shape.String())
	defer runSpan.End()

	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
	}
	progressChan := make(chan orchestration.ProgressUpdate, len(cycles)*orchestration.ProgressBufferMultiplier)
	var wg sync.WaitGroup
	wg.Add(1)
	go cli.DisplayProgress(&wg, progressChan, len(cycles), progressOut, collectors)

	results, runErr := orchestration.RunCycles(runCtx, a.Config.Shape, a.Config.Seed, lagrange, cycles,
		a.Config.Level0, a.Config.Level1, a.Config.EnclosementWidth, progressChan, log)
	close(progressChan)
	wg.Wait()

	for _, r := range results {
		if r.Result.Found {
			collectors.CyclesFound.Inc()
		}
		if r.Err != nil && !apperrors.IsContextError(r.Err) {
			log.Error("cycle cell-mapping failed", r.Err, logging.Int("cycle", r.Cycle.Number))
		}
	}

	if runErr != nil {
		return a.fail(runErr, start, out)
	}

	duration := time.Since(start)
	r := report.Build(a.Config.Shape, a.Config.Seed, numeric.PrecisionTag, lagrange, criticalPoints, results, duration)
	a.logSummary(log, r, duration)

	if err := a.writeReport(r, out); err != nil {
		return a.fail(err, start, out)
	}
	if a.Config.Verbose {
		orchestration.AnalyzeResults(results, out)
	}

	return apperrors.ExitSuccess
}

// filterPeriods applies the optional PERIODS=a,b inclusive cycle-length
// filter, leaving cycles unchanged when no filter was configured.
func (a *Application) filterPeriods(cycles []orbit.Cycle) []orbit.Cycle {
	if !a.Config.PeriodFilterSet {
		return cycles
	}
	filtered := make([]orbit.Cycle, 0, len(cycles))
	for _, c := range cycles {
		period := len(c.Points)
		if period >= a.Config.PeriodMin && period <= a.Config.PeriodMax {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// buildLogger constructs the structured logger, teeing to the configured
// log file when it could be opened and falling back to a stderr-only
// logger otherwise.
func (a *Application) buildLogger(logFile *os.File) logging.Logger {
	if logFile == nil {
		return logging.NewLogger(a.ErrWriter, "tsapredictor")
	}
	return logging.NewLogger(io.MultiWriter(logFile, a.ErrWriter), "tsapredictor")
}

// logSummary appends the run's final report to the structured log, in
// addition to whatever WriteText/WriteJSON sends to stdout.
func (a *Application) logSummary(log logging.Logger, r report.Report, duration time.Duration) {
	log.Info("analysis complete",
		logging.String("command_line", r.CommandLine),
		logging.Int("cycles", len(r.Cycles)),
		logging.String("duration", duration.String()))
}

// writeReport renders the report to out (and, if configured, to
// a.Config.OutputFile) in the selected format.
func (a *Application) writeReport(r report.Report, out io.Writer) error {
	write := r.WriteText
	if a.Config.JSONOutput {
		write = r.WriteJSON
	}
	if err := write(out); err != nil {
		return err
	}
	if a.Config.OutputFile == "" {
		return nil
	}
	f, err := os.Create(a.Config.OutputFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

// fail prints the final status line and returns the corresponding exit
// code for a fatal run error.
func (a *Application) fail(err error, start time.Time, out io.Writer) int {
	return apperrors.HandleRunError(err, time.Since(start), out, cli.CLIColorProvider{})
}
