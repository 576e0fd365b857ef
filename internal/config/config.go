// Package config provides the configuration management for the
// tsapredictor application. It defines the data structure for the
// configuration, handles parsing of command-line arguments, and
// performs validation on the configuration values.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/tsapredictor/internal/errors"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

const (
	// EnvPrefix is the prefix for all environment variables used by
	// tsapredictor, following the 12-Factor App methodology.
	EnvPrefix = "TSAPREDICTOR_"
)

// Default configuration values, matching the original engine's defaults.
const (
	DefaultFunc             = "Z2C"
	DefaultEnclosementWidth = 128
	DefaultLevel0           = 10
	DefaultLevel1           = 24
	MinLevel                = 8
	MaxLevel                = 31
	DefaultTimeout          = 10 * time.Minute
	DefaultLogFile          = "tsapredictor.log"
)

// AppConfig aggregates the application's configuration parameters,
// parsed from command-line flags. The six fields FUNC/C/A/ENCW/LEVEL/
// PERIODS are unchanged from spec.md §6; the rest are ambient driver
// ergonomics in the teacher's style.
type AppConfig struct {
	// Shape selects the polynomial family member (FUNC=).
	Shape polyfamily.Shape
	// Seed carries C (and, for shapes other than Z2C, A) already
	// snapped to the 2^25 lattice.
	Seed polyfamily.Seed
	// EnclosementWidth is ENCW=; negative values flip the grid's
	// initial fill to full-enclosure ("analyze") mode.
	EnclosementWidth int
	// Level0/Level1 are LEVEL=a,b, clamped to [MinLevel, MaxLevel].
	Level0, Level1 int
	// PeriodFilterSet, PeriodMin, PeriodMax implement PERIODS=a,b, an
	// optional inclusive cycle-length filter.
	PeriodFilterSet      bool
	PeriodMin, PeriodMax int

	// Ambient flags, absent from spec.md's CLI surface but ordinary
	// driver ergonomics in the teacher's idiom.
	Verbose     bool
	Details     bool
	JSONOutput  bool
	OutputFile  string
	Quiet       bool
	NoColor     bool
	Timeout     time.Duration
	LogFile     string
	MetricsPort int
}

// Validate checks the semantic consistency of the configuration.
// Configuration errors here are always non-fatal per spec.md §7: a bad
// value falls back to a documented default rather than aborting, except
// for values flag.Parse itself rejects (e.g. malformed flag syntax).
func (c *AppConfig) Validate() error {
	if c.Level0 < MinLevel {
		c.Level0 = MinLevel
	}
	if c.Level1 > MaxLevel {
		c.Level1 = MaxLevel
	}
	if c.Level1 < c.Level0 {
		return apperrors.NewConfigError("LEVEL upper bound %d is below lower bound %d", c.Level1, c.Level0)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be strictly positive")
	}
	return nil
}

// ParseConfig parses command-line arguments in the original engine's
// case-insensitive, order-independent KEY=value style, applies
// TSAPREDICTOR_-prefixed environment overrides for flags not set
// explicitly, and validates the result.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{
		Shape:            polyfamily.Z2C,
		Seed:             polyfamily.Seed{C0: -1, C1: -1},
		EnclosementWidth: DefaultEnclosementWidth,
		Level0:           DefaultLevel0,
		Level1:           DefaultLevel1,
		Timeout:          DefaultTimeout,
		LogFile:          DefaultLogFile,
	}

	var funcName, cSpec, aSpec, encwSpec, levelSpec, periodsSpec string
	fs.StringVar(&funcName, "FUNC", DefaultFunc, "Polynomial shape: Z2C, Z2AZC, Z3AZC, Z4AZC, Z5AZC, Z6AZC, Z5CZA.")
	fs.StringVar(&cSpec, "C", "-1,0", "Seed constant C as 're,im' (snapped to the 2^25 lattice).")
	fs.StringVar(&aSpec, "A", "0,0", "Linear coefficient A as 're,im' (ignored by Z2C).")
	fs.StringVar(&encwSpec, "ENCW", "", "Enclosement half-width in cells; negative selects full-enclosure mode.")
	fs.StringVar(&levelSpec, "LEVEL", "", "Refinement level range as 'a,b', clamped to [8,31].")
	fs.StringVar(&periodsSpec, "PERIODS", "", "Optional cycle-length filter as 'a,b'.")

	fs.BoolVar(&cfg.Verbose, "v", false, "Display full per-cycle detail.")
	fs.BoolVar(&cfg.Details, "details", false, "Accepted but produces no additional output.")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "Output results in JSON format.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the report to this file in addition to stdout.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for -output.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Suppress progress output.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR).")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Wall-clock budget for the run; checked before each cycle's cell mapping starts, not during it.")
	fs.StringVar(&cfg.LogFile, "logfile", DefaultLogFile, "Append-mode log file path.")
	fs.IntVar(&cfg.MetricsPort, "metrics-port", 0, "Expose Prometheus metrics on this port (0 disables).")

	setCustomUsage(fs, programName)

	if err := fs.Parse(normalizeArgs(args)); err != nil {
		return AppConfig{}, err
	}

	explicit := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	applyEnvOverrides(explicit, &funcName, &cSpec, &aSpec, &encwSpec, &levelSpec, &periodsSpec)

	if shape, ok := polyfamily.ParseShape(funcName); ok {
		cfg.Shape = shape
	} else {
		fmt.Fprintf(errorWriter, "unrecognized FUNC=%q, defaulting to %s\n", funcName, DefaultFunc)
		cfg.Shape = polyfamily.Z2C
	}

	if re, im, ok := parsePair(cSpec); ok {
		c := numeric.SnapComplexToLattice225(complex(re, im))
		cfg.Seed.C0, cfg.Seed.C1 = c, c
	}
	if re, im, ok := parsePair(aSpec); ok {
		cfg.Seed.A = numeric.SnapComplexToLattice225(complex(re, im))
	}

	if encwSpec != "" {
		if n, err := strconv.Atoi(encwSpec); err == nil {
			cfg.EnclosementWidth = n
		}
	}

	if levelSpec != "" {
		if a, b, ok := parseIntPair(levelSpec); ok {
			cfg.Level0, cfg.Level1 = a, b
		}
	}

	if periodsSpec != "" {
		if a, b, ok := parseIntPair(periodsSpec); ok {
			cfg.PeriodFilterSet = true
			cfg.PeriodMin, cfg.PeriodMax = a, b
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		if cfg.Level1 < cfg.Level0 {
			cfg.Level0, cfg.Level1 = DefaultLevel0, DefaultLevel1
		}
		if cfg.Timeout <= 0 {
			cfg.Timeout = DefaultTimeout
		}
		return cfg, nil // configuration errors fall back to defaults, never abort (spec.md §7)
	}
	return cfg, nil
}

// normalizeArgs uppercases the KEY portion of each KEY=value argument,
// matching the original's in-place upper(argv[i]) case-insensitive
// matching, without touching the ambient flag.FlagSet-style "-flag"
// arguments (which Go's flag package already treats literally).
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if strings.HasPrefix(a, "-") {
			out[i] = a
			continue
		}
		if eq := strings.IndexByte(a, '='); eq > 0 {
			out[i] = "-" + strings.ToUpper(a[:eq]) + a[eq:]
			continue
		}
		out[i] = a
	}
	return out
}

func parsePair(s string) (re, im numeric.Real, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	r, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	i, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return r, i, true
}

func parseIntPair(s string) (a, b int, ok bool) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	x, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return x, y, true
}

func applyEnvOverrides(explicit map[string]bool, funcName, cSpec, aSpec, encwSpec, levelSpec, periodsSpec *string) {
	for name, dst := range map[string]*string{
		"FUNC":    funcName,
		"C":       cSpec,
		"A":       aSpec,
		"ENCW":    encwSpec,
		"LEVEL":   levelSpec,
		"PERIODS": periodsSpec,
	} {
		if explicit[name] {
			continue
		}
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
}

func setCustomUsage(fs *flag.FlagSet, programName string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [FUNC=name] [C=re,im] [A=re,im] [ENCW=n] [LEVEL=a,b] [PERIODS=a,b] [flags]\n", programName)
		fs.PrintDefaults()
	}
}
