// Package report assembles and renders the final tsapredictor output: the
// reconstructed command line, critical points, per-cycle refinement
// results, and any basin-overlap warnings, either as human-readable text
// or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/orchestration"
	"github.com/agbru/tsapredictor/internal/polyfamily"
	"github.com/agbru/tsapredictor/internal/ui"
)

// CycleEntry is one cycle's contribution to the report.
type CycleEntry struct {
	Number     int     `json:"number"`
	Period     int     `json:"period"`
	Multiplier float64 `json:"multiplier"`
	Found      bool    `json:"found"`
	Level      int     `json:"level,omitempty"`
}

// Report is the full content of one tsapredictor run, independent of how
// it is ultimately rendered.
type Report struct {
	CommandLine    string       `json:"command_line"`
	Shape          string       `json:"shape"`
	PrecisionTag   string       `json:"precision_tag"`
	LagrangeBound  float64      `json:"lagrange_bound"`
	CriticalPoints []string     `json:"critical_points"`
	Cycles         []CycleEntry `json:"cycles"`
	Overlaps       [][2]int     `json:"overlaps,omitempty"`
	Duration       string       `json:"duration"`
}

// Build assembles a Report from the engine's intermediate results.
func Build(
	shape polyfamily.Shape,
	seed polyfamily.Seed,
	precisionTag string,
	lagrange numeric.Real,
	criticalPoints []numeric.Complex,
	results []orchestration.CycleResult,
	duration time.Duration,
) Report {
	r := Report{
		CommandLine:    shape.CommandLine(precisionTag, seed),
		Shape:          shape.String(),
		PrecisionTag:   precisionTag,
		LagrangeBound:  lagrange,
		CriticalPoints: make([]string, len(criticalPoints)),
		Cycles:         make([]CycleEntry, len(results)),
		Duration:       duration.String(),
	}
	for i, z := range criticalPoints {
		r.CriticalPoints[i] = formatComplex(z)
	}
	for i, res := range results {
		entry := CycleEntry{
			Number:     res.Cycle.Number,
			Period:     len(res.Cycle.Points),
			Multiplier: res.Cycle.Multiplier,
			Found:      res.Result.Found,
		}
		if res.Result.Found {
			entry.Level = res.Result.Level
		}
		r.Cycles[i] = entry
	}
	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if results[i].Result.Found && results[j].Result.Found &&
				results[i].Result.BasinRect.Overlaps(results[j].Result.BasinRect) {
				r.Overlaps = append(r.Overlaps, [2]int{results[i].Cycle.Number, results[j].Cycle.Number})
			}
		}
	}
	return r
}

// WriteText renders the report as a colorized, tabwriter-aligned summary.
func (r Report) WriteText(out io.Writer) error {
	fmt.Fprintf(out, "%sCommand line:%s %s\n", ui.ColorBold(), ui.ColorReset(), r.CommandLine)
	fmt.Fprintf(out, "%sLagrange bound:%s %s%g%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), r.LagrangeBound, ui.ColorReset())
	fmt.Fprintf(out, "%sCritical points (%d):%s\n", ui.ColorBold(), len(r.CriticalPoints), ui.ColorReset())
	for _, z := range r.CriticalPoints {
		fmt.Fprintf(out, "  %s%s%s\n", ui.ColorCyan(), z, ui.ColorReset())
	}

	fmt.Fprintf(out, "\n--- Cycle Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sCycle%s\t%sPeriod%s\t%sMultiplier%s\t%sLevel%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	for _, c := range r.Cycles {
		levelStr := "not found"
		if c.Found {
			levelStr = strconv.Itoa(c.Level)
		}
		fmt.Fprintf(tw, "#%d\t%d\t%.6f\t%s\n", c.Number, c.Period, c.Multiplier, levelStr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for _, ov := range r.Overlaps {
		fmt.Fprintf(out, "\n%sWarning: basin rectangles of cycle #%d and #%d overlap.%s\n",
			ui.ColorYellow(), ov[0], ov[1], ui.ColorReset())
	}
	fmt.Fprintf(out, "\nElapsed: %s%s%s\n", ui.ColorGreen(), r.Duration, ui.ColorReset())
	return nil
}

// WriteJSON renders the report as indented JSON.
func (r Report) WriteJSON(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func formatComplex(z numeric.Complex) string {
	re, im := real(z), imag(z)
	sign := "+"
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%s %s %si", strconv.FormatFloat(re, 'g', -1, 64), sign, strconv.FormatFloat(im, 'g', -1, 64))
}
