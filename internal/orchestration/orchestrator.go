// Package orchestration fans the cell-mapping prediction out across every
// retained attracting cycle concurrently, and renders the comparative
// summary once all cycles have finished.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/tsapredictor/internal/cellmap"
	"github.com/agbru/tsapredictor/internal/logging"
	"github.com/agbru/tsapredictor/internal/metrics"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/orbit"
	"github.com/agbru/tsapredictor/internal/polyfamily"
	"github.com/agbru/tsapredictor/internal/ui"
)

// ProgressUpdate reports the refinement level and pass count currently
// being attempted for one cycle, identified by its position in the slice
// passed to RunCycles.
type ProgressUpdate struct {
	CycleIndex int
	Level      int
	Pass       int
	Chunks     int
}

// ProgressBufferMultiplier sizes the progress channel so a burst of
// level-complete notifications from every concurrent cycle never blocks a
// cellmap.Predict goroutine on a slow UI consumer.
const ProgressBufferMultiplier = 5

// CycleResult pairs one classified cycle with its cell-mapping outcome.
type CycleResult struct {
	CycleIndex int
	Cycle      orbit.Cycle
	Result     cellmap.Result
	Err        error
}

// RunCycles runs cellmap.Predict concurrently for every cycle, one
// goroutine per cycle under a single errgroup, and streams level-complete
// notifications to progressChan (which the caller must drain, typically
// via cli.DisplayProgress, until this function returns and the channel is
// closed by the caller). A per-cycle error does not cancel the sibling
// goroutines; it is recorded on that cycle's CycleResult.
func RunCycles(
	ctx context.Context,
	shape polyfamily.Shape,
	seed polyfamily.Seed,
	lagrange numeric.Real,
	cycles []orbit.Cycle,
	levelMin, levelMax, enclosementWidth int,
	progressChan chan<- ProgressUpdate,
	log logging.Logger,
) ([]CycleResult, error) {
	g, gctx := errgroup.WithContext(ctx)
	results := make([]CycleResult, len(cycles))

	for i, cyc := range cycles {
		idx, cycle := i, cyc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[idx] = CycleResult{CycleIndex: idx, Cycle: cycle, Err: err}
				return nil
			}
			_, span := metrics.StartCycleSpan(gctx, cycle.Number, len(cycle.Points))
			defer span.End()

			progress := func(level, pass, chunks int) {
				if progressChan != nil {
					progressChan <- ProgressUpdate{CycleIndex: idx, Level: level, Pass: pass, Chunks: chunks}
				}
			}
			res, err := cellmap.Predict(shape, seed, lagrange, cycle.Points, levelMin, levelMax, enclosementWidth, progress, log)
			results[idx] = CycleResult{CycleIndex: idx, Cycle: cycle, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// AnalyzeResults renders the per-cycle comparison table (period, detected
// level, status) and reports whether any two cycles' basin
// rectangles overlap, a condition spec.md leaves as an informational
// warning rather than a failure.
func AnalyzeResults(results []CycleResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Cycle Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "%sCycle%s\t%sPeriod%s\t%sLevel%s\t%sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

	for _, r := range results {
		status := fmt.Sprintf("%s✗ not found in range%s", ui.ColorYellow(), ui.ColorReset())
		levelStr := "-"
		if r.Err != nil {
			status = fmt.Sprintf("%s✗ error: %v%s", ui.ColorRed(), r.Err, ui.ColorReset())
		} else if r.Result.Found {
			status = fmt.Sprintf("%s✓ interior cell detected%s", ui.ColorGreen(), ui.ColorReset())
			levelStr = fmt.Sprintf("%d", r.Result.Level)
		}
		fmt.Fprintf(tw, "#%d\t%d\t%s\t%s\n", r.Cycle.Number, len(r.Cycle.Points), levelStr, status)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
	}

	for i := 0; i < len(results); i++ {
		for j := i + 1; j < len(results); j++ {
			if !results[i].Result.Found || !results[j].Result.Found {
				continue
			}
			if results[i].Result.BasinRect.Overlaps(results[j].Result.BasinRect) {
				fmt.Fprintf(out, "\n%sWarning: basin rectangles of cycle #%d and #%d overlap.%s\n",
					ui.ColorYellow(), results[i].Cycle.Number, results[j].Cycle.Number, ui.ColorReset())
			}
		}
	}
}
