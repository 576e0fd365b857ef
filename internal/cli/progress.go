package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/agbru/tsapredictor/internal/metrics"
	"github.com/agbru/tsapredictor/internal/orchestration"
	"github.com/briandowns/spinner"
)

// DisplayProgress drives a single spinner reflecting the refinement level
// currently being attempted for every concurrently running cycle. It runs
// in a dedicated goroutine for the lifetime of orchestration.RunCycles and
// exits once progressChan is closed. collectors may be nil, in which case
// no Prometheus gauges are updated.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCycles int, out io.Writer, collectors *metrics.Collectors) {
	defer wg.Done()
	if numCycles <= 0 {
		for range progressChan {
		}
		return
	}

	levels := make([]int, numCycles)
	passes := make([]int, numCycles)

	s := newSpinner(spinner.WithWriter(out))
	s.Start()
	stopped := false
	defer func() {
		if !stopped {
			s.Stop()
		}
	}()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	render := func() string {
		return fmt.Sprintf(" tracking %d cycle(s): %s", numCycles, formatCycleLevels(levels, passes))
	}

	for {
		select {
		case u, ok := <-progressChan:
			if !ok {
				if !stopped {
					s.Stop()
					stopped = true
				}
				fmt.Fprintf(out, "%s\n", render())
				return
			}
			if u.CycleIndex >= 0 && u.CycleIndex < numCycles {
				levels[u.CycleIndex] = u.Level
				passes[u.CycleIndex] = u.Pass
			}
			if collectors != nil {
				label := strconv.Itoa(u.CycleIndex + 1)
				collectors.RefinementLevel.WithLabelValues(label).Set(float64(u.Level))
				collectors.PassCount.WithLabelValues(label).Set(float64(u.Pass))
				collectors.ArenaChunks.WithLabelValues(label).Set(float64(u.Chunks))
			}
		case <-ticker.C:
			s.UpdateSuffix(render())
		}
	}
}

func formatCycleLevels(levels, passes []int) string {
	out := ""
	for i := range levels {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("#%d@L%d(p%d)", i+1, levels[i], passes[i])
	}
	return out
}
