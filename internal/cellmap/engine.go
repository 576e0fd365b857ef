// Package cellmap implements the localized cell-mapping engine: for one
// attracting periodic cycle, it finds the smallest refinement level at
// which some cell can be proven to lie entirely in the filled set's
// interior (a surviving GRAY cell after the monotone GRAY->POTW fixpoint
// reaches no further change).
package cellmap

import (
	"github.com/agbru/tsapredictor/internal/arena"
	"github.com/agbru/tsapredictor/internal/logging"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// Result is the outcome of running Predict across a level range for one
// cycle.
type Result struct {
	// Found reports whether an interior cell was detected at any level
	// in [levelMin, levelMax].
	Found bool
	// Level is the smallest refinement level at which an interior cell
	// was detected. Meaningless if !Found.
	Level int
	// BasinRect is the union enclosure rectangle used at the detected
	// level (or at levelMax, if nothing was found), for the overlap
	// check across cycles.
	BasinRect numeric.PlaneRect
}

// ProgressFunc is invoked after every refinement level is attempted, so
// a caller can drive a spinner/log line without the engine depending on
// any particular UI. chunks reports arena.Arena.ChunkCount() at the
// moment the level completed, for the optional arena-usage gauge.
type ProgressFunc func(level int, passes int, chunks int)

// Predict runs the fixpoint cell-mapping algorithm for levelMin through
// levelMax (inclusive), stopping at the first level where a GRAY cell
// survives. It allocates one arena.Arena per level and frees it before
// moving to the next (or on return), mirroring the original's
// FreeAll-between-refinements discipline.
func Predict(
	shape polyfamily.Shape,
	seed polyfamily.Seed,
	lagrange numeric.Real,
	points []numeric.Complex,
	levelMin, levelMax, enclosementWidth int,
	progress ProgressFunc,
	log logging.Logger,
) (Result, error) {
	var last geometry
	for level := levelMin; level <= levelMax; level++ {
		g := buildGeometry(level, lagrange, points, enclosementWidth)
		last = g
		a := arena.New()

		grid, err := newGrid(a, g)
		if err != nil {
			return Result{}, err
		}
		grid.forceGray(pointEnclosures(g, points, enclosementWidth))

		passes := 0
		for {
			passes++
			changed := grid.pass(shape, seed, g)
			if !changed {
				break
			}
		}

		found := grid.anyGray()
		if progress != nil {
			progress(level, passes, a.ChunkCount())
		}
		if log != nil {
			log.Debug("refinement level complete",
				logging.Int("level", level),
				logging.Int("passes", passes),
				logging.String("found", boolTag(found)))
		}

		if found {
			a.FreeAll()
			return Result{Found: true, Level: level, BasinRect: psBasinRect(g)}, nil
		}
		a.FreeAll()
	}
	return Result{Found: false, BasinRect: psBasinRect(last)}, nil
}

func boolTag(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// psBasinRect reports the plane-coordinate rectangle of the union
// enclosure at the geometry's level, used for cross-cycle overlap
// detection. This is exactly `local` (the cell-exact ENCL, enlarged by
// one cell on the upper edges) — never the word-aligned mem0/mem1
// bounds, which only exist for memory addressing.
func psBasinRect(g geometry) numeric.PlaneRect {
	return g.local
}
