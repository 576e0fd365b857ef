package critical

import (
	"github.com/agbru/tsapredictor/internal/logging"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// Finder locates the critical points of a polynomial shape: the roots
// of f'. It samples Newton seeds along the border of a square of
// half-side 3*R (R the Lagrange bound of f), sweeping left, top, right,
// then bottom, stopping early once degree(f') distinct roots have been
// found.
type Finder struct {
	log logging.Logger
}

// NewFinder returns a Finder that logs Newton non-convergence at debug
// level only (see SPEC_FULL.md §9 — Newton divergence is never surfaced
// as a warning, only inspectable in structured logs).
func NewFinder(log logging.Logger) *Finder {
	return &Finder{log: log}
}

// Find returns the distinct roots of fprime, up to numeric.MaxZeros,
// found by sweeping Newton seeds around a square of half-side 3*lagrange
// centered at the origin.
func (fd *Finder) Find(f, fprime, fsecond *polyfamily.Polynomial, lagrange numeric.Real) []numeric.Complex {
	target := fprime.Degree
	if target <= 0 {
		return nil
	}

	half := 3 * lagrange
	roots := make([]numeric.Complex, 0, target)

	tryPoint := func(p numeric.Complex) {
		if len(roots) >= target {
			return
		}
		z, ok := newton(fprime, fsecond, p)
		if !ok {
			if fd.log != nil {
				fd.log.Debug("newton did not converge", logging.String("seed", complexString(p)))
			}
			return
		}
		for _, r := range roots {
			if numeric.Coincident(r, z) {
				return
			}
		}
		if len(roots) >= numeric.MaxZeros {
			return
		}
		roots = append(roots, z)
	}

	step := (2 * half) / BorderSamples

	// left column, bottom to top
	for i := 0; i < BorderSamples && len(roots) < target; i++ {
		tryPoint(complex(-half, -half+numeric.Real(i)*step))
	}
	// top row, left to right
	for i := 0; i < BorderSamples && len(roots) < target; i++ {
		tryPoint(complex(-half+numeric.Real(i)*step, half))
	}
	// right column, top to bottom
	for i := 0; i < BorderSamples && len(roots) < target; i++ {
		tryPoint(complex(half, half-numeric.Real(i)*step))
	}
	// bottom row, right to left
	for i := 0; i < BorderSamples && len(roots) < target; i++ {
		tryPoint(complex(half-numeric.Real(i)*step, -half))
	}

	return roots
}

func complexString(z numeric.Complex) string {
	return formatComplex(real(z), imag(z))
}
