// Package critical locates the critical points of a polynomial shape's
// derivative via border-sampled Newton iteration, the feed for the
// periodic-orbit classifier.
package critical

import (
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// MaxNewtonIterations is the hard cap on Newton steps per seed point
// before the point is abandoned as non-convergent.
const MaxNewtonIterations = 25000

// BorderSamples is the number of points swept along each of the four
// borders of the search square.
const BorderSamples = 1024

// newton iterates z_{n+1} = z_n - f(z_n)/f'(z_n) from start, returning
// the converged root and true on success. Convergence is declared once
// the squared step size drops below numeric.ZeroEpsilon; failure to
// converge within MaxNewtonIterations is reported as (_, false) and left
// for the caller to silently skip, matching the original's non-fatal
// treatment of Newton divergence.
func newton(f, fprime *polyfamily.Polynomial, start numeric.Complex) (numeric.Complex, bool) {
	z := start
	for i := 0; i < MaxNewtonIterations; i++ {
		fp := fprime.Eval(z)
		if fp == 0 {
			return 0, false
		}
		step := f.Eval(z) / fp
		z -= step
		if numeric.SquaredNorm(step) < numeric.ZeroEpsilon {
			return z, true
		}
	}
	return 0, false
}
