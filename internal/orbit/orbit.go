// Package orbit classifies the critical points found by internal/critical
// into attracting periodic cycles, discarding escaping, aperiodic,
// duplicate and repelling orbits.
package orbit

import (
	"math"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// RepellingThreshold is the multiplier magnitude above which a cycle is
// classified as repelling and discarded.
const RepellingThreshold = 1.00001

// MaxIterations bounds the forward-iteration orbit construction, shared
// with the Newton iteration cap by convention in the original engine.
const MaxIterations = 25000

// PeriodicPoint is a single point of a retained attracting cycle.
type PeriodicPoint struct {
	P numeric.Complex
}

// Cycle is one surviving attracting periodic cycle.
type Cycle struct {
	// Number is the 1-based discovery-order index among retained
	// cycles only. Unlike the original's cyclenumber counter — which
	// increments before the repelling check and so can skip a number
	// when a repelling cycle is discarded — this numbering is assigned
	// strictly to confirmed-retained cycles, per the contiguous-prefix
	// invariant this repository's spec commits to.
	Number int
	// Points are the distinct points of the cycle, in orbit order.
	Points []numeric.Complex
	// Multiplier is |prod f'(p)| over the cycle's points.
	Multiplier numeric.Real
	// BasinRect is the axis-aligned bounding rectangle of the cycle's
	// points. Cross-cycle overlap reporting does not read it; it uses
	// cellmap.Result.BasinRect.
	BasinRect numeric.PlaneRect
}

// Classify forward-iterates each critical point under f up to
// MaxIterations steps, escape-tests against the square |z|^2 >
// escapeRadius^2, searches backward for cycle closure, dedupes cycles
// sharing any point with an earlier retained cycle, computes the
// multiplier from f', and discards repelling cycles. Retained cycles
// are numbered in discovery order.
func Classify(f, fprime *polyfamily.Polynomial, criticalPoints []numeric.Complex, escapeRadius numeric.Real) []Cycle {
	var retained []Cycle
	escapeSq := escapeRadius * escapeRadius

	seen := func(p numeric.Complex) bool {
		for _, c := range retained {
			for _, q := range c.Points {
				if numeric.Coincident(p, q) {
					return true
				}
			}
		}
		return false
	}

	for _, cp := range criticalPoints {
		orbitPts := make([]numeric.Complex, 0, MaxIterations)
		z := cp
		escaped := false
		for i := 0; i < MaxIterations; i++ {
			orbitPts = append(orbitPts, z)
			z = f.Eval(z)
			if numeric.SquaredNorm(z) > escapeSq {
				escaped = true
				break
			}
		}
		if escaped {
			continue
		}

		last := orbitPts[len(orbitPts)-1]
		cycleStart := -1
		for i := len(orbitPts) - 2; i >= 0; i-- {
			if numeric.Coincident(orbitPts[i], last) {
				cycleStart = i
				break
			}
		}
		if cycleStart < 0 {
			continue
		}
		cyclePts := orbitPts[cycleStart+1:]
		if len(cyclePts) == 0 {
			continue
		}

		dup := false
		for _, p := range cyclePts {
			if seen(p) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}

		multiplier := numeric.Real(1)
		for _, p := range cyclePts {
			multiplier *= cabs(fprime.Eval(p))
		}
		if multiplier > RepellingThreshold {
			continue
		}

		retained = append(retained, Cycle{
			Number:     len(retained) + 1,
			Points:     append([]numeric.Complex(nil), cyclePts...),
			Multiplier: multiplier,
			BasinRect:  boundingRect(cyclePts),
		})
	}

	return retained
}

func cabs(z numeric.Complex) numeric.Real {
	re, im := real(z), imag(z)
	return numeric.Real(math.Sqrt(re*re + im*im))
}

func boundingRect(pts []numeric.Complex) numeric.PlaneRect {
	r := numeric.PlaneRect{
		X0: real(pts[0]), X1: real(pts[0]),
		Y0: imag(pts[0]), Y1: imag(pts[0]),
	}
	for _, p := range pts[1:] {
		re, im := real(p), imag(p)
		if re < r.X0 {
			r.X0 = re
		}
		if re > r.X1 {
			r.X1 = re
		}
		if im < r.Y0 {
			r.Y0 = im
		}
		if im > r.Y1 {
			r.Y1 = im
		}
	}
	return r
}
