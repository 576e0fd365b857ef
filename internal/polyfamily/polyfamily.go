// Package polyfamily defines the closed family of complex polynomial
// shapes the engine predicts interior cells for, their outward-rounded
// interval bounding boxes, and the dense polynomial representation used
// by the critical-point finder.
package polyfamily

import (
	"fmt"
	"math"
	"strings"

	"github.com/agbru/tsapredictor/internal/numeric"
)

// Polynomial is a dense complex polynomial of degree <= numeric.MaxDegree,
// represented coefficient-major from the constant term up. IsZero tracks
// coefficients that are zero (never set, or set to a value whose squared
// magnitude is below numeric.CoeffZeroLimit), matching the original's
// coeffnull bitvector and letting differentiation skip them without a
// magnitude comparison.
type Polynomial struct {
	Degree int
	Coeff  [numeric.MaxDegree + 1]numeric.Complex
	IsZero [numeric.MaxDegree + 1]bool
}

// NewPolynomial returns an all-zero polynomial of the given degree.
func NewPolynomial(degree int) Polynomial {
	p := Polynomial{Degree: degree}
	for i := range p.IsZero {
		p.IsZero[i] = true
	}
	return p
}

// SetCoeff sets the coefficient of x^i and marks it zero exactly when its
// squared magnitude is below numeric.CoeffZeroLimit.
func (p *Polynomial) SetCoeff(i int, c numeric.Complex) {
	p.Coeff[i] = c
	p.IsZero[i] = numeric.SquaredNorm(c) < numeric.CoeffZeroLimit
}

// Eval evaluates the polynomial at x via Horner's method, starting from
// the leading coefficient and skipping none (Horner already handles
// zero coefficients correctly; IsZero is only an optimization hint for
// differentiation).
func (p *Polynomial) Eval(x numeric.Complex) numeric.Complex {
	var acc numeric.Complex
	for i := p.Degree; i >= 0; i-- {
		acc = acc*x + p.Coeff[i]
	}
	return acc
}

// Derivative returns the symbolic derivative of p, skipping coefficients
// flagged zero exactly as the original ableitenFA does.
func (p *Polynomial) Derivative() Polynomial {
	if p.Degree == 0 {
		return NewPolynomial(0)
	}
	d := NewPolynomial(p.Degree - 1)
	for i := 1; i <= p.Degree; i++ {
		if p.IsZero[i] {
			continue
		}
		d.SetCoeff(i-1, complex(float64(i), 0)*p.Coeff[i])
	}
	return d
}

// LagrangeBound computes the Cauchy/Lagrange bound R such that every
// root of p lies within the disk |z| <= R, then rounds it up to the
// next power of two as the original getLagrange does.
func (p *Polynomial) LagrangeBound() numeric.Real {
	var sum numeric.Real
	for i := 0; i <= p.Degree; i++ {
		sum += cabs(p.Coeff[i])
	}
	res := 1.0 + sum
	res /= cabs(p.Coeff[p.Degree])
	expo := 0
	for (1 << expo) < int(math.Ceil(res)) {
		expo++
	}
	return numeric.Real(int(1) << expo)
}

func cabs(z numeric.Complex) numeric.Real {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}

// Shape identifies one member of the polynomial family f(z) = z^k + A*z +
// C (Z2C omits the A*z term; Z5CZA is z^5 + C*z + A, with the roles of C
// and A swapped).
type Shape int

const (
	Z2C Shape = iota
	Z2AZC
	Z3AZC
	Z4AZC
	Z5AZC
	Z6AZC
	Z5CZA
)

var shapeNames = [...]string{
	Z2C:   "Z2C",
	Z2AZC: "Z2AZC",
	Z3AZC: "Z3AZC",
	Z4AZC: "Z4AZC",
	Z5AZC: "Z5AZC",
	Z6AZC: "Z6AZC",
	Z5CZA: "Z5CZA",
}

func (s Shape) String() string {
	if int(s) < 0 || int(s) >= len(shapeNames) {
		return "UNKNOWN"
	}
	return shapeNames[s]
}

// degree returns the leading exponent k of the shape's z^k term.
func (s Shape) degree() int {
	switch s {
	case Z2C, Z2AZC:
		return 2
	case Z3AZC:
		return 3
	case Z4AZC:
		return 4
	case Z5AZC, Z5CZA:
		return 5
	case Z6AZC:
		return 6
	default:
		return 2
	}
}

// ParseShape looks up a shape by name, case-insensitively (the name is
// upper-cased before the search), the Go equivalent of the original's
// getfuncidx linear search.
func ParseShape(name string) (Shape, bool) {
	upper := strings.ToUpper(name)
	for i, n := range shapeNames {
		if n == upper {
			return Shape(i), true
		}
	}
	return Z2C, false
}

// Seed carries the interval parameter C (endpoints C0, C1) and, for every
// shape but Z2C, the fixed parameter A, already snapped to the 2^25
// lattice.
type Seed struct {
	C0, C1 numeric.Complex // interval endpoints of the constant term
	A      numeric.Complex // fixed linear coefficient (ignored by Z2C)
}

// Polynomial builds the dense Polynomial this shape/seed pair
// represents, using the interval midpoint C = (C0+C1)/2 as the
// concrete constant term (the linear coefficient for Z5CZA) fed to the
// critical-point finder (the interval itself only matters for bbox
// evaluation during cell mapping).
func (s Shape) Polynomial(seed Seed) Polynomial {
	p := NewPolynomial(s.degree())
	p.SetCoeff(s.degree(), 1)
	c := (seed.C0 + seed.C1) / 2
	if s == Z5CZA {
		p.SetCoeff(1, c)
		p.SetCoeff(0, seed.A)
		return p
	}
	if s != Z2C {
		p.SetCoeff(1, seed.A)
	}
	p.SetCoeff(0, c)
	return p
}

// CommandLine reconstructs the downstream juliatsacore_<tag> command
// line exactly as the original's setfunc sprintf did.
func (s Shape) CommandLine(tag string, seed Seed) string {
	c := (seed.C0 + seed.C1) / 2
	switch s {
	case Z2C:
		return fmt.Sprintf("juliatsacore_%s func=z2c c=%.20g,%.20g cmd=period,-1",
			tag, real(c), imag(c))
	default:
		lower := strings.ToLower(s.String())
		return fmt.Sprintf("juliatsacore_%s func=%s c=%.20g,%.20g A=%.20g,%.20g cmd=period,-1",
			tag, lower, real(c), imag(c), real(seed.A), imag(seed.A))
	}
}

// Bbox computes the outward-rounded image f(A) of the interval box A
// under this shape, dispatching to the shape-specific monomial
// enumeration in bbox.go. This is the sole correctness-critical
// interval-arithmetic primitive the cell-mapping engine depends on.
func (s Shape) Bbox(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	switch s {
	case Z2C:
		return bboxZ2C(seed, a)
	case Z2AZC:
		return bboxZ2AZC(seed, a)
	case Z3AZC:
		return bboxZ3AZC(seed, a)
	case Z4AZC:
		return bboxZ4AZC(seed, a)
	case Z5AZC:
		return bboxZ5AZC(seed, a)
	case Z6AZC:
		return bboxZ6AZC(seed, a)
	case Z5CZA:
		return bboxZ5CZA(seed, a)
	default:
		return bboxZ2C(seed, a)
	}
}
