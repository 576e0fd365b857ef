package polyfamily

import "github.com/agbru/tsapredictor/internal/numeric"

// The seven functions below are transcribed monomial-for-monomial from
// original_source/main.cpp's getBoundingBoxfA_z2c / _z2azc / _z3azc /
// _z4azc / _z5azc / _z6azc / _z5cza. Each outward-rounds the image of
// the interval box A under f(z) = z^k (+ A*z) + C by enumerating the
// min/max of every monomial product over the box's four corners; this
// is the one piece of the engine where fidelity to the original's exact
// arithmetic, not idiomatic rewriting, is the correctness requirement.

func minD(vals ...numeric.Real) numeric.Real {
	m := vals[0]
	for _, v := range vals[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxD(vals ...numeric.Real) numeric.Real {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// z^2 + C
func bboxZ2C(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	var fa numeric.PlaneRect
	fa.X0 = minD(a.X0*a.X0, a.X1*a.X1) - maxD(a.Y0*a.Y0, a.Y1*a.Y1) + c0re
	fa.X1 = maxD(a.X0*a.X0, a.X1*a.X1) - minD(a.Y0*a.Y0, a.Y1*a.Y1) + c1re
	fa.Y0 = 2*minD(a.X0*a.Y0, a.X0*a.Y1, a.X1*a.Y0, a.X1*a.Y1) + c0im
	fa.Y1 = 2*maxD(a.X0*a.Y0, a.X0*a.Y1, a.X1*a.Y0, a.X1*a.Y1) + c1im
	return fa
}

// z^2 + A*z + C
func bboxZ2AZC(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	fre, fim := real(seed.A), imag(seed.A)
	var fa numeric.PlaneRect
	fa.X0 = c0re + minD(fre*a.X0, fre*a.X1) + minD(a.X0*a.X0, a.X1*a.X1) - maxD(fim*a.Y0, fim*a.Y1) - maxD(a.Y0*a.Y0, a.Y1*a.Y1)
	fa.X1 = c1re + maxD(fre*a.X0, fre*a.X1) + maxD(a.X0*a.X0, a.X1*a.X1) - minD(fim*a.Y0, fim*a.Y1) - minD(a.Y0*a.Y0, a.Y1*a.Y1)
	fa.Y0 = c0im + minD(fim*a.X0, fim*a.X1) + minD(fre*a.Y0, fre*a.Y1) + 2*minD(a.X0*a.Y0, a.X0*a.Y1, a.X1*a.Y0, a.X1*a.Y1)
	fa.Y1 = c1im + maxD(fim*a.X0, fim*a.X1) + maxD(fre*a.Y0, fre*a.Y1) + 2*maxD(a.X0*a.Y0, a.X0*a.Y1, a.X1*a.Y0, a.X1*a.Y1)
	return fa
}

// z^3 + A*z + C
func bboxZ3AZC(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	fre, fim := real(seed.A), imag(seed.A)
	var fa numeric.PlaneRect
	fa.X0 = minD(fre*a.X0, fre*a.X1) - maxD(fim*a.Y0, fim*a.Y1) + a.X0*a.X0*a.X0 -
		3*maxD(a.X0*minD(a.Y0*a.Y0, a.Y1*a.Y1), a.X0*maxD(a.Y0*a.Y0, a.Y1*a.Y1), a.X1*minD(a.Y0*a.Y0, a.Y1*a.Y1), a.X1*maxD(a.Y0*a.Y0, a.Y1*a.Y1)) + c0re
	fa.X1 = maxD(fre*a.X0, fre*a.X1) - minD(fim*a.Y0, fim*a.Y1) + a.X1*a.X1*a.X1 -
		3*minD(a.X0*minD(a.Y0*a.Y0, a.Y1*a.Y1), a.X0*maxD(a.Y0*a.Y0, a.Y1*a.Y1), a.X1*minD(a.Y0*a.Y0, a.Y1*a.Y1), a.X1*maxD(a.Y0*a.Y0, a.Y1*a.Y1)) + c1re
	fa.Y0 = minD(fre*a.Y0, fre*a.Y1) + minD(fim*a.X0, fim*a.X1) +
		3*minD(minD(a.X0*a.X0, a.X1*a.X1)*a.Y0, minD(a.X0*a.X0, a.X1*a.X1)*a.Y1, maxD(a.X0*a.X0, a.X1*a.X1)*a.Y0, maxD(a.X0*a.X0, a.X1*a.X1)*a.Y1) - (a.Y1 * a.Y1 * a.Y1) + c0im
	fa.Y1 = maxD(fre*a.Y0, fre*a.Y1) + maxD(fim*a.X0, fim*a.X1) +
		3*maxD(minD(a.X0*a.X0, a.X1*a.X1)*a.Y0, minD(a.X0*a.X0, a.X1*a.X1)*a.Y1, maxD(a.X0*a.X0, a.X1*a.X1)*a.Y0, maxD(a.X0*a.X0, a.X1*a.X1)*a.Y1) - (a.Y0 * a.Y0 * a.Y0) + c1im
	return fa
}

// z^4 + A*z + C
func bboxZ4AZC(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	fre, fim := real(seed.A), imag(seed.A)
	x2min, x2max := minD(a.X0*a.X0, a.X1*a.X1), maxD(a.X0*a.X0, a.X1*a.X1)
	y2min, y2max := minD(a.Y0*a.Y0, a.Y1*a.Y1), maxD(a.Y0*a.Y0, a.Y1*a.Y1)
	var fa numeric.PlaneRect
	fa.X0 = minD(fre*a.X0, fre*a.X1) - maxD(fim*a.Y0, fim*a.Y1) +
		minD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1) -
		6*maxD(x2min*y2min, x2min*y2max, x2max*y2min, x2max*y2max) +
		minD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1) + c0re
	fa.X1 = maxD(fre*a.X0, fre*a.X1) - minD(fim*a.Y0, fim*a.Y1) +
		maxD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1) -
		6*minD(x2min*y2min, x2min*y2max, x2max*y2min, x2max*y2max) +
		maxD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1) + c1re
	fa.Y0 = minD(fre*a.Y0, fre*a.Y1) + minD(fim*a.X0, fim*a.X1) +
		4*minD((a.X0*a.X0*a.X0)*a.Y0, (a.X0*a.X0*a.X0)*a.Y1, (a.X1*a.X1*a.X1)*a.Y0, (a.X1*a.X1*a.X1)*a.Y1) -
		4*maxD(a.X0*(a.Y0*a.Y0*a.Y0), a.X0*(a.Y1*a.Y1*a.Y1), a.X1*(a.Y0*a.Y0*a.Y0), a.X1*(a.Y1*a.Y1*a.Y1)) + c0im
	fa.Y1 = maxD(fre*a.Y0, fre*a.Y1) + maxD(fim*a.X0, fim*a.X1) +
		4*maxD((a.X0*a.X0*a.X0)*a.Y0, (a.X0*a.X0*a.X0)*a.Y1, (a.X1*a.X1*a.X1)*a.Y0, (a.X1*a.X1*a.X1)*a.Y1) -
		4*minD(a.X0*(a.Y0*a.Y0*a.Y0), a.X0*(a.Y1*a.Y1*a.Y1), a.X1*(a.Y0*a.Y0*a.Y0), a.X1*(a.Y1*a.Y1*a.Y1)) + c1im
	return fa
}

// z^5 + A*z + C
func bboxZ5AZC(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	fre, fim := real(seed.A), imag(seed.A)
	y2min, y2max := minD(a.Y0*a.Y0, a.Y1*a.Y1), maxD(a.Y0*a.Y0, a.Y1*a.Y1)
	y4min, y4max := minD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1), maxD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1)
	x4min, x4max := minD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1), maxD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1)
	x2min, x2max := minD(a.X0*a.X0, a.X1*a.X1), maxD(a.X0*a.X0, a.X1*a.X1)
	var fa numeric.PlaneRect
	fa.X0 = minD(fre*a.X0, fre*a.X1) - maxD(fim*a.Y0, fim*a.Y1) + a.X0*a.X0*a.X0*a.X0*a.X0 -
		2*5*maxD((a.X0*a.X0*a.X0)*y2min, (a.X0*a.X0*a.X0)*y2max, (a.X1*a.X1*a.X1)*y2min, (a.X1*a.X1*a.X1)*y2max) +
		5*minD(a.X0*y4min, a.X0*y4max, a.X1*y4min, a.X1*y4max) + c0re
	fa.X1 = maxD(fre*a.X0, fre*a.X1) - minD(fim*a.Y0, fim*a.Y1) + a.X1*a.X1*a.X1*a.X1*a.X1 -
		2*5*minD((a.X0*a.X0*a.X0)*y2min, (a.X0*a.X0*a.X0)*y2max, (a.X1*a.X1*a.X1)*y2min, (a.X1*a.X1*a.X1)*y2max) +
		5*maxD(a.X0*y4min, a.X0*y4max, a.X1*y4min, a.X1*y4max) + c1re
	fa.Y0 = minD(fre*a.Y0, fre*a.Y1) + minD(fim*a.X0, fim*a.X1) +
		5*minD(x4min*a.Y0, x4min*a.Y1, x4max*a.Y0, x4max*a.Y1) -
		2*5*maxD(x2min*(a.Y0*a.Y0*a.Y0), x2min*(a.Y1*a.Y1*a.Y1), x2max*(a.Y0*a.Y0*a.Y0), x2max*(a.Y1*a.Y1*a.Y1)) +
		a.Y0*a.Y0*a.Y0*a.Y0*a.Y0 + c0im
	fa.Y1 = maxD(fre*a.Y0, fre*a.Y1) + maxD(fim*a.X0, fim*a.X1) +
		5*maxD(x4min*a.Y0, x4min*a.Y1, x4max*a.Y0, x4max*a.Y1) -
		2*5*minD(x2min*(a.Y0*a.Y0*a.Y0), x2min*(a.Y1*a.Y1*a.Y1), x2max*(a.Y0*a.Y0*a.Y0), x2max*(a.Y1*a.Y1*a.Y1)) +
		a.Y1*a.Y1*a.Y1*a.Y1*a.Y1 + c1im
	return fa
}

// z^5 + c*z + A — c is the interval parameter (seed.C0/C1), A is fixed
// (seed.A). Included as the seventh shape per the Open Question in
// spec.md §9: the original defines this formula but never wires it into
// its dispatch switch.
func bboxZ5CZA(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	are, aim := real(seed.A), imag(seed.A)
	y2min, y2max := minD(a.Y0*a.Y0, a.Y1*a.Y1), maxD(a.Y0*a.Y0, a.Y1*a.Y1)
	y4min, y4max := minD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1), maxD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1)
	x4min, x4max := minD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1), maxD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1)
	x2min, x2max := minD(a.X0*a.X0, a.X1*a.X1), maxD(a.X0*a.X0, a.X1*a.X1)
	var fa numeric.PlaneRect
	fa.X0 = minD(c0re*a.X0, c0re*a.X1, c1re*a.X0, c1re*a.X1) - maxD(c0im*a.Y0, c0im*a.Y1, c1im*a.Y0, c1im*a.Y1) + a.X0*a.X0*a.X0*a.X0*a.X0 -
		2*5*maxD((a.X0*a.X0*a.X0)*y2min, (a.X0*a.X0*a.X0)*y2max, (a.X1*a.X1*a.X1)*y2min, (a.X1*a.X1*a.X1)*y2max) +
		5*minD(a.X0*y4min, a.X0*y4max, a.X1*y4min, a.X1*y4max) + are
	fa.X1 = maxD(c0re*a.X0, c0re*a.X1, c1re*a.X0, c1re*a.X1) - minD(c0im*a.Y0, c0im*a.Y1, c1im*a.Y0, c1im*a.Y1) + a.X1*a.X1*a.X1*a.X1*a.X1 -
		2*5*minD((a.X0*a.X0*a.X0)*y2min, (a.X0*a.X0*a.X0)*y2max, (a.X1*a.X1*a.X1)*y2min, (a.X1*a.X1*a.X1)*y2max) +
		5*maxD(a.X0*y4min, a.X0*y4max, a.X1*y4min, a.X1*y4max) + are
	fa.Y0 = minD(c0re*a.Y0, c0re*a.Y1, c1re*a.Y0, c1re*a.Y1) + minD(c0im*a.X0, c0im*a.X1, c1im*a.X0, c1im*a.X1) +
		5*minD(x4min*a.Y0, x4min*a.Y1, x4max*a.Y0, x4max*a.Y1) -
		2*5*maxD(x2min*(a.Y0*a.Y0*a.Y0), x2min*(a.Y1*a.Y1*a.Y1), x2max*(a.Y0*a.Y0*a.Y0), x2max*(a.Y1*a.Y1*a.Y1)) +
		a.Y0*a.Y0*a.Y0*a.Y0*a.Y0 + aim
	fa.Y1 = maxD(c0re*a.Y0, c0re*a.Y1, c1re*a.Y0, c1re*a.Y1) + maxD(c0im*a.X0, c0im*a.X1, c1im*a.X0, c1im*a.X1) +
		5*maxD(x4min*a.Y0, x4min*a.Y1, x4max*a.Y0, x4max*a.Y1) -
		2*5*minD(x2min*(a.Y0*a.Y0*a.Y0), x2min*(a.Y1*a.Y1*a.Y1), x2max*(a.Y0*a.Y0*a.Y0), x2max*(a.Y1*a.Y1*a.Y1)) +
		a.Y1*a.Y1*a.Y1*a.Y1*a.Y1 + aim
	return fa
}

// z^6 + A*z + C
func bboxZ6AZC(seed Seed, a numeric.PlaneRect) numeric.PlaneRect {
	c0re, c1re := real(seed.C0), real(seed.C1)
	c0im, c1im := imag(seed.C0), imag(seed.C1)
	fre, fim := real(seed.A), imag(seed.A)
	x4min, x4max := minD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1), maxD(a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1)
	y2min, y2max := minD(a.Y0*a.Y0, a.Y1*a.Y1), maxD(a.Y0*a.Y0, a.Y1*a.Y1)
	x2min, x2max := minD(a.X0*a.X0, a.X1*a.X1), maxD(a.X0*a.X0, a.X1*a.X1)
	y4min, y4max := minD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1), maxD(a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1)
	var fa numeric.PlaneRect
	fa.X0 = c0re + minD(fre*a.X0, fre*a.X1) - maxD(fim*a.Y0, fim*a.Y1) +
		minD(a.X0*a.X0*a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1*a.X1*a.X1) -
		3*5*maxD(x4min*y2min, x4min*y2max, x4max*y2min, x4max*y2max) +
		3*5*minD(x2min*y4min, x2min*y4max, x2max*y4min, x2max*y4max) -
		maxD(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1*a.Y1*a.Y1)
	fa.X1 = c1re + maxD(fre*a.X0, fre*a.X1) - minD(fim*a.Y0, fim*a.Y1) +
		maxD(a.X0*a.X0*a.X0*a.X0*a.X0*a.X0, a.X1*a.X1*a.X1*a.X1*a.X1*a.X1) -
		3*5*minD(x4min*y2min, x4min*y2max, x4max*y2min, x4max*y2max) +
		3*5*maxD(x2min*y4min, x2min*y4max, x2max*y4min, x2max*y4max) -
		minD(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0*a.Y0, a.Y1*a.Y1*a.Y1*a.Y1*a.Y1*a.Y1)
	fa.Y0 = minD(fre*a.Y0, fre*a.Y1) + minD(fim*a.X0, fim*a.X1) +
		6*minD((a.X0*a.X0*a.X0*a.X0*a.X0)*a.Y0, (a.X0*a.X0*a.X0*a.X0*a.X0)*a.Y1, (a.X1*a.X1*a.X1*a.X1*a.X1)*a.Y0, (a.X1*a.X1*a.X1*a.X1*a.X1)*a.Y1) -
		4*5*maxD((a.X0*a.X0*a.X0)*(a.Y0*a.Y0*a.Y0), (a.X0*a.X0*a.X0)*(a.Y1*a.Y1*a.Y1), (a.X1*a.X1*a.X1)*(a.Y0*a.Y0*a.Y0), (a.X1*a.X1*a.X1)*(a.Y1*a.Y1*a.Y1)) +
		6*minD(a.X0*(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0), a.X0*(a.Y1*a.Y1*a.Y1*a.Y1*a.Y1), a.X1*(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0), a.X1*(a.Y1*a.Y1*a.Y1*a.Y1*a.Y1)) + c0im
	fa.Y1 = maxD(fre*a.Y0, fre*a.Y1) + maxD(fim*a.X0, fim*a.X1) +
		6*maxD((a.X0*a.X0*a.X0*a.X0*a.X0)*a.Y0, (a.X0*a.X0*a.X0*a.X0*a.X0)*a.Y1, (a.X1*a.X1*a.X1*a.X1*a.X1)*a.Y0, (a.X1*a.X1*a.X1*a.X1*a.X1)*a.Y1) -
		4*5*minD((a.X0*a.X0*a.X0)*(a.Y0*a.Y0*a.Y0), (a.X0*a.X0*a.X0)*(a.Y1*a.Y1*a.Y1), (a.X1*a.X1*a.X1)*(a.Y0*a.Y0*a.Y0), (a.X1*a.X1*a.X1)*(a.Y1*a.Y1*a.Y1)) +
		6*maxD(a.X0*(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0), a.X0*(a.Y1*a.Y1*a.Y1*a.Y1*a.Y1), a.X1*(a.Y0*a.Y0*a.Y0*a.Y0*a.Y0), a.X1*(a.Y1*a.Y1*a.Y1*a.Y1*a.Y1)) + c1im
	return fa
}
