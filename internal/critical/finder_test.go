package critical

import (
	"testing"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

func TestFindLocatesKnownCriticalPoint(t *testing.T) {
	t.Parallel()
	// f(z) = z^2 - 1, f'(z) = 2z, whose sole root is 0.
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	f.SetCoeff(0, -1)
	fprime := f.Derivative()
	fsecond := fprime.Derivative()

	roots := NewFinder(nil).Find(&f, &fprime, &fsecond, f.LagrangeBound())
	if len(roots) != 1 {
		t.Fatalf("Find returned %d roots, want 1", len(roots))
	}
	if !numeric.Coincident(roots[0], 0) {
		t.Errorf("Find found root %v, want 0", roots[0])
	}
}

func TestFindStopsEarlyAtTargetDegree(t *testing.T) {
	t.Parallel()
	// f(z) = z^3 - z, f'(z) = 3z^2 - 1, whose two roots are +-sqrt(1/3).
	f := polyfamily.NewPolynomial(3)
	f.SetCoeff(3, 1)
	f.SetCoeff(1, -1)
	fprime := f.Derivative()
	fsecond := fprime.Derivative()

	roots := NewFinder(nil).Find(&f, &fprime, &fsecond, f.LagrangeBound())
	if len(roots) != 2 {
		t.Fatalf("Find returned %d roots, want 2 (degree of f')", len(roots))
	}
}

func TestFindReturnsNilForConstantDerivative(t *testing.T) {
	t.Parallel()
	// f(z) = z, f'(z) = 1 has degree 0: no critical points exist.
	f := polyfamily.NewPolynomial(1)
	f.SetCoeff(1, 1)
	fprime := f.Derivative()
	fsecond := fprime.Derivative()

	roots := NewFinder(nil).Find(&f, &fprime, &fsecond, f.LagrangeBound())
	if len(roots) != 0 {
		t.Errorf("Find returned %d roots, want 0 for a degree-0 derivative", len(roots))
	}
}
