package critical

import (
	"testing"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

func TestNewtonConvergesFromNearbySeed(t *testing.T) {
	t.Parallel()
	// f(z) = z^2 - 4, root at z = 2.
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	f.SetCoeff(0, -4)
	fprime := f.Derivative()

	z, ok := newton(&f, &fprime, complex(3, 0))
	if !ok {
		t.Fatal("newton did not converge from a seed close to the root")
	}
	if !numeric.Coincident(z, 2) {
		t.Errorf("newton converged to %v, want 2", z)
	}
}

func TestNewtonFailsOnZeroDerivative(t *testing.T) {
	t.Parallel()
	// f(z) = z^2, f'(z) = 2z vanishes exactly at the seed itself.
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	fprime := f.Derivative()

	if _, ok := newton(&f, &fprime, 0); ok {
		t.Error("newton should not report convergence when f' vanishes at the seed")
	}
}
