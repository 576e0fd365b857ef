package numeric

import "testing"

func TestSquaredNormAndCoincident(t *testing.T) {
	t.Parallel()
	if got := SquaredNorm(complex(3, 4)); got != 25 {
		t.Errorf("SquaredNorm(3+4i) = %v, want 25", got)
	}
	if !Coincident(complex(1, 1), complex(1, 1)) {
		t.Error("a point should be coincident with itself")
	}
	if Coincident(complex(0, 0), complex(1, 0)) {
		t.Error("distant points should not be coincident")
	}
}

func TestPlaneRectContains(t *testing.T) {
	t.Parallel()
	outer := PlaneRect{X0: -2, X1: 2, Y0: -2, Y1: 2}
	inner := PlaneRect{X0: -1, X1: 1, Y0: -1, Y1: 1}
	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
}

func TestPlaneRectOverlaps(t *testing.T) {
	t.Parallel()
	a := PlaneRect{X0: 0, X1: 2, Y0: 0, Y1: 2}
	b := PlaneRect{X0: 1, X1: 3, Y0: 1, Y1: 3}
	c := PlaneRect{X0: 10, X1: 12, Y0: 10, Y1: 12}
	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
}

func TestScreenRectUnion(t *testing.T) {
	t.Parallel()
	a := ScreenRect{X0: 0, X1: 5, Y0: 0, Y1: 5}
	b := ScreenRect{X0: -3, X1: 2, Y0: 4, Y1: 10}
	got := a.Union(b)
	want := ScreenRect{X0: -3, X1: 5, Y0: 0, Y1: 10}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestSnapToLattice225(t *testing.T) {
	t.Parallel()
	got := SnapToLattice225(0.1)
	if diff := got - 0.1; diff > 1e-7 || diff < -1e-7 {
		t.Errorf("SnapToLattice225(0.1) = %v, too far from 0.1", got)
	}
	// Exact multiples of 1/2^25 must round-trip unchanged.
	exact := 3.0 / DenomLattice225
	if got := SnapToLattice225(exact); got != exact {
		t.Errorf("SnapToLattice225(%v) = %v, want unchanged", exact, got)
	}
}

func TestSnapComplexToLattice225(t *testing.T) {
	t.Parallel()
	z := complex(0.3333333333, -0.25)
	snapped := SnapComplexToLattice225(z)
	if real(snapped) != SnapToLattice225(real(z)) || imag(snapped) != SnapToLattice225(imag(z)) {
		t.Errorf("SnapComplexToLattice225(%v) = %v, components don't match SnapToLattice225", z, snapped)
	}
}
