package orbit

import (
	"testing"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// TestClassifyBasilica covers scenario S1: f(z) = z^2 - 1, whose sole
// critical point 0 lands on the super-attracting 2-cycle 0 <-> -1.
func TestClassifyBasilica(t *testing.T) {
	t.Parallel()
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	f.SetCoeff(0, -1)
	fprime := f.Derivative()

	cycles := Classify(&f, &fprime, []numeric.Complex{0}, 2.0)
	if len(cycles) != 1 {
		t.Fatalf("Classify returned %d cycles, want 1", len(cycles))
	}
	c := cycles[0]
	if len(c.Points) != 2 {
		t.Errorf("basin cycle has %d points, want 2", len(c.Points))
	}
	if c.Multiplier > 1e-9 {
		t.Errorf("basilica cycle multiplier = %v, want ~0 (super-attracting)", c.Multiplier)
	}
	if c.Number != 1 {
		t.Errorf("sole retained cycle should be numbered 1, got %d", c.Number)
	}
}

// TestClassifyFixedPoint covers scenario S2: f(z) = z^2, whose critical
// point 0 is itself the (super-attracting) fixed point.
func TestClassifyFixedPoint(t *testing.T) {
	t.Parallel()
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	fprime := f.Derivative()

	cycles := Classify(&f, &fprime, []numeric.Complex{0}, 2.0)
	if len(cycles) != 1 {
		t.Fatalf("Classify returned %d cycles, want 1", len(cycles))
	}
	if len(cycles[0].Points) != 1 {
		t.Errorf("fixed-point cycle has %d points, want 1", len(cycles[0].Points))
	}
}

// TestClassifyEscapingOrbit covers scenario S4: f(z) = z^2 + 1, whose
// critical point 0 escapes (0 -> 1 -> 2 -> 5 -> ...), leaving no
// attracting cycle at all.
func TestClassifyEscapingOrbit(t *testing.T) {
	t.Parallel()
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	f.SetCoeff(0, 1)
	fprime := f.Derivative()

	cycles := Classify(&f, &fprime, []numeric.Complex{0}, 2.0)
	if len(cycles) != 0 {
		t.Errorf("Classify returned %d cycles for an escaping orbit, want 0", len(cycles))
	}
}

// TestClassifyDropsEscapingPointKeepingTheOther covers scenario S5's
// shape (two candidate critical points feeding the same cubic): f(z) =
// z^3 - 3z + 3 has a super-attracting fixed point at z=1 (f(1)=1,
// f'(1)=0) while z=-1 escapes immediately (f(-1)=5), so only the first
// is retained.
func TestClassifyDropsEscapingPointKeepingTheOther(t *testing.T) {
	t.Parallel()
	f := polyfamily.NewPolynomial(3)
	f.SetCoeff(3, 1)
	f.SetCoeff(1, -3)
	f.SetCoeff(0, 3)
	fprime := f.Derivative()

	cycles := Classify(&f, &fprime, []numeric.Complex{1, -1}, 2.0)
	if len(cycles) != 1 {
		t.Fatalf("Classify returned %d cycles, want 1 (the escaping point must be dropped)", len(cycles))
	}
	if len(cycles[0].Points) != 1 || !numeric.Coincident(cycles[0].Points[0], 1) {
		t.Errorf("retained cycle = %+v, want the fixed point at 1", cycles[0])
	}
	if cycles[0].Multiplier > 1e-9 {
		t.Errorf("retained cycle multiplier = %v, want ~0 (super-attracting)", cycles[0].Multiplier)
	}
}

// TestClassifyDedupesSharedCycle verifies that two critical points
// converging to the same cycle are retained only once.
func TestClassifyDedupesSharedCycle(t *testing.T) {
	t.Parallel()
	f := polyfamily.NewPolynomial(2)
	f.SetCoeff(2, 1)
	fprime := f.Derivative()

	// Both 0 and a point already on the orbit of 0 under z^2 converge to
	// the same fixed point at the origin.
	cycles := Classify(&f, &fprime, []numeric.Complex{0, 0}, 2.0)
	if len(cycles) != 1 {
		t.Fatalf("Classify returned %d cycles for a duplicated critical point, want 1", len(cycles))
	}
}
