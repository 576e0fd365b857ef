package cellmap

import (
	"testing"

	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// TestPredictDetectsBasilicaInteriorAtLowLevel covers scenario S1 from
// spec.md §8: FUNC=Z2C C=-1,0 has its sole critical point 0 on the
// super-attracting basilica 2-cycle 0<->-1, and the spec commits to
// detection at refinement level <= 10.
func TestPredictDetectsBasilicaInteriorAtLowLevel(t *testing.T) {
	t.Parallel()
	seed := polyfamily.Seed{C0: -1, C1: -1}
	points := []numeric.Complex{0, -1}

	res, err := Predict(polyfamily.Z2C, seed, 2.0, points, 8, 10, 128, nil, nil)
	if err != nil {
		t.Fatalf("Predict returned an error: %v", err)
	}
	if !res.Found {
		t.Fatalf("Predict did not find an interior cell for the basilica cycle in [8,10]")
	}
	if res.Level > 10 {
		t.Errorf("Predict.Level = %d, want <= 10 per scenario S1", res.Level)
	}
}

// TestPredictDetectsFixedPointInteriorAtLowLevel covers scenario S2:
// FUNC=Z2C C=0,0 has a super-attracting fixed point at 0, detected at
// level <= 10.
func TestPredictDetectsFixedPointInteriorAtLowLevel(t *testing.T) {
	t.Parallel()
	seed := polyfamily.Seed{C0: 0, C1: 0}
	points := []numeric.Complex{0}

	res, err := Predict(polyfamily.Z2C, seed, 2.0, points, 8, 10, 128, nil, nil)
	if err != nil {
		t.Fatalf("Predict returned an error: %v", err)
	}
	if !res.Found {
		t.Fatalf("Predict did not find an interior cell for the fixed point in [8,10]")
	}
	if res.Level > 10 {
		t.Errorf("Predict.Level = %d, want <= 10 per scenario S2", res.Level)
	}
}

// TestPredictReportsBasinRectInsideLagrangeSquare covers spec.md §8
// property 4: the union enclosure's plane-coordinate rectangle must lie
// inside the Lagrange safety square regardless of which level detected
// the interior cell.
func TestPredictReportsBasinRectInsideLagrangeSquare(t *testing.T) {
	t.Parallel()
	const lagrange = 2.0
	seed := polyfamily.Seed{C0: -1, C1: -1}
	points := []numeric.Complex{0, -1}

	res, err := Predict(polyfamily.Z2C, seed, lagrange, points, 8, 10, 128, nil, nil)
	if err != nil {
		t.Fatalf("Predict returned an error: %v", err)
	}
	if !res.Found {
		t.Fatalf("expected the basilica cycle to be detected")
	}
	r := res.BasinRect
	if r.X0 < -lagrange || r.X1 > lagrange || r.Y0 < -lagrange || r.Y1 > lagrange {
		t.Errorf("BasinRect %+v escapes the Lagrange square [-%g,%g]^2", r, lagrange, lagrange)
	}
}

// TestPredictProgressCallbackFiresPerLevel verifies the ProgressFunc
// hook used by internal/cli's spinner/log-line progress reporting is
// invoked once per attempted refinement level.
func TestPredictProgressCallbackFiresPerLevel(t *testing.T) {
	t.Parallel()
	seed := polyfamily.Seed{C0: -1, C1: -1}
	points := []numeric.Complex{0, -1}

	var levelsSeen []int
	progress := func(level, passes, chunks int) {
		levelsSeen = append(levelsSeen, level)
		if passes <= 0 {
			t.Errorf("level %d reported %d passes, want > 0", level, passes)
		}
	}

	res, err := Predict(polyfamily.Z2C, seed, 2.0, points, 8, 10, 128, progress, nil)
	if err != nil {
		t.Fatalf("Predict returned an error: %v", err)
	}
	if len(levelsSeen) == 0 {
		t.Fatalf("progress callback never fired")
	}
	if res.Found && levelsSeen[len(levelsSeen)-1] != res.Level {
		t.Errorf("last reported level %d does not match detected level %d", levelsSeen[len(levelsSeen)-1], res.Level)
	}
}
