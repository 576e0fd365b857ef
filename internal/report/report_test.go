package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/tsapredictor/internal/cellmap"
	"github.com/agbru/tsapredictor/internal/numeric"
	"github.com/agbru/tsapredictor/internal/orbit"
	"github.com/agbru/tsapredictor/internal/orchestration"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

func sampleResults() []orchestration.CycleResult {
	return []orchestration.CycleResult{
		{
			Cycle:  orbit.Cycle{Number: 1, Points: []numeric.Complex{0}, Multiplier: 0.25},
			Result: cellmap.Result{Found: true, Level: 11, BasinRect: numeric.PlaneRect{X0: -1, X1: 1, Y0: -1, Y1: 1}},
		},
	}
}

func TestBuildPopulatesCommandLine(t *testing.T) {
	t.Parallel()
	seed := polyfamily.Seed{C0: -1, C1: -1}
	r := Build(polyfamily.Z2C, seed, "d", 2.0, []numeric.Complex{0}, sampleResults(), time.Second)

	if !strings.Contains(r.CommandLine, "juliatsacore_d") {
		t.Errorf("command line missing precision tag: %q", r.CommandLine)
	}
	if len(r.Cycles) != 1 || !r.Cycles[0].Found || r.Cycles[0].Level != 11 {
		t.Errorf("unexpected cycle entry: %+v", r.Cycles)
	}
}

func TestWriteTextAndJSONRoundTrip(t *testing.T) {
	t.Parallel()
	r := Build(polyfamily.Z2C, polyfamily.Seed{C0: -1, C1: -1}, "d", 2.0, []numeric.Complex{0}, sampleResults(), time.Second)

	var text bytes.Buffer
	if err := r.WriteText(&text); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if !strings.Contains(text.String(), "Cycle Summary") {
		t.Errorf("text report missing summary header:\n%s", text.String())
	}

	var jsonBuf bytes.Buffer
	if err := r.WriteJSON(&jsonBuf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(jsonBuf.String(), `"shape"`) {
		t.Errorf("json report missing shape field:\n%s", jsonBuf.String())
	}
}
