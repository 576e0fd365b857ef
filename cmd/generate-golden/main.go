// Command generate-golden runs the tsapredictor pipeline over the
// canonical scenarios and writes their detected refinement levels (or
// failure modes) to a golden JSON file for regression comparison. No
// test in this repository reads the file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/tsapredictor/internal/critical"
	"github.com/agbru/tsapredictor/internal/orbit"
	"github.com/agbru/tsapredictor/internal/orchestration"
	"github.com/agbru/tsapredictor/internal/polyfamily"
)

// scenario is one named canonical configuration from the cell-mapping
// test plan.
type scenario struct {
	Name        string
	Shape       polyfamily.Shape
	Seed        polyfamily.Seed
	PeriodMin   int
	PeriodMax   int
	HasPeriod   bool
	LevelMin    int
	LevelMax    int
	Enclosement int
}

// GoldenResult is one scenario's recorded outcome.
type GoldenResult struct {
	Scenario       string `json:"scenario"`
	Shape          string `json:"shape"`
	CriticalPoints int    `json:"critical_points"`
	CyclesRetained int    `json:"cycles_retained"`
	// CycleLevels maps each retained cycle's 1-based Number to the
	// refinement level it was first detected at, or -1 if not found in
	// [LevelMin, LevelMax].
	CycleLevels map[int]int `json:"cycle_levels"`
}

func scenarios() []scenario {
	return []scenario{
		{
			Name: "S1_basilica", Shape: polyfamily.Z2C,
			Seed: polyfamily.Seed{C0: complex(-1, 0), C1: complex(-1, 0)},
			LevelMin: 8, LevelMax: 10, Enclosement: 128,
		},
		{
			Name: "S2_fixed_point", Shape: polyfamily.Z2C,
			Seed: polyfamily.Seed{C0: 0, C1: 0},
			LevelMin: 8, LevelMax: 10, Enclosement: 128,
		},
		{
			Name: "S3_parabolic", Shape: polyfamily.Z2C,
			Seed: polyfamily.Seed{C0: complex(0.25, 0), C1: complex(0.25, 0)},
			LevelMin: 8, LevelMax: 10, Enclosement: 128,
		},
		{
			Name: "S4_escaping", Shape: polyfamily.Z2C,
			Seed: polyfamily.Seed{C0: complex(1, 0), C1: complex(1, 0)},
			LevelMin: 8, LevelMax: 10, Enclosement: 128,
		},
		{
			Name: "S5_cubic_two_basins", Shape: polyfamily.Z3AZC,
			Seed: polyfamily.Seed{C0: 0, C1: 0, A: complex(-1, 0)},
			LevelMin: 8, LevelMax: 10, Enclosement: 128,
		},
		{
			Name: "S6_period_filter", Shape: polyfamily.Z2C,
			Seed:      polyfamily.Seed{C0: complex(-0.75, 0), C1: complex(-0.75, 0)},
			HasPeriod: true, PeriodMin: 3, PeriodMax: 3,
			LevelMin: 8, LevelMax: 12, Enclosement: 128,
		},
	}
}

func main() {
	outputDir := flag.String("out", "internal/cellmap/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	filename := filepath.Join(*outputDir, "scenarios_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	var data []GoldenResult
	for _, sc := range scenarios() {
		fmt.Printf("Running scenario %s...\n", sc.Name)
		data = append(data, runScenario(sc))
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

func runScenario(sc scenario) GoldenResult {
	f := sc.Shape.Polynomial(sc.Seed)
	fprime := f.Derivative()
	fsecond := fprime.Derivative()
	lagrange := f.LagrangeBound()

	criticalPoints := critical.NewFinder(nil).Find(&f, &fprime, &fsecond, lagrange)
	result := GoldenResult{
		Scenario:       sc.Name,
		Shape:          sc.Shape.String(),
		CriticalPoints: len(criticalPoints),
		CycleLevels:    map[int]int{},
	}
	if len(criticalPoints) == 0 {
		return result
	}

	cycles := orbit.Classify(&f, &fprime, criticalPoints, lagrange)
	if sc.HasPeriod {
		filtered := make([]orbit.Cycle, 0, len(cycles))
		for _, c := range cycles {
			if p := len(c.Points); p >= sc.PeriodMin && p <= sc.PeriodMax {
				filtered = append(filtered, c)
			}
		}
		cycles = filtered
	}
	result.CyclesRetained = len(cycles)
	if len(cycles) == 0 {
		return result
	}

	results, _ := orchestration.RunCycles(context.Background(), sc.Shape, sc.Seed, lagrange, cycles,
		sc.LevelMin, sc.LevelMax, sc.Enclosement, nil, nil)
	for _, r := range results {
		if r.Result.Found {
			result.CycleLevels[r.Cycle.Number] = r.Result.Level
		} else {
			result.CycleLevels[r.Cycle.Number] = -1
		}
	}
	return result
}
