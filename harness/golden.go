package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/eventual"
)

// AssertGolden compares a report's snapshot against a golden file. The
// golden file is stored in testdata/golden/{report.Scenario}.golden.
//
// To regenerate golden files, run:
//
//	go test ./... -update
//
// The snapshot excludes the run ID, so a scenario resolved under the
// same combinator always produces the same bytes. State and event types
// must marshal deterministically to JSON (struct fields do; map keys are
// sorted by encoding/json).
func AssertGolden[S, E any](t *testing.T, report *Report[S, E]) {
	t.Helper()

	data, err := json.MarshalIndent(report.Snapshot(), "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot for scenario %q: %v", report.Scenario, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, report.Scenario, data)
}

// RunWithGolden executes a scenario on a fresh total engine and compares
// the resulting snapshot against its golden file.
func RunWithGolden[S, E any](t *testing.T, scenario *Scenario[S, E], resolve eventual.Resolver[S, E]) *Report[S, E] {
	t.Helper()

	report, err := Run(scenario, resolve)
	if err != nil {
		t.Fatalf("run scenario %q: %v", scenario.Name, err)
	}

	AssertGolden(t, report)
	return report
}

// RunFallibleWithGolden is RunWithGolden for the fallible variant:
// halted resolutions snapshot their halting error and truncated trace.
func RunFallibleWithGolden[S, E any](t *testing.T, scenario *Scenario[S, E], resolve eventual.FallibleResolver[S, E]) *Report[S, E] {
	t.Helper()

	report, err := RunFallible(scenario, resolve)
	if err != nil {
		t.Fatalf("run scenario %q: %v", scenario.Name, err)
	}

	AssertGolden(t, report)
	return report
}
