// Package harness layers declarative scenario testing on top of the
// eventual resolution engine.
//
// A scenario names a system under test, the synthetic events to deliver,
// the ordering to deliver them in, and optionally the final state the
// system is expected to converge to. The harness builds a fresh engine
// per run, records a trace of every resolver application, and reports
// the outcome.
//
// # Scenario Format
//
// Scenarios can be built in code (Scenario values) or loaded from YAML
// files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	prologue:
//	  - { field: a, value: seeded }
//	events:
//	  - { field: a, value: a1 }
//	  - { field: b, value: b1 }
//	epilogue:
//	  - { field: c, value: done }
//	want:
//	  a: a1
//	  b: b1
//	  c: done
//
// Event payloads are opaque to the harness: they are kept as raw YAML
// nodes and decoded by a caller-supplied function, since the event type
// belongs to the system under test. The want clause, when present, is
// decoded into the state type and compared against the final state.
//
// # Deterministic Testing
//
// Every resolver application is stamped with a monotonic logical seq
// (testutil.SeqClock), never a wall-clock timestamp. The same scenario
// under the same combinator therefore produces an identical trace across
// runs, which is what makes golden-file comparison possible. Run IDs are
// the one intentionally non-deterministic field and are excluded from
// golden snapshots.
//
// # Usage
//
// Run a scenario in code:
//
//	report, err := harness.Run(scenario, resolve)
//	if err != nil {
//	    t.Fatal(err)
//	}
//	if !report.Pass {
//	    for _, msg := range report.Errors {
//	        t.Error(msg)
//	    }
//	}
//
// Or compare against a golden file:
//
//	harness.RunWithGolden(t, scenario, resolve)
package harness
