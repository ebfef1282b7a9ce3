package harness

import (
	"github.com/google/uuid"
)

// Report is the outcome of running a scenario through the harness.
type Report[S, E any] struct {
	// RunID uniquely identifies this run. It is the one intentionally
	// non-deterministic field and is excluded from golden snapshots.
	RunID string `json:"run_id"`

	// Scenario is the name of the scenario that produced this report.
	Scenario string `json:"scenario"`

	// Pass indicates overall success: the run completed and every
	// expectation matched.
	Pass bool `json:"pass"`

	// Final is the final state of the system under test. Zero when a
	// fallible resolution halted.
	Final S `json:"final_state"`

	// Trace contains every resolver application in resolution order.
	Trace []TraceEvent[E] `json:"trace"`

	// Errors contains expectation failures and halt messages. Empty if
	// Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewReport creates a new passing report for the named scenario with a
// fresh run ID.
func NewReport[S, E any](scenario string) *Report[S, E] {
	return &Report[S, E]{
		RunID:    uuid.NewString(),
		Scenario: scenario,
		Pass:     true,
	}
}

// AddError adds a failure message and marks the report as failed.
func (r *Report[S, E]) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Snapshot is the deterministic subset of a report compared against
// golden files.
type Snapshot[S, E any] struct {
	Scenario string          `json:"scenario"`
	Pass     bool            `json:"pass"`
	Final    S               `json:"final_state"`
	Trace    []TraceEvent[E] `json:"trace"`
	Errors   []string        `json:"errors,omitempty"`
}

// Snapshot returns the report without its run ID, for golden comparison.
func (r *Report[S, E]) Snapshot() Snapshot[S, E] {
	return Snapshot[S, E]{
		Scenario: r.Scenario,
		Pass:     r.Pass,
		Final:    r.Final,
		Trace:    r.Trace,
		Errors:   r.Errors,
	}
}
