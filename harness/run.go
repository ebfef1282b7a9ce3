package harness

import (
	"fmt"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/eventual"
)

// Queue loads a scenario's phases into an engine: prologue, main events,
// epilogue. Written once against the Engine capability set, it serves
// both the total and the fallible variant.
func Queue[S, E, R any](eng eventual.Engine[S, E, R], scenario *Scenario[S, E]) eventual.Engine[S, E, R] {
	for _, event := range scenario.Prologue {
		eng = eng.QueuePrologue(event)
	}
	eng = eng.QueueEvents(scenario.Events...)
	for _, event := range scenario.Epilogue {
		eng = eng.QueueEpilogue(event)
	}
	return eng
}

// Run executes a scenario on a fresh total engine and returns a report
// with the final state and the application trace.
//
// Each run constructs its own engine: engines are single-use, so the
// same scenario can be run under many orderings by calling Run once per
// candidate combinator.
func Run[S, E any](scenario *Scenario[S, E], resolve eventual.Resolver[S, E]) (*Report[S, E], error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	recorder := NewRecorder[S, E]()
	eng := eventual.New(recorder.Wrap(resolve))

	final := Queue(eng, scenario).ResolveWith(scenario.initFunc(), scenario.combinator())

	report := NewReport[S, E](scenario.Name)
	report.Final = final
	report.Trace = recorder.Trace()
	checkWant(report, scenario.Want)

	return report, nil
}

// RunFallible executes a scenario on a fresh fallible engine. A halted
// resolution fails the report and carries the resolver's error message;
// the trace still shows every application up to and including the
// halting step.
func RunFallible[S, E any](scenario *Scenario[S, E], resolve eventual.FallibleResolver[S, E]) (*Report[S, E], error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	recorder := NewRecorder[S, E]()
	eng := eventual.NewFallible(recorder.WrapFallible(resolve))

	result := Queue(eng, scenario).ResolveWith(scenario.initFunc(), scenario.combinator())

	report := NewReport[S, E](scenario.Name)
	report.Trace = recorder.Trace()

	final, err := result.Get()
	if err != nil {
		report.AddError(fmt.Sprintf("resolution halted: %v", err))
		return report, nil
	}

	report.Final = final
	checkWant(report, scenario.Want)

	return report, nil
}

// checkWant compares the report's final state against the scenario's
// expected state, if one was declared.
func checkWant[S, E any](report *Report[S, E], want *S) {
	if want == nil {
		return
	}
	if !assert.ObjectsAreEqual(*want, report.Final) {
		report.AddError(fmt.Sprintf("final state mismatch: want %+v, got %+v", *want, report.Final))
	}
}
