package harness

import (
	"fmt"

	"github.com/roach88/eventual"
)

// Scenario defines one delivery-order experiment against a system under
// test. The zero ordering (nil Comb) is in-order delivery; the zero
// initial state (nil Init) is the zero value of S.
type Scenario[S, E any] struct {
	// Name uniquely identifies this scenario. It is also the golden
	// file name when the scenario is compared against a snapshot.
	Name string

	// Description explains what this scenario validates.
	Description string

	// Prologue contains events resolved before the main events, in
	// insertion order, bypassing the combinator.
	Prologue []E

	// Events contains the reorderable main events.
	Events []E

	// Epilogue contains events resolved after the main events, in
	// insertion order, bypassing the combinator.
	Epilogue []E

	// Comb is the ordering strategy applied to Events. Nil means
	// in-order delivery.
	Comb eventual.Combinator[E]

	// Init produces the starting state. Nil means the zero value of S.
	Init func() S

	// Want, when non-nil, is the final state the system is expected to
	// reach. A mismatch fails the report but does not abort the run.
	Want *S
}

// Validate checks that required fields are present.
func (s *Scenario[S, E]) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Prologue)+len(s.Events)+len(s.Epilogue) == 0 {
		return fmt.Errorf("scenario has no events")
	}

	return nil
}

// initFunc returns the scenario's init function, defaulting to the zero
// value of S.
func (s *Scenario[S, E]) initFunc() func() S {
	if s.Init != nil {
		return s.Init
	}
	return func() S {
		var zero S
		return zero
	}
}

// combinator returns the scenario's ordering strategy, defaulting to
// in-order delivery.
func (s *Scenario[S, E]) combinator() eventual.Combinator[E] {
	if s.Comb != nil {
		return s.Comb
	}
	return eventual.Identity[E]
}
