package harness

import (
	"github.com/roach88/eventual"
	"github.com/roach88/eventual/internal/testutil"
)

// TraceEvent records a single resolver application.
type TraceEvent[E any] struct {
	// Seq is the logical sequence number of this application. Seqs are
	// monotonic within a run; they never come from wall-clock time.
	Seq int64 `json:"seq"`

	// Event is the synthetic event that was applied.
	Event E `json:"event"`

	// Err is the resolver's error message, set only for the halting
	// step of a fallible resolution.
	Err string `json:"error,omitempty"`
}

// Recorder observes resolver applications and builds a seq-stamped
// trace. Wrap the system's resolver before constructing the engine:
//
//	rec := harness.NewRecorder[System, Event]()
//	eng := eventual.New(rec.Wrap(resolve))
//
// The trace makes resolution order observable: an event absent from the
// trace was never passed to the resolver, which is how short-circuit
// behavior is asserted.
type Recorder[S, E any] struct {
	clock *testutil.SeqClock
	trace []TraceEvent[E]
}

// NewRecorder creates an empty recorder with a fresh sequence clock.
func NewRecorder[S, E any]() *Recorder[S, E] {
	return &Recorder[S, E]{clock: testutil.NewSeqClock()}
}

// Wrap returns a resolver that records each application before
// delegating to resolve.
func (r *Recorder[S, E]) Wrap(resolve eventual.Resolver[S, E]) eventual.Resolver[S, E] {
	return func(event E, system S) S {
		r.record(event, nil)
		return resolve(event, system)
	}
}

// WrapFallible returns a fallible resolver that records each
// application, including the error of the halting step.
func (r *Recorder[S, E]) WrapFallible(resolve eventual.FallibleResolver[S, E]) eventual.FallibleResolver[S, E] {
	return func(event E, system S) (S, error) {
		next, err := resolve(event, system)
		r.record(event, err)
		return next, err
	}
}

func (r *Recorder[S, E]) record(event E, err error) {
	entry := TraceEvent[E]{
		Seq:   r.clock.Next(),
		Event: event,
	}
	if err != nil {
		entry.Err = err.Error()
	}
	r.trace = append(r.trace, entry)
}

// Trace returns a copy of the recorded applications in resolution order.
func (r *Recorder[S, E]) Trace() []TraceEvent[E] {
	out := make([]TraceEvent[E], len(r.trace))
	copy(out, r.trace)
	return out
}

// Len returns the number of recorded applications.
func (r *Recorder[S, E]) Len() int {
	return len(r.trace)
}

// Reset clears the trace and sequence clock for reuse across subtests.
func (r *Recorder[S, E]) Reset() {
	r.trace = nil
	r.clock.Reset()
}
