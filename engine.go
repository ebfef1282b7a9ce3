package eventual

import (
	"io"
	"log/slog"
)

// Resolver folds one synthetic event into the state of the system under
// test, producing the next state. The previous state is consumed: the
// engine never retains or aliases it after the call.
type Resolver[S, E any] func(event E, system S) S

// FallibleResolver is a Resolver that may reject an event. Returning a
// non-nil error halts resolution immediately; the error is surfaced to
// the caller verbatim.
type FallibleResolver[S, E any] func(event E, system S) (S, error)

// Combinator transforms the queued main-phase events into the sequence
// actually resolved, in the order to resolve them. It may reorder, drop,
// duplicate, or otherwise replace the input; the engine consumes whatever
// it returns. This is the sole extension point for simulating delivery
// orders.
type Combinator[E any] func(events []E) []E

// Identity is the in-order delivery strategy: it returns the queued
// events unchanged. ResolveInOrder is defined in terms of it.
func Identity[E any](events []E) []E {
	return events
}

// Engine is the capability set shared by both variants. The type
// parameter R is the resolution outcome: S for the total engine
// (New), Result[S] for the fallible engine (NewFallible).
//
// Builder methods return the engine to allow chaining. The engine is
// single-owner and single-use: queue events, resolve once, discard.
// Exploring another ordering requires a fresh engine.
type Engine[S, E, R any] interface {
	// QueueEvent appends one event to the tail of the reorderable main
	// queue, preserving prior queue contents and ordering.
	QueueEvent(event E) Engine[S, E, R]

	// QueueEvents copies each argument into the main queue in argument
	// order, equivalent to repeated QueueEvent calls.
	QueueEvents(events ...E) Engine[S, E, R]

	// QueuePrologue appends an event that resolves before the main
	// queue, bypassing the combinator. Prologue events resolve in
	// insertion order.
	QueuePrologue(event E) Engine[S, E, R]

	// QueueEpilogue appends an event that resolves after the main
	// queue, bypassing the combinator. Epilogue events resolve in
	// insertion order.
	QueueEpilogue(event E) Engine[S, E, R]

	// ResolveWith consumes the queue and folds the resolver over the
	// schedule: prologue, then comb applied to the main queue, then
	// epilogue. init produces the starting state and is called exactly
	// once, at the start of resolution.
	ResolveWith(init func() S, comb Combinator[E]) R

	// ResolveInOrder is ResolveWith with the Identity combinator:
	// events resolve in original queuing order.
	ResolveInOrder(init func() S) R
}

// Option configures an engine at construction time.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		// Silent by default; the engine is a library, not a service.
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes the engine's resolution logging to the given logger.
// The engine logs each resolved event at Debug level and the resolution
// outcome at Info (or Warn, when a fallible resolution halts).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// New creates a total engine: the resolver always produces a state and
// resolution always yields one. The engine takes ownership of the
// resolver for its lifetime; it is not invoked until resolution.
func New[S, E any](resolve Resolver[S, E], opts ...Option) Engine[S, E, S] {
	cfg := newConfig(opts)
	return &totalEngine[S, E]{
		resolve: resolve,
		logger:  cfg.logger,
	}
}

// NewFallible creates a fallible engine: the resolver may reject an
// event, and resolution yields a Result that is either the final state
// or the first resolver error.
func NewFallible[S, E any](resolve FallibleResolver[S, E], opts ...Option) Engine[S, E, Result[S]] {
	cfg := newConfig(opts)
	return &fallibleEngine[S, E]{
		resolve: resolve,
		logger:  cfg.logger,
	}
}
