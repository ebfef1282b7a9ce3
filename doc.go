// Package eventual is a test harness for exercising eventually consistent
// systems under different message delivery orderings.
//
// Users provide two things: a type of synthetic events describing the
// changes a distributed or asynchronous system might observe, and a
// resolver function that folds one event into the state of the system
// under test. The engine supplies the machinery around them: events are
// queued, passed through a caller-chosen ordering combinator, and folded
// into an initial state one at a time.
//
// # Engine Variants
//
// Two variants share the Engine capability set:
//
//   - Total: the resolver always produces a state
//     (New, resolver func(E, S) S, resolution returns S).
//   - Fallible: the resolver may reject an event
//     (NewFallible, resolver func(E, S) (S, error), resolution returns
//     Result[S] and halts at the first error).
//
// # Deterministic Resolution
//
// Resolution is a strict, sequential, single-threaded fold:
//
//  1. The init function produces the starting state (called exactly once).
//  2. The queued main-phase events pass through the combinator, which may
//     reorder, drop, or duplicate them. This is the only permutation
//     point; Identity yields in-order delivery.
//  3. The resolver is applied once per scheduled event, threading the
//     state forward. Prologue events run before the combinator's output
//     and epilogue events after, both in insertion order.
//
// There is no concurrency, no clock, and no shared state. Exploring many
// delivery orders means constructing a fresh engine per candidate
// ordering; engines are single-use and their queue is consumed by
// resolution.
//
// # Example
//
// A minimal system with two fields, where each event overwrites one of
// them:
//
//	type System struct{ A, B string }
//
//	type Set struct {
//		Field string
//		Value string
//	}
//
//	resolve := func(event Set, system System) System {
//		switch event.Field {
//		case "a":
//			system.A = event.Value
//		case "b":
//			system.B = event.Value
//		}
//		return system
//	}
//
//	system := eventual.New(resolve).
//		QueueEvents(Set{"a", "a1"}, Set{"b", "b1"}, Set{"a", "a2"}).
//		ResolveInOrder(func() System { return System{} })
//	// system.A == "a2", system.B == "b1"
//
// The harness package layers declarative scenarios, trace recording, and
// golden-file comparison on top of the engine.
package eventual
