package eventual

import "fmt"

// Result is the outcome of a fallible resolution: either the final state
// of the system under test, or the error from the first failing resolver
// step. The zero Result is a success wrapping the zero state.
type Result[S any] struct {
	system S
	err    error
}

// OK returns a successful Result wrapping the given state.
func OK[S any](system S) Result[S] {
	return Result[S]{system: system}
}

// Fail returns a failed Result carrying the given error.
func Fail[S any](err error) Result[S] {
	return Result[S]{err: err}
}

// Get returns the final state and the resolution error, if any. On
// failure the returned state is the zero value, never a partially
// resolved one.
func (r Result[S]) Get() (S, error) {
	if r.err != nil {
		var zero S
		return zero, r.err
	}
	return r.system, nil
}

// Err returns the resolution error, or nil if every step succeeded.
func (r Result[S]) Err() error {
	return r.err
}

// Must returns the final state, panicking if resolution failed. Intended
// for tests where a failure is a programming error.
func (r Result[S]) Must() S {
	if r.err != nil {
		panic(fmt.Sprintf("eventual: resolution failed: %v", r.err))
	}
	return r.system
}
