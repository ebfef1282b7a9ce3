package eventual

import (
	"errors"
	"fmt"
)

// EngineError represents misuse of an engine detected at resolution time.
//
// The engine never wraps or translates resolver errors; an EngineError
// always signals a caller contract violation, not a domain failure.
type EngineError struct {
	// Code identifies the error category.
	Code EngineErrorCode

	// Message is a human-readable description.
	Message string
}

// EngineErrorCode categorizes engine errors.
type EngineErrorCode string

const (
	// ErrCodeResolved indicates a resolution was attempted on an engine
	// whose queue has already been consumed.
	ErrCodeResolved EngineErrorCode = "ALREADY_RESOLVED"
)

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsResolvedError returns true if the error reports resolution of an
// already-resolved engine. Uses errors.As to handle wrapped errors.
func IsResolvedError(err error) bool {
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee.Code == ErrCodeResolved
	}
	return false
}

func newResolvedError() *EngineError {
	return &EngineError{
		Code:    ErrCodeResolved,
		Message: "engine already resolved; construct a fresh engine per resolution",
	}
}
