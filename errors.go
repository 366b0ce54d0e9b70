package semanticscholar

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoResults indicates that a title search parsed successfully but
	// returned zero candidates.
	ErrNoResults = errors.New("no results")

	// ErrExhausted indicates that the retry budget was consumed without a
	// qualifying success.
	ErrExhausted = errors.New("retry budget exhausted")
)

// APIError reports a non-2xx response from the API.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the error message extracted from the response body, or the
	// raw body when no structured envelope was present.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// ExhaustedError reports that an operation failed permanently after its
// retry budget ran out. Op names the operation and Input carries the query
// text or identifier that was being resolved.
type ExhaustedError struct {
	Op       string
	Input    string
	Attempts int
	Err      error
}

// Error implements the error interface.
func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s: giving up on %q after %d attempts: %v", e.Op, e.Input, e.Attempts, e.Err)
}

// Unwrap returns the last underlying cause, so callers can distinguish
// e.g. persistent empty results from transport failures with errors.Is.
func (e *ExhaustedError) Unwrap() error { return e.Err }

// Is reports whether target is the ErrExhausted sentinel.
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }
