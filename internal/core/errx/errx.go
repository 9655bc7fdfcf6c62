package errx

import (
	"errors"
	"fmt"
)

// Code classifies an error for callers that branch on the failure kind.
type Code string

const (
	CodeNotFound    Code = "not_found"
	CodeUnavailable Code = "unavailable"
	CodeInternal    Code = "internal"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "something went wrong on our end"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
)

// Domain sentinels consumed by the query handlers. Recoverable conditions are
// turned into ordinary response strings before they reach the orchestrator.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrPastOrderNotFound = errors.New("past order not found")
	ErrNoAgentAvailable  = errors.New("no live agent available")
)

// Error wraps an underlying error with a code and a safe message.
type Error struct {
	Err     error
	Code    Code
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, code Code, message string) *Error {
	return &Error{
		Err:     err,
		Code:    code,
		Message: message,
	}
}

// Is reports whether the target matches the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to Error or the wrapped error in a chain.
func (e *Error) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}
	return false
}
