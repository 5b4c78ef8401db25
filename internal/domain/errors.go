package domain

import "fmt"

// NotFoundError indicates a referenced entity (station, user, train) is absent.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError indicates a uniqueness violation (duplicate key or email).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// ValidationError indicates malformed input or an unmet structural invariant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// TransientError indicates an underlying store was unavailable or timed out.
// Callers may retry the operation.
type TransientError struct {
	Message string
	Cause   error
}

func (e *TransientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TransientError) Unwrap() error { return e.Cause }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrConflict creates a ConflictError with a formatted message.
func ErrConflict(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrTransient wraps a store-level failure that is safe to retry.
func ErrTransient(cause error, format string, args ...any) *TransientError {
	return &TransientError{Message: fmt.Sprintf(format, args...), Cause: cause}
}
