package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidState is the sentinel error for operations that are not legal
// in the current lifecycle status of an aggregate.
var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports that an operation was attempted while the target
// aggregate is in a status that forbids it.
type InvalidStateError struct {
	Operation string
	Status    string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError without a cause.
func NewInvalidStateError(operation, status string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(operation, status string, cause error) *InvalidStateError {
	return &InvalidStateError{Operation: operation, Status: status, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed when status is %s (cause: %s)",
			ErrInvalidState, e.Operation, e.Status, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not allowed when status is %s", ErrInvalidState, e.Operation, e.Status)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
