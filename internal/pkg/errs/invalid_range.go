package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is the sentinel error for row-range selections that cannot
// be satisfied: an empty selection, a fully assigned selection, or no
// unassigned rows remaining.
var ErrInvalidRange = errors.New("invalid range")

// InvalidRangeError reports that a requested row selection yielded nothing to work with.
type InvalidRangeError struct {
	Reason string
	Cause  error
}

// NewInvalidRangeError creates an InvalidRangeError without a cause.
func NewInvalidRangeError(reason string) *InvalidRangeError {
	return &InvalidRangeError{Reason: reason}
}

// NewInvalidRangeErrorWithCause creates an InvalidRangeError wrapping an underlying cause.
func NewInvalidRangeErrorWithCause(reason string, cause error) *InvalidRangeError {
	return &InvalidRangeError{Reason: reason, Cause: cause}
}

func (e *InvalidRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidRange, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRange, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error {
	return ErrInvalidRange
}
