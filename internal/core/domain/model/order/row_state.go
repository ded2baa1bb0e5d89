package order

import (
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

// RowState represents the weighing lifecycle of one batch row.
//
// The only forward path is pending -> running -> done. There is no failure
// state: a started row either completes or is rolled back to pending when
// the order is paused or stopped.
type RowState int

const (
	// RowUnknown represents an invalid or undefined row state.
	RowUnknown RowState = iota

	// RowPending means the row is queued and has not entered the mixer.
	RowPending

	// RowRunning means the row is being weighed and mixed.
	RowRunning

	// RowDone means the row completed and carries its actual reading.
	RowDone
)

func getRowStateStrings() map[RowState]string {
	return map[RowState]string{
		RowUnknown: "unknown",
		RowPending: "pending",
		RowRunning: "running",
		RowDone:    "done",
	}
}

// Validate checks that the RowState is one of the three defined states.
func (s RowState) Validate() error {
	switch s {
	case RowPending, RowRunning, RowDone:
		return nil
	case RowUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"rowState", fmt.Errorf("%d is not a valid row state", s))
}

// String returns the lowercase row state name used on the wire, or "unknown".
func (s RowState) String() string {
	if str, ok := getRowStateStrings()[s]; ok {
		return str
	}
	return "unknown"
}
