package order

import (
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	running ──┬──> paused ──> running
//	          ├──> stopped ──> running   (resume of a stopped order is permitted)
//	          └──> done
//
// Done is reached automatically when the last row completes and is terminal.
// Pause, resume, and stop requests against a status they cannot change are
// harmless no-ops that report the current status instead of erroring.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Running is the initial status; rows may be started and completed.
	Running

	// Paused suspends production; in-flight rows were rolled back to pending.
	Paused

	// Stopped aborts production; still queryable and, as currently specified,
	// resumable back to running.
	Stopped

	// Done means every row completed. Terminal.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "unknown",
		Running: "running",
		Paused:  "paused",
		Stopped: "stopped",
		Done:    "done",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Running: "running",
		Paused:  "paused",
		Stopped: "stopped",
		Done:    "done",
	}
}

// Validate checks that the Status is one of the four defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase status name used on the wire, or "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanStartRow returns an InvalidState error unless the status is Running.
// Starting the next batch is forbidden while paused, stopped, or done.
func (s Status) CanStartRow() error {
	if s != Running {
		return errs.NewInvalidStateError("start next row", s.String())
	}
	return nil
}

// Pause transitions to Paused. Done, stopped, and already-paused orders are
// reported as-is; the bool return is false when nothing changed.
func (s Status) Pause() (Status, bool) {
	if s == Done || s == Stopped || s == Paused {
		return s, false
	}
	return Paused, true
}

// Resume transitions to Running from any non-done status, including Stopped.
// Done and already-running orders are reported as-is.
func (s Status) Resume() (Status, bool) {
	if s == Done || s == Running {
		return s, false
	}
	return Running, true
}

// Stop transitions to Stopped. Done and already-stopped orders are
// reported as-is.
func (s Status) Stop() (Status, bool) {
	if s == Done || s == Stopped {
		return s, false
	}
	return Stopped, true
}
