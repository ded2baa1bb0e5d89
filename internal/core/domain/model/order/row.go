package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	// ErrRowIsNotConstructed is returned when using an improperly initialized Row.
	ErrRowIsNotConstructed = errors.New("Row must be created via the Order aggregate or RestoreRow")
	// ErrRowAlreadyAssigned is returned when binding a row that already belongs to a car run.
	ErrRowAlreadyAssigned = errors.New("row is already assigned to a car run")
)

// Row is one batch unit of an order: a single mixer load with a planned
// volume, a weighing lifecycle state, and, once done, the recorded actual
// quantities per material channel.
//
// Rows are created in bulk by the batch planner at order creation and are
// never created or deleted afterward. All mutation goes through the Order
// aggregate.
type Row struct {
	id            kernel.UUID
	seqNo         int
	plannedVolume float64
	state         RowState
	actual        *recipe.Quantities
	startedAt     *time.Time
	completedAt   *time.Time
	carRunID      *kernel.UUID
	guard         guard.ConstructorGuard
}

// newRow creates a pending row. Used only by the batch planner inside NewOrder.
func newRow(id kernel.UUID, seqNo int, plannedVolume float64) (*Row, error) {
	r := &Row{
		state: RowPending,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setSeqNo(seqNo),
		r.setPlannedVolume(plannedVolume),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRow reconstructs a Row from persistence with its full lifecycle state.
func RestoreRow(
	id kernel.UUID,
	seqNo int,
	plannedVolume float64,
	state RowState,
	actual *recipe.Quantities,
	startedAt, completedAt *time.Time,
	carRunID *kernel.UUID,
) (*Row, error) {
	r := &Row{
		actual:      actual,
		startedAt:   startedAt,
		completedAt: completedAt,
		carRunID:    carRunID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setSeqNo(seqNo),
		r.setPlannedVolume(plannedVolume),
		r.setState(state),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Row was built via the aggregate or RestoreRow.
func (r *Row) Validate() error {
	if r == nil {
		return ErrRowIsNotConstructed
	}
	return r.guard.Validate(ErrRowIsNotConstructed)
}

// ID returns the row identity.
func (r *Row) ID() kernel.UUID { return r.id }

// SeqNo returns the 1-based position of the row within its order.
func (r *Row) SeqNo() int { return r.seqNo }

// PlannedVolume returns the planned batch volume. Only the final row of an
// order may be a fractional remainder below the nominal unit size.
func (r *Row) PlannedVolume() float64 { return r.plannedVolume }

// State returns the current weighing lifecycle state.
func (r *Row) State() RowState { return r.state }

// Actual returns the recorded actual quantities, nil unless the row is done.
func (r *Row) Actual() *recipe.Quantities { return r.actual }

// StartedAt returns the start timestamp, nil while pending.
func (r *Row) StartedAt() *time.Time { return r.startedAt }

// CompletedAt returns the completion timestamp, nil until done.
func (r *Row) CompletedAt() *time.Time { return r.completedAt }

// CarRunID returns the owning car run's identity, nil while unassigned.
func (r *Row) CarRunID() *kernel.UUID { return r.carRunID }

// IsAssigned reports whether the row already belongs to a car run.
func (r *Row) IsAssigned() bool { return r.carRunID != nil }

// start moves a pending row to running and stamps the start time.
func (r *Row) start(at time.Time) error {
	if r.state != RowPending {
		return errs.NewInvalidStateError("start row", r.state.String())
	}
	r.state = RowRunning
	r.startedAt = &at
	return nil
}

// complete records the actual reading and moves the row to done.
// Completing an already done row is a no-op; the stored reading is kept.
func (r *Row) complete(actual recipe.Quantities, at time.Time) {
	if r.state == RowDone {
		return
	}
	r.actual = &actual
	r.completedAt = &at
	r.state = RowDone
}

// rollback withdraws a running row back to pending, clearing its start time.
// Models interrupting a batch that had begun weighing. No-op for other states.
func (r *Row) rollback() {
	if r.state != RowRunning {
		return
	}
	r.state = RowPending
	r.startedAt = nil
}

// assignToRun binds the row to a car run. The binding is permanent:
// a second assignment fails with ErrRowAlreadyAssigned.
func (r *Row) assignToRun(runID kernel.UUID) error {
	if r.carRunID != nil {
		return ErrRowAlreadyAssigned
	}
	if err := runID.Validate(); err != nil {
		return err
	}
	r.carRunID = &runID
	return nil
}

func (r *Row) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Row) setSeqNo(seqNo int) error {
	if seqNo < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"seqNo", fmt.Errorf("%d is not a positive sequence number", seqNo))
	}
	r.seqNo = seqNo
	return nil
}

func (r *Row) setPlannedVolume(plannedVolume float64) error {
	if plannedVolume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"plannedVolume", fmt.Errorf("%v is not greater than 0", plannedVolume))
	}
	r.plannedVolume = plannedVolume
	return nil
}

func (r *Row) setState(state RowState) error {
	if err := state.Validate(); err != nil {
		return err
	}
	r.state = state
	return nil
}
