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

// legacyRunBlockSize is the number of unassigned rows a block-mode run claims,
// matching one nominal truck load of unit-sized batches.
const legacyRunBlockSize = 15

// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// RowRange is an inclusive 1-based row sequence range requested for a car run.
type RowRange struct {
	StartSeq int
	EndSeq   int
}

// Validate rejects ranges with a non-positive start or an end before the start.
func (rr RowRange) Validate() error {
	if rr.StartSeq < 1 || rr.EndSeq < rr.StartSeq {
		return errs.NewValueIsInvalidErrorWithCause(
			"rowRange", fmt.Errorf("%d..%d is not a valid row range", rr.StartSeq, rr.EndSeq))
	}
	return nil
}

// Order is the aggregate root for one concrete production order. It owns the
// ordered batch rows emitted by the planner and the car runs allocated over
// them, and supervises every row-state transition.
//
// The client and recipe references are fixed at creation: later recipe edits
// never retroactively change an order's set-points.
type Order struct {
	id          kernel.UUID
	clientID    kernel.UUID
	recipeID    kernel.UUID
	totalVolume float64
	status      Status
	createdAt   time.Time
	rows        []*Row
	runs        []*CarRun
	guard       guard.ConstructorGuard
}

// NewOrder creates an order in running status and plans its batch rows:
// totalVolume is partitioned into unit-sized rows with sequence numbers 1..N,
// the last row holding any fractional remainder.
func NewOrder(
	id, clientID, recipeID kernel.UUID,
	totalVolume, unitSize float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Running,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRecipeID(recipeID),
	); err != nil {
		return nil, err
	}

	takes, err := PlanVolumes(totalVolume, unitSize)
	if err != nil {
		return nil, err
	}
	o.totalVolume = kernel.Round3(totalVolume)

	for i, take := range takes {
		row, rowErr := newRow(kernel.NewUUID(), i+1, take)
		if rowErr != nil {
			return nil, rowErr
		}
		o.rows = append(o.rows, row)
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence, including
// its rows (ordered by sequence number) and runs (ordered by load sequence).
func RestoreOrder(
	id, clientID, recipeID kernel.UUID,
	totalVolume float64,
	status Status,
	createdAt time.Time,
	rows []*Row,
	runs []*CarRun,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		rows:      rows,
		runs:      runs,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRecipeID(recipeID),
		o.setStatus(status),
		o.setTotalVolume(totalVolume),
	); err != nil {
		return nil, err
	}

	for _, row := range rows {
		if err := row.Validate(); err != nil {
			return nil, err
		}
	}
	for _, run := range runs {
		if err := run.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was built via NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identity.
func (o *Order) ID() kernel.UUID { return o.id }

// ClientID returns the customer reference fixed at creation.
func (o *Order) ClientID() kernel.UUID { return o.clientID }

// RecipeID returns the mix reference fixed at creation.
func (o *Order) RecipeID() kernel.UUID { return o.recipeID }

// TotalVolume returns the requested volume the rows sum to.
func (o *Order) TotalVolume() float64 { return o.totalVolume }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Rows returns the batch rows in sequence order.
func (o *Order) Rows() []*Row { return o.rows }

// Runs returns the car runs in load sequence order.
func (o *Order) Runs() []*CarRun { return o.runs }

// Row finds a row of this order by identity.
func (o *Order) Row(rowID kernel.UUID) (*Row, error) {
	for _, row := range o.rows {
		if row.id.IsEqual(rowID) {
			return row, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("rowId", rowID.String())
}

// StartNextRow moves the lowest-sequence pending row to running and stamps
// its start time. It fails with an InvalidState error unless the order is
// running, and with a NotFound error when no pending row exists. Exactly one
// row starts per call; under concurrent calls the surrounding transaction
// guarantees a single winner.
func (o *Order) StartNextRow(at time.Time) (*Row, error) {
	if err := o.status.CanStartRow(); err != nil {
		return nil, err
	}

	for _, row := range o.rows {
		if row.state == RowPending {
			if err := row.start(at); err != nil {
				return nil, err
			}
			return row, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("pending row", o.id.String())
}

// CompleteRow records the actual material reading for a row and marks it
// done. Completing an already done row is idempotent: the stored reading is
// kept and no further side effects occur. When the last open row completes,
// the order is forced to done regardless of its prior status - completion is
// a terminal override, even over paused or stopped.
func (o *Order) CompleteRow(rowID kernel.UUID, actual recipe.Quantities, at time.Time) (*Row, error) {
	row, err := o.Row(rowID)
	if err != nil {
		return nil, err
	}

	if row.state == RowDone {
		return row, nil
	}

	row.complete(actual, at)

	if o.openRowCount() == 0 {
		o.status = Done
	}

	return row, nil
}

// Pause rolls every running row back to pending and suspends the order.
// Done and stopped orders are reported unchanged (changed = false).
func (o *Order) Pause() (Status, bool) {
	next, changed := o.status.Pause()
	if !changed {
		return o.status, false
	}
	o.rollbackRunningRows()
	o.status = next
	return o.status, true
}

// Resume puts the order back into running status. Done orders are reported
// unchanged. Resuming a stopped order is permitted by the current process
// definition.
func (o *Order) Resume() (Status, bool) {
	next, changed := o.status.Resume()
	if !changed {
		return o.status, false
	}
	o.status = next
	return o.status, true
}

// Stop rolls every running row back to pending and halts the order.
// Done orders are reported unchanged.
func (o *Order) Stop() (Status, bool) {
	next, changed := o.status.Stop()
	if !changed {
		return o.status, false
	}
	o.rollbackRunningRows()
	o.status = next
	return o.status, true
}

// AllocateRun creates the next car run for this order and binds rows to it.
//
// With an explicit rowRange, all rows inside the inclusive range are
// selected; an empty selection fails with an InvalidRange error, as does a
// selection whose rows are all already assigned. Only the still-unassigned
// rows are claimed, but the run records the requested bounds, not the
// narrowed subset.
//
// Without a range (legacy block mode), the first 15 unassigned rows in
// sequence order are claimed and the run records the block's actual bounds.
//
// Allocation is append-only and greedy: existing runs are never re-evaluated
// or rebalanced, and a claimed row is never released.
func (o *Order) AllocateRun(
	runID, vehicleID kernel.UUID,
	rowRange *RowRange,
	note string,
	at time.Time,
) (*CarRun, error) {
	loadSeq := o.nextLoadSeq()

	var block []*Row
	var startSeq, endSeq int

	if rowRange != nil {
		if err := rowRange.Validate(); err != nil {
			return nil, err
		}

		var selected []*Row
		for _, row := range o.rows {
			if row.seqNo >= rowRange.StartSeq && row.seqNo <= rowRange.EndSeq {
				selected = append(selected, row)
			}
		}
		if len(selected) == 0 {
			return nil, errs.NewInvalidRangeError(
				fmt.Sprintf("row range %d..%d not found", rowRange.StartSeq, rowRange.EndSeq))
		}

		for _, row := range selected {
			if !row.IsAssigned() {
				block = append(block, row)
			}
		}
		if len(block) == 0 {
			return nil, errs.NewInvalidRangeError(
				fmt.Sprintf("row range %d..%d already assigned", rowRange.StartSeq, rowRange.EndSeq))
		}

		// The stored range keeps the requested bounds even when some rows
		// inside them were skipped as already claimed.
		startSeq, endSeq = rowRange.StartSeq, rowRange.EndSeq
	} else {
		for _, row := range o.rows {
			if !row.IsAssigned() {
				block = append(block, row)
			}
			if len(block) == legacyRunBlockSize {
				break
			}
		}
		if len(block) == 0 {
			return nil, errs.NewInvalidRangeError("no unassigned rows")
		}

		startSeq, endSeq = block[0].seqNo, block[len(block)-1].seqNo
	}

	volume := 0.0
	for _, row := range block {
		volume = kernel.Round3(volume + row.plannedVolume)
	}

	run, err := newCarRun(runID, vehicleID, loadSeq, volume, note, startSeq, endSeq, at)
	if err != nil {
		return nil, err
	}

	for _, row := range block {
		if err := row.assignToRun(runID); err != nil {
			return nil, err
		}
	}

	o.runs = append(o.runs, run)
	return run, nil
}

// openRowCount counts rows not yet done.
func (o *Order) openRowCount() int {
	n := 0
	for _, row := range o.rows {
		if row.state != RowDone {
			n++
		}
	}
	return n
}

func (o *Order) rollbackRunningRows() {
	for _, row := range o.rows {
		row.rollback()
	}
}

func (o *Order) nextLoadSeq() int {
	maxSeq := 0
	for _, run := range o.runs {
		if run.loadSeq > maxSeq {
			maxSeq = run.loadSeq
		}
	}
	return maxSeq + 1
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}
	o.recipeID = recipeID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalVolume(totalVolume float64) error {
	if totalVolume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalVolume", fmt.Errorf("%v is not greater than 0", totalVolume))
	}
	o.totalVolume = totalVolume
	return nil
}
