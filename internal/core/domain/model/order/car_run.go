package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

// ErrCarRunIsNotConstructed is returned when using an improperly initialized CarRun.
var ErrCarRunIsNotConstructed = errors.New("CarRun must be created via the Order aggregate or RestoreCarRun")

// CarRun is one vehicle trip carrying a block of batch rows to site.
//
// A run is immutable once created. Its recorded row range reflects the
// bounds that were requested at allocation time: when some rows inside an
// explicit range were already claimed by earlier runs, those rows are
// skipped but the range still records the original request.
type CarRun struct {
	id          kernel.UUID
	vehicleID   kernel.UUID
	loadSeq     int
	volume      float64
	note        string
	rowStartSeq int
	rowEndSeq   int
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// newCarRun creates a run. Used only by the Order aggregate's allocator.
func newCarRun(
	id, vehicleID kernel.UUID,
	loadSeq int,
	volume float64,
	note string,
	rowStartSeq, rowEndSeq int,
	createdAt time.Time,
) (*CarRun, error) {
	run := &CarRun{
		volume:    volume,
		note:      note,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		run.setID(id),
		run.setVehicleID(vehicleID),
		run.setLoadSeq(loadSeq),
		run.setRowRange(rowStartSeq, rowEndSeq),
	); err != nil {
		return nil, err
	}

	return run, nil
}

// RestoreCarRun reconstructs a CarRun from persistence.
func RestoreCarRun(
	id, vehicleID kernel.UUID,
	loadSeq int,
	volume float64,
	note string,
	rowStartSeq, rowEndSeq int,
	createdAt time.Time,
) (*CarRun, error) {
	return newCarRun(id, vehicleID, loadSeq, volume, note, rowStartSeq, rowEndSeq, createdAt)
}

// Validate ensures the CarRun was built via the aggregate or RestoreCarRun.
func (cr *CarRun) Validate() error {
	if cr == nil {
		return ErrCarRunIsNotConstructed
	}
	return cr.guard.Validate(ErrCarRunIsNotConstructed)
}

// ID returns the run identity.
func (cr *CarRun) ID() kernel.UUID { return cr.id }

// VehicleID returns the vehicle making the trip.
func (cr *CarRun) VehicleID() kernel.UUID { return cr.vehicleID }

// LoadSeq returns the 1-based trip number within the order.
func (cr *CarRun) LoadSeq() int { return cr.loadSeq }

// Volume returns the summed planned volume of the rows the run claimed.
func (cr *CarRun) Volume() float64 { return cr.volume }

// Note returns the free-text note, possibly empty.
func (cr *CarRun) Note() string { return cr.note }

// RowStartSeq returns the inclusive lower bound of the recorded row range.
func (cr *CarRun) RowStartSeq() int { return cr.rowStartSeq }

// RowEndSeq returns the inclusive upper bound of the recorded row range.
func (cr *CarRun) RowEndSeq() int { return cr.rowEndSeq }

// CreatedAt returns the allocation timestamp.
func (cr *CarRun) CreatedAt() time.Time { return cr.createdAt }

func (cr *CarRun) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	cr.id = id
	return nil
}

func (cr *CarRun) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	cr.vehicleID = vehicleID
	return nil
}

func (cr *CarRun) setLoadSeq(loadSeq int) error {
	if loadSeq < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"loadSeq", fmt.Errorf("%d is not a positive load sequence", loadSeq))
	}
	cr.loadSeq = loadSeq
	return nil
}

func (cr *CarRun) setRowRange(startSeq, endSeq int) error {
	if startSeq < 1 || endSeq < startSeq {
		return errs.NewValueIsInvalidErrorWithCause(
			"rowRange", fmt.Errorf("%d..%d is not a valid row range", startSeq, endSeq))
	}
	cr.rowStartSeq = startSeq
	cr.rowEndSeq = endSeq
	return nil
}
