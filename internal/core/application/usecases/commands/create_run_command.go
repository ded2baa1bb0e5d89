package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrCreateRunCommandIsNotConstructed = errors.New(
	"CreateRunCommand must be created via NewCreateRunCommand constructor",
)

// CreateRunCommand represents a request to allocate a delivery run over an
// order's unassigned rows. When RowRange is nil the allocator falls back to
// block mode: the first fifteen unassigned rows.
type CreateRunCommand struct { //nolint:recvcheck //using for validation
	runID     kernel.UUID
	orderID   kernel.UUID
	vehicleID kernel.UUID
	rowRange  *order.RowRange
	note      string

	guard guard.ConstructorGuard
}

// NewCreateRunCommand creates a command to allocate a delivery run.
func NewCreateRunCommand(
	runID, orderID, vehicleID kernel.UUID,
	rowRange *order.RowRange,
	note string,
) (CreateRunCommand, error) {
	cmd := CreateRunCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRunID(runID),
		cmd.setOrderID(orderID),
		cmd.setVehicleID(vehicleID),
		cmd.setRowRange(rowRange),
	); err != nil {
		return CreateRunCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRunCommand) Validate() error {
	return c.guard.Validate(ErrCreateRunCommandIsNotConstructed)
}

// RunID returns the identifier for the new run.
func (c CreateRunCommand) RunID() kernel.UUID {
	return c.runID
}

// OrderID returns the target order's identifier.
func (c CreateRunCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleID returns the hauling vehicle's identifier.
func (c CreateRunCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// RowRange returns the requested row sequence bounds, or nil for block mode.
func (c CreateRunCommand) RowRange() *order.RowRange {
	return c.rowRange
}

// Note returns the free-form run note.
func (c CreateRunCommand) Note() string {
	return c.note
}

func (c *CreateRunCommand) setRunID(runID kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}

	c.runID = runID
	return nil
}

func (c *CreateRunCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateRunCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateRunCommand) setRowRange(rowRange *order.RowRange) error {
	if rowRange != nil {
		if err := rowRange.Validate(); err != nil {
			return err
		}
	}

	c.rowRange = rowRange
	return nil
}
