package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	ErrDeleteVehicleCommandIsNotConstructed = errors.New(
		"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
	)
	// ErrVehicleHasRuns blocks deleting a vehicle still referenced by delivery runs.
	ErrVehicleHasRuns = fmt.Errorf(
		"%w: vehicle has related delivery runs and cannot be deleted", errs.ErrValueIsInvalid,
	)
)

// DeleteVehicleCommand represents a request to remove a transit mixer.
type DeleteVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteVehicleCommand creates a command to remove a vehicle.
func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	cmd := DeleteVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setVehicleID(vehicleID); err != nil {
		return DeleteVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identifier.
func (c DeleteVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

func (c *DeleteVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

// DeleteVehicleCommandHandler handles vehicle removal. Vehicles referenced
// by any delivery run cannot be deleted.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewDeleteVehicleCommandHandler creates a handler for vehicle removal.
func NewDeleteVehicleCommandHandler(uowFactory VehicleUoWFactory) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the vehicle removal command.
func (h *DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	referenced, err := uow.OrderRepository().ExistsRunForVehicle(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}
	if referenced {
		return ErrVehicleHasRuns
	}

	if err = uow.VehicleRepository().Delete(ctx, cmd.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
