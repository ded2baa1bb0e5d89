package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/vehicle"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrUpdateVehicleCommandIsNotConstructed = errors.New(
	"UpdateVehicleCommand must be created via NewUpdateVehicleCommand constructor",
)

// UpdateVehicleCommand represents a request to update a transit mixer.
type UpdateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	name       string
	capacity   float64
	plate      string
	driverName string

	guard guard.ConstructorGuard
}

// NewUpdateVehicleCommand creates a command to update a vehicle.
func NewUpdateVehicleCommand(
	vehicleID kernel.UUID, name string, capacity float64, plate, driverName string,
) (UpdateVehicleCommand, error) {
	cmd := UpdateVehicleCommand{
		plate:      plate,
		driverName: driverName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setName(name),
		cmd.setCapacity(capacity),
	); err != nil {
		return UpdateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUpdateVehicleCommandIsNotConstructed)
}

// VehicleID returns the target vehicle's identifier.
func (c UpdateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// Name returns the new display name.
func (c UpdateVehicleCommand) Name() string { return c.name }

// Capacity returns the new drum capacity in cubic meters.
func (c UpdateVehicleCommand) Capacity() float64 { return c.capacity }

// Plate returns the new registration plate.
func (c UpdateVehicleCommand) Plate() string { return c.plate }

// DriverName returns the new driver's name.
func (c UpdateVehicleCommand) DriverName() string { return c.driverName }

func (c *UpdateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *UpdateVehicleCommand) setName(name string) error {
	if name == "" {
		return vehicle.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateVehicleCommand) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

// UpdateVehicleCommandHandler handles vehicle updates.
type UpdateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewUpdateVehicleCommandHandler creates a handler for vehicle updates.
func NewUpdateVehicleCommandHandler(uowFactory VehicleUoWFactory) UpdateVehicleCommandHandler {
	return UpdateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the vehicle update command.
func (h *UpdateVehicleCommandHandler) Handle(ctx context.Context, cmd UpdateVehicleCommand) error {
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

	vehicleRepo := uow.VehicleRepository()
	aggregate, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		aggregate.Rename(cmd.Name()),
		aggregate.ChangeCapacity(cmd.Capacity()),
	); err != nil {
		return err
	}
	aggregate.SetPlate(cmd.Plate())
	aggregate.SetDriverName(cmd.DriverName())

	if err = vehicleRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
