package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/vehicle"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrCapacityIsInvalid = errors.New("capacity must be greater than 0")
)

// CreateVehicleCommand represents a request to register a new transit mixer.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID  kernel.UUID
	name       string
	capacity   float64
	plate      string
	driverName string

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a vehicle.
// A zero capacity falls back to the fleet default.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID, name string, capacity float64, plate, driverName string,
) (CreateVehicleCommand, error) {
	if capacity == 0 {
		capacity = vehicle.DefaultCapacity
	}

	cmd := CreateVehicleCommand{
		plate:      plate,
		driverName: driverName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setName(name),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }

// Name returns the vehicle's display name.
func (c CreateVehicleCommand) Name() string { return c.name }

// Capacity returns the drum capacity in cubic meters.
func (c CreateVehicleCommand) Capacity() float64 { return c.capacity }

// Plate returns the registration plate.
func (c CreateVehicleCommand) Plate() string { return c.plate }

// DriverName returns the assigned driver's name.
func (c CreateVehicleCommand) DriverName() string { return c.driverName }

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setName(name string) error {
	if name == "" {
		return vehicle.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return ErrCapacityIsInvalid
	}

	c.capacity = capacity
	return nil
}

// CreateVehicleCommandHandler handles vehicle registration.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for vehicle registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{uowFactory: uowFactory}
}

// Handle processes the vehicle registration command.
func (h *CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
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

	aggregate, err := vehicle.NewVehicle(
		cmd.VehicleID(), cmd.Name(), cmd.Capacity(), cmd.Plate(), cmd.DriverName(),
	)
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
