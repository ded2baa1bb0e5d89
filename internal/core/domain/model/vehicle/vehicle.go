// Package vehicle provides the Vehicle aggregate: a transit mixer truck that
// carries completed batches to site. Vehicles are read-only lookups from the
// production engine's perspective; their own CRUD lifecycle lives in the
// application layer.
package vehicle

import (
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

// DefaultCapacity is the nominal drum capacity of a transit mixer in volume units.
const DefaultCapacity = 15.0

var (
	// ErrNameIsRequired is returned when creating or renaming a vehicle with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle is a delivery truck with a unique name, drum capacity, and optional
// registration plate and driver name.
type Vehicle struct {
	id         kernel.UUID
	name       string
	capacity   float64
	plate      string
	driverName string
	guard      guard.ConstructorGuard
}

// NewVehicle creates a Vehicle. The name must be non-empty and the capacity positive.
func NewVehicle(id kernel.UUID, name string, capacity float64, plate, driverName string) (*Vehicle, error) {
	v := &Vehicle{
		plate:      plate,
		driverName: driverName,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(id kernel.UUID, name string, capacity float64, plate, driverName string) (*Vehicle, error) {
	return NewVehicle(id, name, capacity, plate, driverName)
}

// Validate ensures the Vehicle was built via NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle identity.
func (v *Vehicle) ID() kernel.UUID { return v.id }

// Name returns the unique vehicle name, e.g. "Truck-01".
func (v *Vehicle) Name() string { return v.name }

// Capacity returns the drum capacity in volume units.
func (v *Vehicle) Capacity() float64 { return v.capacity }

// Plate returns the registration plate, possibly empty.
func (v *Vehicle) Plate() string { return v.plate }

// DriverName returns the assigned driver's name, possibly empty.
func (v *Vehicle) DriverName() string { return v.driverName }

// Rename changes the vehicle name.
func (v *Vehicle) Rename(name string) error {
	return v.setName(name)
}

// ChangeCapacity updates the drum capacity.
func (v *Vehicle) ChangeCapacity(capacity float64) error {
	return v.setCapacity(capacity)
}

// SetPlate updates the registration plate.
func (v *Vehicle) SetPlate(plate string) {
	v.plate = plate
}

// SetDriverName updates the assigned driver.
func (v *Vehicle) SetDriverName(driverName string) {
	v.driverName = driverName
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	v.name = name
	return nil
}

func (v *Vehicle) setCapacity(capacity float64) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacity", fmt.Errorf("%v is not greater than 0", capacity))
	}
	v.capacity = capacity
	return nil
}
