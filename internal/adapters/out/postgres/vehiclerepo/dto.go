// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
package vehiclerepo

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Capacity   float64   `gorm:"type:numeric(10,3);not null"`
	Plate      string    `gorm:"type:varchar(64)"`
	DriverName string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Capacity:   aggregate.Capacity(),
		Plate:      aggregate.Plate(),
		DriverName: aggregate.DriverName(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Name, dto.Capacity, dto.Plate, dto.DriverName)
}
