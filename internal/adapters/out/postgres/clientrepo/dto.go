// Package clientrepo provides data transfer objects and mapping functions for client persistence.
package clientrepo

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting client aggregates.
type ClientDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cell         string    `gorm:"type:varchar(64)"`
	Email        string    `gorm:"type:varchar(255)"`
	OfficeAddr   string    `gorm:"type:varchar(512)"`
	DeliveryAddr string    `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for client entities.
func (ClientDTO) TableName() string {
	return "clients"
}

// fromDomain converts a client domain aggregate to its database representation.
func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Cell:         aggregate.Cell(),
		Email:        aggregate.Email(),
		OfficeAddr:   aggregate.OfficeAddr(),
		DeliveryAddr: aggregate.DeliveryAddr(),
	}
}

// toDomain converts a database DTO to a client domain aggregate.
func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.Cell, dto.Email, dto.OfficeAddr, dto.DeliveryAddr)
}
