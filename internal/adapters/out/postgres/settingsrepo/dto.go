// Package settingsrepo provides persistence for the plant settings singleton.
package settingsrepo

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/settings"

	"github.com/google/uuid"
)

// SettingsDTO represents the database structure for the plant settings row.
// The table holds at most one row.
type SettingsDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TolerancePct    float64    `gorm:"type:numeric(6,3);not null"`
	MixerCapacity   float64    `gorm:"type:numeric(10,3);not null"`
	DefaultRecipeID *uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for the settings row.
func (SettingsDTO) TableName() string {
	return "settings"
}

// fromDomain converts the settings aggregate to its database representation.
func fromDomain(aggregate *settings.Settings) SettingsDTO {
	var defaultRecipeID *uuid.UUID
	if id := aggregate.DefaultRecipeID(); id != nil {
		raw := id.Bytes()
		defaultRecipeID = &raw
	}

	return SettingsDTO{
		ID:              aggregate.ID().Bytes(),
		TolerancePct:    aggregate.TolerancePct(),
		MixerCapacity:   aggregate.MixerCapacity(),
		DefaultRecipeID: defaultRecipeID,
	}
}

// toDomain converts a database DTO to the settings aggregate.
func toDomain(dto SettingsDTO) (*settings.Settings, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var defaultRecipeID *kernel.UUID
	if dto.DefaultRecipeID != nil {
		recipeID, recipeErr := kernel.UUIDFromBytes((*dto.DefaultRecipeID)[:])
		if recipeErr != nil {
			return nil, recipeErr
		}
		defaultRecipeID = &recipeID
	}

	return settings.RestoreSettings(id, dto.TolerancePct, dto.MixerCapacity, defaultRecipeID)
}
