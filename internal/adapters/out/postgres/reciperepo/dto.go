// Package reciperepo provides data transfer objects and mapping functions for recipe persistence.
// This package implements the repository pattern for the recipe domain aggregate, handling
// the conversion between domain entities and database representations.
package reciperepo

import (
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"

	"github.com/google/uuid"
)

// RecipeDTO represents the database structure for persisting recipe aggregates.
// Each material channel setpoint is stored in its own column, weights per one
// unit of mix.
type RecipeDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cement float64   `gorm:"type:numeric(12,3);not null"`
	Sand   float64   `gorm:"type:numeric(12,3);not null"`
	Agg1   float64   `gorm:"type:numeric(12,3);not null"`
	Agg2   float64   `gorm:"type:numeric(12,3);not null"`
	Water  float64   `gorm:"type:numeric(12,3);not null"`
	Admix  float64   `gorm:"type:numeric(12,3);not null"`
}

// TableName specifies the database table name for recipe entities.
func (RecipeDTO) TableName() string {
	return "recipes"
}

// fromDomain converts a recipe domain aggregate to its database representation.
func fromDomain(aggregate *recipe.Recipe) RecipeDTO {
	sp := aggregate.Setpoints()
	return RecipeDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Cement: sp.Cement,
		Sand:   sp.Sand,
		Agg1:   sp.Agg1,
		Agg2:   sp.Agg2,
		Water:  sp.Water,
		Admix:  sp.Admix,
	}
}

// toDomain converts a database DTO to a recipe domain aggregate.
func toDomain(dto RecipeDTO) (*recipe.Recipe, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return recipe.RestoreRecipe(id, dto.Name, recipe.Quantities{
		Cement: dto.Cement,
		Sand:   dto.Sand,
		Agg1:   dto.Agg1,
		Agg2:   dto.Agg2,
		Water:  dto.Water,
		Admix:  dto.Admix,
	})
}
