package ports

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
)

// RecipeRepository defines the persistence contract for recipe aggregates.
type RecipeRepository interface {
	// Add persists a new recipe aggregate to storage.
	Add(ctx context.Context, aggregate *recipe.Recipe) error

	// Update persists changes to an existing recipe aggregate.
	Update(ctx context.Context, aggregate *recipe.Recipe) error

	// Get retrieves a recipe aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*recipe.Recipe, error)

	// GetByName retrieves a recipe aggregate by its unique name.
	GetByName(ctx context.Context, name string) (*recipe.Recipe, error)

	// GetAll retrieves every recipe ordered by name.
	GetAll(ctx context.Context) ([]*recipe.Recipe, error)

	// Delete removes a recipe aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
