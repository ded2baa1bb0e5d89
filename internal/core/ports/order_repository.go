// Package ports defines repository interfaces for the batching plant domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored with its complete production state: every planned row
// and every allocated car run.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// row state transitions and newly allocated runs.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Rows are returned in sequence order, runs in load sequence order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and takes a row-level lock
	// on it for the remainder of the surrounding transaction. Used by the
	// production engine so concurrent commands against the same order
	// serialize instead of clobbering each other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders newest first, up to limit.
	GetAll(ctx context.Context, limit int) ([]*order.Order, error)

	// ExistsForRecipe reports whether any order references the given recipe.
	ExistsForRecipe(ctx context.Context, recipeID kernel.UUID) (bool, error)

	// ExistsForClient reports whether any order references the given client.
	ExistsForClient(ctx context.Context, clientID kernel.UUID) (bool, error)

	// ExistsRunForVehicle reports whether any car run references the given vehicle.
	ExistsRunForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error)
}
