package ports

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	// Add persists a new client aggregate to storage.
	Add(ctx context.Context, aggregate *client.Client) error

	// Update persists changes to an existing client aggregate.
	Update(ctx context.Context, aggregate *client.Client) error

	// Get retrieves a client aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)

	// GetByName retrieves a client aggregate by its unique name.
	GetByName(ctx context.Context, name string) (*client.Client, error)

	// GetAll retrieves every client ordered by name.
	GetAll(ctx context.Context) ([]*client.Client, error)

	// Delete removes a client aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
