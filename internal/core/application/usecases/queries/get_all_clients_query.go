package queries

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllClientsQueryIsNotConstructed = errors.New(
	"GetAllClientsQuery must be created via NewGetAllClientsQuery constructor",
)

// GetAllClientsQuery lists every client sorted by name.
type GetAllClientsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllClientsQuery creates a query to list clients.
func NewGetAllClientsQuery() GetAllClientsQuery {
	return GetAllClientsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllClientsQueryIsNotConstructed)
}

// GetAllClientsQueryResponse is the client read model.
type GetAllClientsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Cell         string
	Email        string
	OfficeAddr   string
	DeliveryAddr string
}

// GetAllClientsQueryHandler lists clients with raw SQL.
type GetAllClientsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllClientsQueryHandler creates a handler for client list queries.
func NewGetAllClientsQueryHandler(db *gorm.DB) GetAllClientsQueryHandler {
	return GetAllClientsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllClientsQueryHandler) Handle(
	ctx context.Context,
	query GetAllClientsQuery,
) ([]GetAllClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	clients := make([]GetAllClientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cell,
			email,
			office_addr,
			delivery_addr
		FROM clients
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllClientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Cell,
			&resp.Email,
			&resp.OfficeAddr,
			&resp.DeliveryAddr,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		clients = append(clients, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
