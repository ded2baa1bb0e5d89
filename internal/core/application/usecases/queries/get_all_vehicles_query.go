package queries

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery lists every transit mixer sorted by name.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query to list vehicles.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is the vehicle read model.
type GetAllVehiclesQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Capacity   float64
	Plate      string
	DriverName string
}

// GetAllVehiclesQueryHandler lists vehicles with raw SQL.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for vehicle list queries.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			capacity,
			plate,
			driver_name
		FROM vehicles
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllVehiclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Capacity,
			&resp.Plate,
			&resp.DriverName,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
