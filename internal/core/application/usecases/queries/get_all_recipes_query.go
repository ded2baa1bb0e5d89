package queries

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAllRecipesQueryIsNotConstructed = errors.New(
	"GetAllRecipesQuery must be created via NewGetAllRecipesQuery constructor",
)

// GetAllRecipesQuery lists every mix design sorted by name.
type GetAllRecipesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRecipesQuery creates a query to list mix designs.
func NewGetAllRecipesQuery() GetAllRecipesQuery {
	return GetAllRecipesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRecipesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRecipesQueryIsNotConstructed)
}

// GetAllRecipesQueryResponse is the mix design read model.
type GetAllRecipesQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Setpoints recipe.Quantities
}

// GetAllRecipesQueryHandler lists mix designs with raw SQL.
type GetAllRecipesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRecipesQueryHandler creates a handler for mix design list queries.
func NewGetAllRecipesQueryHandler(db *gorm.DB) GetAllRecipesQueryHandler {
	return GetAllRecipesQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAllRecipesQueryHandler) Handle(
	ctx context.Context,
	query GetAllRecipesQuery,
) ([]GetAllRecipesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recipes := make([]GetAllRecipesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cement,
			sand,
			agg1,
			agg2,
			water,
			admix
		FROM recipes
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRecipesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Setpoints.Cement,
			&resp.Setpoints.Sand,
			&resp.Setpoints.Agg1,
			&resp.Setpoints.Agg2,
			&resp.Setpoints.Water,
			&resp.Setpoints.Admix,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		recipes = append(recipes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipes, nil
}
