package queries

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler lists recent orders with raw SQL for read
// performance, joining client and recipe names and counting rows inline.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			c.name,
			o.recipe_id,
			r.name,
			o.total_volume,
			o.status,
			(SELECT COUNT(*) FROM order_rows ors WHERE ors.order_id = o.id),
			(SELECT COUNT(*) FROM order_rows ors WHERE ors.order_id = o.id AND ors.state = ?),
			o.created_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		JOIN recipes r ON r.id = o.recipe_id
		ORDER BY o.created_at DESC
		LIMIT ?
	`, order.RowDone, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, clientID, recipeID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&clientID,
			&resp.ClientName,
			&recipeID,
			&resp.RecipeName,
			&resp.TotalVolume,
			&status,
			&resp.RowsTotal,
			&resp.RowsDone,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.RecipeID, err = kernel.UUIDFromBytes(recipeID[:]); err != nil {
			return nil, err
		}
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
