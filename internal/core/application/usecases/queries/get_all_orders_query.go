package queries

import (
	"errors"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

// DefaultOrderListLimit caps the order list when no limit is requested.
const DefaultOrderListLimit = 50

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves recent orders for the dashboard list,
// newest first. A non-positive limit falls back to DefaultOrderListLimit.
type GetAllOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to list recent orders.
func NewGetAllOrdersQuery(limit int) GetAllOrdersQuery {
	if limit <= 0 {
		limit = DefaultOrderListLimit
	}
	return GetAllOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to return.
func (q GetAllOrdersQuery) Limit() int { return q.limit }

// GetAllOrdersQueryResponse is the order list read model. Row counts come
// from the order_rows table so the list shows production progress without
// loading full aggregates.
type GetAllOrdersQueryResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	ClientName  string
	RecipeID    kernel.UUID
	RecipeName  string
	TotalVolume float64
	Status      string
	RowsTotal   int
	RowsDone    int
	CreatedAt   time.Time
}
