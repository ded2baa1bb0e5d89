package queries

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery computes an order's production summary: produced and
// remaining volume plus set, actual and delta totals over the completed rows.
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for an order's production summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}
	return GetOrderSummaryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderSummaryQueryResponse is the production summary read model.
type GetOrderSummaryQueryResponse struct {
	OrderID         kernel.UUID
	Status          string
	TotalVolume     float64
	ProducedVolume  float64
	RemainingVolume float64
	SetTotals       recipe.Quantities
	ActualTotals    recipe.Quantities
	DeltaTotals     recipe.Quantities
}
