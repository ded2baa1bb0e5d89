package queries

import (
	"errors"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/recipe"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full production state:
// every batch row and every allocated delivery run.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// OrderRowResponse is the read model for one batch row.
type OrderRowResponse struct {
	ID            kernel.UUID
	SeqNo         int
	PlannedVolume float64
	State         string
	Actual        *recipe.Quantities
	StartedAt     *time.Time
	CompletedAt   *time.Time
	CarRunID      *kernel.UUID
}

// CarRunResponse is the read model for one delivery run.
type CarRunResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	LoadSeq     int
	Volume      float64
	Note        string
	RowStartSeq int
	RowEndSeq   int
	CreatedAt   time.Time
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	ClientID    kernel.UUID
	RecipeID    kernel.UUID
	TotalVolume float64
	Status      string
	CreatedAt   time.Time
	Rows        []OrderRowResponse
	Runs        []CarRunResponse
}
