package queries

import (
	"errors"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrGetRunsByOrderQueryIsNotConstructed = errors.New(
	"GetRunsByOrderQuery must be created via NewGetRunsByOrderQuery constructor",
)

// GetRunsByOrderQuery lists an order's delivery runs in load sequence order,
// with the hauling vehicle resolved for display.
type GetRunsByOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRunsByOrderQuery creates a query for an order's delivery runs.
func NewGetRunsByOrderQuery(orderID kernel.UUID) (GetRunsByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetRunsByOrderQuery{}, err
	}
	return GetRunsByOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRunsByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetRunsByOrderQueryIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (q GetRunsByOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetRunsByOrderQueryResponse is the delivery run read model.
type GetRunsByOrderQueryResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	VehicleName string
	LoadSeq     int
	Volume      float64
	Note        string
	RowStartSeq int
	RowEndSeq   int
	CreatedAt   time.Time
}
