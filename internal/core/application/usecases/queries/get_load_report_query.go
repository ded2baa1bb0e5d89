package queries

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrGetLoadReportQueryIsNotConstructed = errors.New(
	"GetLoadReportQuery must be created via NewGetLoadReportQuery constructor",
)

// GetLoadReportQuery renders an order's row-by-row material breakdown.
// An optional vehicle filter narrows the report to the rows hauled by
// that vehicle's runs.
type GetLoadReportQuery struct {
	orderID   kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLoadReportQuery creates a query for an order's load report.
func NewGetLoadReportQuery(orderID kernel.UUID, vehicleID *kernel.UUID) (GetLoadReportQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLoadReportQuery{}, err
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return GetLoadReportQuery{}, err
		}
	}
	return GetLoadReportQuery{
		orderID:   orderID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLoadReportQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadReportQueryIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (q GetLoadReportQuery) OrderID() kernel.UUID { return q.orderID }

// VehicleID returns the vehicle filter, or nil for the whole order.
func (q GetLoadReportQuery) VehicleID() *kernel.UUID { return q.vehicleID }

// GetLoadReportQueryResponse is the load report read model.
type GetLoadReportQueryResponse struct {
	OrderID kernel.UUID
	Rows    []services.LoadReportRow
	Totals  services.LoadReportTotals
}
