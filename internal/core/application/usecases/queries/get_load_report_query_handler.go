package queries

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/orderrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/reciperepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetLoadReportQueryHandler restores the order and its recipe and delegates
// the row-by-row arithmetic to the domain report builder.
type GetLoadReportQueryHandler struct {
	db      *gorm.DB
	builder services.LoadReportBuilder
}

// NewGetLoadReportQueryHandler creates a handler for load report queries.
func NewGetLoadReportQueryHandler(db *gorm.DB) GetLoadReportQueryHandler {
	return GetLoadReportQueryHandler{db: db, builder: services.NewLoadReportBuilder()}
}

// Handle executes the query.
func (h GetLoadReportQueryHandler) Handle(
	ctx context.Context,
	query GetLoadReportQuery,
) (GetLoadReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadReportQueryResponse{}, err
	}

	aggregate, err := orderrepo.NewGormOrderRepository(h.db, noTracking{}).Get(ctx, query.OrderID())
	if err != nil {
		return GetLoadReportQueryResponse{}, err
	}

	rec, err := reciperepo.NewGormRecipeRepository(h.db, noTracking{}).Get(ctx, aggregate.RecipeID())
	if err != nil {
		return GetLoadReportQueryResponse{}, err
	}

	reportRows, totals, err := h.builder.Build(aggregate, rec.Setpoints(), query.VehicleID())
	if err != nil {
		return GetLoadReportQueryResponse{}, err
	}

	return GetLoadReportQueryResponse{
		OrderID: aggregate.ID(),
		Rows:    reportRows,
		Totals:  totals,
	}, nil
}
