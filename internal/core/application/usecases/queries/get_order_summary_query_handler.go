package queries

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/orderrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/reciperepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler restores the order and its recipe and
// delegates the arithmetic to the domain summarizer.
type GetOrderSummaryQueryHandler struct {
	db         *gorm.DB
	summarizer services.OrderSummarizer
}

// NewGetOrderSummaryQueryHandler creates a handler for summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db, summarizer: services.NewOrderSummarizer()}
}

// Handle executes the query.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	aggregate, err := orderrepo.NewGormOrderRepository(h.db, noTracking{}).Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	rec, err := reciperepo.NewGormRecipeRepository(h.db, noTracking{}).Get(ctx, aggregate.RecipeID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	summary, err := h.summarizer.Summarize(aggregate, rec.Setpoints())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return GetOrderSummaryQueryResponse{
		OrderID:         aggregate.ID(),
		Status:          aggregate.Status().String(),
		TotalVolume:     aggregate.TotalVolume(),
		ProducedVolume:  summary.ProducedVolume,
		RemainingVolume: summary.RemainingVolume,
		SetTotals:       summary.SetTotals,
		ActualTotals:    summary.ActualTotals,
		DeltaTotals:     summary.DeltaTotals,
	}, nil
}
