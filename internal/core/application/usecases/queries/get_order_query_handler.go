package queries

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/adapters/out/postgres/orderrepo"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderQueryHandler restores the full aggregate through the order
// repository so rows and runs come back in their domain ordering.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	repo := orderrepo.NewGormOrderRepository(h.db, noTracking{})
	aggregate, err := repo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return orderToResponse(aggregate), nil
}

func orderToResponse(aggregate *order.Order) GetOrderQueryResponse {
	resp := GetOrderQueryResponse{
		ID:          aggregate.ID(),
		ClientID:    aggregate.ClientID(),
		RecipeID:    aggregate.RecipeID(),
		TotalVolume: aggregate.TotalVolume(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		Rows:        make([]OrderRowResponse, 0, len(aggregate.Rows())),
		Runs:        make([]CarRunResponse, 0, len(aggregate.Runs())),
	}

	for _, row := range aggregate.Rows() {
		resp.Rows = append(resp.Rows, OrderRowResponse{
			ID:            row.ID(),
			SeqNo:         row.SeqNo(),
			PlannedVolume: row.PlannedVolume(),
			State:         row.State().String(),
			Actual:        row.Actual(),
			StartedAt:     row.StartedAt(),
			CompletedAt:   row.CompletedAt(),
			CarRunID:      row.CarRunID(),
		})
	}

	for _, run := range aggregate.Runs() {
		resp.Runs = append(resp.Runs, CarRunResponse{
			ID:          run.ID(),
			VehicleID:   run.VehicleID(),
			LoadSeq:     run.LoadSeq(),
			Volume:      run.Volume(),
			Note:        run.Note(),
			RowStartSeq: run.RowStartSeq(),
			RowEndSeq:   run.RowEndSeq(),
			CreatedAt:   run.CreatedAt(),
		})
	}

	return resp
}
