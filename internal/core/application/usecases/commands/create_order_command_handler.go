package commands

import (
	"context"
	"time"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
)

// CreateOrderResult reports the outcome of opening an order.
type CreateOrderResult struct {
	RowsPlanned int
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Verifies the referenced client and recipe exist, reads the mixer capacity
// from plant settings and plans the order's batch rows.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory CreateOrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// The order opens in running status with its rows planned against the
// current mixer capacity.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// Referential checks: both must exist before the order is planned
	if _, err := uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return CreateOrderResult{}, err
	}
	if _, err := uow.RecipeRepository().Get(ctx, cmd.RecipeID()); err != nil {
		return CreateOrderResult{}, err
	}

	plantSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.RecipeID(),
		cmd.TotalVolume(), plantSettings.MixerCapacity(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{RowsPlanned: len(aggregate.Rows())}, nil
}
