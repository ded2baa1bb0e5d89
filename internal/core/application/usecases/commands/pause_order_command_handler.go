package commands

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
)

// OrderStatusResult reports an order's status after a lifecycle command.
// Changed is false when the command was a no-op against a terminal status.
type OrderStatusResult struct {
	Status  order.Status
	Changed bool
}

// PauseOrderCommandHandler handles pausing a running order. Any running row
// rolls back to pending so the batch restarts cleanly on resume.
type PauseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPauseOrderCommandHandler creates a handler for pause operations.
func NewPauseOrderCommandHandler(uowFactory OrderUoWFactory) PauseOrderCommandHandler {
	return PauseOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pause command. Pausing a done or stopped order is a
// no-op that reports the current status.
func (h *PauseOrderCommandHandler) Handle(ctx context.Context, cmd PauseOrderCommand) (OrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderStatusResult{}, err
	}

	return transitionOrderStatus(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Pause)
}

// transitionOrderStatus runs one status transition under the order's row lock
// and persists the aggregate only when the transition changed anything.
func transitionOrderStatus(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	transition func(*order.Order) (order.Status, bool),
) (OrderStatusResult, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return OrderStatusResult{}, err
	}

	status, changed := transition(aggregate)
	if changed {
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return OrderStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderStatusResult{}, err
	}

	return OrderStatusResult{Status: status, Changed: changed}, nil
}
