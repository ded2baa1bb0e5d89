package commands

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
)

// StopOrderCommandHandler handles stopping an order. Any running row rolls
// back to pending; the order keeps its rows and can be resumed later.
type StopOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStopOrderCommandHandler creates a handler for stop operations.
func NewStopOrderCommandHandler(uowFactory OrderUoWFactory) StopOrderCommandHandler {
	return StopOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop command. Stopping a done order is a no-op that
// reports the current status.
func (h *StopOrderCommandHandler) Handle(ctx context.Context, cmd StopOrderCommand) (OrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderStatusResult{}, err
	}

	return transitionOrderStatus(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Stop)
}
