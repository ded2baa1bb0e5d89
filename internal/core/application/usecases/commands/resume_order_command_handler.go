package commands

import (
	"context"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/order"
)

// ResumeOrderCommandHandler handles resuming a paused or stopped order.
// Stopped orders may be resumed; done orders stay done.
type ResumeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewResumeOrderCommandHandler creates a handler for resume operations.
func NewResumeOrderCommandHandler(uowFactory OrderUoWFactory) ResumeOrderCommandHandler {
	return ResumeOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resume command. Resuming a done order is a no-op
// that reports the current status.
func (h *ResumeOrderCommandHandler) Handle(ctx context.Context, cmd ResumeOrderCommand) (OrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderStatusResult{}, err
	}

	return transitionOrderStatus(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Resume)
}
