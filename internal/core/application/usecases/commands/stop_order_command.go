package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrStopOrderCommandIsNotConstructed = errors.New(
	"StopOrderCommand must be created via NewStopOrderCommand constructor",
)

// StopOrderCommand represents a request to stop an order.
type StopOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopOrderCommand creates a command to stop an order.
func NewStopOrderCommand(orderID kernel.UUID) (StopOrderCommand, error) {
	cmd := StopOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StopOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StopOrderCommand) Validate() error {
	return c.guard.Validate(ErrStopOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StopOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StopOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
