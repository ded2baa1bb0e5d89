package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrPauseOrderCommandIsNotConstructed = errors.New(
	"PauseOrderCommand must be created via NewPauseOrderCommand constructor",
)

// PauseOrderCommand represents a request to pause a running order.
type PauseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPauseOrderCommand creates a command to pause an order.
func NewPauseOrderCommand(orderID kernel.UUID) (PauseOrderCommand, error) {
	cmd := PauseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PauseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PauseOrderCommand) Validate() error {
	return c.guard.Validate(ErrPauseOrderCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c PauseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PauseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
