package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrStartNextRowCommandIsNotConstructed = errors.New(
	"StartNextRowCommand must be created via NewStartNextRowCommand constructor",
)

// StartNextRowCommand represents a request to begin batching the next
// pending row of a running order.
type StartNextRowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartNextRowCommand creates a command to start the next pending row.
func NewStartNextRowCommand(orderID kernel.UUID) (StartNextRowCommand, error) {
	cmd := StartNextRowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartNextRowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartNextRowCommand) Validate() error {
	return c.guard.Validate(ErrStartNextRowCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c StartNextRowCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartNextRowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
