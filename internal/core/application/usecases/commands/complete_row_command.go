package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrCompleteRowCommandIsNotConstructed = errors.New(
	"CompleteRowCommand must be created via NewCompleteRowCommand constructor",
)

// CompleteRowCommand represents a request to mark one batch row done and
// record its weighed-in material readings.
type CompleteRowCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	rowID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteRowCommand creates a command to complete a batch row.
func NewCompleteRowCommand(orderID, rowID kernel.UUID) (CompleteRowCommand, error) {
	cmd := CompleteRowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setRowID(rowID),
	); err != nil {
		return CompleteRowCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteRowCommand) Validate() error {
	return c.guard.Validate(ErrCompleteRowCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c CompleteRowCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RowID returns the target row's identifier.
func (c CompleteRowCommand) RowID() kernel.UUID {
	return c.rowID
}

func (c *CompleteRowCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteRowCommand) setRowID(rowID kernel.UUID) error {
	if err := rowID.Validate(); err != nil {
		return err
	}

	c.rowID = rowID
	return nil
}
