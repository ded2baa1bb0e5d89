package commands

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTotalVolumeIsInvalid = errors.New("total volume must be greater than 0")
)

// CreateOrderCommand represents a request to open a new production order for
// a client against a recipe.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, recipeID, 12.5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	recipeID    kernel.UUID
	totalVolume float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new production order.
// Validates that all identifiers are valid and the total volume is positive.
func NewCreateOrderCommand(
	orderID, clientID, recipeID kernel.UUID, totalVolume float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setRecipeID(recipeID),
		cmd.setTotalVolume(totalVolume),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the ordering client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RecipeID returns the mix recipe identifier.
func (c CreateOrderCommand) RecipeID() kernel.UUID {
	return c.recipeID
}

// TotalVolume returns the ordered volume in cubic meters.
func (c CreateOrderCommand) TotalVolume() float64 {
	return c.totalVolume
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRecipeID(recipeID kernel.UUID) error {
	if err := recipeID.Validate(); err != nil {
		return err
	}

	c.recipeID = recipeID
	return nil
}

func (c *CreateOrderCommand) setTotalVolume(totalVolume float64) error {
	if totalVolume <= 0 {
		return ErrTotalVolumeIsInvalid
	}

	c.totalVolume = totalVolume
	return nil
}
