package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	ErrDeleteClientCommandIsNotConstructed = errors.New(
		"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
	)
	// ErrClientHasOrders blocks deleting a client still referenced by orders.
	ErrClientHasOrders = fmt.Errorf("%w: client has related orders and cannot be deleted", errs.ErrValueIsInvalid)
)

// DeleteClientCommand represents a request to remove a client.
type DeleteClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteClientCommand creates a command to remove a client.
func NewDeleteClientCommand(clientID kernel.UUID) (DeleteClientCommand, error) {
	cmd := DeleteClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setClientID(clientID); err != nil {
		return DeleteClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

// ClientID returns the target client's identifier.
func (c DeleteClientCommand) ClientID() kernel.UUID { return c.clientID }

func (c *DeleteClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

// DeleteClientCommandHandler handles client removal. Clients referenced by
// any order cannot be deleted.
type DeleteClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewDeleteClientCommandHandler creates a handler for client removal.
func NewDeleteClientCommandHandler(uowFactory ClientUoWFactory) DeleteClientCommandHandler {
	return DeleteClientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the client removal command.
func (h *DeleteClientCommandHandler) Handle(ctx context.Context, cmd DeleteClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	referenced, err := uow.OrderRepository().ExistsForClient(ctx, cmd.ClientID())
	if err != nil {
		return err
	}
	if referenced {
		return ErrClientHasOrders
	}

	if err = uow.ClientRepository().Delete(ctx, cmd.ClientID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
