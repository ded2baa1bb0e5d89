package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrUpdateClientCommandIsNotConstructed = errors.New(
	"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
)

// UpdateClientCommand represents a request to update a client's details.
type UpdateClientCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	name         string
	cell         string
	email        string
	officeAddr   string
	deliveryAddr string

	guard guard.ConstructorGuard
}

// NewUpdateClientCommand creates a command to update a client.
func NewUpdateClientCommand(
	clientID kernel.UUID, name, cell, email, officeAddr, deliveryAddr string,
) (UpdateClientCommand, error) {
	cmd := UpdateClientCommand{
		cell:         cell,
		email:        email,
		officeAddr:   officeAddr,
		deliveryAddr: deliveryAddr,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setName(name),
	); err != nil {
		return UpdateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

// ClientID returns the target client's identifier.
func (c UpdateClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the new display name.
func (c UpdateClientCommand) Name() string { return c.name }

// Cell returns the new cell number.
func (c UpdateClientCommand) Cell() string { return c.cell }

// Email returns the new email address.
func (c UpdateClientCommand) Email() string { return c.email }

// OfficeAddr returns the new office address.
func (c UpdateClientCommand) OfficeAddr() string { return c.officeAddr }

// DeliveryAddr returns the new delivery address.
func (c UpdateClientCommand) DeliveryAddr() string { return c.deliveryAddr }

func (c *UpdateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *UpdateClientCommand) setName(name string) error {
	if name == "" {
		return client.ErrNameIsRequired
	}

	c.name = name
	return nil
}

// UpdateClientCommandHandler handles client updates.
type UpdateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientCommandHandler creates a handler for client updates.
func NewUpdateClientCommandHandler(uowFactory ClientUoWFactory) UpdateClientCommandHandler {
	return UpdateClientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the client update command.
func (h *UpdateClientCommandHandler) Handle(ctx context.Context, cmd UpdateClientCommand) error {
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

	clientRepo := uow.ClientRepository()
	aggregate, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	aggregate.SetContact(cmd.Cell(), cmd.Email())
	aggregate.SetAddresses(cmd.OfficeAddr(), cmd.DeliveryAddr())

	if err = clientRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
