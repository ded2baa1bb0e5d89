package commands

import (
	"context"
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/client"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var ErrCreateClientCommandIsNotConstructed = errors.New(
	"CreateClientCommand must be created via NewCreateClientCommand constructor",
)

// CreateClientCommand represents a request to register a new client.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	name         string
	cell         string
	email        string
	officeAddr   string
	deliveryAddr string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
func NewCreateClientCommand(
	clientID kernel.UUID, name, cell, email, officeAddr, deliveryAddr string,
) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
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
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// ClientID returns the identifier for the new client.
func (c CreateClientCommand) ClientID() kernel.UUID { return c.clientID }

// Name returns the client's display name.
func (c CreateClientCommand) Name() string { return c.name }

// Cell returns the client's cell number.
func (c CreateClientCommand) Cell() string { return c.cell }

// Email returns the client's email address.
func (c CreateClientCommand) Email() string { return c.email }

// OfficeAddr returns the client's office address.
func (c CreateClientCommand) OfficeAddr() string { return c.officeAddr }

// DeliveryAddr returns the client's delivery address.
func (c CreateClientCommand) DeliveryAddr() string { return c.deliveryAddr }

func (c *CreateClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateClientCommand) setName(name string) error {
	if name == "" {
		return client.ErrNameIsRequired
	}

	c.name = name
	return nil
}

// CreateClientCommandHandler handles client registration.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{uowFactory: uowFactory}
}

// Handle processes the client registration command.
func (h *CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) error {
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

	aggregate, err := client.NewClient(
		cmd.ClientID(), cmd.Name(), cmd.Cell(), cmd.Email(), cmd.OfficeAddr(), cmd.DeliveryAddr(),
	)
	if err != nil {
		return err
	}

	if err = uow.ClientRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
