// Package client provides the Client aggregate: the customer a concrete
// order is produced for. Clients are existence-checked by the production
// engine but otherwise only touched by CRUD operations.
package client

import (
	"errors"

	"github.com/hasanshibly90/sisl-rmc-scada/internal/core/domain/model/kernel"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/errs"
	"github.com/hasanshibly90/sisl-rmc-scada/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating or renaming a client with an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

// Client is a customer with a unique name and optional contact details.
type Client struct {
	id           kernel.UUID
	name         string
	cell         string
	email        string
	officeAddr   string
	deliveryAddr string
	guard        guard.ConstructorGuard
}

// NewClient creates a Client. Only the name is required.
func NewClient(id kernel.UUID, name, cell, email, officeAddr, deliveryAddr string) (*Client, error) {
	c := &Client{
		cell:         cell,
		email:        email,
		officeAddr:   officeAddr,
		deliveryAddr: deliveryAddr,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name, cell, email, officeAddr, deliveryAddr string) (*Client, error) {
	return NewClient(id, name, cell, email, officeAddr, deliveryAddr)
}

// Validate ensures the Client was built via NewClient.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// IsEqual compares clients by identity.
func (c *Client) IsEqual(other *Client) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the client identity.
func (c *Client) ID() kernel.UUID { return c.id }

// Name returns the unique client name.
func (c *Client) Name() string { return c.name }

// Cell returns the contact cell number, possibly empty.
func (c *Client) Cell() string { return c.cell }

// Email returns the contact email, possibly empty.
func (c *Client) Email() string { return c.email }

// OfficeAddr returns the office address, possibly empty.
func (c *Client) OfficeAddr() string { return c.officeAddr }

// DeliveryAddr returns the delivery address, possibly empty.
func (c *Client) DeliveryAddr() string { return c.deliveryAddr }

// Rename changes the client name.
func (c *Client) Rename(name string) error {
	return c.setName(name)
}

// SetContact updates the contact details.
func (c *Client) SetContact(cell, email string) {
	c.cell = cell
	c.email = email
}

// SetAddresses updates the office and delivery addresses.
func (c *Client) SetAddresses(officeAddr, deliveryAddr string) {
	c.officeAddr = officeAddr
	c.deliveryAddr = deliveryAddr
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
