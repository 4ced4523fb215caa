package commands

import (
	"errors"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer outside
// of the order flow, for example when a walk-in asks for a membership.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	phone      string
	address    string
	tier       customer.Type

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Name and tier rules are enforced by the customer aggregate on handling;
// the command validates structural fields only.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, phone, address string,
	tier customer.Type,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard:   guard.NewConstructorGuard(),
		name:    name,
		phone:   phone,
		address: address,
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setTier(tier),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

// Tier returns the requested membership tier.
func (c CreateCustomerCommand) Tier() customer.Type {
	return c.tier
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setTier(tier customer.Type) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	c.tier = tier
	return nil
}
