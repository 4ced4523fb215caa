package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateServiceCommandIsNotConstructed = errors.New(
	"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
)

// CreateServiceCommand represents adding an entry to the service catalog.
// Pricing and weight-bound rules are enforced by the catalog entity; the
// command carries the raw attributes.
type CreateServiceCommand struct { //nolint:recvcheck //using for validation
	serviceID     kernel.UUID
	name          string
	category      string
	price         kernel.Money
	memberPrice   *kernel.Money
	weightBased   bool
	minWeight     float64
	maxWeight     float64
	durationHours int

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand creates a command to add a catalog service.
func NewCreateServiceCommand(
	serviceID kernel.UUID,
	name, category string,
	price kernel.Money,
	memberPrice *kernel.Money,
	weightBased bool,
	minWeight, maxWeight float64,
	durationHours int,
) (CreateServiceCommand, error) {
	cmd := CreateServiceCommand{
		guard:         guard.NewConstructorGuard(),
		name:          name,
		category:      category,
		price:         price,
		memberPrice:   memberPrice,
		weightBased:   weightBased,
		minWeight:     minWeight,
		maxWeight:     maxWeight,
		durationHours: durationHours,
	}

	if err := cmd.setServiceID(serviceID); err != nil {
		return CreateServiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

// ServiceID returns the unique identifier for the new service.
func (c CreateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// Name returns the service name.
func (c CreateServiceCommand) Name() string {
	return c.name
}

// Category returns the catalog category.
func (c CreateServiceCommand) Category() string {
	return c.category
}

// Price returns the regular unit price.
func (c CreateServiceCommand) Price() kernel.Money {
	return c.price
}

// MemberPrice returns the member unit price, nil when members pay the
// regular price.
func (c CreateServiceCommand) MemberPrice() *kernel.Money {
	return c.memberPrice
}

// WeightBased reports whether the service bills by weight.
func (c CreateServiceCommand) WeightBased() bool {
	return c.weightBased
}

// MinWeight returns the lower weight bound, zero selecting the default.
func (c CreateServiceCommand) MinWeight() float64 {
	return c.minWeight
}

// MaxWeight returns the upper weight bound, zero selecting the default.
func (c CreateServiceCommand) MaxWeight() float64 {
	return c.maxWeight
}

// DurationHours returns the advertised turnaround time.
func (c CreateServiceCommand) DurationHours() int {
	return c.durationHours
}

func (c *CreateServiceCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}
