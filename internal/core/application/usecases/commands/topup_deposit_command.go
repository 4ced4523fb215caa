package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrTopUpDepositCommandIsNotConstructed = errors.New(
	"TopUpDepositCommand must be created via NewTopUpDepositCommand constructor",
)

// TopUpDepositCommand represents adding funds to a member's prepaid balance.
type TopUpDepositCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewTopUpDepositCommand creates a command to top up a member's deposit.
// The amount must be positive.
func NewTopUpDepositCommand(customerID kernel.UUID, amount kernel.Money) (TopUpDepositCommand, error) {
	cmd := TopUpDepositCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
	); err != nil {
		return TopUpDepositCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TopUpDepositCommand) Validate() error {
	return c.guard.Validate(ErrTopUpDepositCommandIsNotConstructed)
}

// CustomerID returns the identifier of the member being topped up.
func (c TopUpDepositCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the amount to add to the balance.
func (c TopUpDepositCommand) Amount() kernel.Money {
	return c.amount
}

func (c *TopUpDepositCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *TopUpDepositCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("top-up amount")
	}

	c.amount = amount
	return nil
}
