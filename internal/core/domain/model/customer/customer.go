package customer

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrNotAMember is returned when a balance operation is attempted on a
	// regular customer.
	ErrNotAMember = errors.New("deposit balance is only available for members")

	// ErrInsufficientBalance is returned when a deduction exceeds the
	// member's available balance.
	ErrInsufficientBalance = errors.New("insufficient deposit balance")
)

// MinNameLength is the shortest accepted customer name.
const MinNameLength = 2

// Customer is the aggregate root for a laundry customer.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier
//   - Name must be at least MinNameLength characters
//   - Only members carry a deposit balance
//   - Balance never goes negative
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	id      kernel.UUID
	name    string
	phone   string
	address string

	// tier determines pricing and deposit eligibility
	tier Type

	// balance is the prepaid deposit amount; always zero for regulars
	balance kernel.Money

	// isConstructed ensures the customer was created via a constructor
	isConstructed bool
}

// NewCustomer creates a new Customer with a zero balance.
// Regular customers are created the same way as members; the tier controls
// whether balance operations are later permitted.
func NewCustomer(id kernel.UUID, name, phone, address string, tier Type) (*Customer, error) {
	c := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setTier(tier),
	); err != nil {
		return nil, err
	}

	c.phone = phone
	c.address = address
	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence, including its
// stored balance. Used by repositories only.
func RestoreCustomer(
	id kernel.UUID,
	name, phone, address string,
	tier Type,
	balance kernel.Money,
) (*Customer, error) {
	c, err := NewCustomer(id, name, phone, address, tier)
	if err != nil {
		return nil, err
	}

	if !balance.IsZero() && tier != Member {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"balance is invalid",
			fmt.Errorf("regular customer cannot carry balance %s", balance),
		)
	}

	c.balance = balance
	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number. May be empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's address. May be empty.
func (c *Customer) Address() string {
	return c.address
}

// Tier returns the customer tier.
func (c *Customer) Tier() Type {
	return c.tier
}

// IsMember reports whether the customer is on the member tier.
func (c *Customer) IsMember() bool {
	return c.tier == Member
}

// Balance returns the current deposit balance. Always zero for regulars.
func (c *Customer) Balance() kernel.Money {
	return c.balance
}

// TopUp adds the given amount to a member's deposit balance.
// Returns ErrNotAMember for regular customers.
func (c *Customer) TopUp(amount kernel.Money) error {
	if c.tier != Member {
		return ErrNotAMember
	}
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("top-up amount")
	}

	c.balance = c.balance.Add(amount)
	return nil
}

// Deduct removes the given amount from a member's deposit balance.
// Returns ErrNotAMember for regular customers and ErrInsufficientBalance
// when the balance does not cover the amount.
func (c *Customer) Deduct(amount kernel.Money) error {
	if c.tier != Member {
		return ErrNotAMember
	}
	if !c.balance.GreaterOrEqual(amount) {
		return fmt.Errorf("%w: available %s", ErrInsufficientBalance, c.balance)
	}

	remaining, err := c.balance.Sub(amount)
	if err != nil {
		return err
	}

	c.balance = remaining
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if utf8.RuneCountInString(name) < MinNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"name is invalid",
			fmt.Errorf("%q is shorter than %d characters", name, MinNameLength),
		)
	}
	c.name = name
	return nil
}

func (c *Customer) setTier(tier Type) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	c.tier = tier
	return nil
}
