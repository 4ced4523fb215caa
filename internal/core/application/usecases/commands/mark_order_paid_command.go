package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents settling an order that was composed with
// deferred payment. An optional proof key references an uploaded proof of
// payment image.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	proofKey string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to record payment for an order.
// The proof key may be empty for cash settled at the counter.
func NewMarkOrderPaidCommand(orderID kernel.UUID, proofKey string) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{
		guard:    guard.NewConstructorGuard(),
		proofKey: proofKey,
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProofKey returns the storage key of the proof of payment, empty when none
// was uploaded.
func (c MarkOrderPaidCommand) ProofKey() string {
	return c.proofKey
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
