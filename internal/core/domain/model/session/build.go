package session

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// Submission rejection reasons.
var (
	ErrIncompleteSession = errors.New(msgIncompleteStep)
	ErrProofRequired     = errors.New(msgProofMissing)
	ErrCompletionInPast  = errors.New("estimated completion must not be in the past")
)

// ValidateForSubmission runs the full set of submission preconditions:
// every step must validate, immediate cash or transfer settlement needs an
// attached proof, and the promised pickup time must be set and not in the
// past.
func (s Session) ValidateForSubmission() error {
	for _, step := range []int{StepCustomer, StepServices, StepReview, StepPayment} {
		if msg := s.ValidateStep(step); msg != "" {
			return errors.New(msg)
		}
	}

	if s.paymentConfirmation == PayNow && s.paymentMethod != order.Deposit && s.proofKey == "" {
		return ErrProofRequired
	}

	if s.estimatedCompletion.IsZero() || s.estimatedCompletion.Before(time.Now()) {
		return ErrCompletionInPast
	}

	return nil
}

// BuildOrder turns the session into an Order aggregate. The caller supplies
// the identity fields: the order's ID and number, and the ID of the customer
// the order belongs to (the freshly created one when a draft was staged).
// Unit prices are snapshotted into the lines at the tier in effect now, so
// later tier changes never reprice existing orders.
func (s Session) BuildOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
) (*order.Order, error) {
	if err := s.ValidateForSubmission(); err != nil {
		return nil, err
	}

	member := s.isMember()
	lines := make([]order.Line, 0, len(s.selectionOrder))
	for _, serviceID := range s.selectionOrder {
		sel := s.selections[serviceID]
		line, err := order.NewLine(
			sel.service.ID(),
			sel.service.Name(),
			sel.service.IsWeightBased(),
			sel.quantity,
			sel.weight,
			sel.service.EffectivePrice(member),
			sel.notes,
			sel.customItems,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return order.NewOrder(
		id,
		number,
		customerID,
		lines,
		s.paymentMethod,
		s.estimatedCompletion,
		s.orderNotes,
	)
}
