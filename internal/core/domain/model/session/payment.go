package session

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
)

// Confirmation says when the customer settles the bill.
type Confirmation int

const (
	// PayNow means the bill is settled at drop-off; a proof of payment is
	// required for cash and transfer before the order can be submitted.
	PayNow Confirmation = iota + 1

	// PayLater defers settlement until pickup.
	PayLater
)

// String returns the lowercase wire representation of the confirmation.
func (c Confirmation) String() string {
	switch c {
	case PayNow:
		return "now"
	case PayLater:
		return "later"
	default:
		return "unknown"
	}
}

// Deposit rejection messages, ordered by how early the precondition fails.
const (
	msgNoCustomer   = "customer not selected"
	msgNotAMember   = "deposit only for members"
	msgProofMissing = "proof of payment is required"
)

// PaymentMethod returns the currently chosen payment method.
func (s Session) PaymentMethod() order.PaymentMethod {
	return s.paymentMethod
}

// PaymentConfirmation returns the chosen settlement moment.
func (s Session) PaymentConfirmation() Confirmation {
	return s.paymentConfirmation
}

// ProofKey returns the storage key of the attached proof of payment, empty
// when none is attached.
func (s Session) ProofKey() string {
	return s.proofKey
}

// SetPaymentMethod switches the payment method. Choosing deposit is rejected
// eagerly when the session is not eligible for it; the previous method stays
// in effect and the rejection reason is exposed via Error. A successful
// switch to deposit forces immediate settlement and drops any attached
// proof, since the deduction itself is the proof.
func (s Session) SetPaymentMethod(method order.PaymentMethod) (Session, error) {
	if err := method.Validate(); err != nil {
		return s, err
	}

	next := s.clone()

	if method == order.Deposit {
		if msg := s.depositWarning(); msg != "" {
			next.errMsg = msg
			return next, nil
		}
		next.paymentMethod = order.Deposit
		next.paymentConfirmation = PayNow
		next.proofKey = ""
		next.errMsg = ""
		return next, nil
	}

	next.paymentMethod = method
	next.errMsg = ""
	return next, nil
}

// SetPaymentConfirmation switches between settling now and at pickup.
// Deposit payments always settle immediately, so the call is ignored for
// them. Deferring settlement drops any attached proof.
func (s Session) SetPaymentConfirmation(c Confirmation) Session {
	if c != PayNow && c != PayLater {
		return s
	}

	next := s.clone()
	if next.paymentMethod == order.Deposit {
		next.paymentConfirmation = PayNow
		return next
	}

	next.paymentConfirmation = c
	if c == PayLater {
		next.proofKey = ""
	}
	return next
}

// AttachProof records the storage key of an uploaded proof of payment.
func (s Session) AttachProof(key string) Session {
	next := s.clone()
	next.proofKey = key
	return next
}

// RemoveProof detaches the proof of payment.
func (s Session) RemoveProof() Session {
	next := s.clone()
	next.proofKey = ""
	return next
}

// DepositPaymentValid reports whether paying from the customer's prepaid
// balance is currently possible.
func (s Session) DepositPaymentValid() bool {
	return s.depositWarning() == ""
}

// DepositWarning explains why the deposit method cannot be used, empty when
// it can. Checks run in precondition order so the operator always sees the
// most fundamental problem first.
func (s Session) DepositWarning() string {
	return s.depositWarning()
}

func (s Session) depositWarning() string {
	if s.customer == nil {
		return msgNoCustomer
	}
	if !s.customer.IsMember() {
		return msgNotAMember
	}
	if !s.customer.Balance().GreaterOrEqual(s.totals.Total) {
		return fmt.Sprintf("insufficient balance: available %s", s.customer.Balance())
	}
	return ""
}
