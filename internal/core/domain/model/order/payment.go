package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod int

const (
	// UnknownPaymentMethod represents an invalid or undefined method.
	UnknownPaymentMethod PaymentMethod = iota

	// Cash payment at the counter.
	Cash

	// Transfer is a bank transfer.
	Transfer

	// Deposit is an immediate deduction from a member's prepaid balance.
	// Available to members only; requires no proof of payment.
	Deposit
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		UnknownPaymentMethod: "unknown",
		Cash:                 "cash",
		Transfer:             "transfer",
		Deposit:              "deposit",
	}
}

// Validate checks that the method is one of the defined values.
func (m PaymentMethod) Validate() error {
	if m != Cash && m != Transfer && m != Deposit {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the lowercase method name used in persistence and the API.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// PaymentMethodFromString parses a method name as used in the API.
func PaymentMethodFromString(v string) (PaymentMethod, error) {
	switch v {
	case "cash":
		return Cash, nil
	case "transfer":
		return Transfer, nil
	case "deposit":
		return Deposit, nil
	default:
		return UnknownPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%q is not a valid payment method", v),
		)
	}
}

// PaymentStatus tracks whether an order has been paid.
// The only transition is pending to paid; there is no reverse.
type PaymentStatus int

const (
	// UnknownPaymentStatus represents an invalid or undefined status.
	UnknownPaymentStatus PaymentStatus = iota

	// PaymentPending means payment has not been received yet.
	PaymentPending

	// PaymentPaid means payment was received in full.
	PaymentPaid
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		UnknownPaymentStatus: "unknown",
		PaymentPending:       "pending",
		PaymentPaid:          "paid",
	}
}

// Validate checks that the payment status is one of the defined values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the lowercase payment status name.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentStatusFromString parses a payment status name as used in the API.
func PaymentStatusFromString(v string) (PaymentStatus, error) {
	switch v {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	default:
		return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%q is not a valid payment status", v),
		)
	}
}

// Pay transitions the payment status to PaymentPaid.
//
// Valid transitions:
//   - PaymentPending -> PaymentPaid
//
// Paying an already paid order is rejected; there is no reverse transition.
func (s PaymentStatus) Pay() (PaymentStatus, error) {
	if s != PaymentPending {
		return UnknownPaymentStatus, errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%s is not a valid payment status to pay", s),
		)
	}
	return PaymentPaid, nil
}
