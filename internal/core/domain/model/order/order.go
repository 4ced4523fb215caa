package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCompletionRequiresPayment is returned when a transition into Completed
	// is attempted while the order is unpaid.
	ErrCompletionRequiresPayment = errors.New("order must be paid before it can be completed")

	// ErrReadyRequiresPayment is returned by the mark-ready action when the
	// order is unpaid.
	ErrReadyRequiresPayment = errors.New("order must be paid before it can be marked ready")

	// ErrOrderAlreadyFinished is returned when cancelling a completed or
	// cancelled order.
	ErrOrderAlreadyFinished = errors.New("order is already completed or cancelled")
)

// Order is the aggregate root for a laundry order. It is created from a valid
// order session and then mutated only through status and payment transitions.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and customer reference
//   - Must have at least one line
//   - Total always equals the sum of line subtotals
//   - Status transitions move one processing stage at a time
//   - Completion requires the order to be paid
//   - Payment moves from pending to paid exactly once
type Order struct {
	id         kernel.UUID
	number     string
	customerID kernel.UUID

	lines []Line

	paymentMethod   PaymentMethod
	paymentStatus   PaymentStatus
	paymentProofKey string

	total       kernel.Money
	totalWeight float64

	status Status

	estimatedCompletion time.Time
	notes               string
	createdAt           time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Request status with pending payment.
//
// The estimated completion must not lie in the past. Totals are derived from
// the lines; the caller does not pass them in.
func NewOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	lines []Line,
	paymentMethod PaymentMethod,
	estimatedCompletion time.Time,
	notes string,
) (*Order, error) {
	o := &Order{
		status:        Request,
		paymentStatus: PaymentPending,
		notes:         notes,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setPaymentMethod(paymentMethod),
		o.setEstimatedCompletion(estimatedCompletion),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in an arbitrary valid
// state. Used by repositories only; it does not re-validate the estimated
// completion against the current time.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customerID kernel.UUID,
	lines []Line,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	paymentProofKey string,
	status Status,
	estimatedCompletion time.Time,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setPaymentMethod(paymentMethod),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.paymentStatus = paymentStatus
	o.paymentProofKey = paymentProofKey
	o.status = status
	o.estimatedCompletion = estimatedCompletion
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Call when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// IsPaid reports whether payment was received.
func (o *Order) IsPaid() bool {
	return o.paymentStatus == PaymentPaid
}

// PaymentProofKey returns the object storage key of the uploaded proof of
// payment, empty when none was attached.
func (o *Order) PaymentProofKey() string {
	return o.paymentProofKey
}

// AttachPaymentProof records the storage key of an uploaded proof of payment.
func (o *Order) AttachPaymentProof(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("payment proof key")
	}
	o.paymentProofKey = key
	return nil
}

// Total returns the order total, equal to the sum of line subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// TotalWeight returns the summed weight of weight-based lines in kilograms,
// rounded to one decimal place.
func (o *Order) TotalWeight() float64 {
	return o.totalWeight
}

// ItemCount returns the total custom item quantity across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, line := range o.lines {
		count += line.ItemCount()
	}
	return count
}

// Status returns the current processing stage.
func (o *Order) Status() Status {
	return o.status
}

// EstimatedCompletion returns the promised completion time.
func (o *Order) EstimatedCompletion() time.Time {
	return o.estimatedCompletion
}

// Notes returns the freeform order notes.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AdvanceStatusTo moves the order to the target processing stage.
//
// The transition rule is delegated to Status.AdvanceTo: one stage forward at
// a time, skipping rejected with a message naming the required intermediate
// stage. Transitions into Completed additionally require the order to be
// paid; this is enforced here, inside the aggregate, so no call path can
// complete an unpaid order.
func (o *Order) AdvanceStatusTo(target Status) error {
	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	if newStatus == Completed && o.paymentStatus != PaymentPaid {
		return ErrCompletionRequiresPayment
	}

	o.status = newStatus
	return nil
}

// MarkReady is the process-management action that moves an ironed order to
// Ready. Unlike the generic transition, it refuses unpaid orders: the counter
// flow requires payment before the laundry is handed to the pickup shelf.
// Orders paid at pickup go through AdvanceStatusTo instead.
func (o *Order) MarkReady() error {
	if o.paymentStatus != PaymentPaid {
		return ErrReadyRequiresPayment
	}
	return o.AdvanceStatusTo(Ready)
}

// MarkPaid transitions payment from pending to paid. One-directional;
// paying an already paid order is rejected.
func (o *Order) MarkPaid() error {
	newStatus, err := o.paymentStatus.Pay()
	if err != nil {
		return err
	}

	o.paymentStatus = newStatus
	return nil
}

// Cancel moves the order into the absorbing Cancelled state.
// Completed and already cancelled orders cannot be cancelled.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return ErrOrderAlreadyFinished
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	o.lines = append([]Line(nil), lines...)

	total := kernel.Money{}
	weight := 0.0
	for _, line := range o.lines {
		total = total.Add(line.Subtotal())
		if line.IsWeightBased() {
			weight += line.Weight()
		}
	}

	o.total = total
	o.totalWeight = math.Round(weight*10) / 10
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setEstimatedCompletion(t time.Time) error {
	if t.Before(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated completion is invalid",
			fmt.Errorf("%s lies in the past", t.Format(time.RFC3339)),
		)
	}
	o.estimatedCompletion = t
	return nil
}
