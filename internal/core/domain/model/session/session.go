package session

import (
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// Wizard step numbers. A session always sits on exactly one of these.
const (
	StepCustomer = 1
	StepServices = 2
	StepReview   = 3
	StepPayment  = 4
)

// CustomerDraft carries the fields of a customer that will be created
// together with the order. A draft competes with a bound existing customer:
// staging a draft drops the binding and vice versa.
type CustomerDraft struct {
	Name    string
	Phone   string
	Address string
	Tier    customer.Type
}

// Session is an immutable snapshot of an order being composed.
// Mutating methods return a fresh snapshot; the receiver never changes.
type Session struct {
	step int

	customer *customer.Customer
	draft    *CustomerDraft

	// selectionOrder preserves the order in which services were picked so
	// totals and the resulting order lines are deterministic.
	selectionOrder []kernel.UUID
	selections     map[kernel.UUID]Selection

	orderNotes          string
	estimatedCompletion time.Time

	paymentMethod       order.PaymentMethod
	paymentConfirmation Confirmation
	proofKey            string

	totals Totals
	errMsg string
}

// NewSession returns a session positioned on the customer step with cash
// payment preselected and an empty selection set.
func NewSession() Session {
	return Session{
		step:                StepCustomer,
		selections:          map[kernel.UUID]Selection{},
		paymentMethod:       order.Cash,
		paymentConfirmation: PayNow,
	}
}

// clone produces a deep copy so that mutations never leak into snapshots
// already handed out.
func (s Session) clone() Session {
	next := s
	next.selectionOrder = append([]kernel.UUID(nil), s.selectionOrder...)
	next.selections = make(map[kernel.UUID]Selection, len(s.selections))
	for id, sel := range s.selections {
		sel.customItems = append([]order.CustomItem(nil), sel.customItems...)
		next.selections[id] = sel
	}
	return next
}

// Step returns the wizard step the session currently sits on.
func (s Session) Step() int {
	return s.step
}

// Error returns the message of the last rejected operation, empty when the
// session is in a clean state.
func (s Session) Error() string {
	return s.errMsg
}

// Customer returns the bound existing customer, nil when none is bound.
func (s Session) Customer() *customer.Customer {
	return s.customer
}

// Draft returns the staged new-customer draft, nil when none is staged.
func (s Session) Draft() *CustomerDraft {
	if s.draft == nil {
		return nil
	}
	d := *s.draft
	return &d
}

// OrderNotes returns the free-form note attached to the whole order.
func (s Session) OrderNotes() string {
	return s.orderNotes
}

// EstimatedCompletion returns the promised pickup time, zero when unset.
func (s Session) EstimatedCompletion() time.Time {
	return s.estimatedCompletion
}

// SelectCustomer binds an existing customer and discards any staged draft.
func (s Session) SelectCustomer(c *customer.Customer) (Session, error) {
	if err := c.Validate(); err != nil {
		return s, err
	}
	next := s.clone()
	next.customer = c
	next.draft = nil
	next.errMsg = ""
	next.recalculate()
	return next, nil
}

// StageNewCustomer stages a draft for a customer that does not exist yet and
// unbinds any previously selected customer.
func (s Session) StageNewCustomer(draft CustomerDraft) Session {
	next := s.clone()
	next.draft = &draft
	next.customer = nil
	next.errMsg = ""
	next.recalculate()
	return next
}

// ClearCustomer removes both the binding and the draft.
func (s Session) ClearCustomer() Session {
	next := s.clone()
	next.customer = nil
	next.draft = nil
	next.recalculate()
	return next
}

// SetOrderNotes replaces the order-level note.
func (s Session) SetOrderNotes(notes string) Session {
	next := s.clone()
	next.orderNotes = notes
	return next
}

// SetEstimatedCompletion records the promised pickup time. Validity against
// the clock is checked at submission, not here, so the operator can freely
// edit the value.
func (s Session) SetEstimatedCompletion(t time.Time) Session {
	next := s.clone()
	next.estimatedCompletion = t
	return next
}

// isMember reports whether member pricing applies: either a bound member or
// a staged draft with the member tier.
func (s Session) isMember() bool {
	if s.customer != nil {
		return s.customer.IsMember()
	}
	return s.draft != nil && s.draft.Tier == customer.Member
}
