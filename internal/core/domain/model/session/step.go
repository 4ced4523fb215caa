package session

import (
	"fmt"

	"laundry/internal/core/domain/model/order"
)

// Generic message shown when a step is incomplete and no more specific
// diagnosis applies.
const msgIncompleteStep = "complete the data first"

// ValidateStep checks whether the given step holds enough data to move past
// it. A non-empty return value is the operator-facing reason it does not.
func (s Session) ValidateStep(step int) string {
	switch step {
	case StepCustomer:
		if s.customer != nil {
			return ""
		}
		if s.draft != nil && len([]rune(s.draft.Name)) >= 2 {
			return ""
		}
		return msgIncompleteStep

	case StepServices:
		if len(s.selectionOrder) == 0 {
			return msgIncompleteStep
		}
		for _, id := range s.selectionOrder {
			sel := s.selections[id]
			if sel.service.IsWeightBased() && sel.weight < sel.service.MinWeight() {
				return fmt.Sprintf(
					"minimum weight for %s is %.1f kg",
					sel.service.Name(), sel.service.MinWeight(),
				)
			}
		}
		return ""

	case StepReview:
		return ""

	case StepPayment:
		if s.paymentMethod == order.Deposit {
			return s.depositWarning()
		}
		return ""

	default:
		return msgIncompleteStep
	}
}

// ProceedToNextStep advances the wizard by exactly one step when the current
// step validates; otherwise the step stays and the validation message is
// exposed via Error. On the final step the call is a no-op.
func (s Session) ProceedToNextStep() Session {
	next := s.clone()

	if s.step >= StepPayment {
		return next
	}

	if msg := s.ValidateStep(s.step); msg != "" {
		next.errMsg = msg
		return next
	}

	next.step = s.step + 1
	next.errMsg = ""
	return next
}

// GoToPrevStep moves one step back, never below the first, and clears any
// pending error message.
func (s Session) GoToPrevStep() Session {
	next := s.clone()
	if next.step > StepCustomer {
		next.step--
	}
	next.errMsg = ""
	return next
}
